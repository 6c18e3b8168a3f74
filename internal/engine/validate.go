package engine

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// ValidateBoard rejects positions that cannot arise in a legal game and
// that the move generator does not handle. It returns an
// *errors.InvalidStateError describing the first problem found.
func ValidateBoard(board *chess.Board) error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if err := validateMaterial(board, colour); err != nil {
			return err
		}
	}

	for file := 0; file < chess.BoardSize; file++ {
		for _, rank := range []int{0, chess.BoardSize - 1} {
			p := board.Get(chess.NewSquare(file, rank))
			if p.IsColoured() && chess.ExtractPiece(p) == chess.Pawn {
				return invalidState("pawn on %v", chess.NewSquare(file, rank))
			}
		}
	}

	if err := validateCastling(board); err != nil {
		return err
	}
	if err := validateEnPassant(board); err != nil {
		return err
	}

	if IsInCheck(board, board.ToMove.Opposite()) {
		return invalidState("%v is in check with %v to move", board.ToMove.Opposite(), board.ToMove)
	}
	return nil
}

// validateMaterial checks king count and piece counts for one side.
func validateMaterial(board *chess.Board, colour chess.Colour) error {
	kings := board.PieceCount(colour, chess.King)
	if kings != 1 {
		return invalidState("%v has %d kings", colour, kings)
	}

	total := 0
	for kind := chess.Pawn; kind <= chess.King; kind++ {
		total += board.PieceCount(colour, kind)
	}
	if total > 16 {
		return invalidState("%v has %d pieces", colour, total)
	}

	pawns := board.PieceCount(colour, chess.Pawn)
	if pawns > 8 {
		return invalidState("%v has %d pawns", colour, pawns)
	}
	// Every piece beyond the initial set must come from a promoted pawn.
	extra := 0
	for kind, initial := range map[chess.Piece]int{chess.Knight: 2, chess.Bishop: 2, chess.Rook: 2, chess.Queen: 1} {
		if n := board.PieceCount(colour, kind); n > initial {
			extra += n - initial
		}
	}
	if extra > 8-pawns {
		return invalidState("%v has %d promoted pieces with %d pawns left", colour, extra, pawns)
	}
	return nil
}

// validateCastling checks that each right has its king and rook at home.
func validateCastling(board *chess.Board) error {
	checks := []struct {
		right  bool
		colour chess.Colour
		rook   chess.Square
		name   byte
	}{
		{board.Castling.WhiteKingside, chess.White, chess.H1, 'K'},
		{board.Castling.WhiteQueenside, chess.White, chess.A1, 'Q'},
		{board.Castling.BlackKingside, chess.Black, chess.H8, 'k'},
		{board.Castling.BlackQueenside, chess.Black, chess.A8, 'q'},
	}
	for _, c := range checks {
		if !c.right {
			continue
		}
		if board.King(c.colour) != kingHome(c.colour) {
			return invalidState("castling right %c without king on %v", c.name, kingHome(c.colour))
		}
		if board.Get(c.rook) != chess.MakeColouredPiece(c.colour, chess.Rook) {
			return invalidState("castling right %c without rook on %v", c.name, c.rook)
		}
	}
	return nil
}

// validateEnPassant checks the target square agrees with the last move
// being a double pawn push by the side not to move.
func validateEnPassant(board *chess.Board) error {
	ep := board.EnPassant
	if ep == chess.NoSquare {
		return nil
	}
	mover := board.ToMove.Opposite()
	dir := chess.ColourOffset(mover)
	wantRank := 2
	if mover == chess.Black {
		wantRank = 5
	}
	if ep.Rank() != wantRank {
		return invalidState("en passant target %v on wrong rank", ep)
	}
	if board.Get(ep) != chess.Empty || board.Get(ep.Offset(0, -dir)) != chess.Empty {
		return invalidState("en passant target %v is not behind an empty start square", ep)
	}
	if board.Get(ep.Offset(0, dir)) != chess.MakeColouredPiece(mover, chess.Pawn) {
		return invalidState("no %v pawn in front of en passant target %v", mover, ep)
	}
	return nil
}

// kingHome returns the initial king square of the colour.
func kingHome(colour chess.Colour) chess.Square {
	if colour == chess.White {
		return chess.E1
	}
	return chess.E8
}

func invalidState(format string, args ...interface{}) error {
	return &errors.InvalidStateError{Reason: fmt.Sprintf(format, args...)}
}
