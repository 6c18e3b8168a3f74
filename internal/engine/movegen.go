package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// GeneratePseudoLegal returns every move of the side to move that obeys
// piece movement rules, without testing whether the mover's king is left
// in check. Order is deterministic: origin squares a1..h8, then each
// piece's fixed direction order, promotions as Q, R, B, N.
func GeneratePseudoLegal(board *chess.Board) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	return appendPseudoLegal(moves, board)
}

// appendPseudoLegal appends the pseudo-legal moves of board to moves.
func appendPseudoLegal(moves []chess.Move, board *chess.Board) []chess.Move {
	colour := board.ToMove
	for from := chess.Square(0); int(from) < chess.NumSquares; from++ {
		piece := board.Squares[from]
		if !piece.IsColoured() || chess.ExtractColour(piece) != colour {
			continue
		}
		switch chess.ExtractPiece(piece) {
		case chess.Pawn:
			moves = appendPawnMoves(moves, board, from, piece)
		case chess.Knight:
			moves = appendStepMoves(moves, board, from, piece, knightOffsets)
		case chess.Bishop:
			moves = appendSlidingMoves(moves, board, from, piece, diagonalDirs)
		case chess.Rook:
			moves = appendSlidingMoves(moves, board, from, piece, straightDirs)
		case chess.Queen:
			moves = appendSlidingMoves(moves, board, from, piece, queenDirs)
		case chess.King:
			moves = appendStepMoves(moves, board, from, piece, kingOffsets)
			moves = appendCastlingMoves(moves, board, from, piece)
		}
	}
	return moves
}

// newMove builds a move of piece from one square to another, filling in
// the capture details from the board.
func newMove(board *chess.Board, piece chess.Piece, from, to chess.Square) chess.Move {
	m := chess.Move{
		From:      from,
		To:        to,
		Promotion: chess.Empty,
		Piece:     piece,
		Captured:  chess.Empty,
	}
	if target := board.Squares[to]; target.IsColoured() {
		m.Captured = target
		m.Flags |= chess.FlagCapture
	}
	return m
}

// appendStepMoves handles knights and kings: one jump per offset.
func appendStepMoves(moves []chess.Move, board *chess.Board, from chess.Square, piece chess.Piece, offsets [][2]int) []chess.Move {
	colour := chess.ExtractColour(piece)
	for _, o := range offsets {
		to := from.Offset(o[0], o[1])
		if to == chess.NoSquare {
			continue
		}
		target := board.Squares[to]
		if target == chess.Empty || chess.ExtractColour(target) != colour {
			moves = append(moves, newMove(board, piece, from, to))
		}
	}
	return moves
}

// appendSlidingMoves handles bishops, rooks and queens: rays until blocked.
func appendSlidingMoves(moves []chess.Move, board *chess.Board, from chess.Square, piece chess.Piece, dirs [][2]int) []chess.Move {
	colour := chess.ExtractColour(piece)
	for _, dir := range dirs {
		for to := from.Offset(dir[0], dir[1]); to != chess.NoSquare; to = to.Offset(dir[0], dir[1]) {
			target := board.Squares[to]
			if target != chess.Empty {
				if chess.ExtractColour(target) != colour {
					moves = append(moves, newMove(board, piece, from, to))
				}
				break // Blocked
			}
			moves = append(moves, newMove(board, piece, from, to))
		}
	}
	return moves
}

// castlingPath describes the squares involved in one castling move.
type castlingPath struct {
	rookFrom, rookTo chess.Square
	kingTo           chess.Square
	// Squares that must be empty.
	between []chess.Square
	// Square the king crosses, which must not be attacked.
	transit chess.Square
	flag    chess.MoveFlags
}

// castlingPaths returns the kingside and queenside paths of the colour.
func castlingPaths(colour chess.Colour) [2]castlingPath {
	r := chess.HomeRank(colour)
	sq := func(file int) chess.Square { return chess.NewSquare(file, r) }
	return [2]castlingPath{
		{
			rookFrom: sq(7), rookTo: sq(5), kingTo: sq(6),
			between: []chess.Square{sq(5), sq(6)},
			transit: sq(5),
			flag:    chess.FlagCastleKingside,
		},
		{
			rookFrom: sq(0), rookTo: sq(3), kingTo: sq(2),
			between: []chess.Square{sq(1), sq(2), sq(3)},
			transit: sq(3),
			flag:    chess.FlagCastleQueenside,
		},
	}
}

// appendCastlingMoves adds castling moves whose rights are held and whose
// path is empty. Whether the king crosses an attacked square is left to
// the legality filter.
func appendCastlingMoves(moves []chess.Move, board *chess.Board, from chess.Square, king chess.Piece) []chess.Move {
	colour := chess.ExtractColour(king)
	if from != kingHome(colour) {
		return moves
	}
	rights := [2]bool{board.Castling.Kingside(colour), board.Castling.Queenside(colour)}
	rook := chess.MakeColouredPiece(colour, chess.Rook)
	for i, path := range castlingPaths(colour) {
		if !rights[i] || board.Squares[path.rookFrom] != rook {
			continue
		}
		empty := true
		for _, sq := range path.between {
			if board.Squares[sq] != chess.Empty {
				empty = false
				break
			}
		}
		if !empty {
			continue
		}
		m := newMove(board, king, from, path.kingTo)
		m.Flags |= path.flag
		moves = append(moves, m)
	}
	return moves
}
