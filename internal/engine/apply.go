package engine

import (
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/hashing"
)

// Undo records the state MakeMove overwrote, so UnmakeMove can restore
// the board exactly.
type Undo struct {
	Move          chess.Move
	Moved         chess.Piece
	Captured      chess.Piece
	CaptureSquare chess.Square
	Castling      chess.CastlingRights
	EnPassant     chess.Square
	HalfmoveClock uint
	MoveNumber    uint
	Zobrist       uint64
}

// MakeMove plays a pseudo-legal move on the board in place and updates the
// side to move, castling rights, en passant target, clocks and Zobrist key.
// It does not check legality.
func MakeMove(board *chess.Board, m chess.Move) Undo {
	colour := board.ToMove
	piece := board.Squares[m.From]
	u := Undo{
		Move:          m,
		Moved:         piece,
		Captured:      chess.Empty,
		CaptureSquare: chess.NoSquare,
		Castling:      board.Castling,
		EnPassant:     board.EnPassant,
		HalfmoveClock: board.HalfmoveClock,
		MoveNumber:    board.MoveNumber,
		Zobrist:       board.Zobrist,
	}

	hash := board.Zobrist
	hash ^= hashing.CastlingKey(board.Castling) ^ hashing.EnPassantKey(board.EnPassant)

	// Remove any captured piece first; en passant takes the pawn behind
	// the target square.
	capSq := m.To
	if m.IsEnPassant() {
		capSq = m.To.Offset(0, -chess.ColourOffset(colour))
	}
	if captured := board.Squares[capSq]; captured.IsColoured() {
		u.Captured = captured
		u.CaptureSquare = capSq
		hash ^= hashing.PieceKey(captured, capSq)
		board.Squares[capSq] = chess.Empty
	}

	placed := piece
	if m.IsPromotion() {
		placed = chess.MakeColouredPiece(colour, m.Promotion)
	}
	hash ^= hashing.PieceKey(piece, m.From) ^ hashing.PieceKey(placed, m.To)
	board.Squares[m.From] = chess.Empty
	board.Set(m.To, placed)

	if m.IsCastle() {
		path := castlingPaths(colour)[0]
		if m.Flags&chess.FlagCastleQueenside != 0 {
			path = castlingPaths(colour)[1]
		}
		rook := board.Squares[path.rookFrom]
		hash ^= hashing.PieceKey(rook, path.rookFrom) ^ hashing.PieceKey(rook, path.rookTo)
		board.Squares[path.rookFrom] = chess.Empty
		board.Squares[path.rookTo] = rook
	}

	updateCastlingRights(board, piece, m)

	board.EnPassant = chess.NoSquare
	if m.IsDoublePawnPush() {
		board.EnPassant = m.From.Offset(0, chess.ColourOffset(colour))
	}

	if chess.ExtractPiece(piece) == chess.Pawn || u.Captured != chess.Empty {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}
	if colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = colour.Opposite()

	hash ^= hashing.SideKey()
	hash ^= hashing.CastlingKey(board.Castling) ^ hashing.EnPassantKey(board.EnPassant)
	board.Zobrist = hash
	return u
}

// updateCastlingRights drops rights lost by a king or rook leaving home,
// or by a rook being captured on its home square.
func updateCastlingRights(board *chess.Board, piece chess.Piece, m chess.Move) {
	if chess.ExtractPiece(piece) == chess.King {
		board.Castling.Clear(chess.ExtractColour(piece))
	}
	for _, sq := range []chess.Square{m.From, m.To} {
		switch sq {
		case chess.H1:
			board.Castling.WhiteKingside = false
		case chess.A1:
			board.Castling.WhiteQueenside = false
		case chess.H8:
			board.Castling.BlackKingside = false
		case chess.A8:
			board.Castling.BlackQueenside = false
		}
	}
}

// UnmakeMove reverses a MakeMove using its Undo record.
func UnmakeMove(board *chess.Board, u Undo) {
	m := u.Move
	colour := chess.ExtractColour(u.Moved)

	if m.IsCastle() {
		path := castlingPaths(colour)[0]
		if m.Flags&chess.FlagCastleQueenside != 0 {
			path = castlingPaths(colour)[1]
		}
		board.Squares[path.rookFrom] = board.Squares[path.rookTo]
		board.Squares[path.rookTo] = chess.Empty
	}

	board.Squares[m.To] = chess.Empty
	board.Set(m.From, u.Moved)
	if u.Captured != chess.Empty {
		board.Set(u.CaptureSquare, u.Captured)
	}

	board.ToMove = colour
	board.Castling = u.Castling
	board.EnPassant = u.EnPassant
	board.HalfmoveClock = u.HalfmoveClock
	board.MoveNumber = u.MoveNumber
	board.Zobrist = u.Zobrist
}

// WithMove plays m on the board, runs fn, and takes the move back again
// however fn returns, including by panic.
func WithMove(board *chess.Board, m chess.Move, fn func()) {
	u := MakeMove(board, m)
	defer UnmakeMove(board, u)
	fn()
}

// Apply returns the position after playing m on board. The board itself
// is left unchanged. It fails with an *errors.IllegalMoveError if m is
// not one of LegalMoves(board); only From, To and Promotion of m are
// compared, so a move built by hand is accepted.
func Apply(board *chess.Board, m chess.Move) (chess.Board, error) {
	if m.Promotion == chess.Off {
		m.Promotion = chess.Empty
	}
	for _, legal := range LegalMoves(board) {
		if legal.SameAs(m) {
			next := *board
			MakeMove(&next, legal)
			return next, nil
		}
	}
	return chess.Board{}, &errors.IllegalMoveError{
		Move:   m.String(),
		FEN:    BoardToFEN(board),
		Reason: "not a legal move in this position",
	}
}

// ParseMove reads coordinate move text such as "e2e4" or "e7e8q" and
// returns the matching legal move of the board. A missing promotion
// letter on a promoting move is rejected.
func ParseMove(board *chess.Board, text string) (chess.Move, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if len(s) != 4 && len(s) != 5 {
		return chess.Move{}, &errors.ParseError{
			Err:      errors.ErrParseFailure,
			Field:    "move",
			Expected: "coordinate move like e2e4",
			Got:      text,
		}
	}
	from, err := chess.ParseSquare(s[0:2])
	if err != nil {
		return chess.Move{}, errors.Wrapf(err, "move %q", text)
	}
	to, err := chess.ParseSquare(s[2:4])
	if err != nil {
		return chess.Move{}, errors.Wrapf(err, "move %q", text)
	}
	m := chess.Move{From: from, To: to, Promotion: chess.Empty}
	if len(s) == 5 {
		m.Promotion = chess.PieceFromLetter(s[4])
		if m.Promotion == chess.Empty || m.Promotion == chess.Pawn || m.Promotion == chess.King {
			return chess.Move{}, &errors.ParseError{
				Err:      errors.ErrParseFailure,
				Field:    "move",
				Column:   5,
				Expected: "promotion piece q, r, b or n",
				Got:      string(s[4]),
			}
		}
	}

	for _, legal := range LegalMoves(board) {
		if legal.SameAs(m) {
			return legal, nil
		}
	}
	return chess.Move{}, &errors.IllegalMoveError{
		Move:   s,
		FEN:    BoardToFEN(board),
		Reason: "not a legal move in this position",
	}
}
