package chess

import "strings"

// MoveFlags describes the special properties of a move.
type MoveFlags uint8

const (
	FlagCapture MoveFlags = 1 << iota
	FlagEnPassant
	FlagCastleKingside
	FlagCastleQueenside
	FlagDoublePawnPush
)

// Move is a single move as produced by generation. It carries the moving
// and captured pieces so it can be unmade without looking at the board.
type Move struct {
	From Square
	To   Square

	// The piece promoted to (Empty if not a promotion).
	Promotion Piece

	Flags MoveFlags

	// The coloured piece being moved.
	Piece Piece

	// The coloured piece captured (Empty if no capture). For en passant
	// this is the pawn removed from beside the destination square.
	Captured Piece
}

// IsCapture returns true if this move is a capture.
func (m Move) IsCapture() bool {
	return m.Flags&FlagCapture != 0
}

// IsEnPassant returns true if this move is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.Flags&FlagEnPassant != 0
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion != Empty && m.Promotion != Off
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Flags&(FlagCastleKingside|FlagCastleQueenside) != 0
}

// IsDoublePawnPush returns true for a two-square pawn advance.
func (m Move) IsDoublePawnPush() bool {
	return m.Flags&FlagDoublePawnPush != 0
}

// SameAs reports whether two moves have the same identity: origin,
// destination and promotion piece.
func (m Move) SameAs(other Move) bool {
	return m.From == other.From && m.To == other.To && m.Promotion == other.Promotion
}

// String returns the move in coordinate notation, for example "e2e4",
// "e1g1" or "e7e8q".
func (m Move) String() string {
	var sb strings.Builder
	sb.WriteString(m.From.String())
	sb.WriteString(m.To.String())
	if m.IsPromotion() {
		sb.WriteByte(m.Promotion.Letter() + ('a' - 'A'))
	}
	return sb.String()
}
