package chess

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Square is a board coordinate, file + 8*rank, with a1 = 0 and h8 = 63.
// NoSquare marks "no square" and off-board results; it is never a valid
// coordinate.
type Square int8

// NoSquare is the off-board sentinel.
const NoSquare Square = -1

// Named squares used by castling and tests.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

const (
	A8 Square = iota + 56
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NewSquare returns the square at file and rank (both 0-7), or NoSquare
// if either is out of range.
func NewSquare(file, rank int) Square {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoSquare
	}
	return Square(file + rank*BoardSize)
}

// ParseSquare parses coordinate text such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("square %q: %w", s, errors.ErrParseFailure)
	}
	sq := NewSquare(int(s[0])-FileBase, int(s[1])-RankBase)
	if sq == NoSquare {
		return NoSquare, fmt.Errorf("square %q: %w", s, errors.ErrParseFailure)
	}
	return sq, nil
}

// File returns the file index 0-7 (a-h).
func (s Square) File() int {
	return int(s) % BoardSize
}

// Rank returns the rank index 0-7 (1-8).
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// Valid reports whether s is on the board.
func (s Square) Valid() bool {
	return s >= 0 && int(s) < NumSquares
}

// Offset returns the square df files and dr ranks away, or NoSquare
// if that falls off the board.
func (s Square) Offset(df, dr int) Square {
	if !s.Valid() {
		return NoSquare
	}
	return NewSquare(s.File()+df, s.Rank()+dr)
}

// Mirror returns the square reflected across the horizontal centre line.
func (s Square) Mirror() Square {
	if !s.Valid() {
		return NoSquare
	}
	return NewSquare(s.File(), BoardSize-1-s.Rank())
}

// IsLight reports whether s is a light square (h1 is light).
func (s Square) IsLight() bool {
	return (s.File()+s.Rank())%2 == 1
}

// String returns the coordinate text of the square, or "-" for NoSquare.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(FileBase + s.File()), byte(RankBase + s.Rank())})
}
