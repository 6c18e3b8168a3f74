package chess

import "strings"

// CastlingRights holds the four independent castling permissions.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// Kingside reports the king-side right of the colour.
func (c CastlingRights) Kingside(colour Colour) bool {
	if colour == White {
		return c.WhiteKingside
	}
	return c.BlackKingside
}

// Queenside reports the queen-side right of the colour.
func (c CastlingRights) Queenside(colour Colour) bool {
	if colour == White {
		return c.WhiteQueenside
	}
	return c.BlackQueenside
}

// Clear removes both rights of the colour.
func (c *CastlingRights) Clear(colour Colour) {
	if colour == White {
		c.WhiteKingside, c.WhiteQueenside = false, false
	} else {
		c.BlackKingside, c.BlackQueenside = false, false
	}
}

// Index packs the rights into 0-15 (KQkq as bits 0-3).
func (c CastlingRights) Index() int {
	i := 0
	if c.WhiteKingside {
		i |= 1
	}
	if c.WhiteQueenside {
		i |= 2
	}
	if c.BlackKingside {
		i |= 4
	}
	if c.BlackQueenside {
		i |= 8
	}
	return i
}

// String returns the FEN castling field.
func (c CastlingRights) String() string {
	var sb strings.Builder
	if c.WhiteKingside {
		sb.WriteByte('K')
	}
	if c.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if c.BlackKingside {
		sb.WriteByte('k')
	}
	if c.BlackQueenside {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// Board represents a chess position with all state needed for the game.
// It is a plain value: assigning a Board copies the entire position.
type Board struct {
	// The board squares, indexed by Square.
	Squares [NumSquares]Piece

	// Who has the next move.
	ToMove Colour

	// The current move number.
	MoveNumber uint

	Castling CastlingRights

	// The square a pawn skipped over on the last move, or NoSquare.
	EnPassant Square

	// Keep track of where the two kings are for check detection.
	WKing Square
	BKing Square

	// Zobrist key of the position, maintained by the engine.
	Zobrist uint64

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	b := &Board{
		ToMove:     White,
		MoveNumber: 1,
		EnPassant:  NoSquare,
		WKing:      NoSquare,
		BKing:      NoSquare,
	}
	for sq := range b.Squares {
		b.Squares[sq] = Empty
	}
	return b
}

// Get returns the piece at the given square, or Off for NoSquare.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return Off
	}
	return b.Squares[sq]
}

// Set places a piece at the given square, tracking king squares.
func (b *Board) Set(sq Square, piece Piece) {
	if !sq.Valid() {
		return
	}
	b.Squares[sq] = piece
	if piece.IsColoured() && ExtractPiece(piece) == King {
		if ExtractColour(piece) == White {
			b.WKing = sq
		} else {
			b.BKing = sq
		}
	}
}

// King returns the tracked king square of the colour.
func (b *Board) King(colour Colour) Square {
	if colour == White {
		return b.WKing
	}
	return b.BKing
}

// Mirror returns the colour-swapped position: ranks reflected, piece
// colours and side to move swapped, castling rights exchanged.
// The Zobrist key is left zero for the engine to recompute.
func (b *Board) Mirror() *Board {
	m := NewBoard()
	for sq := Square(0); int(sq) < NumSquares; sq++ {
		piece := b.Squares[sq]
		if piece.IsColoured() {
			piece = MakeColouredPiece(ExtractColour(piece).Opposite(), ExtractPiece(piece))
		}
		m.Set(sq.Mirror(), piece)
	}
	m.ToMove = b.ToMove.Opposite()
	m.MoveNumber = b.MoveNumber
	m.HalfmoveClock = b.HalfmoveClock
	m.Castling = CastlingRights{
		WhiteKingside:  b.Castling.BlackKingside,
		WhiteQueenside: b.Castling.BlackQueenside,
		BlackKingside:  b.Castling.WhiteKingside,
		BlackQueenside: b.Castling.WhiteQueenside,
	}
	m.EnPassant = b.EnPassant.Mirror()
	return m
}

// PieceCount returns the number of pieces of the kind and colour on the board.
func (b *Board) PieceCount(colour Colour, kind Piece) int {
	target := MakeColouredPiece(colour, kind)
	n := 0
	for _, p := range b.Squares {
		if p == target {
			n++
		}
	}
	return n
}

// String renders the board as text with rank 8 at the top.
func (b *Board) String() string {
	return b.Render(NoSquare, NoSquare)
}

// Render draws the board, marking the from and to squares of the last
// move with '>'. Pass NoSquare to mark nothing.
func (b *Board) Render(from, to Square) string {
	var sb strings.Builder
	sb.WriteString(" ")
	for file := 0; file < BoardSize; file++ {
		sb.WriteString("  ")
		sb.WriteByte(byte(FileBase + file))
	}
	sb.WriteByte('\n')
	for rank := BoardSize - 1; rank >= 0; rank-- {
		sb.WriteByte(byte(RankBase + rank))
		for file := 0; file < BoardSize; file++ {
			sq := NewSquare(file, rank)
			if sq == from || sq == to {
				sb.WriteString(" >")
			} else {
				sb.WriteString("  ")
			}
			sb.WriteByte(pieceGlyph(b.Squares[sq]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// pieceGlyph returns the FEN letter of a coloured piece, '.' for empty.
func pieceGlyph(p Piece) byte {
	if !p.IsColoured() {
		return '.'
	}
	letter := ExtractPiece(p).Letter()
	if ExtractColour(p) == Black {
		letter += 'a' - 'A'
	}
	return letter
}
