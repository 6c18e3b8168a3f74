package chess

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("initial state", func(t *testing.T) {
		if b.ToMove != White {
			t.Errorf("ToMove = %v; want White", b.ToMove)
		}
		if b.MoveNumber != 1 {
			t.Errorf("MoveNumber = %d; want 1", b.MoveNumber)
		}
		if b.EnPassant != NoSquare {
			t.Errorf("EnPassant = %v; want NoSquare", b.EnPassant)
		}
		if b.WKing != NoSquare || b.BKing != NoSquare {
			t.Errorf("kings = %v, %v; want NoSquare", b.WKing, b.BKing)
		}
		if b.Castling != (CastlingRights{}) {
			t.Errorf("Castling = %+v; want none", b.Castling)
		}
	})

	t.Run("all squares empty", func(t *testing.T) {
		for sq := Square(0); int(sq) < NumSquares; sq++ {
			if got := b.Get(sq); got != Empty {
				t.Errorf("Get(%v) = %v; want Empty", sq, got)
			}
		}
	})

	t.Run("off board is Off", func(t *testing.T) {
		if got := b.Get(NoSquare); got != Off {
			t.Errorf("Get(NoSquare) = %v; want Off", got)
		}
	})
}

func TestSetTracksKings(t *testing.T) {
	b := NewBoard()
	b.Set(E1, W(King))
	b.Set(E8, B(King))
	b.Set(D1, W(Queen))

	if b.King(White) != E1 {
		t.Errorf("King(White) = %v; want e1", b.King(White))
	}
	if b.King(Black) != E8 {
		t.Errorf("King(Black) = %v; want e8", b.King(Black))
	}

	b.Set(E1, Empty)
	b.Set(F1, W(King))
	if b.King(White) != F1 {
		t.Errorf("King(White) after move = %v; want f1", b.King(White))
	}
}

func TestValueCopyIsIndependent(t *testing.T) {
	b := NewBoard()
	b.Set(E1, W(King))
	c := *b
	c.Set(E1+8, W(Pawn))
	if b.Get(E1+8) != Empty {
		t.Error("modifying copy changed the original")
	}
}

func TestMirror(t *testing.T) {
	b := NewBoard()
	b.Set(E1, W(King))
	b.Set(E8, B(King))
	b.Set(NewSquare(3, 1), W(Pawn)) // d2
	b.Set(NewSquare(0, 6), B(Rook)) // a7
	b.Castling = CastlingRights{WhiteKingside: true, BlackQueenside: true}
	b.EnPassant = NewSquare(4, 2) // e3
	b.ToMove = Black

	m := b.Mirror()

	tests := []struct {
		sq   Square
		want Piece
	}{
		{E8, B(King)},
		{E1, W(King)},
		{NewSquare(3, 6), B(Pawn)}, // d7
		{NewSquare(0, 1), W(Rook)}, // a2
	}
	for _, tt := range tests {
		if got := m.Get(tt.sq); got != tt.want {
			t.Errorf("Mirror().Get(%v) = %v; want %v", tt.sq, got, tt.want)
		}
	}
	want := CastlingRights{BlackKingside: true, WhiteQueenside: true}
	if diff := cmp.Diff(want, m.Castling); diff != "" {
		t.Errorf("Mirror().Castling mismatch (-want +got):\n%s", diff)
	}
	if m.ToMove != White {
		t.Errorf("Mirror().ToMove = %v; want White", m.ToMove)
	}
	if m.EnPassant.String() != "e6" {
		t.Errorf("Mirror().EnPassant = %v; want e6", m.EnPassant)
	}

	back := m.Mirror()
	if back.Squares != b.Squares {
		t.Error("Mirror().Mirror() did not restore the squares")
	}
}

func TestPieceCount(t *testing.T) {
	b := NewBoard()
	b.Set(A1, W(Rook))
	b.Set(H1, W(Rook))
	b.Set(A8, B(Rook))
	if got := b.PieceCount(White, Rook); got != 2 {
		t.Errorf("PieceCount(White, Rook) = %d; want 2", got)
	}
	if got := b.PieceCount(Black, Rook); got != 1 {
		t.Errorf("PieceCount(Black, Rook) = %d; want 1", got)
	}
}

func TestRender(t *testing.T) {
	b := NewBoard()
	b.Set(E1, W(King))
	b.Set(E8, B(King))
	b.Set(NewSquare(4, 3), W(Pawn)) // e4

	out := b.Render(NewSquare(4, 1), NewSquare(4, 3))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("Render() produced %d lines; want 9:\n%s", len(lines), out)
	}
	if lines[0] != "   a  b  c  d  e  f  g  h" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "8  .  .  .  .  k  .  .  ." {
		t.Errorf("rank 8 = %q", lines[1])
	}
	if lines[5] != "4  .  .  .  . >P  .  .  ." {
		t.Errorf("rank 4 = %q", lines[5])
	}
	if lines[7] != "2  .  .  .  . >.  .  .  ." {
		t.Errorf("rank 2 = %q", lines[7])
	}
}

func TestCastlingRights(t *testing.T) {
	c := CastlingRights{WhiteKingside: true, WhiteQueenside: true, BlackKingside: true, BlackQueenside: true}
	if c.String() != "KQkq" || c.Index() != 15 {
		t.Errorf("full rights = %q/%d; want KQkq/15", c.String(), c.Index())
	}
	c.Clear(White)
	if c.String() != "kq" {
		t.Errorf("after Clear(White) = %q; want kq", c.String())
	}
	if c.Kingside(White) || !c.Queenside(Black) {
		t.Errorf("Kingside/Queenside disagree with %q", c.String())
	}
	if (CastlingRights{}).String() != "-" {
		t.Error("empty rights should render as -")
	}
}
