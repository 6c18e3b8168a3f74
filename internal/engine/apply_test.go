package engine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/hashing"
)

const kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
		want string
	}{
		{
			name: "double push sets en passant",
			fen:  InitialFEN,
			move: "e2e4",
			want: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name: "knight move advances halfmove clock",
			fen:  InitialFEN,
			move: "g1f3",
			want: "rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 1 1",
		},
		{
			name: "white kingside castle",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move: "e1g1",
			want: "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1",
		},
		{
			name: "white queenside castle",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move: "e1c1",
			want: "r3k2r/8/8/8/8/8/8/2KR3R b kq - 1 1",
		},
		{
			name: "black kingside castle",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			move: "e8g8",
			want: "r4rk1/8/8/8/8/8/8/R3K2R w KQ - 1 2",
		},
		{
			name: "en passant capture",
			fen:  "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
			move: "e5f6",
			want: "rnbqkbnr/ppp1p1pp/5P2/3p4/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 3",
		},
		{
			name: "queen promotion",
			fen:  "4k3/P7/8/8/8/8/8/4K3 w - - 0 1",
			move: "a7a8q",
			want: "Q3k3/8/8/8/8/8/8/4K3 b - - 0 1",
		},
		{
			name: "knight underpromotion",
			fen:  "4k3/P7/8/8/8/8/8/4K3 w - - 5 1",
			move: "a7a8n",
			want: "N3k3/8/8/8/8/8/8/4K3 b - - 0 1",
		},
		{
			name: "rook capture removes both rights on the file",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move: "a1a8",
			want: "R3k2r/8/8/8/8/8/8/4K2R b Kk - 0 1",
		},
		{
			name: "rook move removes one right",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move: "h1h2",
			want: "r3k2r/8/8/8/8/8/7R/R3K3 b Qkq - 1 1",
		},
		{
			name: "king move removes both rights",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move: "e1f1",
			want: "r3k2r/8/8/8/8/8/8/R4K1R b kq - 1 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustFEN(t, tt.fen)
			before := *board
			m, err := ParseMove(board, tt.move)
			if err != nil {
				t.Fatalf("ParseMove(%q) error: %v", tt.move, err)
			}
			next, err := Apply(board, m)
			if err != nil {
				t.Fatalf("Apply(%v) error: %v", m, err)
			}
			if got := BoardToFEN(&next); got != tt.want {
				t.Errorf("FEN after %s = %q, want %q", tt.move, got, tt.want)
			}
			if got := hashing.GenerateZobristHash(&next); next.Zobrist != got {
				t.Errorf("incremental Zobrist = %x, recomputed %x", next.Zobrist, got)
			}
			if diff := cmp.Diff(before, *board); diff != "" {
				t.Errorf("Apply modified its input (-before +after):\n%s", diff)
			}
		})
	}
}

func TestApply_HandBuiltMove(t *testing.T) {
	board := NewInitialBoard()
	// Promotion left as the zero value.
	next, err := Apply(board, chess.Move{From: sq(t, "e2"), To: sq(t, "e4")})
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if next.EnPassant != sq(t, "e3") {
		t.Errorf("EnPassant = %v, want e3", next.EnPassant)
	}
}

func TestApply_IllegalMove(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move chess.Move
	}{
		{"pawn three squares", InitialFEN, chess.Move{From: chess.E1 + 8, To: chess.E1 + 32}},
		{"empty square", InitialFEN, chess.Move{From: chess.E1 + 24, To: chess.E1 + 32}},
		{"opponent piece", InitialFEN, chess.Move{From: chess.E8 - 8, To: chess.E8 - 16}},
		{"pinned piece", "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1", chess.Move{From: chess.E1 + 8, To: chess.E1 + 17}},
		{"king into check", "4k3/8/8/8/8/8/5r2/4K3 w - - 0 1", chess.Move{From: chess.E1, To: chess.E1 + 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustFEN(t, tt.fen)
			_, err := Apply(board, tt.move)
			if !errors.Is(err, chesserrors.ErrIllegalMove) {
				t.Fatalf("Apply(%v) error = %v, want ErrIllegalMove", tt.move, err)
			}
			var ime *chesserrors.IllegalMoveError
			if !errors.As(err, &ime) {
				t.Fatalf("error %T is not *IllegalMoveError", err)
			}
			if ime.Move != tt.move.String() || ime.FEN != tt.fen {
				t.Errorf("IllegalMoveError = %+v", ime)
			}
		})
	}
}

func TestMakeUnmakeRestoresBoard(t *testing.T) {
	fens := []string{
		InitialFEN,
		kiwipeteFEN,
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	}
	for _, fen := range fens {
		board := mustFEN(t, fen)
		before := *board
		for _, m := range GeneratePseudoLegal(board) {
			u := MakeMove(board, m)
			if got := hashing.GenerateZobristHash(board); board.Zobrist != got {
				t.Errorf("%s after %v: Zobrist = %x, recomputed %x", fen, m, board.Zobrist, got)
			}
			UnmakeMove(board, u)
			if diff := cmp.Diff(before, *board); diff != "" {
				t.Fatalf("%s: unmake %v mismatch (-want +got):\n%s", fen, m, diff)
			}
		}
	}
}

func TestWithMove_RestoresOnPanic(t *testing.T) {
	board := NewInitialBoard()
	before := *board
	m, err := ParseMove(board, "e2e4")
	if err != nil {
		t.Fatal(err)
	}
	func() {
		defer func() { _ = recover() }()
		WithMove(board, m, func() {
			if board.ToMove != chess.Black {
				t.Error("move not applied inside WithMove")
			}
			panic("abort")
		})
	}()
	if diff := cmp.Diff(before, *board); diff != "" {
		t.Errorf("board not restored (-want +got):\n%s", diff)
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		text    string
		want    string
		wantErr error
	}{
		{"pawn push", InitialFEN, "e2e4", "e2e4", nil},
		{"upper case and spaces", InitialFEN, " G1F3 ", "g1f3", nil},
		{"castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1", "e1g1", nil},
		{"promotion", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7a8r", "a7a8r", nil},
		{"missing promotion", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7a8", "", chesserrors.ErrIllegalMove},
		{"illegal", InitialFEN, "e2e5", "", chesserrors.ErrIllegalMove},
		{"too short", InitialFEN, "e2", "", chesserrors.ErrParseFailure},
		{"bad square", InitialFEN, "i2e4", "", chesserrors.ErrParseFailure},
		{"bad promotion", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7a8k", "", chesserrors.ErrParseFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseMove(mustFEN(t, tt.fen), tt.text)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseMove(%q) error = %v, want %v", tt.text, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMove(%q) error: %v", tt.text, err)
			}
			if m.String() != tt.want {
				t.Errorf("ParseMove(%q) = %v, want %s", tt.text, m, tt.want)
			}
		})
	}
}
