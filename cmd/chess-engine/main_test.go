package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

const hangingQueenFEN = "4k3/8/8/3q4/8/8/3R4/4K3 w - - 0 1"

// testConfig returns a quiet config writing output to the returned buffer.
func testConfig(fen string, depth int) (*config.Config, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cfg := config.NewConfigBuilder().
		WithFEN(fen).
		WithDepth(depth).
		WithOutput(out).
		WithLog(&bytes.Buffer{}).
		Build()
	return cfg, out
}

func TestRunAnalysis(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want []string
	}{
		{"hanging queen", hangingQueenFEN, []string{"bestmove d2d5\n", "score cp 500\n", "pv d2d5\n"}},
		{"mate in one", "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", []string{"bestmove a1a8\n", "score mate 1\n"}},
		{"finished game", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", []string{"0-1 Black won\n"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, out := testConfig(tt.fen, 1)
			if err := runAnalysis(context.Background(), cfg); err != nil {
				t.Fatalf("runAnalysis: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output %q does not contain %q", out.String(), want)
				}
			}
		})
	}
}

func TestRunAnalysisBadFEN(t *testing.T) {
	cfg, _ := testConfig("8/8/8 w", 1)
	if err := runAnalysis(context.Background(), cfg); err == nil {
		t.Error("runAnalysis accepted a bad FEN")
	}
}

func TestRunPerft(t *testing.T) {
	defer saveRestoreInt(perftDepth, 2)()
	cfg, out := testConfig("", 4)
	if err := run(context.Background(), cfg, strings.NewReader("")); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got, want := out.String(), "perft(2) = 400\n"; got != want {
		t.Errorf("output = %q; want %q", got, want)
	}
}

func TestRunPerftDivide(t *testing.T) {
	cfg, out := testConfig("", 4)
	if err := runPerft(cfg, 1, true); err != nil {
		t.Fatalf("runPerft: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	// 20 moves, a blank line and the total.
	if len(lines) != 22 {
		t.Fatalf("got %d lines; want 22:\n%s", len(lines), out.String())
	}
	if lines[21] != "Nodes: 20" {
		t.Errorf("total line = %q; want Nodes: 20", lines[21])
	}
}

func TestRunBatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "positions.fen")
	content := "# positions\n\n" + hangingQueenFEN + "\nnot a fen\n" +
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing batch file: %v", err)
	}

	cfg, out := testConfig("", 1)
	cfg.Batch.File = path
	cfg.Batch.Workers = 2
	if err := runBatch(context.Background(), cfg); err != nil {
		t.Fatalf("runBatch: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines; want 3:\n%s", len(lines), out.String())
	}
	if want := "3: bestmove d2d5 score cp 500 pv d2d5"; lines[0] != want {
		t.Errorf("line 0 = %q; want %q", lines[0], want)
	}
	if !strings.HasPrefix(lines[1], "4: error:") {
		t.Errorf("line 1 = %q; want an error for line 4", lines[1])
	}
	if want := "5: 0-1 checkmate"; lines[2] != want {
		t.Errorf("line 2 = %q; want %q", lines[2], want)
	}
}

func TestRunBatchMissingFile(t *testing.T) {
	cfg, _ := testConfig("", 1)
	cfg.Batch.File = filepath.Join(t.TempDir(), "missing.fen")
	if err := runBatch(context.Background(), cfg); err == nil {
		t.Error("runBatch succeeded on a missing file")
	}
}

func TestRunPlayHumanMates(t *testing.T) {
	cfg, out := testConfig("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", 2)
	cfg.Play.Enabled = true
	cfg.Play.White = config.HumanPlayer
	cfg.Play.Black = config.EnginePlayer

	if err := runPlay(context.Background(), cfg, strings.NewReader("a1\na8\n"), false); err != nil {
		t.Fatalf("runPlay: %v", err)
	}
	for _, want := range []string{"What piece to move?", "a1a8\n", "1-0 White won\n"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output does not contain %q:\n%s", want, out.String())
		}
	}
}

func TestRunPlayTruncated(t *testing.T) {
	cfg, out := testConfig("", 1)
	cfg.Play.Enabled = true
	cfg.Play.White = config.RandomPlayer
	cfg.Play.Black = config.RandomPlayer
	cfg.Play.MaxPlies = 2

	if err := runPlay(context.Background(), cfg, strings.NewReader(""), true); err != nil {
		t.Fatalf("runPlay: %v", err)
	}
	if !strings.Contains(out.String(), "* Stopped after 2 plies") {
		t.Errorf("output = %q; want a truncated game", out.String())
	}
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "cp 0"},
		{-35, "cp -35"},
		{search.Mate - 1, "mate 1"},
		{search.Mate - 3, "mate 2"},
		{-search.Mate + 2, "mate -1"},
	}
	for _, tt := range tests {
		if got := formatScore(tt.score); got != tt.want {
			t.Errorf("formatScore(%d) = %q; want %q", tt.score, got, tt.want)
		}
	}
}
