package config

import (
	"bytes"
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chess-engine-go/internal/errors"
)

// TestConfig_Defaults verifies Config has sensible defaults
func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.Search.Depth != 4 {
		t.Errorf("Search.Depth = %d, want 4", cfg.Search.Depth)
	}
	if cfg.Search.Workers != 1 {
		t.Errorf("Search.Workers = %d, want 1", cfg.Search.Workers)
	}
	if cfg.Search.Evaluator != "material" {
		t.Errorf("Search.Evaluator = %q, want material", cfg.Search.Evaluator)
	}
	if !cfg.Search.MoveOrdering {
		t.Error("MoveOrdering should be true by default")
	}
	if cfg.Play.Enabled {
		t.Error("Play.Enabled should be false by default")
	}
	if cfg.Play.MaxPlies != 400 {
		t.Errorf("Play.MaxPlies = %d, want 400", cfg.Play.MaxPlies)
	}
	if cfg.Batch.File != "" {
		t.Errorf("Batch.File = %q, want empty", cfg.Batch.File)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

// TestConfig_Validate verifies every invalid setting wraps ErrInvalidConfig
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"depth zero", func(c *Config) { c.Search.Depth = 0 }, false},
		{"negative depth", func(c *Config) { c.Search.Depth = -1 }, true},
		{"zero workers", func(c *Config) { c.Search.Workers = 0 }, true},
		{"pst evaluator", func(c *Config) { c.Search.Evaluator = "pst" }, false},
		{"unknown evaluator", func(c *Config) { c.Search.Evaluator = "nnue" }, true},
		{"zero max plies", func(c *Config) { c.Play.MaxPlies = 0 }, true},
		{"zero batch workers", func(c *Config) { c.Batch.Workers = 0 }, true},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestPlayConfig_SetPlayers verifies player list parsing
func TestPlayConfig_SetPlayers(t *testing.T) {
	tests := []struct {
		input     string
		wantWhite PlayerKind
		wantBlack PlayerKind
		wantErr   bool
	}{
		{"engine,engine", EnginePlayer, EnginePlayer, false},
		{"human,engine", HumanPlayer, EnginePlayer, false},
		{"Random, Human", RandomPlayer, HumanPlayer, false},
		{"engine", 0, 0, true},
		{"engine,robot", 0, 0, true},
		{"a,b,c", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cfg := NewPlayConfig()
			err := cfg.SetPlayers(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetPlayers(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if cfg.White != tt.wantWhite || cfg.Black != tt.wantBlack {
				t.Errorf("players = %v,%v, want %v,%v", cfg.White, cfg.Black, tt.wantWhite, tt.wantBlack)
			}
		})
	}
}

func TestPlayerKind_String(t *testing.T) {
	for _, kind := range []PlayerKind{EnginePlayer, RandomPlayer, HumanPlayer} {
		got, err := ParsePlayerKind(kind.String())
		if err != nil || got != kind {
			t.Errorf("ParsePlayerKind(%q) = %v, %v; want %v", kind.String(), got, err, kind)
		}
	}
	if got := PlayerKind(42).String(); got != "unknown" {
		t.Errorf("String() = %q, want unknown", got)
	}
}

// TestConfig_Logf verifies verbosity gating
func TestConfig_Logf(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := NewConfigBuilder().WithLog(buf).WithVerbosity(1).Build()

	cfg.Logf(1, "summary %d\n", 1)
	cfg.Logf(2, "commentary\n")

	if got, want := buf.String(), "summary 1\n"; got != want {
		t.Errorf("log = %q, want %q", got, want)
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithFEN("8/8/8/8/8/8/8/K6k w - - 0 1").
		WithDepth(6).
		WithWorkers(4).
		WithEvaluator("pst").
		WithMoveOrdering(false).
		WithPlayers(HumanPlayer, RandomPlayer).
		WithMaxPlies(80).
		WithSeed(7).
		WithBatchFile("positions.fen", 2).
		WithOutput(out).
		WithVerbosity(2).
		Build()

	if cfg.FEN != "8/8/8/8/8/8/8/K6k w - - 0 1" {
		t.Errorf("FEN = %q", cfg.FEN)
	}
	if cfg.Search.Depth != 6 || cfg.Search.Workers != 4 || cfg.Search.Evaluator != "pst" || cfg.Search.MoveOrdering {
		t.Errorf("Search = %+v", *cfg.Search)
	}
	if !cfg.Play.Enabled || cfg.Play.White != HumanPlayer || cfg.Play.Black != RandomPlayer {
		t.Errorf("Play = %+v", *cfg.Play)
	}
	if cfg.Play.MaxPlies != 80 || cfg.Play.Seed != 7 {
		t.Errorf("Play = %+v", *cfg.Play)
	}
	if cfg.Batch.File != "positions.fen" || cfg.Batch.Workers != 2 {
		t.Errorf("Batch = %+v", *cfg.Batch)
	}
	if cfg.OutputFile != out {
		t.Error("WithOutput did not set OutputFile")
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
}
