// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-engine-go/internal/config"
)

var (
	// Position
	fenString = flag.String("fen", "", "Starting position in FEN (default: initial position)")

	// Search options
	searchDepth  = flag.Int("depth", 4, "Search depth in plies")
	numWorkers   = flag.Int("workers", 1, "Goroutines splitting the root moves")
	evaluator    = flag.String("eval", "material", "Evaluator: material, pst")
	noOrdering   = flag.Bool("noorder", false, "Search moves in generation order")
	perftDepth   = flag.Int("perft", 0, "Count leaf nodes of the move tree to depth N")
	divideOutput = flag.Bool("divide", false, "With -perft, print the count below each root move")

	// Batch analysis
	batchFile    = flag.String("batch", "", "Analyse every FEN line of this file")
	batchWorkers = flag.Int("batchworkers", 1, "Positions analysed at once in batch mode")

	// Play
	playSides = flag.String("play", "", "Play a game: white,black each engine, random or human")
	maxPlies  = flag.Int("maxplies", 400, "Stop a played game after N half-moves")
	seed      = flag.Int64("seed", 1, "Seed for the random player")
	stepMoves = flag.Bool("step", false, "Wait for Enter before each move of a played game")

	// Output and logging
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("l", "", "Write diagnostics to this file")
	verbosity  = flag.Int("verbose", 1, "Verbosity: 0 silent, 1 summary, 2 commentary")
	quiet      = flag.Bool("s", false, "Silent mode (same as -verbose 0)")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	cfg.FEN = *fenString
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}

	applySearchFlags(cfg)
	applyBatchFlags(cfg)
	if err := applyPlayFlags(cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

// applySearchFlags configures the searcher.
func applySearchFlags(cfg *config.Config) {
	cfg.Search.Depth = *searchDepth
	cfg.Search.Workers = *numWorkers
	cfg.Search.Evaluator = *evaluator
	cfg.Search.MoveOrdering = !*noOrdering
}

// applyBatchFlags configures batch analysis.
func applyBatchFlags(cfg *config.Config) {
	cfg.Batch.File = *batchFile
	cfg.Batch.Workers = *batchWorkers
}

// applyPlayFlags configures a played game.
func applyPlayFlags(cfg *config.Config) error {
	cfg.Play.MaxPlies = *maxPlies
	cfg.Play.Seed = *seed
	if *playSides == "" {
		return nil
	}
	cfg.Play.Enabled = true
	return cfg.Play.SetPlayers(*playSides)
}
