// Package config provides configuration for the chess-engine command.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/eval"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// FEN is the starting position; empty means the initial position.
	FEN string

	Search *SearchConfig
	Play   *PlayConfig
	Batch  *BatchConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Search:     NewSearchConfig(),
		Play:       NewPlayConfig(),
		Batch:      NewBatchConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks that the configuration can be run. All errors wrap
// errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return invalid("verbosity %d is negative", c.Verbosity)
	}
	if err := c.Search.Validate(); err != nil {
		return err
	}
	if err := c.Play.Validate(); err != nil {
		return err
	}
	return c.Batch.Validate()
}

// Logf writes a diagnostic to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}

func invalid(format string, args ...interface{}) error {
	return errors.Wrapf(errors.ErrInvalidConfig, format, args...)
}

// SearchConfig holds settings for the searcher.
type SearchConfig struct {
	// Depth is the fixed search depth in plies.
	Depth int

	// Workers is the number of goroutines splitting the root moves.
	Workers int

	// Evaluator names the leaf evaluator (see eval.Names).
	Evaluator string

	// MoveOrdering searches captures and promotions first.
	MoveOrdering bool
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:        4,
		Workers:      1,
		Evaluator:    "material",
		MoveOrdering: true,
	}
}

// Validate checks the search settings.
func (c *SearchConfig) Validate() error {
	if c.Depth < 0 {
		return invalid("search depth %d is negative", c.Depth)
	}
	if c.Workers < 1 {
		return invalid("workers must be at least 1, got %d", c.Workers)
	}
	if _, err := eval.New(c.Evaluator); err != nil {
		return err
	}
	return nil
}

// BatchConfig holds settings for analysing a file of positions.
type BatchConfig struct {
	// File holds one FEN per line; empty disables batch mode.
	File string

	// Workers is the number of positions analysed at once.
	Workers int
}

// NewBatchConfig creates a BatchConfig with default values.
func NewBatchConfig() *BatchConfig {
	return &BatchConfig{Workers: 1}
}

// Validate checks the batch settings.
func (c *BatchConfig) Validate() error {
	if c.Workers < 1 {
		return invalid("batch workers must be at least 1, got %d", c.Workers)
	}
	return nil
}
