package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/worker"
)

// readPositions reads one FEN per line, skipping blank lines and lines
// starting with '#'. lines maps each item index to its line number.
func readPositions(r io.Reader) (items []worker.WorkItem, lines []int, err error) {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		items = append(items, worker.WorkItem{FEN: text, Index: len(items)})
		lines = append(lines, lineNo)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "reading positions")
	}
	return items, lines, nil
}

// runBatch analyses every position of the batch file through a worker
// pool and prints one line per position in file order.
func runBatch(ctx context.Context, cfg *config.Config) error {
	file, err := os.Open(cfg.Batch.File)
	if err != nil {
		return errors.Wrapf(err, "opening batch file %s", cfg.Batch.File)
	}
	defer file.Close()

	items, lines, err := readPositions(file)
	if err != nil {
		return err
	}
	return analyseBatch(ctx, cfg, items, lines)
}

func analyseBatch(ctx context.Context, cfg *config.Config, items []worker.WorkItem, lines []int) error {
	searcher, err := newSearcher(cfg)
	if err != nil {
		return err
	}
	analyzer := &worker.Analyzer{Searcher: searcher, Depth: cfg.Search.Depth}

	results, err := worker.Run(ctx, items, analyzer.Process,
		worker.WithWorkers(cfg.Batch.Workers),
		worker.WithBufferSize(2*cfg.Batch.Workers),
	)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		line := lines[r.Index]
		switch {
		case r.Err != nil:
			failed++
			fmt.Fprintf(cfg.OutputFile, "%d: error: %v\n", line, r.Err)
		case r.Outcome.IsOver():
			fmt.Fprintf(cfg.OutputFile, "%d: %s %s\n", line, r.Outcome.Result(), r.Outcome.Kind)
		case r.Search.Move == nil:
			fmt.Fprintf(cfg.OutputFile, "%d: bestmove none\n", line)
		default:
			fmt.Fprintf(cfg.OutputFile, "%d: bestmove %s score %s pv %s\n",
				line, r.Search.Move, formatScore(r.Search.Score), formatLine(r.Search.PV))
		}
		cfg.Logf(2, "%d: %s\n", line, r.FEN)
	}
	cfg.Logf(1, "%d positions analysed, %d rejected\n", len(results), failed)
	return nil
}
