package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	work := *board
	return perft(&work, depth)
}

func perft(board *chess.Board, depth int) uint64 {
	moves := LegalMoves(board)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		WithMove(board, m, func() {
			nodes += perft(board, depth-1)
		})
	}
	return nodes
}

// DivideEntry is the perft count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// Divide runs perft below each legal root move, in generation order.
func Divide(board *chess.Board, depth int) []DivideEntry {
	if depth <= 0 {
		return nil
	}
	work := *board
	var entries []DivideEntry
	for _, m := range LegalMoves(&work) {
		var nodes uint64
		WithMove(&work, m, func() {
			nodes = Perft(&work, depth-1)
		})
		entries = append(entries, DivideEntry{Move: m, Nodes: nodes})
	}
	return entries
}
