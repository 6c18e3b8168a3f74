package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/hashing"
)

// History is the ordered list of position keys reached in a game. It is
// owned by whoever drives the game and read by DetermineOutcome and the
// search for repetition detection. A nil or zero History is empty.
type History struct {
	keys    []uint64
	counter *hashing.PositionCounter
}

// NewHistory creates a history holding the given positions in order.
func NewHistory(boards ...*chess.Board) *History {
	h := &History{counter: hashing.NewPositionCounter()}
	for _, b := range boards {
		h.Push(b)
	}
	return h
}

// Push records the position of board.
func (h *History) Push(board *chess.Board) {
	h.PushKey(board.Zobrist)
}

// PushKey records a position by its Zobrist key.
func (h *History) PushKey(key uint64) {
	if h.counter == nil {
		h.counter = hashing.NewPositionCounter()
	}
	h.keys = append(h.keys, key)
	h.counter.Add(key)
}

// Pop removes and returns the most recent key. It returns 0 on an empty
// history.
func (h *History) Pop() uint64 {
	if h.Len() == 0 {
		return 0
	}
	key := h.keys[len(h.keys)-1]
	h.keys = h.keys[:len(h.keys)-1]
	h.counter.Remove(key)
	return key
}

// Len returns the number of recorded positions.
func (h *History) Len() int {
	if h == nil {
		return 0
	}
	return len(h.keys)
}

// Last returns the most recent key.
func (h *History) Last() (uint64, bool) {
	if h.Len() == 0 {
		return 0, false
	}
	return h.keys[len(h.keys)-1], true
}

// Count returns how many times key has been recorded.
func (h *History) Count(key uint64) int {
	if h == nil || h.counter == nil {
		return 0
	}
	return h.counter.Count(key)
}

// Distinct returns the number of different positions recorded.
func (h *History) Distinct() int {
	if h == nil || h.counter == nil {
		return 0
	}
	return h.counter.UniqueCount()
}

// MaxRepetitions returns the highest number of times any one position
// has been recorded.
func (h *History) MaxRepetitions() int {
	if h == nil || h.counter == nil {
		return 0
	}
	return h.counter.MaxCount()
}

// Occurrences returns how many times the position of board has occurred,
// counting board itself when it is not already the last recorded entry.
func (h *History) Occurrences(board *chess.Board) int {
	n := h.Count(board.Zobrist)
	if last, ok := h.Last(); !ok || last != board.Zobrist {
		n++
	}
	return n
}

// Clone returns an independent copy of the history.
func (h *History) Clone() *History {
	c := NewHistory()
	if h == nil {
		return c
	}
	for _, k := range h.keys {
		c.PushKey(k)
	}
	return c
}
