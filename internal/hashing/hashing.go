package hashing

// PositionCounter tracks how often each position key has been seen.
// It is used for repetition detection.
type PositionCounter struct {
	// counts stores the number of occurrences of each key
	counts map[uint64]int
}

// NewPositionCounter creates an empty counter.
func NewPositionCounter() *PositionCounter {
	return &PositionCounter{
		counts: make(map[uint64]int),
	}
}

// Add records one occurrence of key and returns its new count.
func (c *PositionCounter) Add(key uint64) int {
	c.counts[key]++
	return c.counts[key]
}

// Remove undoes one occurrence of key.
func (c *PositionCounter) Remove(key uint64) {
	n, ok := c.counts[key]
	if !ok {
		return
	}
	if n <= 1 {
		delete(c.counts, key)
		return
	}
	c.counts[key] = n - 1
}

// Count returns how many times key has been recorded.
func (c *PositionCounter) Count(key uint64) int {
	return c.counts[key]
}

// MaxCount returns the highest count of any recorded key.
func (c *PositionCounter) MaxCount() int {
	most := 0
	for _, n := range c.counts {
		if n > most {
			most = n
		}
	}
	return most
}

// UniqueCount returns the number of distinct keys recorded.
func (c *PositionCounter) UniqueCount() int {
	return len(c.counts)
}
