package search

// Option configures a Searcher.
type Option func(*Searcher)

// WithWorkers splits the root moves across n goroutines. Values below 2
// search sequentially.
func WithWorkers(n int) Option {
	return func(s *Searcher) {
		if n < 1 {
			n = 1
		}
		s.workers = n
	}
}

// WithMoveOrdering enables or disables searching captures and promotions
// before quiet moves. It is on by default.
func WithMoveOrdering(enabled bool) Option {
	return func(s *Searcher) {
		s.ordering = enabled
	}
}
