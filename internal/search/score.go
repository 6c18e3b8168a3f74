package search

// Mate is the score of delivering checkmate at the root. A mate found h
// plies from the root scores Mate-h for the winner and -Mate+h for the
// loser, so shorter mates score higher.
const (
	Mate     = 30000
	infinity = Mate + 1
	// Scores beyond this magnitude are mate scores.
	mateThreshold = Mate - 1000
)

func winIn(height int) int {
	return Mate - height
}

func lossIn(height int) int {
	return -Mate + height
}

// IsMateScore reports whether score encodes a forced mate.
func IsMateScore(score int) bool {
	return score > mateThreshold || score < -mateThreshold
}

// MateIn returns the number of full moves to mate encoded in score,
// negative when the side to move is being mated, 0 for non-mate scores.
func MateIn(score int) int {
	switch {
	case score > mateThreshold:
		return (Mate - score + 1) / 2
	case score < -mateThreshold:
		return -(Mate + score + 1) / 2
	}
	return 0
}
