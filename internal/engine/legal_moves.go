package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// LegalMoves returns the moves of the side to move that do not leave its
// king attacked, in the order of GeneratePseudoLegal.
func LegalMoves(board *chess.Board) []chess.Move {
	pseudo := GeneratePseudoLegal(board)
	legal := pseudo[:0]
	work := *board
	for _, m := range pseudo {
		if isLegal(&work, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves reports whether the side to move has at least one legal
// move. It stops at the first one found.
func HasLegalMoves(board *chess.Board) bool {
	work := *board
	for _, m := range GeneratePseudoLegal(board) {
		if isLegal(&work, m) {
			return true
		}
	}
	return false
}

// isLegal tests a pseudo-legal move by playing it and looking at the
// mover's king. The board is restored before returning.
func isLegal(board *chess.Board, m chess.Move) bool {
	colour := board.ToMove
	if m.IsCastle() {
		if IsInCheck(board, colour) {
			return false
		}
		path := castlingPaths(colour)[0]
		if m.Flags&chess.FlagCastleQueenside != 0 {
			path = castlingPaths(colour)[1]
		}
		if IsSquareAttacked(board, path.transit, colour.Opposite()) {
			return false
		}
	}
	legal := false
	WithMove(board, m, func() {
		legal = !IsInCheck(board, colour)
	})
	return legal
}
