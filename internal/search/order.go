package search

import (
	"sort"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/eval"
)

// orderMoves sorts captures by most valuable victim, least valuable
// attacker, then promotions, then quiet moves. The sort is stable, so
// equal moves keep their generation order.
func orderMoves(moves []chess.Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return moveRank(moves[i]) > moveRank(moves[j])
	})
}

func moveRank(m chess.Move) int {
	rank := 0
	if m.IsCapture() {
		rank += 10*eval.PieceValue(chess.ExtractPiece(m.Captured)) - eval.PieceValue(chess.ExtractPiece(m.Piece))/100
	}
	if m.IsPromotion() {
		rank += eval.PieceValue(m.Promotion)
	}
	return rank
}
