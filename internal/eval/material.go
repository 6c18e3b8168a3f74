package eval

import "github.com/lgbarn/chess-engine-go/internal/chess"

// Standard material values in centipawns.
const (
	PawnValue   = 100
	KnightValue = 300
	BishopValue = 300
	RookValue   = 500
	QueenValue  = 900
)

var pieceValues = [chess.NumPieceValues]int{
	chess.Pawn:   PawnValue,
	chess.Knight: KnightValue,
	chess.Bishop: BishopValue,
	chess.Rook:   RookValue,
	chess.Queen:  QueenValue,
}

// PieceValue returns the material value of a piece kind. Kings are worth 0.
func PieceValue(kind chess.Piece) int {
	if kind < 0 || int(kind) >= len(pieceValues) {
		return 0
	}
	return pieceValues[kind]
}

// Material counts material only.
type Material struct{}

// Evaluate returns White's material minus Black's.
func (Material) Evaluate(board *chess.Board) int {
	score := 0
	for _, p := range board.Squares {
		if !p.IsColoured() {
			continue
		}
		v := PieceValue(chess.ExtractPiece(p))
		if chess.ExtractColour(p) == chess.White {
			score += v
		} else {
			score -= v
		}
	}
	return score
}
