package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// appendPawnMoves adds single and double pushes, captures, en passant
// and promotions for the pawn on from.
func appendPawnMoves(moves []chess.Move, board *chess.Board, from chess.Square, pawn chess.Piece) []chess.Move {
	colour := chess.ExtractColour(pawn)
	dir := chess.ColourOffset(colour)
	startRank := 1
	if colour == chess.Black {
		startRank = 6
	}

	// Forward move
	if to := from.Offset(0, dir); to != chess.NoSquare && board.Squares[to] == chess.Empty {
		moves = appendPawnMove(moves, newMove(board, pawn, from, to))

		// Double push from starting rank
		if from.Rank() == startRank {
			if to2 := from.Offset(0, 2*dir); board.Squares[to2] == chess.Empty {
				m := newMove(board, pawn, from, to2)
				m.Flags |= chess.FlagDoublePawnPush
				moves = append(moves, m)
			}
		}
	}

	// Captures
	for _, df := range []int{-1, 1} {
		to := from.Offset(df, dir)
		if to == chess.NoSquare {
			continue
		}
		target := board.Squares[to]
		if target.IsColoured() && chess.ExtractColour(target) != colour {
			moves = appendPawnMove(moves, newMove(board, pawn, from, to))
			continue
		}
		// En passant
		if to == board.EnPassant && target == chess.Empty {
			captured := board.Get(to.Offset(0, -dir))
			if captured != chess.MakeColouredPiece(colour.Opposite(), chess.Pawn) {
				continue
			}
			m := newMove(board, pawn, from, to)
			m.Captured = captured
			m.Flags |= chess.FlagCapture | chess.FlagEnPassant
			moves = append(moves, m)
		}
	}
	return moves
}

// appendPawnMove appends m, expanded into the four promotions if it
// reaches the last rank.
func appendPawnMove(moves []chess.Move, m chess.Move) []chess.Move {
	lastRank := chess.BoardSize - 1
	if chess.ExtractColour(m.Piece) == chess.Black {
		lastRank = 0
	}
	if m.To.Rank() != lastRank {
		return append(moves, m)
	}
	for _, promo := range promotionOrder {
		m.Promotion = promo
		moves = append(moves, m)
	}
	return moves
}
