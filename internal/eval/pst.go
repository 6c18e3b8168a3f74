package eval

import "github.com/lgbarn/chess-engine-go/internal/chess"

// Tables are written from White's side with a1 first, so each row of
// the literal is one rank, rank 1 at the top. Black reads them mirrored.
type table [chess.NumSquares]int

var middlegame = [chess.NumPieceValues]table{
	chess.Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, -20, -20, 10, 10, 5,
		5, -5, -10, 0, 0, -10, -5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, 5, 10, 25, 25, 10, 5, 5,
		10, 10, 20, 30, 30, 20, 10, 10,
		50, 50, 50, 50, 50, 50, 50, 50,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	chess.Knight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	chess.Bishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	chess.Rook: {
		0, 0, 0, 5, 5, 0, 0, 0,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		5, 10, 10, 10, 10, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	chess.Queen: {
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-10, 5, 5, 5, 5, 5, 0, -10,
		0, 0, 5, 5, 5, 5, 0, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	chess.King: {
		20, 30, 10, 0, 0, 10, 30, 20,
		20, 20, 0, 0, 0, 0, 20, 20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
	},
}

var endgame = [chess.NumPieceValues]table{
	chess.Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		10, 10, 10, 10, 10, 10, 10, 10,
		20, 20, 20, 20, 20, 20, 20, 20,
		30, 30, 30, 30, 30, 30, 30, 30,
		50, 50, 50, 50, 50, 50, 50, 50,
		80, 80, 80, 80, 80, 80, 80, 80,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	chess.Knight: middlegame[chess.Knight],
	chess.Bishop: middlegame[chess.Bishop],
	chess.Rook:   middlegame[chess.Rook],
	chess.Queen:  middlegame[chess.Queen],
	chess.King: {
		-50, -30, -30, -30, -30, -30, -30, -50,
		-30, -20, 0, 0, 0, 0, -20, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -20, -10, 0, 0, -10, -20, -30,
		-50, -40, -30, -20, -20, -30, -40, -50,
	},
}

// Game phase weights; a full set of pieces is maxPhase.
var phaseWeights = [chess.NumPieceValues]int{
	chess.Knight: 1,
	chess.Bishop: 1,
	chess.Rook:   2,
	chess.Queen:  4,
}

const maxPhase = 24

// PieceSquare adds positional bonuses from piece-square tables to
// material, tapered between middlegame and endgame tables by the
// remaining non-pawn material.
type PieceSquare struct {
	mg, eg [2][chess.NumPieceValues]table
}

// NewPieceSquare builds the per-colour tables.
func NewPieceSquare() *PieceSquare {
	ps := &PieceSquare{}
	for kind := chess.Pawn; kind <= chess.King; kind++ {
		for sq := chess.Square(0); int(sq) < chess.NumSquares; sq++ {
			ps.mg[chess.White][kind][sq] = middlegame[kind][sq]
			ps.eg[chess.White][kind][sq] = endgame[kind][sq]
			ps.mg[chess.Black][kind][sq] = middlegame[kind][sq.Mirror()]
			ps.eg[chess.Black][kind][sq] = endgame[kind][sq.Mirror()]
		}
	}
	return ps
}

// Evaluate returns the material and positional balance for White.
func (ps *PieceSquare) Evaluate(board *chess.Board) int {
	var mg, eg, phase int
	for sq, p := range board.Squares {
		if !p.IsColoured() {
			continue
		}
		colour, kind := chess.ExtractColour(p), chess.ExtractPiece(p)
		m := PieceValue(kind) + ps.mg[colour][kind][sq]
		e := PieceValue(kind) + ps.eg[colour][kind][sq]
		if colour == chess.Black {
			m, e = -m, -e
		}
		mg += m
		eg += e
		phase += phaseWeights[kind]
	}
	if phase > maxPhase {
		phase = maxPhase
	}
	return (mg*phase + eg*(maxPhase-phase)) / maxPhase
}
