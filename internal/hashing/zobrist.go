// Package hashing provides Zobrist position keys and repetition counting.
package hashing

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// Zobrist keys, generated from a fixed seed so keys are stable across runs.
var (
	pieceKeys     [2][chess.NumPieceValues][chess.NumSquares]uint64
	enPassantKeys [chess.BoardSize]uint64
	castlingKeys  [16]uint64
	blackToMove   uint64
)

func init() {
	rng := prng{state: 0x98F107A2BEEF1234}
	for c := range pieceKeys {
		for p := chess.Pawn; p <= chess.King; p++ {
			for sq := range pieceKeys[c][p] {
				pieceKeys[c][p][sq] = rng.next()
			}
		}
	}
	for file := range enPassantKeys {
		enPassantKeys[file] = rng.next()
	}
	for i := range castlingKeys {
		castlingKeys[i] = rng.next()
	}
	blackToMove = rng.next()
}

// prng is xorshift64*.
type prng struct {
	state uint64
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

// PieceKey returns the key of a coloured piece on a square.
func PieceKey(colouredPiece chess.Piece, sq chess.Square) uint64 {
	if !colouredPiece.IsColoured() || !sq.Valid() {
		return 0
	}
	return pieceKeys[chess.ExtractColour(colouredPiece)][chess.ExtractPiece(colouredPiece)][sq]
}

// EnPassantKey returns the key of an en passant target, 0 for NoSquare.
func EnPassantKey(sq chess.Square) uint64 {
	if !sq.Valid() {
		return 0
	}
	return enPassantKeys[sq.File()]
}

// CastlingKey returns the key of a set of castling rights.
func CastlingKey(rights chess.CastlingRights) uint64 {
	return castlingKeys[rights.Index()]
}

// SideKey returns the key XORed in when black is to move.
func SideKey() uint64 {
	return blackToMove
}

// GenerateZobristHash computes the key of the board from scratch. The key
// covers piece placement, side to move, castling rights and the en passant
// target.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	for sq := chess.Square(0); int(sq) < chess.NumSquares; sq++ {
		hash ^= PieceKey(board.Squares[sq], sq)
	}
	if board.ToMove == chess.Black {
		hash ^= blackToMove
	}
	hash ^= CastlingKey(board.Castling)
	hash ^= EnPassantKey(board.EnPassant)
	return hash
}
