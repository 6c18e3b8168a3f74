package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// FiftyMoveLimit is the halfmove clock value at which the fifty-move
// rule ends the game.
const FiftyMoveLimit = 100

// RepetitionLimit is the number of occurrences of a position that ends
// the game as a draw.
const RepetitionLimit = 3

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.Piece
	var whiteBishopOnLight, blackBishopOnLight bool

	for sq := chess.Square(0); int(sq) < chess.NumSquares; sq++ {
		piece := board.Squares[sq]
		if !piece.IsColoured() {
			continue
		}

		colour := chess.ExtractColour(piece)
		pieceType := chess.ExtractPiece(piece)

		// Kings don't count for material
		if pieceType == chess.King {
			continue
		}

		// Any pawn, rook, or queen means sufficient material
		if pieceType == chess.Pawn || pieceType == chess.Rook || pieceType == chess.Queen {
			return false
		}

		if colour == chess.White {
			whitePieces = append(whitePieces, pieceType)
			if pieceType == chess.Bishop {
				whiteBishopOnLight = sq.IsLight()
			}
		} else {
			blackPieces = append(blackPieces, pieceType)
			if pieceType == chess.Bishop {
				blackBishopOnLight = sq.IsLight()
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return true
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return true
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 {
		if whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
			return whiteBishopOnLight == blackBishopOnLight
		}
	}

	return false
}

// IsFiftyMoveDraw reports whether the halfmove clock has reached the
// fifty-move limit.
func IsFiftyMoveDraw(board *chess.Board) bool {
	return board.HalfmoveClock >= FiftyMoveLimit
}

// IsRepetitionDraw reports whether the position of board has occurred
// RepetitionLimit times across history.
func IsRepetitionDraw(board *chess.Board, history *History) bool {
	return history.Occurrences(board) >= RepetitionLimit
}
