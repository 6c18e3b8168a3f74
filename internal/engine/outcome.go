package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// OutcomeKind classifies the state of a game.
type OutcomeKind int

const (
	Ongoing OutcomeKind = iota
	Checkmate
	Stalemate
	DrawByRepetition
	DrawByFiftyMove
	DrawByInsufficientMaterial
)

// String returns the name of the kind.
func (k OutcomeKind) String() string {
	switch k {
	case Ongoing:
		return "ongoing"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case DrawByRepetition:
		return "draw by repetition"
	case DrawByFiftyMove:
		return "draw by fifty-move rule"
	case DrawByInsufficientMaterial:
		return "draw by insufficient material"
	}
	return "unknown"
}

// Outcome is the result of DetermineOutcome. Winner is only meaningful
// when Kind is Checkmate.
type Outcome struct {
	Kind   OutcomeKind
	Winner chess.Colour
}

// IsOver reports whether the game has ended.
func (o Outcome) IsOver() bool {
	return o.Kind != Ongoing
}

// IsDraw reports whether the game ended without a winner.
func (o Outcome) IsDraw() bool {
	return o.Kind != Ongoing && o.Kind != Checkmate
}

// String returns a message announcing the outcome.
func (o Outcome) String() string {
	switch o.Kind {
	case Ongoing:
		return "Game in progress"
	case Checkmate:
		return o.Winner.String() + " won"
	case Stalemate:
		return "Draw by stalemate"
	case DrawByRepetition:
		return "Draw by repetition"
	case DrawByFiftyMove:
		return "Draw by 50-move rule"
	case DrawByInsufficientMaterial:
		return "Draw by insufficient material"
	}
	return "Unknown outcome"
}

// Result returns the result token used in game records.
func (o Outcome) Result() string {
	switch {
	case o.Kind == Checkmate && o.Winner == chess.White:
		return "1-0"
	case o.Kind == Checkmate:
		return "0-1"
	case o.IsDraw():
		return "1/2-1/2"
	}
	return "*"
}

// DetermineOutcome classifies the position of board given the positions
// that led to it. Checkmate and stalemate take precedence over the draw
// rules, which are tested in the order insufficient material, fifty-move
// rule, repetition. history may be nil, and may or may not already end
// with board.
func DetermineOutcome(board *chess.Board, history *History) Outcome {
	if !HasLegalMoves(board) {
		if IsInCheck(board, board.ToMove) {
			return Outcome{Kind: Checkmate, Winner: board.ToMove.Opposite()}
		}
		return Outcome{Kind: Stalemate}
	}
	switch {
	case HasInsufficientMaterial(board):
		return Outcome{Kind: DrawByInsufficientMaterial}
	case IsFiftyMoveDraw(board):
		return Outcome{Kind: DrawByFiftyMove}
	case IsRepetitionDraw(board, history):
		return Outcome{Kind: DrawByRepetition}
	}
	return Outcome{Kind: Ongoing}
}
