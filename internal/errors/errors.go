// Package errors provides sentinel errors and error types for the chess engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that is not in the legal move set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidState indicates a board that cannot occur in a legal game.
	ErrInvalidState = errors.New("invalid board state")

	// ErrParseFailure indicates move or square text that could not be read.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameOver indicates a move was requested in a finished game.
	ErrGameOver = errors.New("game is over")
)

// IllegalMoveError reports a move that was rejected because it is not
// among the legal moves of the position it was applied to.
type IllegalMoveError struct {
	Move   string // Coordinate text of the rejected move
	FEN    string // Position the move was applied to (if known)
	Reason string // Short explanation (optional)
}

// Error returns a formatted error message including all available context.
func (e *IllegalMoveError) Error() string {
	parts := []string{fmt.Sprintf("%v %q", ErrIllegalMove, e.Move)}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("in %q", e.FEN))
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns ErrIllegalMove so errors.Is() matches the sentinel.
func (e *IllegalMoveError) Unwrap() error {
	return ErrIllegalMove
}

// InvalidStateError reports a malformed board rejected at construction.
type InvalidStateError struct {
	Reason string // What is wrong with the board
	FEN    string // Source FEN (if the board came from one)
}

// Error returns a formatted error message.
func (e *InvalidStateError) Error() string {
	if e.FEN != "" {
		return fmt.Sprintf("%v: %s: %q", ErrInvalidState, e.Reason, e.FEN)
	}
	return fmt.Sprintf("%v: %s", ErrInvalidState, e.Reason)
}

// Unwrap returns ErrInvalidState.
func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// ParseError represents a parsing error with location context.
// It's used for FEN fields and move text.
type ParseError struct {
	Err      error  // The underlying error
	Field    string // Which field was being parsed (e.g. "castling")
	Column   int    // Character offset within the field (1-based, 0 if unknown)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Field != "" {
		loc := e.Field
		if e.Column > 0 {
			loc += fmt.Sprintf(":%d", e.Column)
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
