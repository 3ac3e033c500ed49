// Package errors provides sentinel errors and error types for the chess
// rules engine. It defines the move-rejection taxonomy and structured error
// types that preserve context while allowing error inspection with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the rejection taxonomy.
// Use these with errors.Is() to check for specific rejection kinds.
var (
	// ErrOutOfRange indicates a rank, file, or square outside the board.
	ErrOutOfRange = errors.New("coordinate out of range")

	// ErrNoPieceAtSource indicates the source square is empty.
	ErrNoPieceAtSource = errors.New("no piece at source square")

	// ErrWrongPlayersTurn indicates the piece belongs to the player not on move.
	ErrWrongPlayersTurn = errors.New("not this player's turn")

	// ErrIllegalGeometry indicates the piece cannot reach the destination.
	ErrIllegalGeometry = errors.New("illegal move geometry")

	// ErrFriendlyCapture indicates the destination holds the mover's own piece.
	ErrFriendlyCapture = errors.New("destination holds a friendly piece")

	// ErrSelfCheck indicates the move would leave the mover's king attacked.
	ErrSelfCheck = errors.New("move would leave own king in check")

	// ErrGameAlreadyOver indicates a move was proposed after a terminal state.
	ErrGameAlreadyOver = errors.New("game is already over")

	// ErrNoMoveToUndo indicates an undo with an empty move history.
	ErrNoMoveToUndo = errors.New("no move to undo")

	// ErrInvalidFEN indicates a malformed FEN position string.
	ErrInvalidFEN = errors.New("invalid FEN string")
)

// MoveError wraps a move rejection with the proposed squares, so callers and
// tests can report exactly which request was refused. It supports unwrapping
// via errors.Is() and errors.As().
type MoveError struct {
	Err  error  // The underlying sentinel
	From string // Source square in algebraic form (e.g. "e2")
	To   string // Destination square in algebraic form
}

// Error returns a formatted message including the move context.
func (e *MoveError) Error() string {
	if e.From != "" || e.To != "" {
		return fmt.Sprintf("move %s-%s: %v", e.From, e.To, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
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
