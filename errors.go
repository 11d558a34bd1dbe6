package chess

import (
	"errors"
	"fmt"
)

//nolint:gochecknoglobals // sentinel errors.
var (
	// ErrInvalidMove is returned when a move fails the legality rules.
	ErrInvalidMove = errors.New("chess: invalid move")
	// ErrEmptyCell is returned when the occupant of an empty cell is requested.
	ErrEmptyCell = errors.New("chess: cell is empty")
	// ErrOutOfBounds is returned for positions off the 8x8 board.
	ErrOutOfBounds = errors.New("chess: position out of bounds")
	// ErrGameOver is returned for moves attempted after a king was captured
	// or a player resigned.
	ErrGameOver = errors.New("chess: game is over")
	// ErrWrongTurn is returned when a piece of the side not on turn is moved.
	ErrWrongTurn = errors.New("chess: not this color's turn")
	// ErrInvalidNotation matches every NotationError.
	ErrInvalidNotation = errors.New("chess: invalid notation")
)

// MoveError describes a rejected move.
type MoveError struct {
	From Position
	To   Position
	Err  error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("%s: %s to %s", e.Err, e.From, e.To)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// NotationError is returned when a move or square string cannot be decoded.
type NotationError struct {
	Input string
	Msg   string
	Pos   int // byte offset of the offending token, when known
}

func (e *NotationError) Error() string {
	return fmt.Sprintf("chess: %s %q", e.Msg, e.Input)
}

// Is reports a match for ErrInvalidNotation and for notation errors carrying
// the same message.
func (e *NotationError) Is(target error) bool {
	if target == ErrInvalidNotation {
		return true
	}
	var t *NotationError
	if !errors.As(target, &t) {
		return false
	}
	return e.Msg == t.Msg
}
