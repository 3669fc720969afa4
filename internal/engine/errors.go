package engine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrIllegalMove       = errors.New("illegal move")
	ErrEmptySquare       = errors.New("no piece on square")
	ErrSquareOccupied    = errors.New("square already occupied")
	ErrInvalidColor      = errors.New("invalid color")
	ErrInvalidStatus     = errors.New("invalid game status")
)

// MoveError ties a rejected move to the squares it was requested on.
type MoveError struct {
	From string
	To   string
	Err  error
}

func (e *MoveError) Error() string {
	if e.To == "" {
		return fmt.Sprintf("%s: %v", e.From, e.Err)
	}
	return fmt.Sprintf("%s-%s: %v", e.From, e.To, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}
