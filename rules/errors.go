package rules

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument marks contract violations by the caller. They never
// happen with a correctly wired UI.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	// ErrOutOfBounds is returned for indices outside [0, size²).
	ErrOutOfBounds = fmt.Errorf("%w: index out of bounds", ErrInvalidArgument)
	// ErrEmptyPoint is returned when group analysis starts on an empty point.
	ErrEmptyPoint = fmt.Errorf("%w: no stone at point", ErrInvalidArgument)
	// ErrGameOver is returned by PlaceStone and Pass once two consecutive
	// passes have ended the game.
	ErrGameOver = errors.New("game is over")
)

// Reason says why a move was rejected.
type Reason int

const (
	Occupied Reason = iota + 1
	Suicide
	KoViolation
)

func (r Reason) String() string {
	switch r {
	case Occupied:
		return "occupied"
	case Suicide:
		return "suicide"
	case KoViolation:
		return "ko violation"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// Sentinels for errors.Is against an *IllegalMoveError.
var (
	ErrOccupied = &IllegalMoveError{Reason: Occupied, Index: -1}
	ErrSuicide  = &IllegalMoveError{Reason: Suicide, Index: -1}
	ErrKo       = &IllegalMoveError{Reason: KoViolation, Index: -1}
)

// IllegalMoveError is a recoverable rejection of a move. The game state is
// left untouched and the caller may retry with another move.
type IllegalMoveError struct {
	Reason Reason
	Index  int
}

func (e *IllegalMoveError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("illegal move: %s", e.Reason)
	}
	return fmt.Sprintf("illegal move at %d: %s", e.Index, e.Reason)
}

// Is matches any *IllegalMoveError with the same reason, regardless of index.
func (e *IllegalMoveError) Is(target error) bool {
	t, ok := target.(*IllegalMoveError)
	if !ok {
		return false
	}
	return t.Reason == e.Reason
}

func illegal(reason Reason, index int) error {
	return &IllegalMoveError{Reason: reason, Index: index}
}
