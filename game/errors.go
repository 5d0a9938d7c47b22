package game

import (
	"errors"
	"fmt"
)

var (
	ErrOccupied = errors.New("a stone already exists at this position")
	ErrSuicide  = errors.New("suicide move")
	ErrKo       = errors.New("move violates the ko rule")
	ErrGameOver = errors.New("game is over - no moves allowed")
)

type PointOutOfRangeError struct {
	Point Point
}

func NewPointOutOfRangeError(p Point) error {
	return &PointOutOfRangeError{Point: p}
}

func (e *PointOutOfRangeError) Error() string {
	return fmt.Sprintf("point is out of range(0-%d), row: %d, col: %d",
		Size-1, e.Point.Row, e.Point.Col)
}

// PreconditionError is raised (as a panic value) when a caller breaks the
// contract of a board operation.
type PreconditionError struct {
	msg string
}

func NewPreconditionError(format string, args ...any) *PreconditionError {
	return &PreconditionError{msg: fmt.Sprintf(format, args...)}
}

func (e *PreconditionError) Error() string {
	return "precondition violated: " + e.msg
}
