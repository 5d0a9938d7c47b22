package game

import "weiqi/meta"

const Size = meta.BOARD_SIZE

// Color is the content of a single cell. Black and White are the two game
// colours; White is the second colour and receives the evaluation handicap.
type Color int

const (
	Empty Color = iota
	Black
	White
)

func (c Color) String() string {
	switch c {
	case Empty:
		return "empty"
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "invalid"
	}
}

// Opponent returns the other game colour. Empty has no opponent.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		panic(NewPreconditionError("color %d has no opponent", int(c)))
	}
}

func (c Color) IsStone() bool {
	return c == Black || c == White
}

// Board is an immutable 5x5 grid. Being an array, it is copied on assignment
// and == compares every cell.
type Board [Size][Size]Color

// Evaluate scores a board from the perspective of the given colour.
type Evaluate func(b Board, perspective Color) float64
