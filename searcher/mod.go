package searcher

import (
	"math"

	"weiqi/game"
)

// Result is the value of a searched position and the predicted line of play
// from it, the first point being the move to make.
type Result struct {
	Value float64
	Line  []game.Point
}

// polarity is +1 at nodes maximizing the root player's value and -1 at
// nodes minimizing it.
type polarity float64

const (
	maximizing polarity = 1
	minimizing polarity = -1
)

// worst is the identity value of a node before any child is scored.
func (p polarity) worst() float64 {
	return math.Inf(-int(p))
}

func (p polarity) better(value, best float64) bool {
	if p == maximizing {
		return value > best
	}
	return value < best
}

func (p polarity) String() string {
	if p == maximizing {
		return "max"
	}
	return "min"
}
