package agent

import (
	"errors"

	"weiqi/experiments/metrics"
	"weiqi/game"
)

var ErrNoMove = errors.New("no legal move available")

type Agent interface {
	// FindMove returns the move for the colour to play and performance
	// metrics (if collected). It returns ErrNoMove when it has to pass.
	FindMove(pos game.Position) (game.Point, metrics.SearchMetric, error)
}
