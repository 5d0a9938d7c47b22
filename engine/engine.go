package engine

import (
	"context"

	"weiqi/communication"
	"weiqi/experiments/metrics"
)

type Engine interface {
	// Run plays a game until the move limit is passed or ctx is cancelled
	Run(ctx context.Context) (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

// Observer receives every played ply, including passes.
type Observer interface {
	Notify(u communication.Update)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(u communication.Update)

func (f ObserverFunc) Notify(u communication.Update) {
	f(u)
}
