package agent

import (
	"weiqi/experiments/metrics"
	"weiqi/game"
	"weiqi/searcher"
)

type evaluationAgent struct {
	searcher *searcher.Searcher
}

// NewEvaluationAgent returns an agent playing the searcher's decisions.
func NewEvaluationAgent(s *searcher.Searcher) Agent {
	return evaluationAgent{searcher: s}
}

func (a evaluationAgent) FindMove(pos game.Position) (game.Point, metrics.SearchMetric, error) {
	move, metric, ok := a.searcher.FindMove(pos)
	if !ok {
		return game.Point{}, metric, ErrNoMove
	}
	return move, metric, nil
}
