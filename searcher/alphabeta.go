package searcher

import (
	"fmt"
	"math"

	"weiqi/experiments/metrics"
	"weiqi/game"
	"weiqi/meta"
)

type Option func(s *Searcher)

// Searcher runs a depth bounded minimax search with alpha-beta pruning. It
// is not safe for concurrent use when metrics are collected.
type Searcher struct {
	depth           int
	evaluate        game.Evaluate
	pruning         bool
	unboundedNoMove bool
	metrics         metrics.Collector
}

func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

// WithoutPruning searches the full minimax tree.
func WithoutPruning() Option {
	return func(s *Searcher) {
		s.pruning = false
	}
}

// WithUnboundedNoMove makes a node without legal moves return its identity
// value (-Inf at max nodes, +Inf at min nodes) instead of the static
// evaluation of its board.
func WithUnboundedNoMove() Option {
	return func(s *Searcher) {
		s.unboundedNoMove = true
	}
}

func NewSearcher(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		depth:    meta.DEFAULT_DEPTH,
		evaluate: game.EvaluateStones,
		pruning:  true,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	if s.depth > meta.MAX_MOVES {
		panic(fmt.Sprintf("search depth %d exceeds %d plies", s.depth, meta.MAX_MOVES))
	}
	return s
}

func (s *Searcher) Depth() int {
	return s.depth
}

// Search evaluates current from the agent's perspective, the agent placing
// the next stone, and returns the value with the best line of play.
func (s *Searcher) Search(previous, current game.Board, agent, opponent game.Color, depth, totalMoves int) Result {
	if agent.Opponent() != opponent {
		panic(game.NewPreconditionError("agent %s and opponent %s must be opposing colors", agent, opponent))
	}
	return s.search(previous, current, agent, agent, maximizing, depth, totalMoves, math.Inf(-1), math.Inf(1))
}

// search is one ply of alpha-beta. mover places its stones at this node,
// root is the fixed perspective of the evaluation.
func (s *Searcher) search(previous, current game.Board, root, mover game.Color, p polarity, depth, totalMoves int, alpha, beta float64) Result {
	s.metrics.AddNode()

	if depth == 0 || totalMoves > meta.MAX_MOVES {
		s.metrics.AddLeaf()
		return Result{Value: s.evaluate(current, root)}
	}

	opponent := mover.Opponent()
	moves, ok := game.LegalMoves(opponent, mover, previous, current)
	if !ok {
		s.metrics.AddNoMove()
		if s.unboundedNoMove {
			return Result{Value: p.worst()}
		}
		return Result{Value: s.evaluate(current, root)}
	}

	best := Result{Value: p.worst()}
	for _, move := range moves {
		next, capturedOpp, capturedSelf := game.ApplyMove(current, move, mover, opponent)

		// Capture bonus from the mover's side, signed to the root's view. The
		// child's window is shifted by it so its bounds stay comparable.
		bonus := float64(p) * (CaptureReward*float64(capturedOpp) - SelfCapturePenalty*float64(capturedSelf))
		child := s.search(current, next, root, opponent, -p, depth-1, totalMoves+1, alpha-bonus, beta-bonus)
		value := child.Value + bonus

		if p.better(value, best.Value) {
			best = Result{Value: value, Line: append([]game.Point{move}, child.Line...)}
		}

		if !s.pruning {
			continue
		}
		if p == maximizing {
			if best.Value >= beta {
				s.metrics.AddCutoff()
				return best
			}
			alpha = math.Max(alpha, best.Value)
		} else {
			if best.Value <= alpha {
				s.metrics.AddCutoff()
				return best
			}
			beta = math.Min(beta, best.Value)
		}
	}
	return best
}
