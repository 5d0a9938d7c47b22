package searcher

import (
	"weiqi/experiments/metrics"
	"weiqi/game"
)

// SecondOpening is the reply to an opening stone on the center point.
var SecondOpening = game.Point{Row: game.Center.Row, Col: game.Center.Col - 1}

// Decide picks the agent's next move. The first two plies of a game use fixed
// replies; after that the move is the head of the best line found by a
// search of the given depth. The boolean is false when the search has no
// move to offer.
func (s *Searcher) Decide(previous, current game.Board, player, agent game.Color, depth, totalMoves int) (game.Point, bool) {
	if move, ok := opening(current, totalMoves); ok {
		return move, true
	}

	result := s.Search(previous, current, agent, player, depth, totalMoves)
	if len(result.Line) == 0 {
		return game.Point{}, false
	}
	return result.Line[0], true
}

// FindMove decides the move for the colour to play in pos with the
// searcher's configured depth and reports the search metrics.
func (s *Searcher) FindMove(pos game.Position) (game.Point, metrics.SearchMetric, bool) {
	agent := pos.ToPlay
	player := agent.Opponent()

	if move, ok := opening(pos.Current, pos.TotalMoves); ok {
		return move, metrics.SearchMetric{Depth: s.depth, Pruning: s.pruning, Opening: true}, true
	}

	s.metrics.Start(s.depth, s.pruning)
	result := s.Search(pos.Previous, pos.Current, agent, player, s.depth, pos.TotalMoves)
	metric := s.metrics.Complete(result.Value, len(result.Line))

	if len(result.Line) == 0 {
		return game.Point{}, metric, false
	}
	return result.Line[0], metric, true
}

// Decide runs a default searcher.
func Decide(previous, current game.Board, player, agent game.Color, depth, totalMoves int) (game.Point, bool) {
	return NewSearcher().Decide(previous, current, player, agent, depth, totalMoves)
}

func opening(current game.Board, totalMoves int) (game.Point, bool) {
	switch totalMoves {
	case 0:
		return game.Center, true
	case 1:
		if current.At(game.Center) == game.Empty {
			return game.Center, true
		}
		return SecondOpening, true
	default:
		return game.Point{}, false
	}
}
