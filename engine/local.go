package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/xid"
	"github.com/rs/zerolog/log"

	"weiqi/communication"
	"weiqi/experiments/metrics"
	"weiqi/game"
	"weiqi/searcher/agent"
)

type LocalEngine struct {
	Position  game.Position
	agents    map[game.Color]agent.Agent
	observers []Observer
	id        string
}

type Option func(*LocalEngine)

// WithObserver registers an observer notified after every ply.
func WithObserver(o Observer) Option {
	return func(e *LocalEngine) {
		e.observers = append(e.observers, o)
	}
}

// WithPosition starts the game from pos instead of an empty board.
func WithPosition(pos game.Position) Option {
	return func(e *LocalEngine) {
		e.Position = pos
	}
}

func NewLocalEngine(black, white agent.Agent, opts ...Option) *LocalEngine {
	if black == nil || white == nil {
		panic("need an agent for each color")
	}

	e := &LocalEngine{
		Position: game.NewPosition(),
		agents: map[game.Color]agent.Agent{
			game.Black: black,
			game.White: white,
		},
		id: xid.New().String(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ID identifies the game in logs, updates and experiment records.
func (e *LocalEngine) ID() string {
	return e.id
}

var _ Engine = (*LocalEngine)(nil)

// Run executes the game loop. An agent without a move passes. A move the
// position rejects ends the game with an error.
func (e *LocalEngine) Run(ctx context.Context) (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		ID:             e.id,
		StartingPlayer: e.Position.ToPlay.String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	logger := log.With().Str("game", e.id).Logger()
	logger.Info().Msgf("%s is starting", e.Position.ToPlay)

	var err error
	for step := 1; !e.Position.Over(); step++ {
		if err = ctx.Err(); err != nil {
			break
		}

		color := e.Position.ToPlay
		move, searchMetric, findErr := e.agents[color].FindMove(e.Position)

		moveMetric := metrics.MoveMetric{
			Step:         step,
			Player:       color.String(),
			SearchMetric: searchMetric,
		}

		var played *game.Point
		switch {
		case errors.Is(findErr, agent.ErrNoMove):
			logger.Info().Int("step", step).Stringer("player", color).Msg("no move available, passing")
			e.Position = e.Position.Pass()
			moveMetric.Passed = true
			gameMetric.Passes++
		case findErr != nil:
			err = fmt.Errorf("%s failed to find a move: %w", color, findErr)
		default:
			next, playErr := e.Position.Play(move)
			if playErr != nil {
				err = fmt.Errorf("%s played %s: %w", color, move, playErr)
				break
			}
			e.Position = next
			played = &move
			moveMetric.Move = move.String()
			logger.Debug().Int("step", step).Stringer("player", color).Stringer("move", move).Msg("played move")
		}
		if err != nil {
			break
		}

		moveMetrics = append(moveMetrics, moveMetric)
		e.notify(communication.Update{
			GameID:   e.id,
			Step:     step,
			Player:   color.String(),
			Move:     played,
			Position: e.Position,
			Hash:     e.Position.Hash(),
			Board:    e.Position.Current.String(),
			GameOver: e.Position.Over(),
		})
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.Position.TotalMoves
	gameMetric.BlackStones = e.Position.Current.Count(game.Black)
	gameMetric.WhiteStones = e.Position.Current.Count(game.White)

	if err != nil {
		logger.Error().Err(err).Int("totalMoves", e.Position.TotalMoves).Msg("game aborted")
		return gameMetric, moveMetrics, err
	}

	logger.Info().
		Int("totalMoves", gameMetric.TotalMoves).
		Int("passes", gameMetric.Passes).
		Int("black", gameMetric.BlackStones).
		Int("white", gameMetric.WhiteStones).
		Dur("duration", gameMetric.Duration).
		Msg("game over")
	return gameMetric, moveMetrics, nil
}

func (e *LocalEngine) notify(u communication.Update) {
	for _, o := range e.observers {
		o.Notify(u)
	}
}
