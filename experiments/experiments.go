package experiments

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"

	"weiqi/engine"
	"weiqi/experiments/metrics"
	"weiqi/game"
	"weiqi/searcher"
	"weiqi/searcher/agent"
)

const NumGames = 10 // Per match up

type Experiment struct {
	Name     string
	Configs  []metrics.AgentConfig
	MatchUps [][2]metrics.AgentConfig
}

var baseline = metrics.AgentConfig{ID: 0, Kind: metrics.RandomAgent, Seed: 1}

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: metrics.SearchAgent, Depth: 1, Evaluator: "stones", Pruning: true},
	{ID: 2, Kind: metrics.SearchAgent, Depth: 2, Evaluator: "stones", Pruning: true},
	{ID: 3, Kind: metrics.SearchAgent, Depth: 3, Evaluator: "stones", Pruning: true},
	{ID: 4, Kind: metrics.SearchAgent, Depth: 4, Evaluator: "stones", Pruning: true},
}

// DepthExperiment pairs each search depth against the random baseline.
func DepthExperiment() Experiment {
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}
	return Experiment{
		Name:     "depth",
		Configs:  append([]metrics.AgentConfig{baseline}, depthConfigs...),
		MatchUps: matchUps,
	}
}

// PruningExperiment plays agents with and without pruning against each
// other. Both play the same moves so node counts are directly comparable.
func PruningExperiment() Experiment {
	configs := []metrics.AgentConfig{}
	matchUps := [][2]metrics.AgentConfig{}
	for depth := 2; depth <= 3; depth++ {
		pruned := metrics.AgentConfig{ID: 2 * depth, Kind: metrics.SearchAgent, Depth: depth, Evaluator: "stones", Pruning: true}
		exhaustive := metrics.AgentConfig{ID: 2*depth + 1, Kind: metrics.SearchAgent, Depth: depth, Evaluator: "stones"}
		configs = append(configs, pruned, exhaustive)
		matchUps = append(matchUps, [2]metrics.AgentConfig{pruned, exhaustive})
	}
	return Experiment{Name: "pruning", Configs: configs, MatchUps: matchUps}
}

// EvaluatorExperiment pairs the stone evaluator against plain material.
func EvaluatorExperiment() Experiment {
	stones := metrics.AgentConfig{ID: 1, Kind: metrics.SearchAgent, Depth: 3, Evaluator: "stones", Pruning: true}
	material := metrics.AgentConfig{ID: 2, Kind: metrics.SearchAgent, Depth: 3, Evaluator: "material", Pruning: true}
	return Experiment{
		Name:     "evaluator",
		Configs:  []metrics.AgentConfig{stones, material},
		MatchUps: [][2]metrics.AgentConfig{{stones, material}},
	}
}

var registry = map[string]func() Experiment{
	"depth":     DepthExperiment,
	"pruning":   PruningExperiment,
	"evaluator": EvaluatorExperiment,
}

// Lookup returns the experiment registered under name.
func Lookup(name string) (Experiment, error) {
	build, ok := registry[name]
	if !ok {
		return Experiment{}, fmt.Errorf("unknown experiment %q, expected one of %v", name, Names())
	}
	return build(), nil
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Run plays numGames per match up, alternating colours between games, and
// stores the records under root. It returns the directory written to.
func Run(ctx context.Context, exp Experiment, root string, numGames int) (string, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", exp.Name)

	for mi, matchUp := range exp.MatchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(exp.MatchUps), matchUp[0], matchUp[1])

		for i := 0; i < numGames; i++ {
			black, white := matchUp[0], matchUp[1]
			if i%2 == 1 {
				black, white = white, black
			}

			gameMetric, moveMetrics, err := runGame(ctx, black, white)
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Black:      black.ID,
				White:      white.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d: black %d stones, white %d stones",
				mi+1, len(exp.MatchUps), i+1, gameMetric.BlackStones, gameMetric.WhiteStones)
		}
	}

	log.Info().Msgf("completed %s experiment", exp.Name)

	writer, err := metrics.NewWriter(root, exp.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(exp.Configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored experiment records")

	return writer.Dir(), nil
}

func runGame(ctx context.Context, black, white metrics.AgentConfig) (metrics.GameMetric, []metrics.MoveMetric, error) {
	b, err := NewAgent(black)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	w, err := NewAgent(white)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	return engine.NewLocalEngine(b, w).Run(ctx)
}

// NewAgent builds the agent described by config.
func NewAgent(config metrics.AgentConfig) (agent.Agent, error) {
	switch config.Kind {
	case metrics.RandomAgent:
		return agent.NewRandomAgent(config.Seed), nil
	case metrics.SearchAgent:
		s, err := createSearcher(config)
		if err != nil {
			return nil, err
		}
		return agent.NewEvaluationAgent(s), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
	}
}

func createSearcher(config metrics.AgentConfig) (*searcher.Searcher, error) {
	options := []searcher.Option{searcher.WithMetrics()}

	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if !config.Pruning {
		options = append(options, searcher.WithoutPruning())
	}
	switch config.Evaluator {
	case "", "stones":
	case "material":
		options = append(options, searcher.WithEvaluationFn(game.EvaluateMaterial))
	default:
		return nil, fmt.Errorf("unknown evaluator %q", config.Evaluator)
	}

	return searcher.NewSearcher(options...), nil
}
