package agent

import (
	"math/rand"
	"sync"

	"github.com/bszcz/mt19937_64"

	"weiqi/experiments/metrics"
	"weiqi/game"
)

type randomAgent struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent playing uniformly random legal
// moves. Games are reproducible for a given seed.
func NewRandomAgent(seed int64) Agent {
	rng := rand.New(mt19937_64.New())
	rng.Seed(seed)
	return &randomAgent{rng: rng}
}

func (a *randomAgent) FindMove(pos game.Position) (game.Point, metrics.SearchMetric, error) {
	var empty []game.Point
	for row := 0; row < game.Size; row++ {
		for col := 0; col < game.Size; col++ {
			p := game.Point{Row: row, Col: col}
			if pos.Current.At(p) == game.Empty {
				empty = append(empty, p)
			}
		}
	}

	a.mu.Lock()
	a.rng.Shuffle(len(empty), func(i, j int) {
		empty[i], empty[j] = empty[j], empty[i]
	})
	a.mu.Unlock()

	for _, p := range empty {
		if _, err := pos.Play(p); err == nil {
			return p, metrics.SearchMetric{}, nil
		}
	}
	return game.Point{}, metrics.SearchMetric{}, ErrNoMove
}
