package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "depth")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())

	t.Run("writes agent configs", func(t *testing.T) {
		err := w.WriteAgentConfigs([]AgentConfig{
			{ID: 1, Kind: SearchAgent, Depth: 3, Evaluator: "stones", Pruning: true},
			{ID: 2, Kind: RandomAgent, Seed: 42},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Len(t, rows, 3)
		require.Equal(t, []string{"id", "kind", "depth", "evaluator", "pruning", "seed"}, rows[0])
		require.Equal(t, []string{"1", "search", "3", "stones", "true", "0"}, rows[1])
		require.Equal(t, []string{"2", "random", "0", "", "false", "42"}, rows[2])
	})

	t.Run("writes game records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		err := w.WriteGameRecords([]GameRecord{{
			ID:    1,
			Black: 1,
			White: 2,
			GameMetric: GameMetric{
				ID:             "game",
				StartingPlayer: "black",
				StartTime:      start,
				EndTime:        start.Add(time.Second),
				Duration:       time.Second,
				TotalMoves:     25,
				Passes:         2,
				BlackStones:    9,
				WhiteStones:    7,
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "game", "1", "2", "black", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s",
			"25", "2", "9", "7"}, rows[1])
	})

	t.Run("writes move records", func(t *testing.T) {
		err := w.WriteMoveRecords([]MoveRecord{{
			Game: 1,
			MoveMetric: MoveMetric{
				Step:   3,
				Player: "black",
				Move:   "(1,2)",
				SearchMetric: SearchMetric{
					Depth:      3,
					Pruning:    true,
					Duration:   time.Millisecond,
					Nodes:      120,
					Leaves:     80,
					Cutoffs:    12,
					Value:      -4.5,
					LineLength: 3,
				},
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "3", "black", "(1,2)", "false", "false", "3", "true", "1ms",
			"120", "80", "12", "0", "-4.5", "3"}, rows[1])
	})
}
