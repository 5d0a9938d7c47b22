package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"weiqi/communication"
	"weiqi/experiments/metrics"
	"weiqi/game"
	"weiqi/searcher/agent"
)

const requestTimeout = 30 * time.Second

// RemoteAgent asks an agent server for moves over HTTP.
type RemoteAgent struct {
	serverURL string
	client    *http.Client
}

// NewRemoteAgent initializes and returns a new RemoteAgent.
func NewRemoteAgent(serverURL string) *RemoteAgent {
	return &RemoteAgent{
		serverURL: serverURL,
		client:    &http.Client{Timeout: requestTimeout},
	}
}

var _ agent.Agent = (*RemoteAgent)(nil)

func (ra *RemoteAgent) FindMove(pos game.Position) (game.Point, metrics.SearchMetric, error) {
	var metric metrics.SearchMetric

	data, err := json.Marshal(communication.FindMoveRequest{Position: pos})
	if err != nil {
		return game.Point{}, metric, fmt.Errorf("failed to encode request: %w", err)
	}

	start := time.Now()
	resp, err := ra.client.Post(ra.serverURL+"/findmove", "application/json", bytes.NewReader(data))
	if err != nil {
		return game.Point{}, metric, fmt.Errorf("failed to reach agent at %s: %w", ra.serverURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(resp.Body)
		return game.Point{}, metric, fmt.Errorf("agent returned status %d: %s", resp.StatusCode, bytes.TrimSpace(out))
	}

	var response communication.FindMoveResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return game.Point{}, metric, fmt.Errorf("failed to decode response: %w", err)
	}

	metric.Duration = time.Since(start)
	metric.Value = response.Value
	metric.Nodes = response.Nodes

	log.Debug().
		Str("url", ra.serverURL).
		Stringer("move", response.Move).
		Bool("noMove", response.NoMove).
		Dur("duration", metric.Duration).
		Msg("received remote move")

	if response.NoMove {
		return game.Point{}, metric, agent.ErrNoMove
	}
	if !response.Move.InBounds() {
		return game.Point{}, metric, game.NewPointOutOfRangeError(response.Move)
	}
	return response.Move, metric, nil
}
