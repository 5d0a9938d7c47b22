package agent

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"weiqi/communication"
	"weiqi/game"
)

type server struct {
	mu    sync.Mutex // Searchers keep per-search metrics state
	agent Agent
}

// NewServer returns an HTTP handler answering move requests with the agent.
func NewServer(a Agent) http.Handler {
	s := &server{agent: a}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Post("/findmove", s.handleFindMove)
	return r
}

func (s *server) handleFindMove(w http.ResponseWriter, r *http.Request) {
	var payload communication.FindMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	pos := payload.Position
	if !pos.ToPlay.IsStone() {
		http.Error(w, "bad request: unknown color to play", http.StatusBadRequest)
		return
	}
	if pos.Over() {
		http.Error(w, game.ErrGameOver.Error(), http.StatusConflict)
		return
	}

	s.mu.Lock()
	move, metric, err := s.agent.FindMove(pos)
	s.mu.Unlock()

	response := communication.FindMoveResponse{Move: move, Value: metric.Value, Nodes: metric.Nodes}
	if errors.Is(err, ErrNoMove) {
		response.NoMove = true
	} else if err != nil {
		http.Error(w, "failed to find move: "+err.Error(), http.StatusInternalServerError)
		return
	}

	log.Info().
		Str("request", middleware.GetReqID(r.Context())).
		Int("totalMoves", pos.TotalMoves).
		Stringer("toPlay", pos.ToPlay).
		Stringer("move", move).
		Bool("noMove", response.NoMove).
		Msg("answered move request")

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "failed to encode move: "+err.Error(), http.StatusInternalServerError)
	}
}
