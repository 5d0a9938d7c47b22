package client

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"weiqi/game"
	"weiqi/searcher"
	"weiqi/searcher/agent"
)

func TestRemoteAgent(t *testing.T) {
	t.Run("plays the server's move", func(t *testing.T) {
		srv := httptest.NewServer(agent.NewServer(agent.NewEvaluationAgent(searcher.NewSearcher(searcher.WithDepth(2)))))
		defer srv.Close()

		move, _, err := NewRemoteAgent(srv.URL).FindMove(game.NewPosition())

		require.NoError(t, err)
		require.Equal(t, game.Center, move)
	})

	t.Run("answers the second opening", func(t *testing.T) {
		srv := httptest.NewServer(agent.NewServer(agent.NewEvaluationAgent(searcher.NewSearcher(searcher.WithDepth(2)))))
		defer srv.Close()
		pos, err := game.NewPosition().Play(game.Center)
		require.NoError(t, err)

		move, _, err := NewRemoteAgent(srv.URL).FindMove(pos)

		require.NoError(t, err)
		require.Equal(t, searcher.SecondOpening, move)
	})

	t.Run("maps no move to ErrNoMove", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"move":{"row":0,"col":0},"no_move":true}`))
		}))
		defer srv.Close()

		_, _, err := NewRemoteAgent(srv.URL).FindMove(game.NewPosition())

		require.ErrorIs(t, err, agent.ErrNoMove)
	})

	t.Run("rejects moves off the board", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"move":{"row":7,"col":0}}`))
		}))
		defer srv.Close()

		_, _, err := NewRemoteAgent(srv.URL).FindMove(game.NewPosition())

		var rangeErr *game.PointOutOfRangeError
		require.ErrorAs(t, err, &rangeErr)
	})

	t.Run("surfaces server errors", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, _, err := NewRemoteAgent(srv.URL).FindMove(game.NewPosition())

		require.ErrorContains(t, err, "status 500")
	})
}
