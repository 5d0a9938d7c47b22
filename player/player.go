package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"weiqi/experiments/metrics"
	"weiqi/game"
	"weiqi/searcher/agent"
)

// Player is a human at a console. Moves are read as "row col" (or "row,col")
// and re-requested until the position accepts them. "pass" passes.
type Player struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPlayer creates a new Player reading moves from in and writing the board
// and prompts to out.
func NewPlayer(in io.Reader, out io.Writer) *Player {
	return &Player{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

var _ agent.Agent = (*Player)(nil)

func (p *Player) FindMove(pos game.Position) (game.Point, metrics.SearchMetric, error) {
	fmt.Fprintf(p.out, "\n%s\n", pos.Current)

	if !hasLegalMove(pos) {
		fmt.Fprintf(p.out, "%s has no legal move and passes.\n", pos.ToPlay)
		return game.Point{}, metrics.SearchMetric{}, agent.ErrNoMove
	}

	for {
		fmt.Fprintf(p.out, "%s to play (row col, or pass): ", pos.ToPlay)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return game.Point{}, metrics.SearchMetric{}, fmt.Errorf("failed to read move: %w", err)
			}
			return game.Point{}, metrics.SearchMetric{}, io.ErrUnexpectedEOF
		}

		if strings.EqualFold(strings.TrimSpace(p.in.Text()), "pass") {
			return game.Point{}, metrics.SearchMetric{}, agent.ErrNoMove
		}

		move, err := parseMove(p.in.Text())
		if err == nil {
			_, err = pos.Play(move)
		}
		if err != nil {
			log.Debug().Err(err).Str("input", p.in.Text()).Msg("rejected human move")
			fmt.Fprintf(p.out, "%s, try again.\n", describe(err))
			continue
		}
		return move, metrics.SearchMetric{}, nil
	}
}

func hasLegalMove(pos game.Position) bool {
	for row := 0; row < game.Size; row++ {
		for col := 0; col < game.Size; col++ {
			if _, err := pos.Play(game.Point{Row: row, Col: col}); err == nil {
				return true
			}
		}
	}
	return false
}

func parseMove(line string) (game.Point, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != 2 {
		return game.Point{}, fmt.Errorf("expected a row and a column, got %q", strings.TrimSpace(line))
	}
	return game.ParsePoint(fields[0], fields[1])
}

func describe(err error) string {
	var rangeErr *game.PointOutOfRangeError
	switch {
	case errors.Is(err, game.ErrOccupied):
		return "That point is occupied"
	case errors.Is(err, game.ErrSuicide):
		return "That move is suicide"
	case errors.Is(err, game.ErrKo):
		return "That move retakes the ko"
	case errors.As(err, &rangeErr):
		return fmt.Sprintf("Rows and columns run from 0 to %d", game.Size-1)
	default:
		return "Invalid input: " + err.Error()
	}
}
