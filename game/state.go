package game

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/OneOfOne/xxhash"

	"weiqi/meta"
)

type StateHash uint64

// Position is the game record a driver carries between moves. It is a value:
// Play and Pass return a new Position and never modify the receiver.
type Position struct {
	Previous   Board `json:"previous"`
	Current    Board `json:"current"`
	ToPlay     Color `json:"to_play"`
	TotalMoves int   `json:"total_moves"`
}

// NewPosition returns an empty board with black to play.
func NewPosition() Position {
	return Position{ToPlay: Black}
}

// Over reports whether the move budget of the game is exhausted.
func (pos Position) Over() bool {
	return pos.TotalMoves > meta.MAX_MOVES
}

// Play places a stone of the colour to play at p, resolving captures. It
// rejects out of range and occupied points, suicide and ko.
func (pos Position) Play(p Point) (Position, error) {
	if pos.Over() {
		return pos, ErrGameOver
	}
	if !p.InBounds() {
		return pos, NewPointOutOfRangeError(p)
	}
	if pos.Current.At(p) != Empty {
		return pos, ErrOccupied
	}

	next, _, _ := ApplyMove(pos.Current, p, pos.ToPlay, pos.ToPlay.Opponent())
	if next == pos.Current {
		return pos, ErrSuicide
	}
	if next == pos.Previous {
		return pos, ErrKo
	}

	return Position{
		Previous:   pos.Current,
		Current:    next,
		ToPlay:     pos.ToPlay.Opponent(),
		TotalMoves: pos.TotalMoves + 1,
	}, nil
}

// Pass hands the turn over without changing the board.
func (pos Position) Pass() Position {
	return Position{
		Previous:   pos.Current,
		Current:    pos.Current,
		ToPlay:     pos.ToPlay.Opponent(),
		TotalMoves: pos.TotalMoves + 1,
	}
}

func (pos Position) Hash() StateHash {
	hasher := xxhash.New64()

	// Hash board pair
	for _, b := range [2]Board{pos.Previous, pos.Current} {
		for _, row := range b {
			for _, cell := range row {
				hasher.Write([]byte{byte(cell)})
			}
		}
	}

	// Hash turn and move counter
	binary.Write(hasher, binary.LittleEndian, int64(pos.ToPlay))
	binary.Write(hasher, binary.LittleEndian, int64(pos.TotalMoves))

	return StateHash(hasher.Sum64())
}

// ParsePoint reads a point from row and column text as typed by a human.
func ParsePoint(row, col string) (Point, error) {
	r, err := strconv.Atoi(strings.TrimSpace(row))
	if err != nil {
		return Point{}, fmt.Errorf("invalid row %q: %w", row, err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(col))
	if err != nil {
		return Point{}, fmt.Errorf("invalid column %q: %w", col, err)
	}
	p := Point{Row: r, Col: c}
	if !p.InBounds() {
		return Point{}, NewPointOutOfRangeError(p)
	}
	return p, nil
}

// ParseColor accepts "1"/"black" and "2"/"white".
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "black", "b", "x":
		return Black, nil
	case "2", "white", "w", "o":
		return White, nil
	default:
		return Empty, fmt.Errorf("unknown color %q", s)
	}
}
