package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// boardOf builds a board from rows of 'X' (black), 'O' (white) and '.'.
func boardOf(rows ...string) Board {
	var b Board
	for r, row := range rows {
		for c, ch := range row {
			switch ch {
			case 'X':
				b[r][c] = Black
			case 'O':
				b[r][c] = White
			}
		}
	}
	return b
}

func TestNeighbors(t *testing.T) {
	t.Run("corner point has two neighbors", func(t *testing.T) {
		require.Equal(t, []Point{{0, 1}, {1, 0}}, Neighbors(Point{0, 0}),
			"Corner should only have in-bounds neighbors in fixed direction order")
	})

	t.Run("center point has four neighbors", func(t *testing.T) {
		require.Equal(t, []Point{{2, 3}, {3, 2}, {2, 1}, {1, 2}}, Neighbors(Center),
			"Center should have all four neighbors")
	})

	t.Run("edge point has three neighbors", func(t *testing.T) {
		require.Len(t, Neighbors(Point{4, 2}), 3, "Edge should have three neighbors")
	})
}

func TestGroup(t *testing.T) {
	b := boardOf(
		"XX...",
		".X.X.",
		"..O..",
		".....",
		".....",
	)

	t.Run("collects connected stones of one color", func(t *testing.T) {
		got := Group(b, Point{0, 0}, Black)
		require.ElementsMatch(t, []Point{{0, 0}, {0, 1}, {1, 1}}, got,
			"Group should follow 4-connected same colored stones only")
	})

	t.Run("diagonal stones are not connected", func(t *testing.T) {
		got := Group(b, Point{1, 3}, Black)
		require.Equal(t, []Point{{1, 3}}, got, "Diagonal neighbors should not join the group")
	})

	t.Run("panics on a point of another color", func(t *testing.T) {
		require.Panics(t, func() {
			Group(b, Point{2, 2}, Black)
		}, "Should fail fast when the point does not hold the requested color")
	})

	t.Run("panics on an empty point", func(t *testing.T) {
		require.Panics(t, func() {
			Group(b, Point{4, 4}, Empty)
		}, "Should fail fast when asked for the group of an empty point")
	})

	t.Run("panics on an off-board point", func(t *testing.T) {
		require.Panics(t, func() {
			Group(b, Point{5, 0}, Black)
		}, "Should fail fast on out of range points")
	})
}

func TestLiberties(t *testing.T) {
	t.Run("union of empty neighbors over the group", func(t *testing.T) {
		b := boardOf(
			"XXO..",
			".....",
			".....",
			".....",
			".....",
		)
		got := Liberties(b, Point{0, 0}, Black)
		require.ElementsMatch(t, []Point{{1, 0}, {1, 1}}, got,
			"Liberties should be the distinct empty neighbors of the group")
	})

	t.Run("surrounded stone has no liberties", func(t *testing.T) {
		b := boardOf(
			".X...",
			"XOX..",
			".X...",
			".....",
			".....",
		)
		require.Empty(t, Liberties(b, Point{1, 1}, White), "Surrounded stone should have no liberties")
	})

	t.Run("panics on mismatched color", func(t *testing.T) {
		require.Panics(t, func() {
			Liberties(Board{}, Point{0, 0}, White)
		}, "Should fail fast on an empty point")
	})
}

func TestDeadStones(t *testing.T) {
	boards := []Board{
		{},
		boardOf(
			"OX...",
			"X....",
			".....",
			".....",
			".....",
		),
		boardOf(
			"XO...",
			"OO...",
			"X....",
			".....",
			".....",
		),
		boardOf(
			"XXXXX",
			"XOOOX",
			"XXXXX",
			"OOOOO",
			"O.O.O",
		),
	}

	t.Run("only reports stones of the requested color", func(t *testing.T) {
		for _, b := range boards {
			for _, c := range []Color{Black, White} {
				for _, p := range DeadStones(b, c) {
					require.Equal(t, c, b.At(p), "Dead stone %s should have color %s", p, c)
				}
			}
		}
	})

	t.Run("reports a whole dead group once", func(t *testing.T) {
		b := boards[3]
		require.ElementsMatch(t, []Point{{1, 1}, {1, 2}, {1, 3}}, DeadStones(b, White),
			"Enclosed white group should be dead, the bottom group has liberties")
		require.ElementsMatch(t, []Point{
			{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4},
			{1, 0}, {1, 4},
			{2, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 4},
		}, DeadStones(b, Black), "Black ring without empty neighbors should be dead")
	})

	t.Run("single dead corner stone", func(t *testing.T) {
		require.Equal(t, []Point{{0, 0}}, DeadStones(boards[1], White),
			"Corner stone surrounded by two stones should be dead")
		require.Empty(t, DeadStones(boards[1], Black), "Black stones still have liberties")
	})

	t.Run("panics on empty color", func(t *testing.T) {
		require.Panics(t, func() {
			DeadStones(Board{}, Empty)
		}, "Should fail fast on a non-stone color")
	})
}

func TestApplyMove(t *testing.T) {
	t.Run("captures a surrounded stone", func(t *testing.T) {
		b := boardOf(
			".....",
			"..X..",
			".XO..",
			"..X..",
			".....",
		)

		got, capturedOpp, capturedSelf := ApplyMove(b, Point{2, 3}, Black, White)

		require.Equal(t, 1, capturedOpp, "Should capture the white stone")
		require.Equal(t, 0, capturedSelf, "Should not lose black stones")
		require.Equal(t, Empty, got.At(Point{2, 2}), "Captured point should be empty")
		require.Equal(t, Black, got.At(Point{2, 3}), "Placed stone should stay")
	})

	t.Run("opponent captures resolve before self capture", func(t *testing.T) {
		b := boardOf(
			".OX..",
			"OX...",
			".....",
			".....",
			".....",
		)

		got, capturedOpp, capturedSelf := ApplyMove(b, Point{0, 0}, Black, White)

		require.Equal(t, 1, capturedOpp, "Should capture the white stone at (0,1)")
		require.Equal(t, 0, capturedSelf, "Placing stone should survive after the capture")
		require.Equal(t, Black, got.At(Point{0, 0}), "Placing stone should remain on the board")
		require.Equal(t, Empty, got.At(Point{0, 1}), "Captured point should be empty")
		require.Equal(t, White, got.At(Point{1, 0}), "White stone with liberties should remain")
	})

	t.Run("suicide removes the placed stone", func(t *testing.T) {
		b := boardOf(
			".O...",
			"O....",
			".....",
			".....",
			".....",
		)

		got, capturedOpp, capturedSelf := ApplyMove(b, Point{0, 0}, Black, White)

		require.Equal(t, 0, capturedOpp, "Should not capture anything")
		require.Equal(t, 1, capturedSelf, "Placed stone should be removed")
		require.Equal(t, b, got, "Suicide should leave the board unchanged")
	})

	t.Run("does not modify the input board", func(t *testing.T) {
		b := boardOf(
			".....",
			"..X..",
			".XO..",
			"..X..",
			".....",
		)
		before := b

		ApplyMove(b, Point{2, 3}, Black, White)

		require.Equal(t, before, b, "Input board should not change")
	})

	t.Run("panics on invalid colors", func(t *testing.T) {
		require.Panics(t, func() {
			ApplyMove(Board{}, Center, Black, Black)
		}, "Should fail fast when both colors are the same")
		require.Panics(t, func() {
			ApplyMove(Board{}, Center, Empty, White)
		}, "Should fail fast when placing an empty cell")
	})

	t.Run("panics on off-board point", func(t *testing.T) {
		require.Panics(t, func() {
			ApplyMove(Board{}, Point{-1, 0}, Black, White)
		}, "Should fail fast on out of range points")
	})
}

func TestBoardString(t *testing.T) {
	b := boardOf(
		"X....",
		".O...",
		".....",
		".....",
		".....",
	)
	want := "  0 1 2 3 4\n" +
		"0 X . . . .\n" +
		"1 . O . . .\n" +
		"2 . . . . .\n" +
		"3 . . . . .\n" +
		"4 . . . . .\n"
	require.Equal(t, want, b.String(), "Board should render with labels")
}
