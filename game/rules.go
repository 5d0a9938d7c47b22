package game

import "golang.org/x/exp/slices"

type rankedMove struct {
	point   Point
	utility int
}

// LegalMoves returns the moves mover may play on current, ranked by immediate
// capture differential. player is the colour that moves after mover. The
// boolean is false when no move survives the suicide and ko filters.
//
// Candidates are the liberties of every stone on the board, each stone's
// liberties taken as if its region belonged to mover. Empty points with no
// occupied neighbour are never candidates.
func LegalMoves(player, mover Color, previous, current Board) ([]Point, bool) {
	if !mover.IsStone() || player != mover.Opponent() {
		panic(NewPreconditionError("legal moves requested for %s against %s", mover, player))
	}
	candidates := candidateMoves(mover, current)

	ranked := make([]rankedMove, 0, len(candidates))
	for _, p := range candidates {
		next, capturedOpp, capturedSelf := ApplyMove(current, p, mover, player)
		if next == current || next == previous { // Suicide or ko
			continue
		}
		ranked = append(ranked, rankedMove{point: p, utility: capturedOpp - capturedSelf})
	}

	if len(ranked) == 0 {
		return nil, false
	}

	slices.SortStableFunc(ranked, func(a, b rankedMove) int {
		return b.utility - a.utility
	})

	moves := make([]Point, len(ranked))
	for i, m := range ranked {
		moves[i] = m.point
	}
	return moves, true
}

func candidateMoves(mover Color, b Board) []Point {
	var seen [Size][Size]bool
	var candidates []Point
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b[row][col] == Empty {
				continue
			}
			for _, liberty := range libertiesOf(b, region(b, Point{Row: row, Col: col}, mover)) {
				if !seen[liberty.Row][liberty.Col] {
					seen[liberty.Row][liberty.Col] = true
					candidates = append(candidates, liberty)
				}
			}
		}
	}
	return candidates
}
