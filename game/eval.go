package game

import "weiqi/meta"

const (
	StoneWeight     = 10.0
	OpponentDanger  = 2.0
	OwnDanger       = 1.5
	HandicapStones  = meta.HANDICAP
	dangerLiberties = 1
)

// tally is indexed by Color.
type tally struct {
	stones [3]float64
	danger [3]float64
}

// EvaluateStones scores material and stones in atari (at most one liberty)
// from the perspective colour. White, as second colour, is credited with a
// fixed handicap of HandicapStones stones.
func EvaluateStones(b Board, perspective Color) float64 {
	t := countStones(b)
	own, opp := perspective, perspective.Opponent()

	return StoneWeight*t.stones[own] - StoneWeight*t.stones[opp] +
		OpponentDanger*t.danger[opp] - OwnDanger*t.danger[own]
}

// EvaluateMaterial only compares stone counts (with the handicap).
func EvaluateMaterial(b Board, perspective Color) float64 {
	t := countStones(b)
	return StoneWeight * (t.stones[perspective] - t.stones[perspective.Opponent()])
}

func countStones(b Board) tally {
	var t tally
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			c := b[row][col]
			if c == Empty {
				continue
			}
			t.stones[c]++
			// Tallied per stone, so a group in atari counts once per stone
			liberties := libertiesOf(b, region(b, Point{Row: row, Col: col}, c))
			if len(liberties) <= dangerLiberties {
				t.danger[c]++
			}
		}
	}
	t.stones[White] += HandicapStones
	return t
}
