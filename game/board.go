package game

import "strings"

// At returns the colour at p.
func (b Board) At(p Point) Color {
	return b[p.Row][p.Col]
}

// with returns a copy of b with p set to c.
func (b Board) with(p Point, c Color) Board {
	b[p.Row][p.Col] = c
	return b
}

// Count returns the number of stones of colour c.
func (b Board) Count(c Color) int {
	n := 0
	for _, row := range b {
		for _, cell := range row {
			if cell == c {
				n++
			}
		}
	}
	return n
}

func (b Board) IsEmpty() bool {
	return b == Board{}
}

// String renders the board with row and column labels, X for black and O for
// white.
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString(" ")
	for col := 0; col < Size; col++ {
		sb.WriteByte(' ')
		sb.WriteByte(byte('0' + col))
	}
	sb.WriteByte('\n')
	for row := 0; row < Size; row++ {
		sb.WriteByte(byte('0' + row))
		for col := 0; col < Size; col++ {
			sb.WriteByte(' ')
			switch b[row][col] {
			case Black:
				sb.WriteByte('X')
			case White:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Group returns the stones 4-connected to p that share its colour c.
// p must hold a stone of colour c.
func Group(b Board, p Point, c Color) []Point {
	mustHold(b, p, c)
	return region(b, p, c)
}

// Liberties returns the empty points adjacent to the group at p.
// p must hold a stone of colour c.
func Liberties(b Board, p Point, c Color) []Point {
	mustHold(b, p, c)
	return libertiesOf(b, region(b, p, c))
}

// DeadStones returns every stone of colour c whose group has no liberties.
func DeadStones(b Board, c Color) []Point {
	if !c.IsStone() {
		panic(NewPreconditionError("dead stones requested for %s", c))
	}
	var dead []Point
	var visited [Size][Size]bool
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b[row][col] != c || visited[row][col] {
				continue
			}
			group := region(b, Point{Row: row, Col: col}, c)
			for _, stone := range group {
				visited[stone.Row][stone.Col] = true
			}
			if len(libertiesOf(b, group)) == 0 {
				dead = append(dead, group...)
			}
		}
	}
	return dead
}

// ApplyMove places a stone of colour c at p on a copy of b, removes the dead
// stones of opp and then the dead stones of c. It returns the resulting board
// and how many stones of each side were removed. Occupancy of p is not
// checked; LegalMoves and Position.Play never reach here with an occupied
// point.
func ApplyMove(b Board, p Point, c, opp Color) (Board, int, int) {
	if !p.InBounds() {
		panic(NewPreconditionError("move %s is off the board", p))
	}
	if !c.IsStone() || !opp.IsStone() || c == opp {
		panic(NewPreconditionError("cannot place %s against %s", c, opp))
	}

	next := b.with(p, c)

	// Opponent captures resolve first, so a capturing move can save its own
	// group.
	capturedOpp := DeadStones(next, opp)
	for _, stone := range capturedOpp {
		next = next.with(stone, Empty)
	}
	capturedSelf := DeadStones(next, c)
	for _, stone := range capturedSelf {
		next = next.with(stone, Empty)
	}

	return next, len(capturedOpp), len(capturedSelf)
}

func mustHold(b Board, p Point, c Color) {
	if !p.InBounds() {
		panic(NewPreconditionError("point %s is off the board", p))
	}
	if !c.IsStone() || b.At(p) != c {
		panic(NewPreconditionError("point %s holds %s, not %s", p, b.At(p), c))
	}
}

// region runs a depth-first search from start over cells of colour c. The
// start cell is always included whatever its own colour.
func region(b Board, start Point, c Color) []Point {
	var visited [Size][Size]bool
	visited[start.Row][start.Col] = true
	stack := []Point{start}
	var group []Point
	for len(stack) > 0 {
		stone := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		group = append(group, stone)

		for _, n := range Neighbors(stone) {
			if !visited[n.Row][n.Col] && b.At(n) == c {
				visited[n.Row][n.Col] = true
				stack = append(stack, n)
			}
		}
	}
	return group
}

func libertiesOf(b Board, group []Point) []Point {
	var seen [Size][Size]bool
	var liberties []Point
	for _, stone := range group {
		for _, n := range Neighbors(stone) {
			if b.At(n) == Empty && !seen[n.Row][n.Col] {
				seen[n.Row][n.Col] = true
				liberties = append(liberties, n)
			}
		}
	}
	return liberties
}
