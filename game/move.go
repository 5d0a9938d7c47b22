package game

import "fmt"

// Point is a board coordinate, 0 <= Row, Col < Size.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Center is the fixed opening point.
var Center = Point{Row: Size / 2, Col: Size / 2}

func (p Point) InBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

var directions = [4]Point{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// Neighbors returns the in-bounds 4-directional neighbours of p.
func Neighbors(p Point) []Point {
	neighbors := make([]Point, 0, len(directions))
	for _, d := range directions {
		n := Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
		if n.InBounds() {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}
