package station

import (
	"fmt"
	"strconv"
	"strings"
)

type CellState int8

const (
	Unexplored CellState = -2
	Hazard     CellState = 65
	// 0-8 for a scanned area with the given number of adjacent hazards
)

func (s CellState) String() string {
	switch {
	case s == Unexplored:
		return "?"
	case s == Hazard:
		return "H"
	case 0 <= s && s <= 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

// Grid is the player-visible board in row-major order.
type Grid []CellState

func (g Grid) At(width, x, y int) CellState {
	return g[y*width+x]
}

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			fmt.Fprint(&b, g[y*width+x].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}

type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
