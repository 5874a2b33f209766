package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vancomm/abandoned-station/internal/station"
)

// Board is the read-only view of a game the renderer needs.
type Board interface {
	Params() station.GameParams
	Grid() station.Grid
	IsHazard(x, y int) bool
}

// Render writes the grid with column indices on top and row indices on the
// left. With debug set, every hazard is shown whether scanned or not.
func Render(w io.Writer, b Board, debug bool) {
	p := b.Params()
	grid := b.Grid()

	labelWidth := len(strconv.Itoa(p.Height - 1))
	cellWidth := len(strconv.Itoa(p.Width-1)) + 1
	indent := strings.Repeat(" ", labelWidth+2)

	var sb strings.Builder
	sb.WriteString(indent)
	for x := range p.Width {
		fmt.Fprintf(&sb, "%*d ", cellWidth, x)
	}
	sb.WriteString("\n")
	sb.WriteString(indent)
	sb.WriteString(strings.Repeat("-", (cellWidth+1)*p.Width))
	sb.WriteString("\n")

	for y := range p.Height {
		fmt.Fprintf(&sb, "%*d |", labelWidth, y)
		for x := range p.Width {
			symbol := grid.At(p.Width, x, y).String()
			if debug && b.IsHazard(x, y) {
				symbol = station.Hazard.String()
			}
			fmt.Fprintf(&sb, "%*s ", cellWidth, symbol)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	io.WriteString(w, sb.String())
}
