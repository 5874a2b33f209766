// Package tui is a full-screen front end over the station engine.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/abandoned-station/internal/station"
)

const help = "Enter: scan  q/Esc: quit"

type UI struct {
	game  *station.Game
	debug bool
	log   logrus.FieldLogger

	app    *tview.Application
	table  *tview.Table
	status *tview.TextView
}

func New(game *station.Game, debug bool, log logrus.FieldLogger) *UI {
	u := &UI{
		game:  game,
		debug: debug,
		log:   log,
		app:   tview.NewApplication(),
		table: tview.NewTable().
			SetSelectable(true, true).
			SetFixed(1, 1),
		status: tview.NewTextView().
			SetDynamicColors(true),
	}
	u.status.SetBorder(true).SetTitle(" Abandoned Space Station ")

	u.drawHeaders()
	u.drawGrid()
	u.table.Select(1, 1)
	u.table.SetSelectedFunc(func(row, col int) {
		u.reveal(col-1, row-1)
	})
	u.status.SetText(statusText(u.game, ""))

	u.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyEscape,
			event.Key() == tcell.KeyRune && (event.Rune() == 'q' || event.Rune() == 'Q'):
			u.log.WithField("actions", u.game.Actions()).Info("player quit")
			u.app.Stop()
			return nil
		}
		return event
	})

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(u.table, 0, 1, true).
		AddItem(u.status, 5, 0, false)
	u.app.SetRoot(layout, true)
	return u
}

// Run blocks until the player quits or ctx is cancelled. Cancellation is
// reported as the context error.
func (u *UI) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			u.app.Stop()
		case <-done:
		}
	}()

	if err := u.app.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return ctx.Err()
}

func (u *UI) drawHeaders() {
	p := u.game.Params()
	u.table.SetCell(0, 0, tview.NewTableCell("").SetSelectable(false))
	for x := range p.Width {
		u.table.SetCell(0, x+1, header(x))
	}
	for y := range p.Height {
		u.table.SetCell(y+1, 0, header(y))
	}
}

func header(i int) *tview.TableCell {
	return tview.NewTableCell(strconv.Itoa(i)).
		SetTextColor(tcell.ColorYellow).
		SetAlign(tview.AlignCenter).
		SetSelectable(false)
}

func (u *UI) drawGrid() {
	p := u.game.Params()
	grid := u.game.Grid()
	for y := range p.Height {
		for x := range p.Width {
			text, color := cellText(grid.At(p.Width, x, y), u.debug && u.game.IsHazard(x, y))
			u.table.SetCell(y+1, x+1, tview.NewTableCell(" "+text+" ").
				SetTextColor(color).
				SetAlign(tview.AlignCenter))
		}
	}
}

func (u *UI) reveal(x, y int) {
	if u.game.Status().Terminal() {
		return
	}

	out, err := u.game.Reveal(x, y)
	var msg string
	switch {
	case errors.Is(err, station.ErrAlreadyScanned):
		msg = "[yellow]This area has already been scanned. Please choose another.[-]"
	case errors.Is(err, station.ErrInvalidCoordinates):
		msg = "[yellow]Invalid coordinates. Please try again.[-]"
	case err != nil:
		msg = "[red]" + tview.Escape(err.Error()) + "[-]"
	}
	if err != nil {
		u.log.WithError(err).Debug("reveal rejected")
	} else {
		u.log.WithFields(logrus.Fields{
			"point":  station.Point{X: x, Y: y}.String(),
			"kind":   out.Kind.String(),
			"status": out.Status.String(),
		}).Debug("reveal")
	}

	if u.game.Status().Terminal() {
		u.table.SetSelectable(false, false)
		stats := u.game.Stats()
		u.log.WithFields(logrus.Fields{
			"status":   u.game.Status().String(),
			"revealed": stats.Revealed,
			"actions":  stats.Actions,
		}).Info("game over")
	}
	u.drawGrid()
	u.status.SetText(statusText(u.game, msg))
}

// cellText picks the symbol and colour of a grid cell. showHazard forces the
// hazard symbol for debug display.
func cellText(state station.CellState, showHazard bool) (string, tcell.Color) {
	if showHazard {
		state = station.Hazard
	}
	switch {
	case state == station.Unexplored:
		return state.String(), tcell.ColorGray
	case state == station.Hazard:
		return state.String(), tcell.ColorRed
	case state == 0:
		return state.String(), tcell.ColorWhite
	case state > 0 && state <= 8:
		return state.String(), tcell.ColorGreen
	default:
		return state.String(), tcell.ColorFuchsia
	}
}

// statusText describes the game for the status line. msg, if not empty, is
// shown on the first line.
func statusText(g *station.Game, msg string) string {
	s := g.Stats()
	text := ""
	if msg != "" {
		text = msg + "\n"
	}
	switch g.Status() {
	case station.Defeated:
		text += "[red]ALERT! You've triggered a hazard. GAME OVER.[-]\n"
	case station.Victorious:
		text += "[green]Congratulations! You've mapped all safe areas.[-]\n"
	}
	text += fmt.Sprintf(
		"Grid %dx%d, %d hazards. Scanned %d of %d (%.1f%%) in %d actions.\n",
		s.Width, s.Height, s.Hazards, s.Revealed, s.SafeCells, s.CompletionPercent, s.Actions,
	)
	if g.Status().Terminal() {
		return text + "q/Esc: quit"
	}
	return text + help
}
