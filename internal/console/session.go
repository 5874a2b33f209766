package console

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/abandoned-station/internal/station"
)

const rule = "========================================"

func (c *Console) banner() {
	c.println("\n" + rule)
	c.println("  Abandoned Space Station")
	c.println(rule)
	c.println("\nWelcome to the derelict space station!")
	c.println("Your mission is to scan all safe areas,")
	c.println("without triggering any hazards.")
	c.println("\nInstructions:")
	c.println("- ? = Unexplored area")
	c.println("- 0-8 = Number of adjacent hazards")
	c.println("- H = Hazard (Game Over)")
	c.println("\nEnter coordinates in the format 'x y' (e.g. '2 3')")
	c.println("Enter 'q' to quit the game.")
	c.println(rule + "\n")
}

// askCoordinates prompts until the player enters valid coordinates or quits.
// End of input counts as quitting.
func (c *Console) askCoordinates(ctx context.Context, p station.GameParams) (pt station.Point, quit bool, err error) {
	for {
		text, err := c.ask(ctx, "Enter coordinates (x y) or 'q' to quit: ")
		if errors.Is(err, io.EOF) {
			return pt, true, nil
		}
		if err != nil {
			return pt, false, err
		}
		in := ParseCoordinates(text, p.Width, p.Height)
		switch in.Kind {
		case InputQuit:
			return pt, true, nil
		case InputCoords:
			return in.Point, false, nil
		}
		c.println(in.Err.Error())
	}
}

// Play runs the game until it is won, lost or the player quits. It returns
// the context error if ctx is cancelled while waiting for input.
func (c *Console) Play(ctx context.Context, g *station.Game) error {
	c.clear()
	c.banner()

	for g.Status() == station.InProgress {
		Render(c.out, g, c.Debug)

		pt, quit, err := c.askCoordinates(ctx, g.Params())
		if err != nil {
			return err
		}
		if quit {
			c.log.WithField("actions", g.Actions()).Info("player quit")
			c.println("\nGame terminated. Goodbye!")
			return nil
		}

		out, err := g.Reveal(pt.X, pt.Y)
		switch {
		case errors.Is(err, station.ErrAlreadyScanned):
			c.println("This area has already been scanned. Please choose another.")
			continue
		case errors.Is(err, station.ErrInvalidCoordinates):
			c.println("Invalid coordinates. Please try again.")
			continue
		case err != nil:
			return err
		}

		c.log.WithFields(logrus.Fields{
			"point":  pt.String(),
			"kind":   out.Kind.String(),
			"status": out.Status.String(),
		}).Debug("reveal")

		if out.Kind == station.Scanned {
			c.clear()
		}
	}

	Render(c.out, g, c.Debug)
	switch g.Status() {
	case station.Defeated:
		c.println("\nALERT! You've triggered a hazard.")
		c.println("GAME OVER - The station has claimed another explorer.")
	case station.Victorious:
		c.println("\nCongratulations! You've mapped all safe areas.")
		c.println("The space station is now secured. Mission accomplished!")
	}

	stats := g.Stats()
	c.log.WithFields(logrus.Fields{
		"status":   g.Status().String(),
		"revealed": stats.Revealed,
		"actions":  stats.Actions,
	}).Info("game over")
	c.printStats(stats)
	return nil
}

func (c *Console) printStats(s station.Statistics) {
	sep := strings.Repeat("-", len(rule))
	c.println("\n" + sep)
	c.println("MISSION STATISTICS")
	c.println(sep)
	c.printf("Grid size: %dx%d\n", s.Width, s.Height)
	c.printf("Number of hazards: %d\n", s.Hazards)
	c.printf("Areas scanned: %d of %d (%.1f%%)\n", s.Revealed, s.SafeCells, s.CompletionPercent)
	c.printf("Total actions: %d\n", s.Actions)
	c.println(sep)
}
