package console

import (
	"context"
	"strconv"
	"strings"

	"github.com/vancomm/abandoned-station/internal/station"
)

// MinGridSize is the smallest width or height the setup dialogue accepts.
const MinGridSize = 5

// Setup shows the title, asks whether to customize the grid and, if so,
// collects its size and hazard count. Otherwise it returns
// [station.DefaultParams].
func (c *Console) Setup(ctx context.Context) (station.GameParams, error) {
	c.clear()
	c.println("Abandoned Space Station\n")

	customize, err := c.askCustomize(ctx)
	if err != nil {
		return station.GameParams{}, err
	}
	if !customize {
		return station.DefaultParams, nil
	}
	return c.askSettings(ctx)
}

func (c *Console) askCustomize(ctx context.Context) (bool, error) {
	for {
		answer, err := c.ask(ctx, "Would you like to customize the grid size? (y/n):")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		c.println("Please enter 'y' or 'n'.")
	}
}

func (c *Console) askInt(ctx context.Context, prompt string) (int, error) {
	for {
		answer, err := c.ask(ctx, prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		if err == nil {
			return n, nil
		}
		c.println("Please enter a whole number.")
	}
}

func (c *Console) askSettings(ctx context.Context) (p station.GameParams, err error) {
	for {
		if p.Width, err = c.askInt(ctx, "Width (min. 5): "); err != nil {
			return
		}
		if p.Width >= MinGridSize {
			break
		}
		c.println("Width must be at least 5.")
	}

	for {
		if p.Height, err = c.askInt(ctx, "Height (min. 5): "); err != nil {
			return
		}
		if p.Height >= MinGridSize {
			break
		}
		c.println("Height must be at least 5.")
	}

	for {
		if p.HazardCount, err = c.askInt(ctx, "Number of hazards: "); err != nil {
			return
		}
		if p.HazardCount < 1 {
			c.println("There must be at least 1 hazard.")
			continue
		}
		if p.HazardCount > p.MaxHazards() {
			c.printf("There can be a maximum of %d hazards.\n", p.MaxHazards())
			continue
		}
		break
	}

	c.log.WithField("params", p.Seed()).Debug("custom settings")
	return p, nil
}
