package station

import (
	"fmt"
	"strconv"
	"strings"
)

type GameParams struct {
	Width, Height, HazardCount int
}

// DefaultParams is the board used when the player does not customize it.
var DefaultParams = GameParams{Width: 5, Height: 5, HazardCount: 5}

func (p GameParams) Unpack() (w int, h int, hc int) {
	return p.Width, p.Height, p.HazardCount
}

func (p GameParams) Cells() int {
	return p.Width * p.Height
}

func (p GameParams) SafeCells() int {
	return p.Cells() - p.HazardCount
}

// MaxHazards is the largest hazard count that still leaves one safe cell.
func (p GameParams) MaxHazards() int {
	return p.Cells() - 1
}

func (p GameParams) Validate() error {
	w, h, hc := p.Unpack()
	if w < 1 || h < 1 {
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidParams, w, h)
	}
	if hc < 1 {
		return fmt.Errorf("%w: need at least 1 hazard, got %d", ErrInvalidParams, hc)
	}
	if hc > p.MaxHazards() {
		return fmt.Errorf(
			"%w: at most %d hazards fit a %dx%d grid, got %d",
			ErrInvalidParams, p.MaxHazards(), w, h, hc,
		)
	}
	return nil
}

func (p GameParams) InBounds(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.HazardCount)
}

// ParseSeed reads params in the "W:H:N" form produced by [GameParams.Seed].
// Each part must be a whole number with nothing around it. The result is not
// validated.
func ParseSeed(seed string) (*GameParams, error) {
	parts := strings.Split(seed, ":")
	if len(parts) != 3 {
		return nil, fmt.Errorf(`invalid game params seed "%s": want W:H:N`, seed)
	}
	values := make([]int, len(parts))
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf(`invalid game params seed "%s": %w`, seed, err)
		}
		values[i] = v
	}
	return &GameParams{Width: values[0], Height: values[1], HazardCount: values[2]}, nil
}
