package station

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Status int8

const (
	InProgress Status = iota
	Defeated
	Victorious
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Defeated:
		return "defeated"
	case Victorious:
		return "victorious"
	default:
		return "unknown"
	}
}

func (s Status) Terminal() bool {
	return s == Defeated || s == Victorious
}

type RevealKind int8

const (
	Scanned   RevealKind = iota // safe area opened, Adjacent holds its count
	HitHazard                   // the game is lost
	Ignored                     // nothing changed
)

func (k RevealKind) String() string {
	switch k {
	case Scanned:
		return "scanned"
	case HitHazard:
		return "hit hazard"
	case Ignored:
		return "ignored"
	default:
		return "unknown"
	}
}

type Outcome struct {
	Kind     RevealKind
	Adjacent int
	Status   Status
}

// Game is the state of one session. It is not safe for concurrent use.
type Game struct {
	GameParams
	hazards   []bool /* real hazard points */
	revealed  []bool
	grid      Grid /* player knowledge */
	nrevealed int
	actions   int
	status    Status
}

func newGame(params GameParams) *Game {
	grid := make(Grid, params.Cells())
	for i := range grid {
		grid[i] = Unexplored
	}
	return &Game{
		GameParams: params,
		hazards:    make([]bool, params.Cells()),
		revealed:   make([]bool, params.Cells()),
		grid:       grid,
		status:     InProgress,
	}
}

// NewGame validates params and places hazards at random using r. A nil r is
// replaced with a randomly seeded source.
func NewGame(params GameParams, r *rand.Rand) (*Game, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	g := newGame(params)
	g.placeHazards(r)
	return g, nil
}

// NewGameWithHazards builds a game over a known layout. hazards must hold
// exactly params.HazardCount distinct in-bounds points.
func NewGameWithHazards(params GameParams, hazards []Point) (*Game, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if len(hazards) != params.HazardCount {
		return nil, fmt.Errorf(
			"%w: expected %d hazards, got %d",
			ErrInvalidParams, params.HazardCount, len(hazards),
		)
	}
	g := newGame(params)
	for _, p := range hazards {
		if !g.InBounds(p.X, p.Y) {
			return nil, fmt.Errorf("%w: hazard %s out of bounds", ErrInvalidParams, p)
		}
		i := g.index(p.X, p.Y)
		if g.hazards[i] {
			return nil, fmt.Errorf("%w: duplicate hazard %s", ErrInvalidParams, p)
		}
		g.hazards[i] = true
	}
	return g, nil
}

func (g *Game) index(x, y int) int {
	return y*g.Width + x
}

func (g *Game) Params() GameParams {
	return g.GameParams
}

func (g *Game) Status() Status {
	return g.status
}

func (g *Game) Actions() int {
	return g.actions
}

func (g *Game) IsHazard(x, y int) bool {
	return g.InBounds(x, y) && g.hazards[g.index(x, y)]
}

func (g *Game) IsRevealed(x, y int) bool {
	return g.InBounds(x, y) && g.revealed[g.index(x, y)]
}

// Grid returns a copy of the player-visible board.
func (g *Game) Grid() Grid {
	grid := make(Grid, len(g.grid))
	copy(grid, g.grid)
	return grid
}

func (g *Game) Hazards() []Point {
	return g.points(g.hazards)
}

func (g *Game) Revealed() []Point {
	return g.points(g.revealed)
}

func (g *Game) points(set []bool) []Point {
	points := make([]Point, 0)
	for i, ok := range set {
		if ok {
			points = append(points, Point{X: i % g.Width, Y: i / g.Width})
		}
	}
	return points
}

// AdjacentHazards counts hazards among the in-bounds neighbours of x,y. It
// reports 0 for a hazard cell and for coordinates outside the grid.
func (g *Game) AdjacentHazards(x, y int) int {
	if !g.InBounds(x, y) || g.hazards[g.index(x, y)] {
		return 0
	}
	n := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			xx, yy := x+dx, y+dy
			if (dx != 0 || dy != 0) && g.InBounds(xx, yy) &&
				g.hazards[g.index(xx, yy)] {
				n++
			}
		}
	}
	return n
}

// Reveal scans the area at x,y. Coordinates outside the grid and areas that
// were already scanned are reported as errors and leave the game untouched.
// Once the game is over Reveal does nothing and reports the final status.
func (g *Game) Reveal(x, y int) (Outcome, error) {
	if g.status.Terminal() {
		return Outcome{Kind: Ignored, Status: g.status}, nil
	}
	if !g.InBounds(x, y) {
		return Outcome{Kind: Ignored, Status: g.status},
			fmt.Errorf("%w: (%d, %d)", ErrInvalidCoordinates, x, y)
	}
	i := g.index(x, y)
	if g.revealed[i] {
		return Outcome{Kind: Ignored, Status: g.status},
			fmt.Errorf("%w: (%d, %d)", ErrAlreadyScanned, x, y)
	}

	g.actions++

	if g.hazards[i] {
		g.grid[i] = Hazard
		g.status = Defeated
		Log.WithFields(logrus.Fields{
			"x": x, "y": y, "actions": g.actions,
		}).Info("hazard triggered")
		Log.Debug("final grid\n", g.grid.ToString(g.Width))
		return Outcome{Kind: HitHazard, Status: g.status}, nil
	}

	n := g.AdjacentHazards(x, y)
	g.grid[i] = CellState(n)
	g.revealed[i] = true
	g.nrevealed++

	Log.WithFields(logrus.Fields{
		"x": x, "y": y, "adjacent": n, "revealed": g.nrevealed,
	}).Debug("area scanned")

	if g.CheckVictory() {
		Log.WithField("actions", g.actions).Info("all safe areas scanned")
	}
	return Outcome{Kind: Scanned, Adjacent: n, Status: g.status}, nil
}

// CheckVictory marks the game won once every safe area is scanned. A lost
// game never becomes a won one.
func (g *Game) CheckVictory() bool {
	if g.status == Defeated {
		return false
	}
	if g.nrevealed >= g.SafeCells() {
		g.status = Victorious
	}
	return g.status == Victorious
}
