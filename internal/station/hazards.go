package station

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// placeHazards draws random points until HazardCount distinct ones are
// taken. Params must be validated beforehand so that the loop terminates.
func (g *Game) placeHazards(r *rand.Rand) {
	placed, draws := 0, 0
	for placed < g.HazardCount {
		draws++
		x := r.IntN(g.Width)
		y := r.IntN(g.Height)
		i := g.index(x, y)
		if g.hazards[i] {
			continue
		}
		g.hazards[i] = true
		placed++
	}
	Log.WithFields(logrus.Fields{
		"params": g.Seed(),
		"draws":  draws,
	}).Debug("hazards placed")
}
