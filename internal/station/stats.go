package station

type Statistics struct {
	Width, Height     int
	Hazards           int
	Revealed          int
	SafeCells         int
	Actions           int
	CompletionPercent float64
}

func (g *Game) Stats() Statistics {
	safe := g.SafeCells()
	var percent float64
	if safe > 0 {
		percent = float64(g.nrevealed) / float64(safe) * 100
	}
	return Statistics{
		Width:             g.Width,
		Height:            g.Height,
		Hazards:           g.HazardCount,
		Revealed:          g.nrevealed,
		SafeCells:         safe,
		Actions:           g.actions,
		CompletionPercent: percent,
	}
}
