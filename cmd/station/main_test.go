package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vancomm/abandoned-station/internal/config"
	"github.com/vancomm/abandoned-station/internal/station"
)

func TestFatalBeforeLoggingPrintsOnce(t *testing.T) {
	var buf bytes.Buffer
	prev := stderr
	stderr = &buf
	t.Cleanup(func() { stderr = prev })

	assert.Equal(t, io.Discard, newLogger().Out)
	assert.Equal(t, 1, fatal("unable to read config %s: %s", "station.json", "no such file"))
	assert.Equal(t, 1, strings.Count(buf.String(), "unable to read config station.json: no such file"))
}

func TestNeedsConsole(t *testing.T) {
	fixed := &station.GameParams{Width: 5, Height: 5, HazardCount: 5}
	tests := []struct {
		name  string
		tui   bool
		fixed *station.GameParams
		want  bool
	}{
		{"console with dialogue", false, nil, true},
		{"console with fixed grid", false, fixed, true},
		{"tui with dialogue", true, nil, true},
		{"tui with fixed grid", true, fixed, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Game.TUI = tt.tui
			assert.Equal(t, tt.want, needsConsole(cfg, tt.fixed))
		})
	}
}
