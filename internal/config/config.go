package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"
)

type LogConfig struct {
	Path       string `json:"path"`
	Level      string `json:"level"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
}

type GameConfig struct {
	Seed  string `json:"seed"` // W:H:N, skips the setup dialogue
	Debug bool   `json:"debug"`
	TUI   bool   `json:"tui"`
}

type Config struct {
	Mode string     `json:"mode"`
	Log  LogConfig  `json:"log"`
	Game GameConfig `json:"game"`
}

func Default() Config {
	return Config{
		Mode: ModeProduction,
		Log: LogConfig{
			Path:       "station.log",
			Level:      logrus.InfoLevel.String(),
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":             c.Mode,
		"log_path":         c.Log.Path,
		"log_level":        c.Log.Level,
		"log_max_size_mb":  c.Log.MaxSizeMB,
		"log_max_backups":  c.Log.MaxBackups,
		"log_max_age_days": c.Log.MaxAgeDays,
		"game_seed":        c.Game.Seed,
		"game_debug":       c.Game.Debug,
		"game_tui":         c.Game.TUI,
	}
}

func (c Config) Production() bool {
	return c.Mode == ModeProduction
}

func (c Config) Development() bool {
	return c.Mode != ModeProduction
}

// LogLevel parses the configured level. Development mode logs at least at
// debug level.
func (c Config) LogLevel() (logrus.Level, error) {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return level, fmt.Errorf("log level: %w", err)
	}
	if c.Development() && level < logrus.DebugLevel {
		level = logrus.DebugLevel
	}
	return level, nil
}

// ReadConfig overlays the JSON file at path onto config. Fields missing from
// the file keep their current values.
func ReadConfig(path string, config *Config) error {
	if b, err := os.ReadFile(path); err != nil {
		return err
	} else {
		return json.Unmarshal(b, config)
	}
}
