package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads variables from the given files (".env" when none are
// named) without overriding ones already set. Missing files are ignored.
func LoadDotEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

// ApplyEnv overlays STATION_* variables onto config.
func ApplyEnv(config *Config) error {
	if v, ok := os.LookupEnv("STATION_MODE"); ok {
		config.Mode = v
	}
	if Development() {
		config.Mode = ModeDevelopment
	}
	if v, ok := os.LookupEnv("STATION_LOG_PATH"); ok {
		config.Log.Path = v
	}
	if v, ok := os.LookupEnv("STATION_LOG_LEVEL"); ok {
		config.Log.Level = v
	}
	if v, ok := os.LookupEnv("STATION_GAME"); ok {
		config.Game.Seed = v
	}
	if err := lookupBool("STATION_DEBUG", &config.Game.Debug); err != nil {
		return err
	}
	return lookupBool("STATION_TUI", &config.Game.TUI)
}

func lookupBool(key string, dst *bool) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = b
	return nil
}
