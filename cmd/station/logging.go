package main

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/abandoned-station/internal/config"
)

// sessionHook tags every entry with the id of the current run.
type sessionHook string

func (h sessionHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h sessionHook) Fire(entry *logrus.Entry) error {
	entry.Data["session_id"] = string(h)
	return nil
}

func formatter(cfg config.Config) logrus.Formatter {
	if cfg.Development() {
		return &logrus.TextFormatter{DisableColors: true, FullTimestamp: true}
	}
	return &logrus.JSONFormatter{}
}

// setupLogging sends log to a rotating file only. The terminal belongs to the
// game.
func setupLogging(log *logrus.Logger, cfg config.Config, sessionID string) error {
	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.Log.Path,
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAgeDays,
		Level:      level,
		Formatter:  formatter(cfg),
	})
	if err != nil {
		return err
	}

	log.SetLevel(level)
	log.SetOutput(io.Discard)
	log.AddHook(sessionHook(sessionID))
	log.AddHook(hook)
	return nil
}
