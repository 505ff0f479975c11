package logging

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper-engine/internal/config"
)

// New builds the process logger. Development gets coloured text at debug
// level, production gets JSON at info level. log.level overrides either.
// When log.file is set entries are also written to a rotated file.
func New(c *config.Config) (*logrus.Logger, error) {
	log := logrus.New()

	level := logrus.InfoLevel
	if c.Development() {
		level = logrus.DebugLevel
	}
	if c.Log.Level != "" {
		var err error
		if level, err = logrus.ParseLevel(c.Log.Level); err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
	}
	log.SetLevel(level)

	if c.Development() {
		log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	if c.Log.File != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   c.Log.File,
			MaxSize:    c.Log.MaxSize,
			MaxBackups: c.Log.MaxBackups,
			MaxAge:     c.Log.MaxAge,
			Level:      level,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return nil, fmt.Errorf("unable to set up log file: %w", err)
		}
		log.AddHook(hook)
	}

	return log, nil
}
