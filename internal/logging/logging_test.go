package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-engine/internal/config"
)

func TestLevels(t *testing.T) {
	tests := []struct {
		name  string
		conf  config.Config
		level logrus.Level
	}{
		{"development", config.Config{Mode: "development"}, logrus.DebugLevel},
		{"production", config.Config{Mode: "production"}, logrus.InfoLevel},
		{"override", config.Config{Mode: "production", Log: config.LogConfig{Level: "warn"}}, logrus.WarnLevel},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			log, err := New(&test.conf)
			require.NoError(t, err)
			assert.Equal(t, test.level, log.GetLevel())
		})
	}

	_, err := New(&config.Config{Log: config.LogConfig{Level: "loud"}})
	assert.Error(t, err)
}

func TestFormatter(t *testing.T) {
	log, err := New(&config.Config{Mode: "production"})
	require.NoError(t, err)
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)
}

func TestLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mines.log")
	log, err := New(&config.Config{
		Mode: "production",
		Log:  config.LogConfig{File: path, MaxSize: 1, MaxBackups: 1, MaxAge: 1},
	})
	require.NoError(t, err)
	log.SetOutput(os.Stderr)

	log.Info("hello")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}
