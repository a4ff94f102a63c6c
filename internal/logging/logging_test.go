package logging_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arisa-app/castdir/internal/config"
	"github.com/arisa-app/castdir/internal/logging"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logging.ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, logging.ParseLevel("WARN"))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel("chatty"))
}

func TestNewTo_consoleOnly(t *testing.T) {
	var console bytes.Buffer
	log, closer := logging.NewTo(&console, config.Log{Level: "warn"})
	defer closer.Close()

	log.Info("dropped")
	log.Warn("kept")

	assert.NotContains(t, console.String(), "dropped")
	assert.Contains(t, console.String(), `"msg":"kept"`)
}

func TestNewTo_teesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.log")
	var console bytes.Buffer
	log, closer := logging.NewTo(&console, config.Log{Level: "info", File: path, MaxSizeMB: 1})

	log.Info("hello", "cast", "美咲")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Equal(t, console.String(), string(data))
}
