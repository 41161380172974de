package logger

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerWritesToLogPath(t *testing.T) {
	dir := t.TempDir()

	log, err := NewLogger(Config{Environment: "production", LogPath: dir, Level: "debug"})
	require.NoError(t, err)

	log.With(String("module", "posts")).Info("listed", Int("count", 3), Uint("id", 7), Bool("cached", false), Error(errors.New("boom")))
	_ = log.Sync()

	content, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"listed"`)
	assert.Contains(t, string(content), `"module":"posts"`)
	assert.Contains(t, string(content), `"count":3`)
	assert.Contains(t, string(content), `"id":7`)
	assert.Contains(t, string(content), `"cached":false`)
	assert.Contains(t, string(content), `"error":"boom"`)
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := NewLogger(Config{Level: "loud"})
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	log := NewNop()
	assert.NotPanics(t, func() {
		log.Error("ignored", String("error", "boom"))
	})
}
