package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"GOPORT", "LOG_LEVEL", "LOG_FORMAT", "RATE_LIMIT", "RATE_BURST", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, Config{
		Port:            "8000",
		LogLevel:        "info",
		LogFormat:       "text",
		RateLimit:       5,
		RateBurst:       10,
		ShutdownTimeout: 10 * time.Second,
	}, config)
}

func TestLoadConfigEnvFile(t *testing.T) {
	t.Setenv("GOPORT", "9000")
	t.Setenv("LOG_FORMAT", "")
	require.NoError(t, os.Unsetenv("LOG_FORMAT"))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GOPORT=7000\nLOG_FORMAT=json\n"), 0o600))

	config, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "9000", config.Port)
	assert.Equal(t, "json", config.LogFormat)
}

func TestLoadConfigInvalid(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")

	t.Setenv("RATE_LIMIT", "fast")
	_, err := LoadConfig(missing)
	assert.Error(t, err)

	t.Setenv("RATE_LIMIT", "1")
	t.Setenv("RATE_BURST", "0")
	_, err = LoadConfig(missing)
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLogger(Config{LogLevel: "warn", LogFormat: "json"}, &buf)
	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"key":"value"`)

	buf.Reset()
	NewLogger(Config{LogLevel: "nonsense"}, &buf).Info("text line")
	assert.Contains(t, buf.String(), "msg=\"text line\"")
}
