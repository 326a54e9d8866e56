// File: internal/observability/logger_test.go
package observability

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/xkilldash9x/humanmouse/internal/config"
)

// syncBuffer is a goroutine-safe bytes.Buffer usable as a zapcore.WriteSyncer.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) Sync() error { return nil }

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

var _ zapcore.WriteSyncer = (*syncBuffer)(nil)

// -- Test Cases --

func TestNewLogger(t *testing.T) {
	t.Run("console format colorizes levels", func(t *testing.T) {
		out := &syncBuffer{}
		logger := NewLogger(config.LoggerConfig{
			Level:       "debug",
			Format:      "console",
			ServiceName: "humanmouse",
			Colors:      config.ColorConfig{Warn: "yellow"},
		}, out)

		logger.Named("humanoid").Warn("Humanoid: target element not found or invisible", zap.String("selector", "#missing"))
		logger.Info("plain level")
		require.NoError(t, logger.Sync())

		text := out.String()
		assert.Contains(t, text, "\x1b[33mWARN\x1b[0m")
		assert.Contains(t, text, "humanmouse.humanoid.")
		assert.Contains(t, text, `"selector": "#missing"`)
		// Info has no configured color and is printed bare.
		assert.Contains(t, text, "\tINFO\t")
	})

	t.Run("json format", func(t *testing.T) {
		out := &syncBuffer{}
		logger := NewLogger(config.LoggerConfig{Level: "info", Format: "json"}, out)

		logger.Info("moved", zap.Int("points", 31))
		require.NoError(t, logger.Sync())

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out.String())), &entry))
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "moved", entry["msg"])
		assert.Equal(t, 31.0, entry["points"])
	})

	t.Run("level filtering and invalid level fallback", func(t *testing.T) {
		out := &syncBuffer{}
		logger := NewLogger(config.LoggerConfig{Level: "not-a-level", Format: "json"}, out)

		logger.Debug("hidden")
		logger.Info("shown")
		require.NoError(t, logger.Sync())

		assert.NotContains(t, out.String(), "hidden")
		assert.Contains(t, out.String(), "shown")
	})

	t.Run("file output is json", func(t *testing.T) {
		logFile := filepath.Join(t.TempDir(), "humanmouse.log")
		out := &syncBuffer{}
		logger := NewLogger(config.LoggerConfig{
			Level:   "info",
			Format:  "console",
			LogFile: logFile,
			MaxSize: 1,
		}, out)

		logger.Info("to both sinks")
		_ = logger.Sync()

		data, err := os.ReadFile(logFile)
		require.NoError(t, err)
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
		assert.Equal(t, "to both sinks", entry["msg"])
		assert.Contains(t, out.String(), "to both sinks")
	})
}

func TestInitialize(t *testing.T) {
	ResetForTest()
	defer ResetForTest()

	first := &syncBuffer{}
	second := &syncBuffer{}
	Initialize(config.LoggerConfig{Level: "info", Format: "json", ServiceName: "first"}, first)
	Initialize(config.LoggerConfig{Level: "info", Format: "json", ServiceName: "second"}, second)

	GetLogger().Info("hello")
	Sync()

	assert.Contains(t, first.String(), `"logger":"first"`)
	assert.Empty(t, second.String(), "only the first initialization takes effect")
}

func TestGetLogger(t *testing.T) {
	t.Run("fallback before initialization", func(t *testing.T) {
		ResetForTest()
		defer ResetForTest()

		logger := GetLogger()
		require.NotNil(t, logger)
		assert.Equal(t, "fallback", logger.Name())
	})

	t.Run("returns initialized instance", func(t *testing.T) {
		ResetForTest()
		defer ResetForTest()

		Initialize(config.LoggerConfig{Level: "info", Format: "json", ServiceName: "svc"}, &syncBuffer{})
		assert.Equal(t, "svc", GetLogger().Name())
	})
}
