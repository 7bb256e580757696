package observability

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{name: "text", level: "info", format: "text"},
		{name: "json", level: "debug", format: "json"},
		{name: "default format", level: "warn", format: ""},
		{name: "upper case level", level: "ERROR", format: "text"},
		{name: "bad level", level: "verbose", format: "text", wantErr: true},
		{name: "bad format", level: "info", format: "logfmt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(&bytes.Buffer{}, tt.level, tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, logger)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestRunContextLogsBaseFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "debug", "json")
	require.NoError(t, err)

	run := NewRunContext(logger, "convert", "Europe/London")
	_, err = uuid.Parse(run.RunID)
	require.NoError(t, err)

	run.Info("converted", slog.String("to", "America/New_York"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "converted", entry["msg"])
	assert.Equal(t, run.RunID, entry[LogFieldRunID])
	assert.Equal(t, "convert", entry[LogFieldCommand])
	assert.Equal(t, "Europe/London", entry[LogFieldTimezone])
	assert.Equal(t, "America/New_York", entry["to"])
}

func TestRunContextLevels(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "info", "text")
	require.NoError(t, err)

	run := NewRunContext(logger, "parse", "UTC")
	run.Debug("hidden")
	assert.Empty(t, buf.String())

	run.Error("parse failed", errors.New("no layout"))
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), `error="no layout"`)
	assert.GreaterOrEqual(t, run.DurationMs(), int64(0))
}

func TestRunContextWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "info", "text")
	require.NoError(t, err)

	run := NewRunContext(logger, "rrule", "Asia/Tokyo")
	run.WithFields(slog.Int("count", 3)).Info("expanded")

	assert.Contains(t, buf.String(), "run_id="+run.RunID)
	assert.Contains(t, buf.String(), "count=3")
	assert.Contains(t, buf.String(), "timezone=Asia/Tokyo")
}
