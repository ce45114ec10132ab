package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
	}

	log := NewWithOutput(cfg, &buf)
	log.Info().Msg("test message")

	// Parse the JSON output
	var result map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)

	assert.Equal(t, "info", result["level"])
	assert.Equal(t, "test message", result["message"])
	assert.Equal(t, "test-service", result["service"])
	assert.NotEmpty(t, result["time"])
}

func TestNewLogger_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{
		Level:       "info",
		Format:      "console",
		ServiceName: "test-service",
	}

	log := NewWithOutput(cfg, &buf)
	log.Info().Msg("test message")

	// Console format should be human-readable
	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, "INF")
}

func TestNewLogger_LogLevelFiltering(t *testing.T) {
	// One event per level, as the service emits them.
	emit := map[string]func(l *Logger){
		"debug": func(l *Logger) { l.Debug().Str("query", "lon").Msg("Starting airport search") },
		"info":  func(l *Logger) { l.Info().Int("status", 200).Msg("HTTP request") },
		"warn":  func(l *Logger) { l.Warn().Int("status", 503).Msg("Airport search returned non-200 status") },
		"error": func(l *Logger) { l.Error().Str("panic", "boom").Msg("Panic recovered") },
	}

	tests := []struct {
		configLevel string
		expected    []string
	}{
		{configLevel: "debug", expected: []string{"debug", "info", "warn", "error"}},
		{configLevel: "info", expected: []string{"info", "warn", "error"}},
		{configLevel: "warn", expected: []string{"warn", "error"}},
		{configLevel: "error", expected: []string{"error"}},
	}

	for _, tt := range tests {
		t.Run(tt.configLevel, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithOutput(Config{Level: tt.configLevel, Format: "json", ServiceName: "test"}, &buf)

			for _, level := range []string{"debug", "info", "warn", "error"} {
				emit[level](log)
			}

			var levels []string
			dec := json.NewDecoder(&buf)
			for dec.More() {
				var entry map[string]interface{}
				require.NoError(t, dec.Decode(&entry))
				levels = append(levels, entry["level"].(string))
			}
			assert.Equal(t, tt.expected, levels)
		})
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{
		Level:       "invalid",
		Format:      "json",
		ServiceName: "test",
	}

	// Should default to info level without panicking
	log := NewWithOutput(cfg, &buf)
	log.Info().Msg("test")

	assert.NotEmpty(t, buf.String())
}

func TestNewLogger_WithCaller(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{
		Level:        "info",
		Format:       "json",
		ServiceName:  "test",
		EnableCaller: true,
	}

	log := NewWithOutput(cfg, &buf)
	log.Info().Msg("test")

	var result map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)

	// Caller should be present
	assert.Contains(t, result, "caller")
	caller := result["caller"].(string)
	assert.Contains(t, caller, "logger_test.go")
}

func TestLogger_WithContext(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test",
	}

	log := NewWithOutput(cfg, &buf)
	logWithContext := log.WithContext("custom_field", "custom_value")
	logWithContext.Info().Msg("test")

	var result map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)

	assert.Equal(t, "custom_value", result["custom_field"])
}

func TestLogger_WithSession(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "test"}, &buf)

	first := base.WithSession("sess-1").WithComponent("locationsearch")
	second := base.WithSession("sess-2")

	first.Info().Msg("Airport selected")
	second.Info().Msg("Airport selected")
	base.Info().Msg("Session registry closed")

	var entries []map[string]interface{}
	dec := json.NewDecoder(&buf)
	for dec.More() {
		var entry map[string]interface{}
		require.NoError(t, dec.Decode(&entry))
		entries = append(entries, entry)
	}
	require.Len(t, entries, 3)

	assert.Equal(t, "sess-1", entries[0]["session_id"])
	assert.Equal(t, "locationsearch", entries[0]["component"])

	// Children do not leak fields into siblings or the parent.
	assert.Equal(t, "sess-2", entries[1]["session_id"])
	assert.NotContains(t, entries[1], "component")
	assert.NotContains(t, entries[2], "session_id")
	assert.Equal(t, "test", entries[2]["service"])
}

func TestNop(t *testing.T) {
	log := Nop()
	assert.Equal(t, zerolog.Disabled, log.GetLevel())

	// Derived loggers stay disabled.
	assert.Equal(t, zerolog.Disabled, log.WithSession("sess-1").WithComponent("http").GetLevel())
}

func TestLogger_StructuredFields(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test",
	}

	log := NewWithOutput(cfg, &buf)
	log.Info().
		Str("query", "new york").
		Str("field", "origin").
		Int("results", 2).
		Float64("latitude", 40.6413).
		Bool("cache_hit", true).
		Msg("Airport search")

	var result map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)

	assert.Equal(t, "new york", result["query"])
	assert.Equal(t, "origin", result["field"])
	assert.Equal(t, float64(2), result["results"])
	assert.Equal(t, 40.6413, result["latitude"])
	assert.Equal(t, true, result["cache_hit"])
	assert.Equal(t, "Airport search", result["message"])
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, false, cfg.EnableCaller)
	assert.Equal(t, "flight-alert", cfg.ServiceName)
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))

	l := Nop()
	assert.Same(t, l, OrNop(l))
}
