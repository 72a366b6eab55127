package main

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_HasComponent(t *testing.T) {
	var buf bytes.Buffer
	initLogging(slog.LevelDebug, "text", &buf)

	newLogger("caesar").Info("hello")

	out := buf.String()
	assert.Contains(t, out, "component=caesar")
	assert.Contains(t, out, "hello")
}

func TestInitLogging_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	initLogging(slog.LevelInfo, "json", &buf)

	newLogger("substitution").Info("json check")

	out := buf.String()
	assert.Contains(t, out, `"level":"INFO"`)
	assert.Contains(t, out, `"component":"substitution"`)
}

func TestInitLogging_LevelGating(t *testing.T) {
	var buf bytes.Buffer
	initLogging(slog.LevelWarn, "text", &buf)

	logger := newLogger("gate")
	logger.Info("should be suppressed")
	logger.Warn("should appear")

	out := buf.String()
	assert.False(t, strings.Contains(out, "should be suppressed"))
	assert.Contains(t, out, "should appear")
}

func TestParseLevel(t *testing.T) {
	l, err := parseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)

	l, err = parseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)

	_, err = parseLevel("loud")
	assert.Error(t, err)
}

func TestInitLogging_FormatIgnoresCase(t *testing.T) {
	var buf bytes.Buffer
	initLogging(slog.LevelInfo, "JSON", &buf)

	newLogger("decode").Info("upper")
	assert.True(t, strings.HasPrefix(buf.String(), "{"), "got: %s", buf.String())
}
