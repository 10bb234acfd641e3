package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/studiobook/backend/internal/logger"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New("warn", "json", &buf)

	log.Info("dropped")
	log.Warn("kept", "listing_id", "abc")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), "exactly one JSON line expected")
	assert.Equal(t, "kept", line["msg"])
	assert.Equal(t, "WARN", line["level"])
	assert.Equal(t, "abc", line["listing_id"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New("debug", "TEXT", &buf)

	log.Debug("quote computed", "total", 600)

	out := buf.String()
	assert.Contains(t, out, "quote computed")
	assert.Contains(t, out, "600")
	assert.False(t, json.Valid(buf.Bytes()))
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New("loud", "json", &buf)

	log.Debug("hidden")
	assert.Zero(t, buf.Len())

	log.Info("shown")
	assert.Contains(t, buf.String(), "shown")
}
