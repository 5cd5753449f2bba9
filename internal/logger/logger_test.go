package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitProductionWritesJSONWithAppAttrs(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	log := Init(Options{AppName: "SmartGoals", Env: "production", Output: &buf})

	log.Debug("hidden")
	log.Info("goal created", "goal_id", "g1")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "goal created", record["msg"])
	assert.Equal(t, "SmartGoals", record["app"])
	assert.Equal(t, "production", record["env"])
	assert.Equal(t, "g1", record["goal_id"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestInitDevelopmentUsesTextAtDebug(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Init(Options{AppName: "SmartGoals", Env: "development", Output: &buf})

	slog.Debug("prompt built", "len", 42)

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), `msg="prompt built"`)
	assert.Contains(t, buf.String(), "env=development")
}
