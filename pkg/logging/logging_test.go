package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInitLevel(t *testing.T) {
	var buf bytes.Buffer
	Init("warn", &buf)

	Logger.Info().Msg("hidden")
	Logger.Warn().Str("file", "trails.yaml").Msg("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"file":"trails.yaml"`)
}

func TestInitUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	Init("loud", &buf)
	assert.Equal(t, zerolog.InfoLevel, Logger.GetLevel())

	Init("", &buf)
	assert.Equal(t, zerolog.InfoLevel, Logger.GetLevel())
}
