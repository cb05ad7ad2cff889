package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWriter(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	SetupWriter(&buf, "warn", false)

	log.Info().Msg("dropped")
	log.Warn().Str("job_id", "j1").Msg("kept")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "j1", entry["job_id"])
	assert.Equal(t, "kept", entry["message"])
}

func TestSetupWriterUnknownLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)
	SetupWriter(&bytes.Buffer{}, "chatty", true)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
