package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession_StampsSessionAndTime(t *testing.T) {
	var buf bytes.Buffer
	s := newSession(&buf, zerolog.InfoLevel)

	s.Logger.Info().Str("component", "app").Msg("started")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, s.ID, record["session"])
	assert.Equal(t, "started", record["message"])
	assert.Equal(t, "app", record["component"])
	assert.Contains(t, record, "time")

	_, err := uuid.Parse(s.ID)
	assert.NoError(t, err)
}

func TestNewSession_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	s := newSession(&buf, zerolog.InfoLevel)

	s.Logger.Debug().Msg("hidden")
	assert.Zero(t, buf.Len())
}

func TestOpen_CreatesDirsAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "codemarket.log")

	first, err := Open(path, zerolog.InfoLevel)
	require.NoError(t, err)
	first.Logger.Info().Msg("one")
	require.NoError(t, first.Close())

	second, err := Open(path, zerolog.InfoLevel)
	require.NoError(t, err)
	second.Logger.Info().Msg("two")
	require.NoError(t, second.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	require.Len(t, lines, 2)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("  ", zerolog.InfoLevel)
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	s := Discard()
	s.Logger.Info().Msg("dropped")
	assert.NoError(t, s.Close())
	assert.NotEmpty(t, s.ID)
}
