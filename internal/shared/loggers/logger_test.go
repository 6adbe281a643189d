package loggers

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	logger.Debug().Msg("dropped")
	logger.Info().Str(FieldRunID, "01HZX3NDEKTSV4RRFFQ69G5FAV").Int(FieldWorkers, 4).Msg("starting aggregation")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "starting aggregation", entry["message"])
	assert.Equal(t, "01HZX3NDEKTSV4RRFFQ69G5FAV", entry[FieldRunID])
	assert.EqualValues(t, 4, entry[FieldWorkers])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "caller")
}

func TestNewWithWriter_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := NewWithWriter("loud", &bytes.Buffer{})
	assert.Error(t, err)
}

func TestCtx(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := NewWithWriter("debug", &buf)
	require.NoError(t, err)

	ctx := logger.WithContext(context.Background())
	Ctx(ctx).Debug().Msg("from context")
	assert.Contains(t, buf.String(), "from context")

	// a context without a logger yields a usable logger
	Ctx(context.Background()).Info().Msg("ignored")
}
