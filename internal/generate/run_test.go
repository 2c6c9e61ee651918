package generate

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCollectsLogs(t *testing.T) {
	t.Parallel()

	var live bytes.Buffer
	run := newRun("/abs/spec.json", slog.NewTextHandler(&live, nil))
	assert.NotEqual(t, uuid.Nil, run.ID)
	assert.Equal(t, "/abs/spec.json", run.ConfigPath)

	run.Logger().Info("Importing config module")
	run.Logger().Info("Config resolved")
	assert.Equal(t, 2, run.LogCount())
	assert.Contains(t, live.String(), "Importing config module")
	assert.Contains(t, live.String(), run.ID.String())

	var replay bytes.Buffer
	require.NoError(t, run.PlaybackLogs(slog.NewTextHandler(&replay, nil)))
	assert.Contains(t, replay.String(), "Importing config module")
	assert.Contains(t, replay.String(), "Config resolved")
	assert.Positive(t, run.Duration())
}

func TestRunWithoutHandler(t *testing.T) {
	t.Parallel()

	run := newRun("/abs/spec.json", nil)
	run.Logger().Warn("quiet")
	assert.Equal(t, 1, run.LogCount())

	var replay bytes.Buffer
	require.NoError(t, run.PlaybackLogs(slog.NewTextHandler(&replay, nil)))
	assert.Contains(t, replay.String(), "quiet")
}

func TestRunIDsAreUnique(t *testing.T) {
	t.Parallel()

	a := newRun("/abs/spec.json", nil)
	b := newRun("/abs/spec.json", nil)
	assert.NotEqual(t, a.ID, b.ID)
}
