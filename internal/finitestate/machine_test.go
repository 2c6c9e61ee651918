package finitestate

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycle(t *testing.T) {
	t.Parallel()

	m, err := New(slog.DiscardHandler)
	require.NoError(t, err)
	assert.Equal(t, StatusNew, m.GetState())

	for _, next := range []string{StatusBooting, StatusRunning, StatusReloading, StatusRunning, StatusStopping, StatusStopped} {
		require.NoError(t, m.Transition(next), next)
		assert.Equal(t, next, m.GetState())
	}
}

func TestTransitionIfCurrentState(t *testing.T) {
	t.Parallel()

	m, err := New(slog.DiscardHandler)
	require.NoError(t, err)

	require.Error(t, m.TransitionIfCurrentState(StatusRunning, StatusReloading))
	assert.Equal(t, StatusNew, m.GetState())
}

func TestGetStateChan(t *testing.T) {
	t.Parallel()

	m, err := New(slog.DiscardHandler)
	require.NoError(t, err)

	ch := m.GetStateChan(t.Context())
	assert.Equal(t, StatusNew, <-ch)

	require.NoError(t, m.Transition(StatusBooting))
	select {
	case state := <-ch:
		assert.Equal(t, StatusBooting, state)
	case <-time.After(time.Second):
		t.Fatal("state change was not broadcast")
	}
}
