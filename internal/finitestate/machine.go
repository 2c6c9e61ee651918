// Package finitestate wraps go-fsm with the lifecycle states shared by the supervised runnables.
package finitestate

import (
	"context"
	"log/slog"
	"time"

	"github.com/robbyt/go-fsm/v2"
	"github.com/robbyt/go-fsm/v2/hooks"
	"github.com/robbyt/go-fsm/v2/hooks/broadcast"
	"github.com/robbyt/go-fsm/v2/transitions"
)

const (
	StatusNew       = transitions.StatusNew
	StatusBooting   = transitions.StatusBooting
	StatusRunning   = transitions.StatusRunning
	StatusReloading = transitions.StatusReloading
	StatusStopping  = transitions.StatusStopping
	StatusStopped   = transitions.StatusStopped
	StatusError     = transitions.StatusError
	StatusUnknown   = transitions.StatusUnknown
)

// broadcastTimeout bounds how long a slow state subscriber can hold up a transition.
const broadcastTimeout = 5 * time.Second

// Machine is the subset of the state machine used by runnables.
type Machine interface {
	Transition(state string) error
	TransitionBool(state string) bool
	TransitionIfCurrentState(currentState, newState string) error
	SetState(state string) error
	GetState() string
	// GetStateChan sends the current state, then every change, until ctx is done.
	GetStateChan(ctx context.Context) <-chan string
}

type machine struct {
	*fsm.Machine
	broadcast *broadcast.Manager
}

// New creates a Machine in StatusNew that follows the typical lifecycle transitions.
func New(handler slog.Handler) (Machine, error) {
	registry, err := hooks.NewRegistry(
		hooks.WithLogHandler(handler),
		hooks.WithTransitions(transitions.Typical),
	)
	if err != nil {
		return nil, err
	}

	manager := broadcast.NewManager(handler)
	err = registry.RegisterPostTransitionHook(hooks.PostTransitionHookConfig{
		Name:   "broadcast",
		From:   []string{"*"},
		To:     []string{"*"},
		Action: manager.BroadcastHook,
	})
	if err != nil {
		return nil, err
	}

	f, err := fsm.New(
		StatusNew,
		transitions.Typical,
		fsm.WithLogHandler(handler),
		fsm.WithCallbackRegistry(registry),
	)
	if err != nil {
		return nil, err
	}
	return &machine{Machine: f, broadcast: manager}, nil
}

func (m *machine) GetStateChan(ctx context.Context) <-chan string {
	out := make(chan string, 1)

	sub, err := m.broadcast.GetStateChan(ctx, broadcast.WithTimeout(broadcastTimeout))
	if err != nil {
		close(out)
		return out
	}
	out <- m.GetState()

	go func() {
		defer close(out)
		for state := range sub {
			out <- state
		}
	}()
	return out
}
