package module

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atlanticdynamic/actorspec/internal/errz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPath = "/abs/actorspec.config.json"

func demoDoc() map[string]any {
	return map[string]any{
		"actorspecVersion": 1,
		"actor":            map[string]any{"title": "Demo"},
	}
}

func TestResolveShapesAreEquivalent(t *testing.T) {
	t.Parallel()

	exports := map[string]Export{
		"value": Value(demoDoc()),
		"func": Func(func(context.Context) (any, error) {
			return demoDoc(), nil
		}),
		"async": Async(func(context.Context) <-chan Result {
			ch := make(chan Result, 1)
			go func() {
				time.Sleep(10 * time.Millisecond)
				ch <- Result{Value: demoDoc()}
			}()
			return ch
		}),
	}

	for name, export := range exports {
		t.Run(name, func(t *testing.T) {
			m := &Module{Path: testPath, Export: export}
			got, err := m.Resolve(t.Context())
			require.NoError(t, err)
			assert.Equal(t, demoDoc(), got)
		})
	}
}

func TestResolveRejects(t *testing.T) {
	t.Parallel()

	factory := func(v any) Export {
		return Func(func(context.Context) (any, error) { return v, nil })
	}

	tests := []struct {
		name     string
		export   Export
		wantKind error
		wantErr  error
	}{
		{name: "zero export", export: Export{}, wantKind: errz.ErrInvalidExport, wantErr: ErrNoDefaultExport},
		{name: "factory returns nil", export: factory(nil), wantKind: errz.ErrUnresolvedConfig, wantErr: ErrResolvedNil},
		{name: "factory returns false", export: factory(false), wantKind: errz.ErrUnresolvedConfig, wantErr: ErrResolvedFalsy},
		{name: "factory returns zero", export: factory(0), wantKind: errz.ErrUnresolvedConfig, wantErr: ErrResolvedFalsy},
		{name: "factory returns empty string", export: factory(""), wantKind: errz.ErrUnresolvedConfig, wantErr: ErrResolvedFalsy},
		{name: "factory returns string", export: factory("spec"), wantKind: errz.ErrUnresolvedConfig, wantErr: ErrResolvedNonObject},
		{name: "factory returns array", export: factory([]any{1}), wantKind: errz.ErrUnresolvedConfig, wantErr: ErrResolvedNonObject},
		{name: "factory returns nil map", export: factory(map[string]any(nil)), wantKind: errz.ErrUnresolvedConfig, wantErr: ErrResolvedFalsy},
		{
			name: "factory fails",
			export: Func(func(context.Context) (any, error) {
				return nil, errors.New("network down")
			}),
			wantKind: errz.ErrUnresolvedConfig,
		},
		{
			name: "async fails",
			export: Async(func(context.Context) <-chan Result {
				ch := make(chan Result, 1)
				ch <- Result{Err: errors.New("boom")}
				return ch
			}),
			wantKind: errz.ErrUnresolvedConfig,
			wantErr:  ErrFactoryFailed,
		},
		{
			name: "async closes without result",
			export: Async(func(context.Context) <-chan Result {
				ch := make(chan Result)
				close(ch)
				return ch
			}),
			wantKind: errz.ErrUnresolvedConfig,
			wantErr:  ErrNoResult,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Module{Path: testPath, Export: tt.export}
			got, err := m.Resolve(t.Context())
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.wantKind)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Contains(t, err.Error(), testPath)
		})
	}
}

func TestResolveAsyncHonorsContext(t *testing.T) {
	t.Parallel()

	never := Async(func(context.Context) <-chan Result {
		return make(chan Result)
	})

	ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
	defer cancel()

	m := &Module{Path: testPath, Export: never}
	_, err := m.Resolve(ctx)
	require.ErrorIs(t, err, errz.ErrUnresolvedConfig)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestResolveStructValue(t *testing.T) {
	t.Parallel()

	m := &Module{Path: testPath, Export: Value(&demoSpec{Version: 3})}
	got, err := m.Resolve(t.Context())
	require.NoError(t, err)
	assert.Equal(t, &demoSpec{Version: 3}, got)
}
