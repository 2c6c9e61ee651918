package generate

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathsToAbsolute(t *testing.T) {
	t.Parallel()

	cwd := t.TempDir()
	p, err := NewPaths(cwd)
	require.NoError(t, err)
	assert.Equal(t, cwd, p.CWD())

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "bare file", in: "actorspec.config.json", want: filepath.Join(cwd, "actorspec.config.json")},
		{name: "dot relative", in: "./config/spec.toml", want: filepath.Join(cwd, "config", "spec.toml")},
		{name: "parent relative", in: "../spec.yaml", want: filepath.Join(filepath.Dir(cwd), "spec.yaml")},
		{name: "absolute", in: "/etc/actor/../spec.json", want: "/etc/spec.json"},
		{name: "empty", in: "", want: cwd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.ToAbsolute(tt.in))
		})
	}
}

func TestNewPathsDefaultsToProcessDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	p, err := NewPaths("")
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(p.CWD())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
