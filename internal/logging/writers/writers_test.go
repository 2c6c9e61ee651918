package writers

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWriter(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	tests := []struct {
		name       string
		output     string
		want       io.Writer
		wantFile   string
		shouldFail bool
	}{
		{name: "empty string defaults to stdout", output: "", want: os.Stdout},
		{name: "stdout", output: "stdout", want: os.Stdout},
		{name: "stderr", output: "stderr", want: os.Stderr},
		{name: "discard", output: "discard", want: io.Discard},
		{name: "none", output: "none", want: io.Discard},
		{name: "file path", output: filepath.Join(dir, "a.log"), wantFile: filepath.Join(dir, "a.log")},
		{name: "file protocol", output: "file://" + filepath.Join(dir, "b.log"), wantFile: filepath.Join(dir, "b.log")},
		{name: "nested file path", output: filepath.Join(dir, "x", "y", "c.log"), wantFile: filepath.Join(dir, "x", "y", "c.log")},
		{name: "unsupported scheme", output: "redis://localhost:6379", shouldFail: true},
		{name: "bare word", output: "syslog", shouldFail: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer, err := CreateWriter(tt.output)
			if tt.shouldFail {
				require.Error(t, err)
				require.Nil(t, writer)
				return
			}
			require.NoError(t, err)

			if tt.wantFile == "" {
				assert.Equal(t, tt.want, writer)
				return
			}

			f, ok := writer.(*os.File)
			require.True(t, ok)
			t.Cleanup(func() { _ = f.Close() })
			assert.FileExists(t, tt.wantFile)
		})
	}
}

func TestCreateFileWriterAppends(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "progress.log")

	for _, line := range []string{"first\n", "second\n"} {
		w, err := CreateWriter(path)
		require.NoError(t, err)
		_, err = io.WriteString(w, line)
		require.NoError(t, err)
		require.NoError(t, w.(*os.File).Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := map[string]Destination{
		"":                       {Kind: KindStdout},
		"stdout":                 {Kind: KindStdout},
		"stderr":                 {Kind: KindStderr},
		"none":                   {Kind: KindDiscard},
		"/var/log/actorspec.log": {Kind: KindFile, Path: "/var/log/actorspec.log"},
		"file:///tmp/run.log":    {Kind: KindFile, Path: "/tmp/run.log"},
		"actorspec.log":          {Kind: KindFile, Path: "actorspec.log"},
	}
	for in, want := range tests {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"syslog", "file://", "https://example.com/x.log"} {
		_, err := Parse(bad)
		require.ErrorIs(t, err, ErrUnsupportedOutput, bad)
	}
}

func TestOpenUnknownKind(t *testing.T) {
	t.Parallel()

	_, err := Destination{Kind: "socket"}.Open()
	require.ErrorIs(t, err, ErrUnsupportedOutput)
}
