// Package writers turns the --log-output flag value into an io.Writer.
package writers

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Kind is the category of a log destination.
type Kind string

const (
	KindStdout  Kind = "stdout"
	KindStderr  Kind = "stderr"
	KindDiscard Kind = "discard"
	KindFile    Kind = "file"
)

const fileScheme = "file://"

// ErrUnsupportedOutput is returned for destinations that are neither a stream name nor a path.
var ErrUnsupportedOutput = errors.New("unsupported log output")

// Destination is a parsed --log-output value. Path is set only for KindFile.
type Destination struct {
	Kind Kind
	Path string
}

// Parse classifies output. Recognised forms:
//   - "" or "stdout"
//   - "stderr"
//   - "discard" or "none"
//   - "file:///abs/path.log"
//   - a path containing a separator, or any name ending in ".log"
func Parse(output string) (Destination, error) {
	switch output {
	case "", "stdout":
		return Destination{Kind: KindStdout}, nil
	case "stderr":
		return Destination{Kind: KindStderr}, nil
	case "discard", "none":
		return Destination{Kind: KindDiscard}, nil
	}

	if path, ok := strings.CutPrefix(output, fileScheme); ok && path != "" {
		return Destination{Kind: KindFile, Path: path}, nil
	}
	if !strings.Contains(output, "://") &&
		(strings.ContainsAny(output, `/\`) || filepath.Ext(output) == ".log") {
		return Destination{Kind: KindFile, Path: output}, nil
	}
	return Destination{}, fmt.Errorf("%w: %s", ErrUnsupportedOutput, output)
}

// Open returns the writer for d. Files are opened for append, creating parent directories.
func (d Destination) Open() (io.Writer, error) {
	switch d.Kind {
	case KindStdout:
		return os.Stdout, nil
	case KindStderr:
		return os.Stderr, nil
	case KindDiscard:
		return io.Discard, nil
	case KindFile:
		return openAppend(d.Path)
	default:
		return nil, fmt.Errorf("%w: kind %q", ErrUnsupportedOutput, d.Kind)
	}
}

// CreateWriter parses output and opens the destination.
func CreateWriter(output string) (io.Writer, error) {
	d, err := Parse(output)
	if err != nil {
		return nil, err
	}
	return d.Open()
}

func openAppend(path string) (io.Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory for %s: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return f, nil
}
