package generate

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths anchors user-supplied paths to the working directory of the caller.
type Paths struct {
	cwd string
}

// NewPaths returns Paths anchored at cwd, or at the process working directory when cwd is empty.
func NewPaths(cwd string) (Paths, error) {
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Paths{}, fmt.Errorf("failed to determine working directory: %w", err)
		}
		cwd = wd
	}
	abs, err := filepath.Abs(cwd)
	if err != nil {
		return Paths{}, fmt.Errorf("failed to resolve working directory %q: %w", cwd, err)
	}
	return Paths{cwd: abs}, nil
}

// CWD returns the absolute working directory.
func (p Paths) CWD() string {
	return p.cwd
}

// ToAbsolute resolves path against the working directory. Absolute paths are only cleaned.
// Existence is not checked.
func (p Paths) ToAbsolute(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(p.cwd, path)
}
