package generate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	// FileName is the artifact written into the output directory.
	FileName = "actorspec.json"
	// ConventionalDir is used as the output directory when it exists under the working directory.
	ConventionalDir = ".actor"

	filePerm = 0o644
	dirPerm  = 0o755
)

// ResolveOutDir picks the output directory: an explicit outDir (relative to the working directory),
// then the conventional .actor directory when it exists, then the working directory itself.
func ResolveOutDir(p Paths, outDir string) string {
	if outDir != "" {
		return p.ToAbsolute(outDir)
	}

	conventional := p.ToAbsolute(ConventionalDir)
	if info, err := os.Stat(conventional); err == nil && info.IsDir() {
		return conventional
	}
	return p.CWD()
}

// Marshal renders doc as JSON with 2-space indentation. Loaded objects and struct fields keep their
// source order; plain Go maps have none, so their keys are sorted.
func Marshal(doc any) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotSerializable, err)
	}
	return data, nil
}

// WriteArtifact creates dir and atomically replaces dir/actorspec.json with data. It returns the
// path of the written file. Readers see either the previous file or the complete new one.
func WriteArtifact(dir string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	target := filepath.Join(dir, FileName)
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		return "", fmt.Errorf("output path %s is a directory", target)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("failed to stat %s: %w", target, err)
	}

	tmp, err := os.CreateTemp(dir, "."+FileName+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("failed to sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		return "", fmt.Errorf("failed to set permissions on %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		return "", fmt.Errorf("failed to replace %s: %w", target, err)
	}
	committed = true
	return target, nil
}
