package module

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/atlanticdynamic/actorspec/internal/errz"
)

// Loader reads the module at an absolute path and returns its default export: a document, a Go
// factory, or an Export.
type Loader interface {
	Load(ctx context.Context, path string) (any, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, path string) (any, error)

func (f LoaderFunc) Load(ctx context.Context, path string) (any, error) {
	return f(ctx, path)
}

// Importer maps file extensions to loaders.
type Importer struct {
	loaders map[string]Loader
	logger  *slog.Logger
}

// NewImporter creates an Importer with every built-in loader registered.
func NewImporter(opts ...Option) *Importer {
	imp := &Importer{
		loaders: map[string]Loader{},
		logger:  slog.Default().WithGroup("module.Importer"),
	}
	for _, opt := range opts {
		opt(imp)
	}

	imp.Register(".json", LoaderFunc(loadJSON))
	imp.Register(".toml", LoaderFunc(loadTOML))
	imp.Register(".yaml", LoaderFunc(loadYAML))
	imp.Register(".yml", LoaderFunc(loadYAML))
	imp.Register(".hcl", LoaderFunc(loadHCL))
	imp.Register(".star", newScriptLoader(engineStarlark, imp.logger.Handler()))
	imp.Register(".risor", newScriptLoader(engineRisor, imp.logger.Handler()))
	return imp
}

// Register installs or replaces the loader for ext (including the leading dot).
func (i *Importer) Register(ext string, l Loader) {
	i.loaders[strings.ToLower(ext)] = l
}

// Extensions lists the registered extensions in sorted order.
func (i *Importer) Extensions() []string {
	return slices.Sorted(maps.Keys(i.loaders))
}

// Import loads and classifies the module at absPath. Every failure names absPath.
func (i *Importer) Import(ctx context.Context, absPath string) (*Module, error) {
	info, err := os.Stat(absPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errz.New(errz.ErrImport, absPath, ErrModuleNotFound)
		}
		return nil, errz.New(errz.ErrImport, absPath, err)
	}
	if info.IsDir() {
		return nil, errz.New(errz.ErrImport, absPath, fmt.Errorf("%w: is a directory", ErrModuleNotFound))
	}

	ext := strings.ToLower(filepath.Ext(absPath))
	loader, ok := i.loaders[ext]
	if !ok {
		return nil, errz.New(errz.ErrImport, absPath, fmt.Errorf("%w: %q", ErrUnsupportedModule, ext))
	}

	i.logger.Debug("Loading config module", "path", absPath, "ext", ext)
	raw, err := loader.Load(ctx, absPath)
	if err != nil {
		return nil, errz.New(errz.ErrImport, absPath, err)
	}

	export, err := Classify(raw)
	if err != nil {
		return nil, errz.New(errz.ErrInvalidExport, absPath, err)
	}

	i.logger.Debug("Module loaded", "path", absPath, "export", export.Kind())
	return &Module{Path: absPath, Export: export}, nil
}
