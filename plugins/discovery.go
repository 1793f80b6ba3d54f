package plugins

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kingrea/pddlkit/pddl"
	"go.uber.org/zap"
)

// Description pairs a compiled problem with the file it was loaded from.
type Description struct {
	Path    string
	Kind    string
	Problem *pddl.Problem
}

// Loader compiles description files. The zero value discards logs.
type Loader struct {
	Logger *zap.Logger
}

func (l Loader) logger() *zap.Logger {
	if l.Logger == nil {
		return zap.NewNop()
	}
	return l.Logger
}

// Load compiles the description at path, dispatching on its extension.
func Load(path string) (Description, error) {
	return Loader{}.Load(path)
}

// LoadDir compiles every description in dir.
func LoadDir(dir string) ([]Description, error) {
	return Loader{}.LoadDir(dir)
}

// Load compiles the description at path: .yaml/.yml files are declarative,
// .go files are interpreted.
func (l Loader) Load(path string) (Description, error) {
	logger := l.logger()
	clean := filepath.Clean(strings.TrimSpace(path))
	var (
		problem *pddl.Problem
		kind    string
		err     error
	)
	switch {
	case isYAMLFile(clean):
		kind = "yaml"
		var def DescriptionDefinition
		def, err = LoadDescriptionFile(clean)
		if err == nil {
			problem, err = def.Build(pddl.WithLogger(logger))
		}
	case isGoFile(clean):
		kind = "go"
		problem, err = LoadGoDescription(clean)
		if err == nil {
			problem.SetLogger(logger)
		}
	default:
		return Description{}, fmt.Errorf("plugin: %s: %w: unsupported description format", clean, pddl.ErrConfiguration)
	}
	if err != nil {
		return Description{}, err
	}
	logger.Debug("description loaded",
		zap.String("path", clean),
		zap.String("kind", kind),
		zap.String("problem", problem.Name()),
	)
	return Description{Path: clean, Kind: kind, Problem: problem}, nil
}

// LoadDir compiles every description file in dir, sorted by path. Missing
// directories are treated as "no descriptions".
func (l Loader) LoadDir(dir string) ([]Description, error) {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(trimmed)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("plugin: read %s: %w", trimmed, err)
	}
	var descs []Description
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !isYAMLFile(name) && !isGoFile(name) {
			continue
		}
		desc, err := l.Load(filepath.Join(trimmed, name))
		if err != nil {
			return nil, err
		}
		descs = append(descs, desc)
	}
	if len(descs) == 0 {
		return nil, nil
	}
	sort.Slice(descs, func(i, j int) bool { return descs[i].Path < descs[j].Path })
	return descs, nil
}

func isGoFile(name string) bool {
	return strings.EqualFold(filepath.Ext(strings.TrimSpace(name)), ".go")
}
