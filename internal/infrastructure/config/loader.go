package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Extensions tried, in order, when resolving a config name
var Extensions = []string{".json", ".yaml", ".yml"}

// Loader loads game configuration from JSON or YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the path the loader was created with
func (l *Loader) BasePath() string {
	return l.basePath
}

// resolve finds name with the first matching extension
func (l *Loader) resolve(name string) (string, error) {
	for _, ext := range Extensions {
		p := name + ext
		if _, err := fs.Stat(l.fsys, p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("no %s config (tried %s): %w", name, strings.Join(Extensions, ", "), fs.ErrNotExist)
}

// decode reads file p into out, choosing the format by extension
func (l *Loader) decode(p string, out any) error {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", p, err)
	}

	switch path.Ext(p) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, out)
	default:
		err = json.Unmarshal(data, out)
	}
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", p, err)
	}
	return nil
}

// LoadPhysics loads physics.{json,yaml,yml} over the defaults
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	p, err := l.resolve("physics")
	if err != nil {
		return nil, err
	}

	cfg := DefaultPhysics()
	if err := l.decode(p, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	return cfg, nil
}

// LoadWorld loads worlds/<name>.{json,yaml,yml} over the defaults
func (l *Loader) LoadWorld(name string) (*WorldConfig, error) {
	p, err := l.resolve(path.Join("worlds", name))
	if err != nil {
		return nil, fmt.Errorf("failed to load world %s: %w", name, err)
	}

	cfg := DefaultWorld()
	cfg.Name = name
	if err := l.decode(p, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("world %s: %w", name, err)
	}
	return cfg, nil
}

// ListWorlds returns the names of all world files, sorted
func (l *Loader) ListWorlds() ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, "worlds")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list worlds: %w", err)
	}

	seen := make(map[string]bool)
	var names []string
	for _, e := range entries {
		if e.IsDir() || !IsConfigFile(e.Name()) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// LoadAll loads physics and the named world
func (l *Loader) LoadAll(world string) (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	w, err := l.LoadWorld(world)
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics: physics,
		World:   w,
	}, nil
}

// IsConfigFile reports whether p has a config extension
func IsConfigFile(p string) bool {
	ext := strings.ToLower(path.Ext(p))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}
