// Package registry provides a global registry for demonstration grid sources.
// Sources register themselves in init() functions, allowing the CLI
// to discover and build them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/gridtable/internal/config"
	"github.com/vovakirdan/gridtable/internal/core"
)

// Source builds a table from demo settings.
type Source interface {
	// ID returns a unique identifier for this source (e.g., "random", "arrows").
	// Used for CLI commands.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Build creates a fresh table. Sources may ignore settings that do not
	// apply to them.
	Build(cfg config.Demo) (*core.Table, error)
}

// SourceInfo contains metadata about a registered source.
type SourceInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a source.
type Factory func() Source

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a source factory to the registry.
// Typically called from a source's init() function.
// Panics if a source with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: source %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered sources, sorted by ID.
func List() []SourceInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SourceInfo, 0, len(factories))
	for id := range factories {
		result = append(result, SourceInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a source by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Source, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown source %q", id)
	}

	return f(), nil
}

// Title returns the display name of a registered source.
func Title(id string) (string, bool) {
	mu.RLock()
	defer mu.RUnlock()

	title, ok := titles[id]
	return title, ok
}

// Exists checks if a source with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Build creates the source by ID, builds its table and applies the paint
// overrides from cfg on top of the source's own colors.
func Build(id string, cfg config.Demo) (*core.Table, error) {
	src, err := Create(id)
	if err != nil {
		return nil, err
	}

	t, err := src.Build(cfg)
	if err != nil {
		return nil, fmt.Errorf("registry: build %q: %w", id, err)
	}

	for _, p := range cfg.Paint {
		c, ok := core.ParseColor(p.Color)
		if !ok {
			return nil, fmt.Errorf("registry: paint %s: unknown color %q", core.C(p.Row, p.Col), p.Color)
		}
		if err := t.SetColor(p.Row, p.Col, c); err != nil {
			return nil, fmt.Errorf("registry: paint: %w", err)
		}
	}

	return t, nil
}
