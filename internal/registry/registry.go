// Package registry provides a global registry for terminal backend factories.
// Backends register themselves in init() functions, allowing the commands
// to select one by name without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-pipes/internal/terminal"
)

// ErrUnknownBackend is returned by Create for names nobody registered.
var ErrUnknownBackend = errors.New("unknown backend")

// Options carries what a factory may need to build a backend.
type Options struct {
	// Console to draw on. Nil means the process's own terminal.
	Console terminal.Console

	// Profile is the color profile for escape-sequence backends.
	// Zero value (TrueColor) is replaced by detection for the local terminal.
	Profile termenv.Profile

	// Cols and Rows size headless backends.
	Cols, Rows int
}

// Info contains metadata about a registered backend.
type Info struct {
	Name        string
	Description string
}

// Factory creates a new backend instance.
type Factory func(opts Options) (terminal.Backend, error)

type entry struct {
	factory     Factory
	description string
}

var (
	backends = make(map[string]entry)
	mu       sync.RWMutex
)

// Register adds a backend factory to the registry.
// Panics if a backend with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := backends[name]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", name))
	}
	backends[name] = entry{factory: f, description: description}
}

// List returns all registered backends sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(backends))
	for name, e := range backends {
		result = append(result, Info{Name: name, Description: e.description})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Names returns the registered backend names, sorted.
func Names() []string {
	infos := List()
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	return names
}

// Create instantiates a backend by name.
func Create(name string, opts Options) (terminal.Backend, error) {
	mu.RLock()
	e, ok := backends[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownBackend, name)
	}

	b, err := e.factory(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: create %s backend: %w", name, err)
	}
	return b, nil
}

// Exists checks if a backend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := backends[name]
	return ok
}
