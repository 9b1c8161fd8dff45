// Package registry provides a global registry for scene factories.
// Scenes register themselves in init() functions, allowing the engine
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/treasure-arcade/internal/core"
)

// ErrUnknownScene is returned by Create for IDs nobody registered.
var ErrUnknownScene = errors.New("registry: unknown scene")

// Host is the part of the engine a scene talks to.
type Host interface {
	// Config returns the runtime configuration (surface size, tick rate, seed).
	Config() core.RuntimeConfig

	// Input returns the shared input snapshot.
	Input() *core.Input

	// SwitchScene replaces the active scene with a freshly created one.
	// The switch takes effect after the current step returns.
	SwitchScene(id string) error

	// Report hands a finished run to the host (history, logging).
	Report(res core.RunResult)

	// Quit asks the host to shut down.
	Quit()
}

// Scene is the interface that every scene (menu or game) implements.
// Scenes contain pure logic; the host handles timing, input capture and
// the actual display.
type Scene interface {
	// ID returns a unique identifier (e.g., "slime-jump", "menu").
	// Used for CLI commands and run history.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Description returns a one-line summary shown in the menu.
	Description() string

	// Init builds the scene state. Called once after creation.
	Init(host Host) error

	// Update advances the simulation by one fixed step of dt seconds.
	Update(dt float64)

	// Render draws the current state. Called once per frame.
	Render(dst core.Surface)
}

// SceneInfo contains metadata about a registered scene.
type SceneInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory is a function that creates a new, uninitialized scene.
type Factory func() Scene

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]SceneInfo)
	mu        sync.RWMutex
)

// Register adds a scene factory to the registry.
// Typically called from a scene package's init() function.
// Panics if a scene with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: scene %q already registered", id))
	}

	factories[id] = f

	// Metadata comes from a throwaway instance
	s := f()
	infos[id] = SceneInfo{
		ID:          id,
		Title:       s.Title(),
		Description: s.Description(),
	}
}

// List returns information about all registered scenes, sorted by ID.
func List() []SceneInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SceneInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new scene by its ID.
// Returns an error wrapping ErrUnknownScene if the ID is not registered.
func Create(id string) (Scene, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownScene, id)
	}

	return f(), nil
}

// Exists checks if a scene with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
