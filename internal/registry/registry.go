// Package registry provides a global registry for scenario factories.
// Scenarios register themselves in init() functions, allowing the front ends
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/feel-arcade/internal/sim"
	"github.com/vovakirdan/feel-arcade/internal/world"
)

// ErrUnknownScenario is returned by Create for an unregistered ID.
var ErrUnknownScenario = errors.New("registry: unknown scenario")

// Scenario is a playable level: a layout plus the rules it runs under.
// Scenarios hold no running state; the simulation owns that.
type Scenario interface {
	// ID returns a unique identifier (e.g., "bounds", "walls").
	// Used for CLI commands.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Description is a one-line summary for menus and `arcade list`.
	Description() string

	// Level returns the layout. It is rebuilt from the seed on every respawn.
	Level() world.LevelSpec

	// Configure sets the scenario's rules and preferred modes on opts.
	Configure(opts *sim.Options)
}

// Info contains metadata about a registered scenario.
type Info struct {
	ID          string
	Title       string
	Description string
}

// Factory is a function that creates a new instance of a scenario.
type Factory func() Scenario

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]Info)
	mu        sync.RWMutex
)

// Register adds a scenario factory to the registry.
// Typically called from an init() function.
// Panics if a scenario with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: scenario %q already registered", id))
	}

	factories[id] = f

	// Get metadata by creating a temporary instance
	s := f()
	infos[id] = Info{ID: id, Title: s.Title(), Description: s.Description()}
}

// List returns information about all registered scenarios, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a scenario by its ID.
func Create(id string) (Scenario, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownScenario, id)
	}

	return f(), nil
}

// Exists checks if a scenario with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// NewSimulation creates scenario id and a simulation running it. The scenario
// configures the options first; apply (if non-nil) runs last so explicit user
// settings win.
func NewSimulation(id string, seed int64, apply func(*sim.Options) error) (*sim.Simulation, Scenario, error) {
	sc, err := Create(id)
	if err != nil {
		return nil, nil, err
	}

	opts := sim.DefaultOptions()
	opts.Seed = seed
	sc.Configure(&opts)
	if apply != nil {
		if err := apply(&opts); err != nil {
			return nil, nil, err
		}
	}

	s, err := sim.New(sc.Level(), opts)
	if err != nil {
		return nil, nil, fmt.Errorf("registry: scenario %q: %w", id, err)
	}
	return s, sc, nil
}
