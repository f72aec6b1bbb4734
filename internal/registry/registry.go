// Package registry holds the factories for playable game modes. Modes
// register themselves in init() functions so the platform can list and
// instantiate them without hardcoded wiring.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/greentile/gridtap/internal/core"
)

// Game is the interface every playable mode implements. Implementations
// contain pure logic with no terminal dependencies; the platform owns input
// mapping, timing and display.
type Game interface {
	// ID is the unique mode identifier (e.g. "gridtap"), used for CLI
	// commands and score storage.
	ID() string

	// Title is the human-readable name shown in menus.
	Title() string

	// Reset initializes or restarts the game with the given runtime config.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick with the frame's input.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current score / game-over / paused status.
	State() core.GameState
}

// Info describes a registered mode.
type Info struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game mode.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a mode factory. Called from init(); panics on a duplicate
// ID since that is a programming error caught at startup.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered modes sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]Info, 0, len(factories))
	for id := range factories {
		infos = append(infos, Info{ID: id, Title: titles[id]})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// Create instantiates a mode by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}
	return f(), nil
}

// Exists reports whether a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
