// Package pet implements the life-simulation engine: the player's vital
// stats, the tick update, action resolution, and the purchase economy.
// The package is pure logic with no external dependencies; the platform
// handles input mapping, timing, and rendering.
package pet

import (
	"github.com/vovakirdan/platypor/internal/balance"
	"github.com/vovakirdan/platypor/internal/catalog"
)

// LifeState is the terminal state machine: Alive until stress maxes out or
// health runs dry, then Dead forever.
type LifeState int

const (
	Alive LifeState = iota
	Dead
)

// String returns a human-readable name for the life state.
func (s LifeState) String() string {
	if s == Dead {
		return "dead"
	}
	return "alive"
}

// Player is the single mutable entity of the simulation. The five stats
// Stress, Famine, Health, Wisdom and Vigor are always clamped into [0, 1]
// after every mutation. Money is unbounded and may transiently dip below
// zero through losses; level only grows.
type Player struct {
	Stress float64
	Famine float64
	Health float64
	Wisdom float64
	Vigor  float64

	Money float64
	Level int

	// Inventory
	Beers      int
	Cigarettes int

	// Equipment
	OwnsSword      bool
	SwordEquipped  bool
	OwnsShield     bool
	ShieldEquipped bool

	// Attributes
	CanRead          bool
	OwnsPurse        bool
	OwnsInstructions bool
	OwnsVision       bool
	OwnsMemory       bool
	OwnsReach        bool
	OwnsStomach      bool
	OwnsHouse        bool
}

// Engine owns the player state and applies all mutations to it. One engine
// per session; all calls must come from a single goroutine (the platform's
// tick loop is that serialization point).
type Engine struct {
	player Player
	cfg    balance.Config
	cat    catalog.Catalog
	rng    Rand
	state  LifeState

	messageTimer float64

	// MarkLiteracy, when set, is invoked once the read action succeeds.
	// Persistence of the marker belongs to the caller.
	MarkLiteracy func()
}

// New creates an engine with a fresh player.
func New(cfg balance.Config, cat catalog.Catalog, rng Rand) *Engine {
	return &Engine{
		player: Player{
			Health: 1,
			Vigor:  1,
			Money:  cfg.Economy.StartMoney,
			Level:  1,
		},
		cfg: cfg,
		cat: cat,
		rng: rng,
	}
}

// Player returns a copy of the current player state for rendering.
func (e *Engine) Player() Player {
	return e.player
}

// State returns the current life state.
func (e *Engine) State() LifeState {
	return e.state
}

// Dead reports whether the terminal state has been reached.
func (e *Engine) Dead() bool {
	return e.state == Dead
}

// ToggleSword flips the sword's equipped flag. Refused when the sword is not
// owned or the pet is dead.
func (e *Engine) ToggleSword() bool {
	if e.state == Dead || !e.player.OwnsSword {
		return false
	}
	e.player.SwordEquipped = !e.player.SwordEquipped
	return true
}

// ToggleShield flips the shield's equipped flag. Refused when the shield is
// not owned or the pet is dead.
func (e *Engine) ToggleShield() bool {
	if e.state == Dead || !e.player.OwnsShield {
		return false
	}
	e.player.ShieldEquipped = !e.player.ShieldEquipped
	return true
}

// clamp01 clamps v into [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
