package pet

import (
	"fmt"
	"math"
)

// maxTickDelta caps the elapsed time fed into one Advance call. A stalled
// frame timer must not produce a catastrophic jump in the simulation.
const maxTickDelta = 0.1

// Advance moves the simulation forward by deltaSeconds and returns the
// dialogue event fired during this tick, if any (at most one).
//
// deltaSeconds must be finite and non-negative; violating that is a caller
// defect and panics. Values above maxTickDelta are clamped.
//
// The update order is fixed: stress, famine, health, vigor, level-up, death
// check, ambient chatter timer. Once Dead, Advance is a no-op.
func (e *Engine) Advance(deltaSeconds float64) Event {
	if math.IsNaN(deltaSeconds) || math.IsInf(deltaSeconds, 0) || deltaSeconds < 0 {
		panic(fmt.Sprintf("pet: invalid tick delta %v", deltaSeconds))
	}
	if e.state == Dead {
		return EventNone
	}
	if deltaSeconds > maxTickDelta {
		deltaSeconds = maxTickDelta
	}

	p := &e.player

	// Stress accrues unless the pet owns a house.
	if !p.OwnsHouse {
		rate := 1 / e.variedTime(e.cfg.Decay.StressSaturateSecs)
		p.Stress = clamp01(p.Stress + rate*deltaSeconds)
	}

	// Hunger accrues twice as fast without the stomach upgrade: the same
	// drawn rate is applied a second time. Intentional balance, not a bug.
	famineRate := 1 / e.variedTime(e.cfg.Decay.FamineSaturateSecs)
	increase := famineRate * deltaSeconds
	if !p.OwnsStomach {
		p.Famine += increase
	}
	p.Famine = clamp01(p.Famine + increase)

	// Starvation eats into health.
	if p.Famine >= 1 {
		rate := 1 / e.variedTime(e.cfg.Decay.HealthDecaySecs)
		p.Health = clamp01(p.Health - rate*deltaSeconds)
	}

	// Vigor is readiness to act; it refills over time.
	vigorRate := 1 / e.variedTime(e.cfg.Decay.VigorRefillSecs)
	p.Vigor = clamp01(p.Vigor + vigorRate*deltaSeconds)

	// Wisdom carries over into a level.
	if p.Wisdom >= 1 {
		p.Level++
		p.Wisdom = 0
	}

	if p.Stress >= 1 || p.Health <= 0 {
		return e.die()
	}

	e.messageTimer += deltaSeconds
	if e.messageTimer >= e.cfg.Dialogue.AmbientIntervalSecs {
		e.messageTimer = 0
		return EventAmbient
	}

	return EventNone
}

// die transitions to the terminal state. Idempotent: the transition and its
// event fire exactly once.
func (e *Engine) die() Event {
	if e.state == Dead {
		return EventNone
	}
	e.state = Dead
	return EventDeath
}
