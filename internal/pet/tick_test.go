package pet

import (
	"testing"

	"github.com/vovakirdan/platypor/internal/balance"
	"github.com/vovakirdan/platypor/internal/catalog"
)

// fixedRand returns the same draw every time. A Float64 of 0.5 zeroes out
// the decay variation, making rates exactly their configured base.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(int) int     { return r.n }

// testCatalog returns a catalog with the stock product prices used by the
// economy tests.
func testCatalog() catalog.Catalog {
	return catalog.Catalog{
		Actions: []catalog.ActionDef{
			{ID: "action_peck", Text: "Peck"},
			{ID: "action_glow", Text: "Glow"},
			{ID: "action_poison", Text: "Eat poison"},
			{ID: "action_smoke", Text: "Smoke"},
			{ID: "action_drink", Text: "Drink"},
			{ID: "action_gamble", Text: "Gamble"},
			{ID: "action_pokemon", Text: "Battle"},
			{ID: "action_read", Text: "Read"},
		},
		Products: []catalog.ProductDef{
			{ID: "product_beer", Text: "Beer", Price: 5},
			{ID: "product_cigarettes", Text: "Cigarettes", Price: 8},
			{ID: "product_instructions", Text: "Instructions", Price: 30},
			{ID: "product_purse", Text: "Purse", Price: 50},
			{ID: "product_sword", Text: "Sword", Price: 500},
			{ID: "product_shield", Text: "Shield", Price: 400},
			{ID: "product_vision", Text: "Vision", Price: 150},
			{ID: "product_brain", Text: "Brain", Price: 200},
			{ID: "product_reach", Text: "Reach", Price: 250},
			{ID: "product_acid", Text: "Acid", Price: 300},
			{ID: "product_property", Text: "Property", Price: 10000},
			{ID: "product_freedom", Text: "Freedom", Price: 48750},
		},
	}
}

func newTestEngine(rng Rand) *Engine {
	return New(balance.Default(), testCatalog(), rng)
}

func TestAdvanceKeepsStatsInRange(t *testing.T) {
	e := newTestEngine(NewRand(12345))

	// Run long enough for famine to saturate and starvation to kick in
	for i := 0; i < 3000; i++ {
		e.Advance(0.033)
		if e.Dead() {
			break
		}

		p := e.Player()
		for _, s := range []struct {
			name string
			v    float64
		}{
			{"Stress", p.Stress},
			{"Famine", p.Famine},
			{"Health", p.Health},
			{"Wisdom", p.Wisdom},
			{"Vigor", p.Vigor},
		} {
			if s.v < 0 || s.v > 1 {
				t.Fatalf("%s out of range at tick %d: %v", s.name, i, s.v)
			}
		}
	}
}

func TestAdvanceZeroDelta(t *testing.T) {
	e := newTestEngine(fixedRand{f: 0.5})

	before := e.Snapshot()
	ev := e.Advance(0)
	after := e.Snapshot()

	if ev != EventNone {
		t.Errorf("Expected no event for zero delta, got %v", ev)
	}
	if before != after {
		t.Errorf("Zero delta changed state: %+v vs %+v", before, after)
	}
}

func TestHouseStopsStress(t *testing.T) {
	e := newTestEngine(fixedRand{f: 0.5})
	e.player.OwnsHouse = true

	for i := 0; i < 100; i++ {
		e.Advance(0.1)
	}

	if got := e.Player().Stress; got != 0 {
		t.Errorf("Stress should stay 0 with a house, got %v", got)
	}
}

func TestStomachHalvesFamine(t *testing.T) {
	without := newTestEngine(fixedRand{f: 0.5})
	with := newTestEngine(fixedRand{f: 0.5})
	with.player.OwnsStomach = true

	without.Advance(0.1)
	with.Advance(0.1)

	slow := with.Player().Famine
	fast := without.Player().Famine
	if slow <= 0 {
		t.Fatal("Famine should still accrue with the stomach upgrade")
	}
	if diff := fast - 2*slow; diff > 1e-12 || diff < -1e-12 {
		t.Errorf("Famine without stomach should accrue at twice the rate: %v vs %v", fast, slow)
	}
}

func TestStarvationDrainsHealth(t *testing.T) {
	e := newTestEngine(fixedRand{f: 0.5})
	e.player.Famine = 1

	e.Advance(0.1)

	if got := e.Player().Health; got >= 1 {
		t.Errorf("Health should decay while starved, got %v", got)
	}
}

func TestHealthStableWhileFed(t *testing.T) {
	e := newTestEngine(fixedRand{f: 0.5})

	e.Advance(0.1)

	if got := e.Player().Health; got != 1 {
		t.Errorf("Health should hold at 1 while famine is below 1, got %v", got)
	}
}

func TestVigorRefills(t *testing.T) {
	e := newTestEngine(fixedRand{f: 0.5})
	e.player.Vigor = 0

	// 1.5 seconds to refill at default rate
	for i := 0; i < 20; i++ {
		e.Advance(0.1)
	}

	if got := e.Player().Vigor; got != 1 {
		t.Errorf("Vigor should have refilled to 1, got %v", got)
	}
}

func TestWisdomLevelUp(t *testing.T) {
	e := newTestEngine(fixedRand{f: 0.5})
	e.player.Wisdom = 1

	e.Advance(0.01)

	p := e.Player()
	if p.Level != 2 {
		t.Errorf("Expected level 2 after wisdom saturated, got %d", p.Level)
	}
	if p.Wisdom != 0 {
		t.Errorf("Wisdom should reset to 0 on level-up, got %v", p.Wisdom)
	}
}

func TestDeathOnMaxStress(t *testing.T) {
	e := newTestEngine(fixedRand{f: 0.5})
	e.player.Stress = 0.999

	var ev Event
	for i := 0; i < 100 && ev != EventDeath; i++ {
		ev = e.Advance(0.1)
	}

	if ev != EventDeath {
		t.Fatalf("Expected death event once stress saturated, got %v", ev)
	}
	if !e.Dead() {
		t.Fatal("Engine should report dead")
	}
	if e.State() != Dead {
		t.Errorf("Expected state Dead, got %v", e.State())
	}
}

func TestDeathOnZeroHealth(t *testing.T) {
	e := newTestEngine(fixedRand{f: 0.5})
	e.player.OwnsHouse = true // keep stress out of the picture
	e.player.Famine = 1
	e.player.Health = 0.001

	var ev Event
	for i := 0; i < 100 && ev != EventDeath; i++ {
		ev = e.Advance(0.1)
	}

	if ev != EventDeath {
		t.Fatalf("Expected death event once health drained, got %v", ev)
	}
}

func TestDeadEngineIgnoresEverything(t *testing.T) {
	e := newTestEngine(fixedRand{f: 0.5})
	e.player.Stress = 1
	if ev := e.Advance(0.01); ev != EventDeath {
		t.Fatalf("Expected death event, got %v", ev)
	}

	snap := e.Snapshot()

	// The death event fires exactly once
	if ev := e.Advance(0.1); ev != EventNone {
		t.Errorf("Advance after death should return no event, got %v", ev)
	}
	if res := e.Perform("action_peck"); res.Status != StatusDead {
		t.Errorf("Perform after death should return dead status, got %v", res.Status)
	}
	if res := e.Purchase("product_beer"); res.Status != StatusDead {
		t.Errorf("Purchase after death should return dead status, got %v", res.Status)
	}
	if e.ToggleSword() {
		t.Error("ToggleSword should be refused after death")
	}
	if e.ToggleShield() {
		t.Error("ToggleShield should be refused after death")
	}

	if e.Snapshot() != snap {
		t.Error("State mutated after death")
	}
}

func TestAdvancePanicsOnNegativeDelta(t *testing.T) {
	e := newTestEngine(fixedRand{f: 0.5})

	defer func() {
		if recover() == nil {
			t.Error("Expected panic on negative delta")
		}
	}()
	e.Advance(-0.1)
}

func TestAdvanceClampsLargeDelta(t *testing.T) {
	big := newTestEngine(fixedRand{f: 0.5})
	small := newTestEngine(fixedRand{f: 0.5})

	// A stalled 10-second frame must behave like a 0.1-second one
	big.Advance(10)
	small.Advance(0.1)

	if big.Snapshot() != small.Snapshot() {
		t.Errorf("Large delta not clamped: %+v vs %+v", big.Snapshot(), small.Snapshot())
	}
}

func TestAmbientEvent(t *testing.T) {
	e := newTestEngine(fixedRand{f: 0.5})

	ambients := 0
	for i := 0; i < 400; i++ {
		if ev := e.Advance(0.1); ev == EventAmbient {
			ambients++
		}
		if e.Dead() {
			break
		}
	}

	// 40 simulated seconds against a 10-second interval
	if ambients < 2 {
		t.Errorf("Expected periodic ambient events, got %d", ambients)
	}
}

func TestDeterminism(t *testing.T) {
	// Two engines with the same seed and inputs should stay identical
	e1 := newTestEngine(NewRand(777))
	e2 := newTestEngine(NewRand(777))

	for i := 0; i < 200; i++ {
		e1.Advance(0.033)
		e2.Advance(0.033)

		if i == 50 {
			e1.Perform("action_peck")
			e2.Perform("action_peck")
		}
		if i == 120 {
			e1.Purchase("product_purse")
			e2.Purchase("product_purse")
		}
	}

	if e1.Snapshot() != e2.Snapshot() {
		t.Errorf("Snapshots diverged: %+v vs %+v", e1.Snapshot(), e2.Snapshot())
	}
}
