// Package balance provides YAML-based loading of the game balance: the
// immutable set of tunables (decay times, action payouts, odds) consumed by
// the simulation engine. A Config is loaded once at startup and never
// mutated afterwards.
package balance

import "fmt"

// Config contains every balance tunable, grouped by concern.
type Config struct {
	Decay    DecayConfig    `yaml:"decay"`
	Actions  ActionConfig   `yaml:"actions"`
	Gamble   GambleConfig   `yaml:"gamble"`
	Minigame MinigameConfig `yaml:"minigame"`
	Economy  EconomyConfig  `yaml:"economy"`
	Dialogue DialogueConfig `yaml:"dialogue"`
}

// DecayConfig defines how fast stats drift per simulated second.
// Times are "seconds to saturate": a stat driven by one of these moves from
// 0 to 1 (or 1 to 0) in roughly that many seconds, modulated per tick by a
// uniform draw in [-variation_range, +variation_range].
type DecayConfig struct {
	StressSaturateSecs float64 `yaml:"stress_saturate_secs"`
	FamineSaturateSecs float64 `yaml:"famine_saturate_secs"`
	HealthDecaySecs    float64 `yaml:"health_decay_secs"`
	VigorRefillSecs    float64 `yaml:"vigor_refill_secs"`
	VariationRange     float64 `yaml:"variation_range"`
}

// ActionConfig defines payouts and costs of the simple instantaneous actions.
type ActionConfig struct {
	PeckMoneyMin      float64 `yaml:"peck_money_min"`
	PeckMoneyMax      float64 `yaml:"peck_money_max"`
	GlowWisdomMin     float64 `yaml:"glow_wisdom_min"`
	GlowWisdomMax     float64 `yaml:"glow_wisdom_max"`
	SmokeStressRelief float64 `yaml:"smoke_stress_relief"`
	DrinkHealthGain   float64 `yaml:"drink_health_gain"`
}

// GambleConfig defines the gambling action. The jackpot draw is an integer
// in [0, 1e6); a draw below JackpotChance wins. The default chance of 3
// therefore means roughly 1 in 333,333. That is intentional.
type GambleConfig struct {
	JackpotChance float64 `yaml:"jackpot_chance"`
	JackpotAmount float64 `yaml:"jackpot_amount"`
	LossAmount    float64 `yaml:"loss_amount"`
	LossStress    float64 `yaml:"loss_stress"`
}

// MinigameConfig defines the creature-battle minigame.
type MinigameConfig struct {
	BaseWinRate    float64 `yaml:"base_win_rate"`
	SwordBonus     float64 `yaml:"sword_bonus"`
	ShieldBonus    float64 `yaml:"shield_bonus"`
	WinMoneyMin    float64 `yaml:"win_money_min"`
	WinMoneyMax    float64 `yaml:"win_money_max"`
	WinWisdom      float64 `yaml:"win_wisdom"`
	WinHealthCost  float64 `yaml:"win_health_cost"`
	LoseMoneyMin   float64 `yaml:"lose_money_min"`
	LoseMoneyMax   float64 `yaml:"lose_money_max"`
	LoseStress     float64 `yaml:"lose_stress"`
	LoseHealthCost float64 `yaml:"lose_health_cost"`
}

// EconomyConfig defines purchase rules and the starting bankroll.
// FreedomTarget/FreedomEpsilon encode the exact-balance puzzle: the freedom
// product is purchasable only when money is within epsilon of the target.
type EconomyConfig struct {
	FreedomTarget  float64 `yaml:"freedom_target"`
	FreedomEpsilon float64 `yaml:"freedom_epsilon"`
	StartMoney     float64 `yaml:"start_money"`
}

// DialogueConfig defines ambient chatter timing.
type DialogueConfig struct {
	AmbientIntervalSecs float64 `yaml:"ambient_interval_secs"`
}

// Validate checks the config for values the engine cannot work with.
// A failed validation is startup-fatal for the application.
func (c Config) Validate() error {
	for _, t := range []struct {
		name string
		v    float64
	}{
		{"decay.stress_saturate_secs", c.Decay.StressSaturateSecs},
		{"decay.famine_saturate_secs", c.Decay.FamineSaturateSecs},
		{"decay.health_decay_secs", c.Decay.HealthDecaySecs},
		{"decay.vigor_refill_secs", c.Decay.VigorRefillSecs},
		{"dialogue.ambient_interval_secs", c.Dialogue.AmbientIntervalSecs},
	} {
		if t.v <= 0 {
			return fmt.Errorf("balance: %s must be positive, got %v", t.name, t.v)
		}
	}

	if c.Decay.VariationRange < 0 || c.Decay.VariationRange >= 1 {
		return fmt.Errorf("balance: decay.variation_range must be in [0, 1), got %v", c.Decay.VariationRange)
	}
	if c.Actions.PeckMoneyMax < c.Actions.PeckMoneyMin {
		return fmt.Errorf("balance: actions.peck_money_max below min")
	}
	if c.Actions.GlowWisdomMax < c.Actions.GlowWisdomMin {
		return fmt.Errorf("balance: actions.glow_wisdom_max below min")
	}
	if c.Minigame.WinMoneyMax < c.Minigame.WinMoneyMin {
		return fmt.Errorf("balance: minigame.win_money_max below min")
	}
	if c.Minigame.LoseMoneyMax < c.Minigame.LoseMoneyMin {
		return fmt.Errorf("balance: minigame.lose_money_max below min")
	}
	if c.Minigame.BaseWinRate < 0 || c.Minigame.BaseWinRate > 1 {
		return fmt.Errorf("balance: minigame.base_win_rate must be in [0, 1], got %v", c.Minigame.BaseWinRate)
	}
	if c.Economy.FreedomEpsilon <= 0 {
		return fmt.Errorf("balance: economy.freedom_epsilon must be positive, got %v", c.Economy.FreedomEpsilon)
	}

	return nil
}
