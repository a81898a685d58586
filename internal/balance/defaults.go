package balance

import (
	_ "embed"
)

//go:embed defaults/balance.yaml
var defaultBalanceYAML []byte

// Default returns the stock balance. These are the values the game was tuned
// against; the embedded YAML mirrors them.
func Default() Config {
	return Config{
		Decay: DecayConfig{
			StressSaturateSecs: 120,
			FamineSaturateSecs: 60,
			HealthDecaySecs:    10,
			VigorRefillSecs:    1.5,
			VariationRange:     0.1,
		},
		Actions: ActionConfig{
			PeckMoneyMin:      3,
			PeckMoneyMax:      9,
			GlowWisdomMin:     0.03,
			GlowWisdomMax:     0.06,
			SmokeStressRelief: 0.28,
			DrinkHealthGain:   0.25,
		},
		Gamble: GambleConfig{
			JackpotChance: 3,
			JackpotAmount: 100000,
			LossAmount:    10,
			LossStress:    0.5,
		},
		Minigame: MinigameConfig{
			BaseWinRate:    0.5,
			SwordBonus:     0.2,
			ShieldBonus:    0.1,
			WinMoneyMin:    15,
			WinMoneyMax:    45,
			WinWisdom:      0.334,
			WinHealthCost:  0.15,
			LoseMoneyMin:   30,
			LoseMoneyMax:   60,
			LoseStress:     0.3,
			LoseHealthCost: 0.25,
		},
		Economy: EconomyConfig{
			FreedomTarget:  48750,
			FreedomEpsilon: 0.001,
			StartMoney:     100,
		},
		Dialogue: DialogueConfig{
			AmbientIntervalSecs: 10,
		},
	}
}
