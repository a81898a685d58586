package pet

// ActionKind is the tagged variant over player actions. Resolution matches
// on it exhaustively, so adding an action without handling it is a compile
// visible gap rather than a silent missing-entry no-op.
type ActionKind int

const (
	ActionPeck ActionKind = iota
	ActionGlow
	ActionPoison
	ActionSmoke
	ActionDrink
	ActionGamble
	ActionMinigame
	ActionRead
)

// gambleDrawSpan is the exclusive upper bound of the jackpot draw. The
// configured jackpot chance is compared literally against a draw in this
// span.
const gambleDrawSpan = 1_000_000

// readLevelRequirement is the minimum level for the read action to succeed.
const readLevelRequirement = 7

// ParseActionID maps a catalog action id to its kind.
func ParseActionID(id string) (ActionKind, bool) {
	switch id {
	case "action_peck":
		return ActionPeck, true
	case "action_glow":
		return ActionGlow, true
	case "action_poison":
		return ActionPoison, true
	case "action_smoke":
		return ActionSmoke, true
	case "action_drink":
		return ActionDrink, true
	case "action_gamble":
		return ActionGamble, true
	case "action_pokemon":
		return ActionMinigame, true
	case "action_read":
		return ActionRead, true
	}
	return 0, false
}

// Perform validates and applies the action with the given catalog id.
//
// Every action is gated on a full Vigor bar; acceptance drains the bar to
// zero before the effect runs. Actions that consume inventory (smoke, drink)
// reject before the bar is spent when the inventory is empty. Unknown ids
// are a defensive no-op.
func (e *Engine) Perform(actionID string) Result {
	if e.state == Dead {
		return Result{Status: StatusDead}
	}

	kind, ok := ParseActionID(actionID)
	if !ok {
		return Result{Status: StatusUnknown}
	}

	p := &e.player
	if p.Vigor < 1 {
		return Result{Status: StatusNotReady}
	}

	// Inventory gates reject before the readiness bar is spent.
	switch kind {
	case ActionSmoke:
		if p.Cigarettes <= 0 {
			return Result{Status: StatusNoStock}
		}
	case ActionDrink:
		if p.Beers <= 0 {
			return Result{Status: StatusNoStock}
		}
	}

	p.Vigor = 0
	return e.resolve(kind)
}

// resolve applies the accepted action's effect. Vigor has already been
// spent.
func (e *Engine) resolve(kind ActionKind) Result {
	p := &e.player
	cfg := &e.cfg

	switch kind {
	case ActionPeck:
		p.Money += e.uniform(cfg.Actions.PeckMoneyMin, cfg.Actions.PeckMoneyMax)
		return Result{Status: StatusOK}

	case ActionGlow:
		p.Wisdom = clamp01(p.Wisdom + e.uniform(cfg.Actions.GlowWisdomMin, cfg.Actions.GlowWisdomMax))
		return Result{Status: StatusOK}

	case ActionPoison:
		p.Famine = 0
		return Result{Status: StatusOK}

	case ActionSmoke:
		p.Stress = clamp01(p.Stress - cfg.Actions.SmokeStressRelief)
		p.Cigarettes--
		return Result{Status: StatusOK}

	case ActionDrink:
		p.Health = clamp01(p.Health + cfg.Actions.DrinkHealthGain)
		p.Beers--
		return Result{Status: StatusOK}

	case ActionGamble:
		return e.gamble()

	case ActionMinigame:
		return e.minigame()

	case ActionRead:
		if p.Level < readLevelRequirement {
			return Result{Status: StatusOK, Event: EventLiteracyTooEarly}
		}
		p.CanRead = true
		if e.MarkLiteracy != nil {
			e.MarkLiteracy()
		}
		return Result{Status: StatusOK, Event: EventLiteracySuccess}
	}

	return Result{Status: StatusUnknown}
}

// gamble resolves the slot pull. Gambling while armed is refused as a house
// rule; the spent Vigor is not refunded.
func (e *Engine) gamble() Result {
	p := &e.player
	cfg := &e.cfg

	if p.SwordEquipped || p.ShieldEquipped {
		return Result{Status: StatusArmed}
	}

	if e.rng.Intn(gambleDrawSpan) < int(cfg.Gamble.JackpotChance) {
		p.Money += cfg.Gamble.JackpotAmount
		return Result{Status: StatusOK, Event: EventGambleWin}
	}

	p.Money -= cfg.Gamble.LossAmount
	p.Stress = clamp01(p.Stress + cfg.Gamble.LossStress)
	return Result{Status: StatusOK, Event: EventGambleLose}
}

// minigame resolves the creature battle. Equipped gear raises the win rate.
func (e *Engine) minigame() Result {
	p := &e.player
	cfg := &e.cfg

	winRate := cfg.Minigame.BaseWinRate
	if p.SwordEquipped {
		winRate += cfg.Minigame.SwordBonus
	}
	if p.ShieldEquipped {
		winRate += cfg.Minigame.ShieldBonus
	}

	var res Result
	if e.rng.Float64() < winRate {
		p.Money += e.uniform(cfg.Minigame.WinMoneyMin, cfg.Minigame.WinMoneyMax)
		p.Wisdom += cfg.Minigame.WinWisdom
		p.Health -= cfg.Minigame.WinHealthCost
		res = Result{Status: StatusOK, Event: EventMinigameWin}
	} else {
		p.Stress += cfg.Minigame.LoseStress
		p.Health -= cfg.Minigame.LoseHealthCost
		p.Money -= e.uniform(cfg.Minigame.LoseMoneyMin, cfg.Minigame.LoseMoneyMax)
		res = Result{Status: StatusOK, Event: EventMinigameLose}
	}

	if p.Money < 0 {
		p.Money = 0
	}
	p.Wisdom = clamp01(p.Wisdom)
	p.Health = clamp01(p.Health)
	p.Stress = clamp01(p.Stress)

	return res
}
