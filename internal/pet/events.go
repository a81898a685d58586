package pet

// Event is a discrete dialogue-event code emitted by the engine. The mapping
// from code to displayed text belongs entirely to the platform layer.
type Event int

const (
	EventNone Event = iota
	EventAmbient
	EventDeath
	EventGambleWin
	EventGambleLose
	EventMinigameWin
	EventMinigameLose
	EventLiteracySuccess
	EventLiteracyTooEarly
)

// String returns the event's wire name.
func (ev Event) String() string {
	switch ev {
	case EventNone:
		return "none"
	case EventAmbient:
		return "ambient"
	case EventDeath:
		return "death"
	case EventGambleWin:
		return "gamble_win"
	case EventGambleLose:
		return "gamble_lose"
	case EventMinigameWin:
		return "minigame_win"
	case EventMinigameLose:
		return "minigame_lose"
	case EventLiteracySuccess:
		return "literacy_success"
	case EventLiteracyTooEarly:
		return "literacy_too_early"
	default:
		return "unknown"
	}
}

// Status classifies the outcome of an action or purchase attempt. Gating
// rejections are expected results, never errors: the platform decides
// whether and how to surface them.
type Status int

const (
	// StatusOK means the operation was accepted and applied.
	StatusOK Status = iota
	// StatusNotReady means Vigor was below full; nothing happened.
	StatusNotReady
	// StatusNoStock means a consumable action had no inventory; nothing
	// happened, Vigor included.
	StatusNoStock
	// StatusArmed means gambling was refused because gear was equipped.
	// The spent Vigor is not refunded.
	StatusArmed
	// StatusRefused means a purchase failed its affordability or
	// prerequisite rules; nothing happened.
	StatusRefused
	// StatusUnknown means the id was not recognized; nothing happened.
	StatusUnknown
	// StatusDead means the terminal state has been reached; the call was
	// ignored.
	StatusDead
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotReady:
		return "not_ready"
	case StatusNoStock:
		return "no_stock"
	case StatusArmed:
		return "armed"
	case StatusRefused:
		return "refused"
	case StatusUnknown:
		return "unknown"
	case StatusDead:
		return "dead"
	default:
		return "invalid"
	}
}

// Accepted reports whether the operation mutated state.
func (s Status) Accepted() bool {
	return s == StatusOK || s == StatusArmed
}

// Result is returned by Perform and Purchase.
type Result struct {
	Status Status
	Event  Event
}
