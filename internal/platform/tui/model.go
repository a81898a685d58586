package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/platypor/internal/catalog"
	"github.com/vovakirdan/platypor/internal/dialogue"
	"github.com/vovakirdan/platypor/internal/pet"
	"github.com/vovakirdan/platypor/internal/storage"
)

// Options contains platform-level settings for a session.
type Options struct {
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed, 0 means time-based
}

// DefaultOptions returns sensible session defaults. The 30 FPS cadence
// matches the simulation's original 33 ms timer.
func DefaultOptions() Options {
	return Options{
		TickRate: 30,
		Seed:     0,
	}
}

// Section identifies which strip the cursor lives in.
type section int

const (
	sectionActions section = iota
	sectionShop
)

// Model is the Bubble Tea model for a pet session. All engine mutation
// happens inside Update, which is the single serialization point the engine
// requires.
type Model struct {
	engine *pet.Engine
	cat    catalog.Catalog
	lines  dialogue.Lines
	store  *storage.Store
	rng    pet.Rand
	opts   Options
	keys   KeyMap
	help   help.Model

	lastTick  time.Time
	startedAt time.Time

	message      string
	section      section
	actionCursor int
	shopCursor   int

	width  int
	height int

	quitting     bool
	sessionSaved bool // Whether the finished session has been recorded
}

// NewModel creates a session model around an engine.
func NewModel(engine *pet.Engine, cat catalog.Catalog, lines dialogue.Lines, store *storage.Store, rng pet.Rand, opts Options) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = DefaultOptions().TickRate
	}

	return Model{
		engine:    engine,
		cat:       cat,
		lines:     lines,
		store:     store,
		rng:       rng,
		opts:      opts,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		startedAt: time.Now(),
		message:   "...",
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.saveSession(storage.CauseQuit)
		m.quitting = true
		return m, tea.Quit
	}

	if m.engine.Dead() {
		// Only quit keys work once the pet is gone.
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Section):
		if m.section == sectionActions {
			m.section = sectionShop
		} else {
			m.section = sectionActions
		}
	case key.Matches(msg, m.keys.Trigger):
		m.trigger()
	case key.Matches(msg, m.keys.ToggleSword):
		m.engine.ToggleSword()
	case key.Matches(msg, m.keys.ToggleShield):
		m.engine.ToggleShield()
	}

	return m, nil
}

// moveCursor moves the selection within the active section, wrapping.
func (m *Model) moveCursor(dir int) {
	switch m.section {
	case sectionActions:
		n := len(m.cat.Actions)
		if n > 0 {
			m.actionCursor = (m.actionCursor + dir + n) % n
		}
	case sectionShop:
		n := len(m.cat.Products)
		if n > 0 {
			m.shopCursor = (m.shopCursor + dir + n) % n
		}
	}
}

// trigger fires the selected action or purchase and surfaces the outcome.
func (m *Model) trigger() {
	var res pet.Result
	switch m.section {
	case sectionActions:
		if m.actionCursor >= len(m.cat.Actions) {
			return
		}
		res = m.engine.Perform(m.cat.Actions[m.actionCursor].ID)
	case sectionShop:
		if m.shopCursor >= len(m.cat.Products) {
			return
		}
		res = m.engine.Purchase(m.cat.Products[m.shopCursor].ID)
	}

	if line := m.lines.Pick(m.rng, res.Event); line != "" {
		m.message = line
		return
	}

	// Gating rejections get a short status note; the engine stays silent.
	switch res.Status {
	case pet.StatusNotReady:
		m.message = "Not ready yet. Let the vigor bar fill up."
	case pet.StatusNoStock:
		m.message = "Nothing left of that. Buy more first."
	case pet.StatusArmed:
		m.message = "No weapons at the gambling table. The vigor is gone anyway."
	case pet.StatusRefused:
		m.message = "The shopkeeper shakes their head."
	}
}

// handleTick advances the simulation by the elapsed wall-clock time.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	now := time.Time(msg)

	var delta float64
	if !m.lastTick.IsZero() {
		delta = now.Sub(m.lastTick).Seconds()
	}
	if delta < 0 {
		delta = 0
	}
	m.lastTick = now

	ev := m.engine.Advance(delta)
	if line := m.lines.Pick(m.rng, ev); line != "" {
		m.message = line
	}

	if m.engine.Dead() {
		m.saveSession(storage.CauseDeath)
	}

	return m, tickCmd(m.opts.TickRate)
}

// saveSession records the finished session once.
func (m *Model) saveSession(cause string) {
	if m.sessionSaved || m.store == nil {
		return
	}

	p := m.engine.Player()
	//nolint:errcheck // Best-effort save, the session ends regardless
	m.store.SaveSession(storage.SessionEntry{
		Cause:        cause,
		Level:        p.Level,
		Money:        p.Money,
		Beers:        p.Beers,
		Cigarettes:   p.Cigarettes,
		DurationSecs: int(time.Since(m.startedAt).Seconds()),
	})
	m.sessionSaved = true
}

// Dead reports whether the session ended in the terminal state.
func (m Model) Dead() bool {
	return m.engine.Dead()
}

// Run starts the Bubble Tea program and returns the final model.
func Run(engine *pet.Engine, cat catalog.Catalog, lines dialogue.Lines, store *storage.Store, rng pet.Rand, opts Options) (Model, error) {
	model := NewModel(engine, cat, lines, store, rng, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return model, err
	}
	if fm, ok := final.(Model); ok {
		return fm, nil
	}
	return model, nil
}
