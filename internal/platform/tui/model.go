package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tower-rush/internal/core"
	"github.com/vovakirdan/tower-rush/internal/game"
	"github.com/vovakirdan/tower-rush/internal/storage"
)

const (
	// Terminals only report presses, so a key counts as held for this
	// long after its last press or auto-repeat.
	holdWindowMS = 300
	// Longest simulated step; a stalled terminal must not teleport entities.
	maxFrameDT = 0.1
	// Distance of the synthetic aim point used by arrow-key fire.
	arrowAimDistance = 200
)

// Options configures a Model.
type Options struct {
	Player   string // name stored with finished runs
	Width    int
	Height   int
	TickRate int
	Logger   *log.Logger
	Renderer *lipgloss.Renderer
}

// Model is the Bubble Tea model running one Tower Rush session.
type Model struct {
	session  *game.Session
	screen   *core.Screen
	canvas   *Canvas
	store    *storage.Store
	logger   *log.Logger
	renderer *lipgloss.Renderer
	player   string
	tickRate int

	keys KeyMap
	help help.Model

	start time.Time
	last  time.Time
	now   int64

	moveUntil [4]int64
	fireUntil int64
	fireDir   direction
	aim       core.Vec2
	mouseFire bool
	pending   core.InputFrame

	quitting bool
}

// NewModel creates a Bubble Tea model driving session. store may be nil.
func NewModel(session *game.Session, store *storage.Store, opts Options) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = session.Config().Arena.FPS
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		def := core.DefaultConfig()
		opts.Width, opts.Height = def.ScreenW, def.ScreenH
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Player == "" {
		opts.Player = "local"
	}

	arena := session.Config().Arena
	screen := core.NewScreen(opts.Width, playfieldHeight(opts.Height))
	h := help.New()
	h.Width = opts.Width

	return Model{
		session:  session,
		screen:   screen,
		canvas:   NewCanvas(screen, arena.Width, arena.Height),
		store:    store,
		logger:   opts.Logger,
		renderer: opts.Renderer,
		player:   opts.Player,
		tickRate: opts.TickRate,
		keys:     DefaultKeyMap(),
		help:     h,
		aim:      core.V(arena.Width/2, arena.Height/2),
		pending:  core.NewInputFrame(),
	}
}

// playfieldHeight leaves the last row for the help bar.
func playfieldHeight(h int) int {
	if h > 1 {
		return h - 1
	}
	return 1
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	ev := m.keys.mapKey(msg)
	switch {
	case ev.isMove:
		m.moveUntil[ev.move] = m.now + holdWindowMS
	case ev.isFire:
		m.fireDir = ev.fire
		m.fireUntil = m.now + holdWindowMS
	case ev.action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case ev.action != core.ActionNone:
		m.pending.Set(ev.action)
	}
	return m, nil
}

// handleMouse aims at the pointer and fires while the left button is down.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Y < m.screen.Height() {
		m.aim = m.canvas.ToArena(msg.X, msg.Y)
	}
	if msg.Button == tea.MouseButtonLeft {
		switch msg.Action {
		case tea.MouseActionPress:
			m.mouseFire = true
		case tea.MouseActionRelease:
			m.mouseFire = false
		}
	}
	return m, nil
}

// handleTick advances the session by one frame.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	if m.start.IsZero() {
		m.start, m.last = t, t
	}
	dt := t.Sub(m.last).Seconds()
	if dt < 0 {
		dt = 0
	}
	if dt > maxFrameDT {
		dt = maxFrameDT
	}
	m.last = t
	m.now = t.Sub(m.start).Milliseconds()

	result := m.session.Step(game.Frame{Now: m.now, DT: dt, Input: m.frame()})
	m.pending.ClearActions()

	if result.RunEnded {
		m.saveRun(result.State)
	}
	if result.State.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.tickRate)
}

// frame samples the held keys, aim and pending actions.
func (m Model) frame() core.InputFrame {
	in := m.pending.Clone()
	in.Up = m.now < m.moveUntil[dirUp]
	in.Down = m.now < m.moveUntil[dirDown]
	in.Left = m.now < m.moveUntil[dirLeft]
	in.Right = m.now < m.moveUntil[dirRight]
	in.Aim = m.aim
	in.Fire = m.mouseFire

	if m.now < m.fireUntil {
		origin := m.aim
		if p := m.session.Player(); p != nil {
			origin = p.Pos
		}
		in.Aim = origin.Add(m.fireDir.vec().Scale(arrowAimDistance))
		in.Fire = true
	}
	return in
}

// saveRun records a finished run once; RunEnded fires on a single tick.
func (m Model) saveRun(st core.GameState) {
	if m.store == nil {
		return
	}
	_, err := m.store.SaveRun(storage.Run{
		Player: m.player,
		Score:  st.Score,
		Floor:  st.Floor,
		Coins:  st.Coins,
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.session.Render(m.canvas, m.now)

	dir := filepath.Join(os.Getenv("HOME"), ".towerrush", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("towerrush_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.canvas, m.now)
	return RenderScreen(m.screen, m.renderer) + "\n" + m.help.View(m.keys)
}

// Session returns the session driven by the model.
func (m Model) Session() *game.Session {
	return m.session
}

// Run starts the Bubble Tea program for session in the local terminal.
func Run(session *game.Session, store *storage.Store, opts Options) error {
	model := NewModel(session, store, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
