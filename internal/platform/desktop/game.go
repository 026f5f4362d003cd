// Package desktop runs Tower Rush in a native window through Ebiten.
package desktop

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/tower-rush/internal/core"
	"github.com/vovakirdan/tower-rush/internal/game"
	"github.com/vovakirdan/tower-rush/internal/storage"
)

const crosshairSize = 10

// Options configures the window.
type Options struct {
	WindowW, WindowH int
	ShowFPS          bool
	Logger           *log.Logger
}

// Game adapts a session to the ebiten.Game interface. The session clock
// advances by a fixed step per Update, so window hitches slow the game
// down instead of skipping frames.
type Game struct {
	session *game.Session
	store   *storage.Store
	canvas  *Canvas
	input   inputSource
	logger  *log.Logger
	showFPS bool

	arenaW, arenaH int
	tps            int
	frames         int64
	now            int64
}

// NewGame wraps session. store may be nil.
func NewGame(session *game.Session, store *storage.Store, opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	arena := session.Config().Arena
	tps := arena.FPS
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return &Game{
		session: session,
		store:   store,
		canvas:  NewCanvas(),
		input:   ebitenInput{},
		logger:  opts.Logger,
		showFPS: opts.ShowFPS,
		arenaW:  int(arena.Width),
		arenaH:  int(arena.Height),
		tps:     tps,
	}
}

// Update advances the session one tick.
func (g *Game) Update() error {
	in := sampleInput(g.input, g.aimOrigin())
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	g.frames++
	g.now = g.frames * 1000 / int64(g.tps)
	result := g.session.Step(game.Frame{
		Now:   g.now,
		DT:    1 / float64(g.tps),
		Input: in,
	})

	if result.RunEnded {
		g.saveRun(result.State)
	}
	if result.State.Quit {
		return ebiten.Termination
	}
	return nil
}

// aimOrigin is the point arrow-key fire shoots from.
func (g *Game) aimOrigin() core.Vec2 {
	if p := g.session.Player(); p != nil {
		return p.Pos
	}
	return core.V(float64(g.arenaW)/2, float64(g.arenaH)/2)
}

func (g *Game) saveRun(st core.GameState) {
	if g.store == nil {
		return
	}
	if _, err := g.store.SaveRun(storage.Run{Score: st.Score, Floor: st.Floor, Coins: st.Coins}); err != nil {
		g.logger.Warn("could not save run", "error", err)
		return
	}
	g.logger.Info("run saved", "score", st.Score, "floor", st.Floor)
}

// Draw renders the session and the aim crosshair.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	g.canvas.Target(screen)
	g.session.Render(g.canvas, g.now)

	if g.session.Mode() == game.StatePlaying {
		x, y := g.input.Cursor()
		cx, cy := float32(x), float32(y)
		vector.StrokeLine(screen, cx-crosshairSize, cy, cx+crosshairSize, cy, 2, colornames.Lightskyblue, true)
		vector.StrokeLine(screen, cx, cy-crosshairSize, cx, cy+crosshairSize, 2, colornames.Lightskyblue, true)
	}

	if g.showFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.0f  TPS: %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()), g.arenaW-140, g.arenaH-20)
	}
}

// Layout reports the arena size; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.arenaW, g.arenaH
}

// Run opens the window and blocks until the player quits.
func Run(session *game.Session, store *storage.Store, opts Options) error {
	g := NewGame(session, store, opts)
	if opts.WindowW <= 0 || opts.WindowH <= 0 {
		opts.WindowW, opts.WindowH = g.arenaW*4/5, g.arenaH*4/5
	}

	ebiten.SetWindowSize(opts.WindowW, opts.WindowH)
	ebiten.SetWindowTitle("Tower Rush")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.tps)
	// The crosshair replaces the native cursor.
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
