package desktop

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tower-rush/internal/config"
	"github.com/vovakirdan/tower-rush/internal/core"
	"github.com/vovakirdan/tower-rush/internal/game"
	"github.com/vovakirdan/tower-rush/internal/storage"
)

// fakeInput is a scripted input source.
type fakeInput struct {
	held   map[ebiten.Key]bool
	just   map[ebiten.Key]bool
	x, y   int
	button bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{held: map[ebiten.Key]bool{}, just: map[ebiten.Key]bool{}}
}

func (f *fakeInput) Pressed(k ebiten.Key) bool     { return f.held[k] }
func (f *fakeInput) JustPressed(k ebiten.Key) bool { return f.just[k] }
func (f *fakeInput) Cursor() (int, int)            { return f.x, f.y }
func (f *fakeInput) MouseDown() bool               { return f.button }

func TestSampleInput(t *testing.T) {
	f := newFakeInput()
	f.held[ebiten.KeyW] = true
	f.held[ebiten.KeyA] = true
	f.just[ebiten.KeyDigit3] = true
	f.just[ebiten.KeyEscape] = true
	f.x, f.y = 300, 200
	f.button = true

	in := sampleInput(f, core.V(800, 450))
	if !in.Up || !in.Left || in.Down || in.Right {
		t.Errorf("held = up:%v down:%v left:%v right:%v", in.Up, in.Down, in.Left, in.Right)
	}
	if in.Aim != core.V(300, 200) || !in.Fire {
		t.Errorf("aim = %v fire = %v", in.Aim, in.Fire)
	}
	if !in.Has(core.ActionBuy3) || !in.Has(core.ActionBack) || in.Has(core.ActionConfirm) {
		t.Errorf("actions = %v", in.Actions)
	}
}

func TestArrowKeysFireInsteadOfMove(t *testing.T) {
	origin := core.V(800, 450)
	tests := []struct {
		name string
		keys []ebiten.Key
		aim  core.Vec2
	}{
		{"up", []ebiten.Key{ebiten.KeyArrowUp}, core.V(800, 250)},
		{"down", []ebiten.Key{ebiten.KeyArrowDown}, core.V(800, 650)},
		{"left", []ebiten.Key{ebiten.KeyArrowLeft}, core.V(600, 450)},
		{"right", []ebiten.Key{ebiten.KeyArrowRight}, core.V(1000, 450)},
		{"opposite arrows cancel", []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowRight}, core.V(10, 20)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFakeInput()
			f.x, f.y = 10, 20
			for _, k := range tc.keys {
				f.held[k] = true
			}

			in := sampleInput(f, origin)
			if in.Up || in.Down || in.Left || in.Right {
				t.Errorf("arrows should not move: %+v", in)
			}
			if in.Aim != tc.aim {
				t.Errorf("aim = %v, expected %v", in.Aim, tc.aim)
			}
			cancelled := tc.aim == core.V(10, 20)
			if in.Fire == cancelled {
				t.Errorf("fire = %v", in.Fire)
			}
		})
	}
}

func TestAnchorOrigin(t *testing.T) {
	pos := core.V(100, 100)
	tests := []struct {
		anchor core.Anchor
		x, y   float64
	}{
		{core.AnchorTopLeft, 100, 100},
		{core.AnchorTopRight, 40, 100},
		{core.AnchorCenter, 70, 90},
		{core.AnchorBottomLeft, 100, 80},
	}
	for _, tc := range tests {
		x, y := anchorOrigin(pos, 60, 20, tc.anchor)
		if x != tc.x || y != tc.y {
			t.Errorf("anchor %v: (%v, %v), expected (%v, %v)", tc.anchor, x, y, tc.x, tc.y)
		}
	}
}

func TestTextSize(t *testing.T) {
	w, h := textSize("Paused", 2)
	if w != 72 || h != 32 {
		t.Errorf("textSize = %vx%v, expected 72x32", w, h)
	}
}

func newTestGame(t *testing.T, store *storage.Store) (*Game, *fakeInput) {
	t.Helper()
	session := game.New(config.DefaultTowerRushConfig(), game.WithSeed(3))
	g := NewGame(session, store, Options{})
	f := newFakeInput()
	g.input = f
	return g, f
}

func TestGameUpdateFixedClock(t *testing.T) {
	g, f := newTestGame(t, nil)
	f.just[ebiten.KeyEnter] = true
	if err := g.Update(); err != nil {
		t.Fatalf("Update() = %v", err)
	}
	if g.session.Mode() != game.StatePlaying {
		t.Fatalf("mode = %v, expected playing", g.session.Mode())
	}

	f.just = map[ebiten.Key]bool{}
	for range 59 {
		if err := g.Update(); err != nil {
			t.Fatalf("Update() = %v", err)
		}
	}
	if g.now != 1000 {
		t.Errorf("after 60 ticks now = %d, expected 1000", g.now)
	}
}

func TestGameQuit(t *testing.T) {
	g, f := newTestGame(t, nil)
	f.just[ebiten.KeyQ] = true
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update() = %v, expected termination", err)
	}

	// Escape in the main menu also leaves.
	g, f = newTestGame(t, nil)
	f.just[ebiten.KeyEscape] = true
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update() = %v, expected termination", err)
	}
}

func TestGameLayoutIsArena(t *testing.T) {
	g, _ := newTestGame(t, nil)
	w, h := g.Layout(640, 480)
	if w != 1600 || h != 900 {
		t.Errorf("Layout = %dx%d, expected 1600x900", w, h)
	}
}

func TestGameSaveRun(t *testing.T) {
	store, err := storage.Open(storage.MemoryPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g, _ := newTestGame(t, store)
	g.saveRun(core.GameState{Score: 9, Floor: 2, Coins: 14})
	hs, err := store.HighScore()
	if err != nil || hs != 9 {
		t.Errorf("HighScore = %d, %v", hs, err)
	}
}
