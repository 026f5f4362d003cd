package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tower-rush/internal/core"
)

// inputSource is the slice of ebiten input state the sampler needs.
type inputSource interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
	Cursor() (x, y int)
	MouseDown() bool
}

// ebitenInput reads the live ebiten input state.
type ebitenInput struct{}

func (ebitenInput) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenInput) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }
func (ebitenInput) Cursor() (int, int)            { return ebiten.CursorPosition() }
func (ebitenInput) MouseDown() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// Distance of the synthetic aim point used by arrow-key fire.
const arrowAimDistance = 200

// Held movement keys.
var (
	upKeys    = []ebiten.Key{ebiten.KeyW}
	downKeys  = []ebiten.Key{ebiten.KeyS}
	leftKeys  = []ebiten.Key{ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyD}
)

// fireKeys fire toward a fixed direction, the same as in the terminal.
var fireKeys = []struct {
	key ebiten.Key
	dir core.Vec2
}{
	{ebiten.KeyArrowUp, core.V(0, -1)},
	{ebiten.KeyArrowDown, core.V(0, 1)},
	{ebiten.KeyArrowLeft, core.V(-1, 0)},
	{ebiten.KeyArrowRight, core.V(1, 0)},
}

// actionKeys maps discrete key presses to actions.
var actionKeys = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyEnter, core.ActionConfirm},
	{ebiten.KeySpace, core.ActionConfirm},
	{ebiten.KeyEscape, core.ActionBack},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyU, core.ActionShop},
	{ebiten.KeyM, core.ActionMenu},
	{ebiten.KeyQ, core.ActionQuit},
	{ebiten.KeyG, core.ActionMaxUpgrades},
	{ebiten.KeyDigit1, core.ActionBuy1},
	{ebiten.KeyDigit2, core.ActionBuy2},
	{ebiten.KeyDigit3, core.ActionBuy3},
	{ebiten.KeyDigit4, core.ActionBuy4},
	{ebiten.KeyDigit5, core.ActionBuy5},
	{ebiten.KeyDigit6, core.ActionBuy6},
	{ebiten.KeyDigit7, core.ActionBuy7},
	{ebiten.KeyDigit8, core.ActionBuy8},
	{ebiten.KeyDigit9, core.ActionBuy9},
}

func anyPressed(src inputSource, keys []ebiten.Key) bool {
	for _, k := range keys {
		if src.Pressed(k) {
			return true
		}
	}
	return false
}

// sampleInput builds the input frame for one tick. The cursor is already
// in arena coordinates because Layout reports the arena size. Held arrow
// keys override the mouse: they fire from origin along the summed arrow
// direction.
func sampleInput(src inputSource, origin core.Vec2) core.InputFrame {
	in := core.NewInputFrame()
	in.Up = anyPressed(src, upKeys)
	in.Down = anyPressed(src, downKeys)
	in.Left = anyPressed(src, leftKeys)
	in.Right = anyPressed(src, rightKeys)

	x, y := src.Cursor()
	in.Aim = core.V(float64(x), float64(y))
	in.Fire = src.MouseDown()

	var arrows core.Vec2
	for _, fk := range fireKeys {
		if src.Pressed(fk.key) {
			arrows = arrows.Add(fk.dir)
		}
	}
	if dir, ok := arrows.Normalize(); ok {
		in.Aim = origin.Add(dir.Scale(arrowAimDistance))
		in.Fire = true
	}

	for _, ak := range actionKeys {
		if src.JustPressed(ak.key) {
			in.Set(ak.action)
		}
	}
	return in
}
