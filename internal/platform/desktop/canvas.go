package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tower-rush/internal/core"
)

// Debug font cell size used by ebitenutil.DebugPrintAt.
const (
	glyphW = 6
	glyphH = 16

	maxCachedLabels = 256
)

// tierScale maps font tiers onto the fixed debug font.
var tierScale = map[core.FontTier]float64{
	core.FontSmall:  1.5,
	core.FontMedium: 2,
	core.FontLarge:  3.5,
}

// rgba converts a core color to an opaque image color.
func rgba(c core.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Canvas draws the session onto an ebiten image in arena coordinates.
// Labels are rendered once with the debug font and reused while their
// text is unchanged.
type Canvas struct {
	dst    *ebiten.Image
	labels map[string]*ebiten.Image
}

// NewCanvas creates a canvas. Call Target before each frame.
func NewCanvas() *Canvas {
	return &Canvas{labels: make(map[string]*ebiten.Image)}
}

// Target sets the image drawn on by the following calls.
func (c *Canvas) Target(dst *ebiten.Image) {
	c.dst = dst
}

// Clear implements core.Canvas.
func (c *Canvas) Clear(bg core.Color) {
	c.dst.Fill(rgba(bg))
}

// DrawCircle implements core.Canvas.
func (c *Canvas) DrawCircle(center core.Vec2, radius float64, col core.Color, width float64) {
	x, y, r := float32(center.X), float32(center.Y), float32(radius)
	if width > 0 {
		vector.StrokeCircle(c.dst, x, y, r, float32(width), rgba(col), true)
		return
	}
	vector.DrawFilledCircle(c.dst, x, y, r, rgba(col), true)
}

// DrawRect implements core.Canvas. Rounded corners are built from a
// cross of rectangles and four corner circles.
func (c *Canvas) DrawRect(r core.RectF, col core.Color, cornerRadius float64) {
	clr := rgba(col)
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	cr := float32(min(cornerRadius, r.W/2, r.H/2))
	if cr <= 0 {
		vector.DrawFilledRect(c.dst, x, y, w, h, clr, false)
		return
	}
	vector.DrawFilledRect(c.dst, x+cr, y, w-2*cr, h, clr, false)
	vector.DrawFilledRect(c.dst, x, y+cr, w, h-2*cr, clr, false)
	vector.DrawFilledCircle(c.dst, x+cr, y+cr, cr, clr, true)
	vector.DrawFilledCircle(c.dst, x+w-cr, y+cr, cr, clr, true)
	vector.DrawFilledCircle(c.dst, x+cr, y+h-cr, cr, clr, true)
	vector.DrawFilledCircle(c.dst, x+w-cr, y+h-cr, cr, clr, true)
}

// DrawText implements core.Canvas.
func (c *Canvas) DrawText(text string, pos core.Vec2, tier core.FontTier, col core.Color, anchor core.Anchor) {
	if text == "" {
		return
	}
	img := c.label(text)
	scale := tierScale[tier]
	if scale == 0 {
		scale = 1
	}
	w, h := textSize(text, scale)
	x, y := anchorOrigin(pos, w, h, anchor)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(rgba(col))
	op.Filter = ebiten.FilterLinear
	c.dst.DrawImage(img, op)
}

// label returns the white debug-font rendering of text.
func (c *Canvas) label(text string) *ebiten.Image {
	if img, ok := c.labels[text]; ok {
		return img
	}
	if len(c.labels) >= maxCachedLabels {
		for k, img := range c.labels {
			img.Deallocate()
			delete(c.labels, k)
		}
	}
	img := ebiten.NewImage(len([]rune(text))*glyphW, glyphH)
	ebitenutil.DebugPrintAt(img, text, 0, 0)
	c.labels[text] = img
	return img
}

// textSize is the on-screen size of text at scale.
func textSize(text string, scale float64) (w, h float64) {
	return float64(len([]rune(text))*glyphW) * scale, glyphH * scale
}

// anchorOrigin returns the top-left corner of a w×h box anchored at pos.
func anchorOrigin(pos core.Vec2, w, h float64, anchor core.Anchor) (x, y float64) {
	switch anchor {
	case core.AnchorTopRight:
		return pos.X - w, pos.Y
	case core.AnchorCenter:
		return pos.X - w/2, pos.Y - h/2
	case core.AnchorBottomLeft:
		return pos.X, pos.Y - h
	default:
		return pos.X, pos.Y
	}
}
