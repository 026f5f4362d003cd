package tui

import (
	"math"

	"github.com/vovakirdan/tower-rush/internal/core"
)

// Glyphs used when rasterizing arena shapes into cells.
const (
	glyphFill    = '█'
	glyphDot     = '•'
	glyphOutline = '·'
)

// Canvas rasterizes arena-space drawing calls onto a core.Screen.
// Each axis is scaled independently, so the whole arena always fits the
// terminal regardless of its aspect ratio.
type Canvas struct {
	screen         *core.Screen
	arenaW, arenaH float64
}

// NewCanvas creates a canvas mapping an arenaW×arenaH arena onto screen.
func NewCanvas(screen *core.Screen, arenaW, arenaH float64) *Canvas {
	return &Canvas{screen: screen, arenaW: arenaW, arenaH: arenaH}
}

func (c *Canvas) scale() (sx, sy float64) {
	return float64(c.screen.Width()) / c.arenaW, float64(c.screen.Height()) / c.arenaH
}

// ToCell converts an arena point to the cell containing it.
func (c *Canvas) ToCell(p core.Vec2) (x, y int) {
	sx, sy := c.scale()
	return int(math.Floor(p.X * sx)), int(math.Floor(p.Y * sy))
}

// ToArena converts a cell to the arena point at its center.
func (c *Canvas) ToArena(x, y int) core.Vec2 {
	sx, sy := c.scale()
	return core.V((float64(x)+0.5)/sx, (float64(y)+0.5)/sy)
}

// Clear implements core.Canvas. The terminal keeps its own background,
// so bg is ignored.
func (c *Canvas) Clear(core.Color) {
	c.screen.Clear()
}

// DrawCircle implements core.Canvas. Circles smaller than a cell still
// occupy the cell holding their center.
func (c *Canvas) DrawCircle(center core.Vec2, radius float64, col core.Color, width float64) {
	sx, sy := c.scale()
	cx, cy := center.X*sx, center.Y*sy
	rx, ry := radius*sx, radius*sy

	x0, x1 := int(math.Floor(cx-rx)), int(math.Ceil(cx+rx))
	y0, y1 := int(math.Floor(cy-ry)), int(math.Ceil(cy+ry))

	hit := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			// normalized distance of the cell center from the circle center
			dx := (float64(x) + 0.5 - cx) / math.Max(rx, 1e-9)
			dy := (float64(y) + 0.5 - cy) / math.Max(ry, 1e-9)
			d := math.Sqrt(dx*dx + dy*dy)
			if width > 0 {
				band := math.Max(width*sx/math.Max(rx, 1e-9), 0.35)
				if math.Abs(d-1) <= band {
					c.screen.SetColored(x, y, glyphOutline, col)
					hit = true
				}
				continue
			}
			if d <= 1 {
				c.screen.SetColored(x, y, glyphFill, col)
				hit = true
			}
		}
	}
	if !hit && width == 0 {
		c.screen.SetColored(int(math.Floor(cx)), int(math.Floor(cy)), glyphDot, col)
	}
}

// DrawRect implements core.Canvas. Corner rounding is below cell
// resolution and ignored.
func (c *Canvas) DrawRect(r core.RectF, col core.Color, _ float64) {
	sx, sy := c.scale()
	x0, y0 := int(math.Floor(r.X*sx)), int(math.Floor(r.Y*sy))
	x1, y1 := int(math.Ceil((r.X+r.W)*sx)), int(math.Ceil((r.Y+r.H)*sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	c.screen.DrawRect(core.NewRect(x0, y0, x1-x0, y1-y0), glyphFill, col)
}

// DrawText implements core.Canvas. Every font tier is one row tall.
func (c *Canvas) DrawText(text string, pos core.Vec2, _ core.FontTier, col core.Color, anchor core.Anchor) {
	x, y := c.ToCell(pos)
	n := len([]rune(text))
	switch anchor {
	case core.AnchorTopRight:
		x -= n
	case core.AnchorCenter:
		x -= n / 2
	case core.AnchorBottomLeft:
		y--
	}
	c.screen.DrawText(x, y, text, col)
}
