package core

import "fmt"

// Color is a 24-bit RGB color. Frontends map it to whatever their
// output supports (true color escape codes, image/color values).
type Color struct {
	R, G, B uint8
}

// RGB builds a Color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette colors used by the HUD and overlays.
var (
	ColorBackground = RGB(18, 18, 22)
	ColorHUD        = RGB(240, 240, 240)
	ColorAccent     = RGB(90, 200, 250)
	ColorMuted      = RGB(120, 120, 120)
	ColorWarning    = RGB(200, 120, 120)
	ColorWhite      = RGB(255, 255, 255)
)
