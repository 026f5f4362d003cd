package core

// FontTier selects a text size. Frontends choose the concrete font.
type FontTier int

const (
	FontSmall  FontTier = iota // HUD details
	FontMedium                 // HUD counters, prompts
	FontLarge                  // titles
)

// Anchor says which point of the text box sits on the given position.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorTopRight
	AnchorCenter
	AnchorBottomLeft
)

// Canvas is the drawing surface the simulation renders into.
// Coordinates are arena units; the frontend scales them to its output.
type Canvas interface {
	// Clear fills the whole surface.
	Clear(bg Color)
	// DrawCircle draws a circle. Width 0 fills it, otherwise it is the outline width.
	DrawCircle(center Vec2, radius float64, c Color, width float64)
	// DrawRect fills a rectangle with optionally rounded corners.
	DrawRect(r RectF, c Color, cornerRadius float64)
	// DrawText draws a single line of text.
	DrawText(text string, pos Vec2, tier FontTier, c Color, anchor Anchor)
}
