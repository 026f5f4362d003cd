package game

import (
	"testing"

	"github.com/vovakirdan/tower-rush/internal/config"
	"github.com/vovakirdan/tower-rush/internal/core"
)

type recordSound struct {
	cues []Cue
}

func (r *recordSound) Play(c Cue) { r.cues = append(r.cues, c) }

func (r *recordSound) count(c Cue) int {
	n := 0
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// newRun starts a run at t=0 and empties the field so tests can place
// entities by hand.
func newRun(t *testing.T, opts ...Option) *Session {
	t.Helper()
	s := New(config.DefaultTowerRushConfig(), append([]Option{WithSeed(42)}, opts...)...)
	res := s.Step(Frame{Now: 0, Input: press(core.ActionConfirm)})
	if res.State.Mode != "playing" {
		t.Fatalf("expected playing after confirm, got %s", res.State.Mode)
	}
	s.enemies = s.enemies[:0]
	s.projectiles = s.projectiles[:0]
	s.powerUps = s.powerUps[:0]
	s.bullets = s.bullets[:0]
	s.activeBoss = NoEntity
	return s
}

// placeEnemy adds a stationary enemy of the given variant.
func placeEnemy(t *testing.T, s *Session, variant string, pos core.Vec2) *Enemy {
	t.Helper()
	v, ok := s.cfg.Enemies.Variant(variant)
	if !ok {
		t.Fatalf("unknown variant %q", variant)
	}
	e := &Enemy{
		ID:        s.ids.next(),
		Name:      v.Name,
		Pos:       pos,
		Color:     v.Color.Color(),
		Health:    v.Health,
		MaxHealth: v.Health,
		Radius:    v.Radius,
		Score:     v.Score,
		Reward:    v.Reward,
	}
	s.enemies = append(s.enemies, e)
	return e
}

// placeBoss spawns the scaled boss for floor at pos, with no speed.
func placeBoss(s *Session, floor int, pos core.Vec2) *Enemy {
	s.floor = floor
	st := ScaleBoss(s.cfg, floor)
	shot, special := st.Shot, st.Special
	e := &Enemy{
		ID:        s.ids.next(),
		Name:      "boss",
		Pos:       pos,
		Health:    st.Health,
		MaxHealth: st.Health,
		Radius:    s.cfg.Boss.Radius,
		Score:     s.cfg.Boss.Score,
		Boss:      true,
		Behavior:  RangedChase,
		Ranged:    &shot,
		Special:   &special,
	}
	s.enemies = append(s.enemies, e)
	s.activeBoss = e.ID
	return e
}

type drawCall struct {
	kind string
	text string
}

type recordCanvas struct {
	calls []drawCall
}

func (c *recordCanvas) Clear(core.Color) { c.calls = append(c.calls, drawCall{kind: "clear"}) }

func (c *recordCanvas) DrawCircle(core.Vec2, float64, core.Color, float64) {
	c.calls = append(c.calls, drawCall{kind: "circle"})
}

func (c *recordCanvas) DrawRect(core.RectF, core.Color, float64) {
	c.calls = append(c.calls, drawCall{kind: "rect"})
}

func (c *recordCanvas) DrawText(text string, _ core.Vec2, _ core.FontTier, _ core.Color, _ core.Anchor) {
	c.calls = append(c.calls, drawCall{kind: "text", text: text})
}

func (c *recordCanvas) hasText(text string) bool {
	for _, call := range c.calls {
		if call.kind == "text" && call.text == text {
			return true
		}
	}
	return false
}

func (c *recordCanvas) count(kind string) int {
	n := 0
	for _, call := range c.calls {
		if call.kind == kind {
			n++
		}
	}
	return n
}
