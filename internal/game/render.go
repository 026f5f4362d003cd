package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tower-rush/internal/core"
)

var (
	barBackground = core.RGB(80, 80, 80)
	barFill       = core.RGB(255, 120, 150)
	pausePanel    = core.RGB(8, 8, 10)
)

const (
	bossBarW = 220
	bossBarH = 18
)

// Render draws the current state onto c. now is the host clock in ms;
// while paused the gameplay view is frozen at the pause instant.
func (s *Session) Render(c core.Canvas, now int64) {
	switch s.state {
	case StateMenu:
		s.drawMenu(c)
	case StateMetaShop:
		s.drawShop(c)
	case StatePlaying:
		s.drawGameplay(c, now)
	case StatePaused:
		s.drawGameplay(c, s.pausedAt)
		s.drawPause(c)
	case StateGameOver:
		s.drawGameOver(c)
	}
}

func (s *Session) drawGameplay(c core.Canvas, now int64) {
	w, h := s.cfg.Arena.Width, s.cfg.Arena.Height
	c.Clear(core.ColorBackground)

	for _, pu := range s.powerUps {
		color := core.ColorWhite
		if k, ok := s.cfg.PowerUps.Kind(pu.Name); ok {
			color = k.Color.Color()
		}
		c.DrawRect(core.CenteredRect(pu.Pos, pu.Size, pu.Size), color, 6)
	}
	for _, p := range s.projectiles {
		c.DrawCircle(p.Pos, p.Radius, p.Color, 0)
	}
	for _, e := range s.enemies {
		c.DrawCircle(e.Pos, e.Radius, e.Color, 0)
		if e.Boss {
			s.drawBossBar(c, e)
		}
	}
	bulletColor := s.cfg.Bullets.Color.Color()
	for _, b := range s.bullets {
		c.DrawCircle(b.Pos, b.Radius, bulletColor, 0)
	}
	if p := s.player; p != nil {
		c.DrawCircle(p.Pos, p.Radius, p.Color(now), 0)
		if p.Invulnerable(now) {
			c.DrawCircle(p.Pos, p.Radius+4, core.ColorWhite, 2)
		}
	}

	s.drawHUD(c, now)

	if s.waiting && s.activeBoss == NoEntity {
		c.DrawText(fmt.Sprintf("Entering Floor %d", s.floor+1), core.V(w/2, h/2), core.FontMedium, core.ColorHUD, core.AnchorCenter)
	}
	if IsBossFloor(s.floor, s.cfg.Floors.BossInterval) && s.activeBoss != NoEntity {
		c.DrawText("Boss Floor! Hold the line.", core.V(w/2, h-72), core.FontMedium, core.ColorHUD, core.AnchorCenter)
	}
	if p := s.player; p != nil && p.Invulnerable(now) {
		left := float64(p.InvulnerableUntil-now) / 1000
		c.DrawText(fmt.Sprintf("Barrier: %.1fs", left), core.V(w-24, h-48), core.FontSmall, core.ColorHUD, core.AnchorTopRight)
	}
}

func (s *Session) drawBossBar(c core.Canvas, e *Enemy) {
	x := s.cfg.Arena.Width/2 - bossBarW/2
	const y = 20
	c.DrawRect(core.RectF{X: x, Y: y, W: bossBarW, H: bossBarH}, barBackground, 6)
	fill := (bossBarW - 4) * e.HealthFraction()
	if fill > 0 {
		c.DrawRect(core.RectF{X: x + 2, Y: y + 2, W: fill, H: bossBarH - 4}, barFill, 5)
	}
}

func (s *Session) drawHUD(c core.Canvas, now int64) {
	w, h := s.cfg.Arena.Width, s.cfg.Arena.Height
	lines := []string{
		fmt.Sprintf("Score: %d", s.score),
		fmt.Sprintf("Hearts: %d", s.lives),
		fmt.Sprintf("Floor: %d", s.floor),
		fmt.Sprintf("Coins: %d", s.runCoins),
	}
	for i, line := range lines {
		c.DrawText(line, core.V(24, 24+float64(i)*36), core.FontMedium, core.ColorHUD, core.AnchorTopLeft)
	}
	c.DrawText(fmt.Sprintf("Bank: %d", s.bank), core.V(28, 168), core.FontSmall, core.ColorHUD, core.AnchorTopLeft)

	p := s.player
	if p == nil {
		return
	}
	y := 90.0
	for _, name := range timedOrder {
		if _, ok := p.Timers[name]; !ok {
			continue
		}
		label := name
		if k, ok := s.cfg.PowerUps.Kind(name); ok {
			label = k.Label
		}
		left := float64(p.Remaining(name, now)) / 1000
		c.DrawText(fmt.Sprintf("%s: %.1fs", label, left), core.V(w-24, y), core.FontSmall, core.ColorHUD, core.AnchorTopRight)
		y += 26
	}

	var buffs []string
	if p.PermaFireRate > 0 {
		buffs = append(buffs, fmt.Sprintf("Fire +%d", p.PermaFireRate))
	}
	if p.PermaDamage > 0 {
		buffs = append(buffs, fmt.Sprintf("Damage +%d", p.PermaDamage))
	}
	if len(buffs) > 0 {
		c.DrawText("Session buffs: "+strings.Join(buffs, " | "), core.V(24, h-24), core.FontSmall, core.ColorHUD, core.AnchorBottomLeft)
	}
}

func (s *Session) drawPause(c core.Canvas) {
	w, h := s.cfg.Arena.Width, s.cfg.Arena.Height
	c.DrawRect(core.CenteredRect(core.V(w/2, h/2), 420, 220), pausePanel, 12)
	c.DrawText("Paused", core.V(w/2, h/2-40), core.FontLarge, core.ColorHUD, core.AnchorCenter)
	c.DrawText("Press ESC to resume", core.V(w/2, h/2+16), core.FontMedium, core.ColorHUD, core.AnchorCenter)
	c.DrawText("Press R to restart", core.V(w/2, h/2+56), core.FontSmall, core.ColorHUD, core.AnchorCenter)
}

func (s *Session) drawMenu(c core.Canvas) {
	w, h := s.cfg.Arena.Width, s.cfg.Arena.Height
	c.Clear(core.ColorBackground)
	c.DrawText("Tower Rush", core.V(w/2, h/2-120), core.FontLarge, core.ColorHUD, core.AnchorCenter)
	c.DrawText("Press Enter to start", core.V(w/2, h/2-30), core.FontMedium, core.ColorHUD, core.AnchorCenter)
	c.DrawText("WASD to move  |  Mouse to aim, click to fire  |  Arrows to fire", core.V(w/2, h/2+20), core.FontSmall, core.ColorHUD, core.AnchorCenter)
	c.DrawText("Press U for the upgrade workshop", core.V(w/2, h/2+60), core.FontSmall, core.ColorHUD, core.AnchorCenter)
	c.DrawText(fmt.Sprintf("Total coins: %d", s.bank), core.V(w/2, h/2+100), core.FontSmall, core.ColorHUD, core.AnchorCenter)
	if s.bestScore > 0 {
		c.DrawText(fmt.Sprintf("Best score: %d", s.bestScore), core.V(w/2, h/2+130), core.FontSmall, core.ColorHUD, core.AnchorCenter)
	}
}

func (s *Session) drawGameOver(c core.Canvas) {
	w, h := s.cfg.Arena.Width, s.cfg.Arena.Height
	c.Clear(core.ColorBackground)
	c.DrawText("Run Over", core.V(w/2, h/2-100), core.FontLarge, core.ColorHUD, core.AnchorCenter)
	c.DrawText(fmt.Sprintf("Score: %d", s.score), core.V(w/2, h/2-20), core.FontMedium, core.ColorHUD, core.AnchorCenter)
	if s.score > 0 && s.score == s.bestScore {
		c.DrawText("New best!", core.V(w/2, h/2-60), core.FontSmall, core.ColorAccent, core.AnchorCenter)
	} else {
		c.DrawText(fmt.Sprintf("Best: %d", s.bestScore), core.V(w/2, h/2-60), core.FontSmall, core.ColorHUD, core.AnchorCenter)
	}
	c.DrawText(fmt.Sprintf("Highest Floor: %d", s.floor), core.V(w/2, h/2+20), core.FontSmall, core.ColorHUD, core.AnchorCenter)
	c.DrawText(fmt.Sprintf("Coins Earned: %d", s.runCoins), core.V(w/2, h/2+50), core.FontSmall, core.ColorHUD, core.AnchorCenter)
	c.DrawText(fmt.Sprintf("Total Coins: %d", s.bank), core.V(w/2, h/2+80), core.FontSmall, core.ColorHUD, core.AnchorCenter)
	c.DrawText("Press Enter to retry, U for workshop, M for menu, Esc to quit", core.V(w/2, h/2+120), core.FontSmall, core.ColorHUD, core.AnchorCenter)
}

func (s *Session) drawShop(c core.Canvas) {
	w := s.cfg.Arena.Width
	c.Clear(core.ColorBackground)
	c.DrawText("Upgrade Workshop", core.V(w/2, 120), core.FontLarge, core.ColorHUD, core.AnchorCenter)
	c.DrawText(fmt.Sprintf("Available coins: %d", s.bank), core.V(w/2, 170), core.FontMedium, core.ColorHUD, core.AnchorCenter)
	ups := s.ledger.Upgrades()
	c.DrawText(fmt.Sprintf("Press 1-%d to purchase, ESC to return", len(ups)), core.V(w/2, 210), core.FontSmall, core.ColorHUD, core.AnchorCenter)

	y := 260.0
	for i, up := range ups {
		level := s.ledger.Level(up.Key)
		cost := s.ledger.Cost(up.Key)
		status := fmt.Sprintf("Cost: %d", cost)
		statusColor := core.ColorWarning
		switch {
		case level >= up.MaxLevel:
			status = "MAX"
			statusColor = core.ColorMuted
		case s.bank >= cost:
			statusColor = core.ColorAccent
		}
		c.DrawText(fmt.Sprintf("%d. %s (Lv %d/%d)", i+1, up.Label, level, up.MaxLevel), core.V(140, y), core.FontMedium, core.ColorHUD, core.AnchorTopLeft)
		c.DrawText(up.Description, core.V(160, y+34), core.FontSmall, core.ColorHUD, core.AnchorTopLeft)
		c.DrawText(status, core.V(w-260, y), core.FontSmall, statusColor, core.AnchorTopLeft)
		y += 72
	}
}
