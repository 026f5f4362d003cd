package game

import (
	"math"
	"slices"

	"github.com/vovakirdan/tower-rush/internal/core"
)

// handleShooting fires the player's weapon toward the aim point while
// fire is held. With more than one shot the bullets fan out evenly
// around the aim direction.
func (s *Session) handleShooting(now int64, in core.InputFrame) {
	p := s.player
	if p == nil || !in.Fire || now < p.NextShotAt {
		return
	}
	dir, ok := in.Aim.Sub(p.Pos).Normalize()
	if !ok {
		return
	}
	n := max(1, p.ShotCount)
	half := float64(n-1) / 2
	for i := range n {
		shot := dir
		if n > 1 {
			shot = dir.Rotate((float64(i) - half) * s.cfg.Bullets.SpreadDegrees)
		}
		s.addBullet(shot)
	}
	p.NextShotAt = now + int64(p.Cooldown*1000)
	s.sound.Play(CueFire)
}

// handleAutoFire runs the auto-salvo upgrade. The timer refills while
// the field is empty and otherwise counts down; on expiry it shoots at
// the nearest enemies.
func (s *Session) handleAutoFire(dt float64) {
	fx := s.effects
	if s.player == nil || fx.AutoFireLevel == 0 {
		return
	}
	if len(s.enemies) == 0 {
		s.autoFireTimer = math.Min(s.autoFireTimer+dt, fx.AutoFireCooldown)
		return
	}
	s.autoFireTimer -= dt
	if s.autoFireTimer > 0 {
		return
	}

	origin := s.player.Pos
	targets := slices.Clone(s.enemies)
	slices.SortStableFunc(targets, func(a, b *Enemy) int {
		da, db := core.DistSq(a.Pos, origin), core.DistSq(b.Pos, origin)
		switch {
		case da < db:
			return -1
		case da > db:
			return 1
		}
		return 0
	})
	fired := false
	for _, e := range targets[:min(fx.AutoFireShots, len(targets))] {
		dir, ok := e.Pos.Sub(origin).Normalize()
		if !ok {
			continue
		}
		s.addBullet(dir)
		fired = true
	}
	if fired {
		s.sound.Play(CueFire)
	}
	s.autoFireTimer = fx.AutoFireCooldown
}

// addBullet spawns a bullet from the player along unit direction dir,
// using the player's current bullet stats.
func (s *Session) addBullet(dir core.Vec2) {
	p := s.player
	s.bullets = append(s.bullets, &Bullet{
		ID:       s.ids.next(),
		Pos:      p.Pos,
		Vel:      dir.Scale(s.cfg.Bullets.Speed),
		Radius:   p.BulletRadius,
		Damage:   p.Damage,
		Piercing: p.Piercing,
	})
}
