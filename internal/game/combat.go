package game

import "github.com/vovakirdan/tower-rush/internal/core"

// updateBullets advances player bullets and resolves their hits. A
// piercing bullet damages every enemy it overlaps in this pass; any other
// bullet stops at the first hit. After enemies, the first overlapping
// enemy projectile is checked: destroyable ones lose hit points (a
// piercing bullet survives that), solid ones always consume the bullet.
func (s *Session) updateBullets(dt float64) {
	w, h := s.cfg.Arena.Width, s.cfg.Arena.Height
	for _, b := range s.bullets {
		if b.dead {
			continue
		}
		b.update(dt)

		for _, e := range s.enemies {
			if e.dead || !core.CircleCollision(b.Pos, b.Radius, e.Pos, e.Radius) {
				continue
			}
			killed := e.TakeDamage(b.Damage)
			s.sound.Play(CueHit)
			if killed {
				s.killEnemy(e)
			}
			if !b.Piercing {
				b.dead = true
				break
			}
		}
		if b.dead {
			continue
		}

		for _, p := range s.projectiles {
			if p.dead || !core.CircleCollision(b.Pos, b.Radius, p.Pos, p.Radius) {
				continue
			}
			consumed := true
			if p.Destroyable {
				p.HitPoints -= b.Damage
				if p.HitPoints <= 0 {
					s.removeProjectile(p)
				}
				consumed = !b.Piercing
			}
			b.dead = consumed
			break
		}
		if b.dead {
			continue
		}

		if offscreen(b.Pos, b.Radius, w, h) {
			b.dead = true
		}
	}
	s.bullets = compact(s.bullets)
	s.enemies = compact(s.enemies)
	s.projectiles = compact(s.projectiles)
}

// killEnemy pays out and removes e. Killing the active boss also removes
// its live special shot and drops the boss loot.
func (s *Session) killEnemy(e *Enemy) {
	if e.Reward > 0 {
		s.reward(e.Reward)
	}
	e.dead = true
	s.score += e.Score
	if e.ID != s.activeBoss {
		return
	}
	if p := s.projectile(e.SpecialID); p != nil {
		p.dead = true
	}
	e.SpecialID = NoEntity
	s.activeBoss = NoEntity
	s.log.Info("boss defeated", "floor", s.floor, "score", s.score)
	s.dropBossLoot(e.Pos)
}

// updateEnemies moves every enemy, lets it shoot, and resolves contact
// with the player. A boss that lands a hit is pushed back out of melee
// range; a regular enemy is spent on contact.
func (s *Session) updateEnemies(dt float64, now int64) {
	if s.player == nil {
		return
	}
	w, h := s.cfg.Arena.Width, s.cfg.Arena.Height
	for _, e := range s.enemies {
		if e.dead {
			continue
		}
		e.update(dt, s.player.Pos, w, h, s.rng)

		if shot, ok := e.tryShoot(now, s.player.Pos); ok {
			s.addProjectile(shot)
		}
		if special, ok := e.trySpecial(now, s.player.Pos, s.projectileLive); ok {
			e.SpecialID = s.addProjectile(special)
		}

		if !core.CircleCollision(s.player.Pos, s.player.Radius, e.Pos, e.Radius) {
			continue
		}
		damage := 1
		if e.Boss {
			damage = s.cfg.Boss.ContactDamage
		}
		if s.hitPlayer(now, damage) {
			if e.Boss {
				if dir, ok := e.Pos.Sub(s.player.Pos).Normalize(); ok {
					e.Pos = s.player.Pos.Add(dir.Scale(e.Radius + s.player.Radius + s.cfg.Boss.PushbackGap))
				}
			} else {
				e.dead = true
			}
		}
		if s.state == StateGameOver {
			break
		}
	}
	s.enemies = compact(s.enemies)
	s.projectiles = compact(s.projectiles)
}

// updateProjectiles advances enemy projectiles, re-aiming homing ones,
// and resolves hits on the player. A projectile that touches the player
// is removed if it is destroyable or actually dealt damage; a solid shot
// blocked by invulnerability keeps flying. Afterwards projectiles whose
// owner is gone, whose hit points ran out, or that left the arena expire.
func (s *Session) updateProjectiles(dt float64, now int64) {
	if s.player == nil {
		return
	}
	w, h := s.cfg.Arena.Width, s.cfg.Arena.Height
	for _, p := range s.projectiles {
		if p.dead {
			continue
		}
		if p.Homing {
			p.aim(s.player.Pos)
		}
		p.update(dt)

		if core.CircleCollision(p.Pos, p.Radius, s.player.Pos, s.player.Radius) {
			took := s.hitPlayer(now, p.Damage)
			if s.state == StateGameOver {
				break
			}
			if p.Destroyable || took {
				s.removeProjectile(p)
			}
			continue
		}

		switch {
		case p.Owner != NoEntity && s.enemy(p.Owner) == nil:
			s.removeProjectile(p)
		case p.Destroyable && p.HitPoints <= 0:
			s.removeProjectile(p)
		case offscreen(p.Pos, p.Radius, w, h):
			s.removeProjectile(p)
		}
	}
	s.projectiles = compact(s.projectiles)
}

// handlePowerUps spawns the periodic pickup and resolves collection.
func (s *Session) handlePowerUps(now int64) {
	if s.player == nil {
		return
	}
	if now-s.lastPowerUpAt >= s.cfg.PowerUps.IntervalMS && len(s.powerUps) == 0 {
		s.spawnPowerUp()
		s.lastPowerUpAt = now
	}
	for _, pu := range s.powerUps {
		if !core.CircleCollision(s.player.Pos, s.player.Radius, pu.Pos, pu.Size/2) {
			continue
		}
		pu.dead = true
		s.player.ApplyPowerUp(pu.Name, now)
		s.sound.Play(CuePowerUp)
	}
	s.powerUps = compact(s.powerUps)
}

// hitPlayer applies damage unless the player is invulnerable. It reports
// whether damage was dealt.
func (s *Session) hitPlayer(now int64, damage int) bool {
	p := s.player
	if p == nil || p.Invulnerable(now) {
		return false
	}
	s.lives -= damage
	p.InvulnerableUntil = now + s.cfg.Player.InvulnerableMS
	p.HitFlashUntil = now + s.cfg.Player.HitFlashMS
	s.sound.Play(CueDamage)
	if s.lives <= 0 {
		s.gameOver(now)
	}
	return true
}

func (s *Session) addProjectile(p EnemyProjectile) EntityID {
	p.ID = s.ids.next()
	s.projectiles = append(s.projectiles, &p)
	return p.ID
}

// removeProjectile marks p for removal and releases its owner's handle.
func (s *Session) removeProjectile(p *EnemyProjectile) {
	p.dead = true
	if owner := s.enemy(p.Owner); owner != nil && owner.SpecialID == p.ID {
		owner.SpecialID = NoEntity
	}
	p.Owner = NoEntity
}

// enemy resolves a handle to a live enemy, or nil.
func (s *Session) enemy(id EntityID) *Enemy {
	if id == NoEntity {
		return nil
	}
	for _, e := range s.enemies {
		if e.ID == id && !e.dead {
			return e
		}
	}
	return nil
}

// projectile resolves a handle to a live enemy projectile, or nil.
func (s *Session) projectile(id EntityID) *EnemyProjectile {
	if id == NoEntity {
		return nil
	}
	for _, p := range s.projectiles {
		if p.ID == id && !p.dead {
			return p
		}
	}
	return nil
}

func (s *Session) projectileLive(id EntityID) bool {
	return s.projectile(id) != nil
}
