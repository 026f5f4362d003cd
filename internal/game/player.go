package game

import (
	"github.com/vovakirdan/tower-rush/internal/config"
	"github.com/vovakirdan/tower-rush/internal/core"
)

// Timed power-up names.
const (
	PowerSpeed     = "speed"
	PowerFireRate  = "fire_rate"
	PowerBigBullet = "big_bullet"
	PowerMultiShot = "multi_shot"
	PowerPiercing  = "piercing"

	PowerPermaFireRate = "perma_fire_rate"
	PowerPermaDamage   = "perma_damage"
)

// timedOrder is the fixed iteration order for timed effects.
var timedOrder = []string{PowerSpeed, PowerFireRate, PowerBigBullet, PowerMultiShot, PowerPiercing}

// Player is the avatar controlled by the user.
type Player struct {
	Pos    core.Vec2
	Radius float64

	BaseSpeed    float64
	Speed        float64
	BaseCooldown float64 // seconds
	Cooldown     float64

	BaseBulletRadius float64
	BulletRadius     float64
	BaseDamage       int
	Damage           int
	ShotCount        int
	Piercing         bool

	// Timers maps an active timed power-up to its expiry in ms.
	Timers map[string]int64

	PermaFireRate int
	PermaDamage   int

	InvulnerableUntil int64
	HitFlashUntil     int64
	NextShotAt        int64

	tuning  config.PlayerConfig
	bullets config.BulletConfig
	powers  config.PowerUpsConfig
	arenaW  float64
	arenaH  float64
}

func newPlayer(cfg config.TowerRushConfig, pos core.Vec2) *Player {
	p := &Player{
		Pos:     pos,
		Radius:  cfg.Player.Radius,
		Timers:  make(map[string]int64),
		tuning:  cfg.Player,
		bullets: cfg.Bullets,
		powers:  cfg.PowerUps,
		arenaW:  cfg.Arena.Width,
		arenaH:  cfg.Arena.Height,
	}
	p.BaseSpeed = cfg.Player.Speed
	p.Speed = p.BaseSpeed
	p.BaseCooldown = cfg.Player.FireCooldown
	p.Cooldown = p.BaseCooldown
	p.BaseBulletRadius = cfg.Bullets.Radius
	p.BulletRadius = p.BaseBulletRadius
	p.BaseDamage = cfg.Bullets.Damage
	p.Damage = p.BaseDamage
	p.ShotCount = 1
	return p
}

// Move advances the player along the held direction keys and keeps it
// inside the arena.
func (p *Player) Move(dt float64, in core.InputFrame) {
	dir, ok := in.Direction().Normalize()
	if ok {
		p.Pos = p.Pos.Add(dir.Scale(p.Speed * dt))
	}
	p.Pos.X = core.ClampF(p.Pos.X, p.Radius, p.arenaW-p.Radius)
	p.Pos.Y = core.ClampF(p.Pos.Y, p.Radius, p.arenaH-p.Radius)
}

// TickTimedEffects reverts every timed power-up whose expiry is at or
// before now. Stats revert to the current base values.
func (p *Player) TickTimedEffects(now int64) {
	for _, name := range timedOrder {
		end, ok := p.Timers[name]
		if !ok || now < end {
			continue
		}
		switch name {
		case PowerSpeed:
			p.Speed = p.BaseSpeed
		case PowerFireRate:
			p.Cooldown = p.BaseCooldown
		case PowerBigBullet:
			p.BulletRadius = p.BaseBulletRadius
			p.Damage = p.BaseDamage
		case PowerMultiShot:
			p.ShotCount = 1
		case PowerPiercing:
			p.Piercing = false
		}
		delete(p.Timers, name)
	}
}

// ApplyPowerUp applies a pickup. Timed kinds overwrite their expiry with
// now + duration; session kinds compound the base stat and never expire.
// Unknown names are ignored.
func (p *Player) ApplyPowerUp(name string, now int64) {
	expiry := now + p.powers.DurationMS
	switch name {
	case PowerSpeed:
		p.Speed = p.BaseSpeed * p.powers.SpeedMultiplier
		p.Timers[name] = expiry
	case PowerFireRate:
		p.Cooldown = p.BaseCooldown * p.powers.FireRateMultiplier
		p.Timers[name] = expiry
	case PowerBigBullet:
		p.BulletRadius = float64(int(p.BaseBulletRadius * p.bullets.BigMultiplier))
		p.Damage = p.BaseDamage + p.bullets.BigDamageBonus
		p.Timers[name] = expiry
	case PowerMultiShot:
		p.ShotCount = p.bullets.MultiShot
		p.Timers[name] = expiry
	case PowerPiercing:
		p.Piercing = true
		p.Timers[name] = expiry
	case PowerPermaFireRate:
		p.PermaFireRate++
		p.BaseCooldown *= p.powers.PermaFireMultiplier
		p.Cooldown = p.BaseCooldown
		if _, ok := p.Timers[PowerFireRate]; ok {
			p.Cooldown = p.BaseCooldown * p.powers.FireRateMultiplier
		}
	case PowerPermaDamage:
		p.PermaDamage++
		p.BaseDamage += p.powers.PermaDamageBonus
		p.Damage = p.BaseDamage
		if _, ok := p.Timers[PowerBigBullet]; ok {
			p.Damage = p.BaseDamage + p.bullets.BigDamageBonus
		}
	}
}

// ShiftTimers pushes every active expiry forward by offset ms.
func (p *Player) ShiftTimers(offset int64) {
	if offset <= 0 {
		return
	}
	for name, end := range p.Timers {
		p.Timers[name] = end + offset
	}
}

// Remaining returns the ms left on a timed effect, or 0.
func (p *Player) Remaining(name string, now int64) int64 {
	end, ok := p.Timers[name]
	if !ok || end <= now {
		return 0
	}
	return end - now
}

// Invulnerable reports whether hits are ignored at now.
func (p *Player) Invulnerable(now int64) bool {
	return now < p.InvulnerableUntil
}

// Color returns the body color at now: the hit flash first, then the
// invulnerability blink.
func (p *Player) Color(now int64) core.Color {
	switch {
	case now < p.HitFlashUntil:
		return p.tuning.HitFlashColor.Color()
	case now < p.InvulnerableUntil && (now/blinkPeriodMS)%2 == 0:
		return p.tuning.InvulnerableTint.Color()
	default:
		return p.tuning.Color.Color()
	}
}

const blinkPeriodMS = 120
