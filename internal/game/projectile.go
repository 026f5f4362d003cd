package game

import "github.com/vovakirdan/tower-rush/internal/core"

// Bullet is a player shot.
type Bullet struct {
	ID       EntityID
	Pos      core.Vec2
	Vel      core.Vec2
	Radius   float64
	Damage   int
	Piercing bool

	dead bool
}

func (b *Bullet) alive() bool { return !b.dead }

func (b *Bullet) update(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// EnemyProjectile is a shot fired by an enemy. Special shots are
// destroyable, homing, and remember the enemy that launched them.
type EnemyProjectile struct {
	ID          EntityID
	Pos         core.Vec2
	Vel         core.Vec2
	Speed       float64
	Radius      float64
	Damage      int
	Color       core.Color
	Destroyable bool
	HitPoints   int
	Homing      bool
	Owner       EntityID

	dead bool
}

func (p *EnemyProjectile) alive() bool { return !p.dead }

func (p *EnemyProjectile) update(dt float64) {
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
}

// aim re-derives the velocity toward target, keeping the stored speed.
// A projectile sitting on its target keeps its current velocity.
func (p *EnemyProjectile) aim(target core.Vec2) {
	dir, ok := target.Sub(p.Pos).Normalize()
	if !ok {
		return
	}
	p.Vel = dir.Scale(p.Speed)
}

// PowerUp is a pickup on the field.
type PowerUp struct {
	ID   EntityID
	Name string
	Pos  core.Vec2
	Size float64

	dead bool
}

func (p *PowerUp) alive() bool { return !p.dead }

// offscreen reports whether a circle has fully left the w x h arena.
func offscreen(pos core.Vec2, r, w, h float64) bool {
	return pos.X < -r || pos.X > w+r || pos.Y < -r || pos.Y > h+r
}
