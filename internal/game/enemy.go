package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tower-rush/internal/core"
)

// Behavior is the movement/attack profile of an enemy.
type Behavior int

const (
	Chase Behavior = iota
	Wander
	RangedChase
)

// String returns the config name of the behavior.
func (b Behavior) String() string {
	switch b {
	case Wander:
		return "wander"
	case RangedChase:
		return "ranged"
	default:
		return "chase"
	}
}

// RangedProfile describes a standard aimed shot.
type RangedProfile struct {
	IntervalMS int64
	Speed      float64
	Damage     int
	Radius     float64
	Color      core.Color
}

// SpecialProfile describes the boss's homing, destroyable shot.
type SpecialProfile struct {
	IntervalMS int64
	Speed      float64
	Damage     int
	HitPoints  int
	Radius     float64
	Color      core.Color
}

// Enemy is a regular enemy or a boss. Behavior drives movement; Ranged
// and Special are optional attack profiles.
type Enemy struct {
	ID        EntityID
	Name      string
	Pos       core.Vec2
	Speed     float64
	Color     core.Color
	Health    int
	MaxHealth int
	Radius    float64
	Score     int
	Reward    int
	Boss      bool

	Behavior Behavior
	Ranged   *RangedProfile
	Special  *SpecialProfile

	NextShotAt    int64
	NextSpecialAt int64
	// SpecialID is the live special projectile this enemy owns, if any.
	SpecialID EntityID

	heading   core.Vec2
	turnTimer float64
	wanderMin float64
	wanderMax float64

	dead bool
}

func (e *Enemy) alive() bool { return !e.dead }

// update moves the enemy. Wanderers keep a heading that is re-rolled when
// its timer runs out and bounce off the arena walls; everything else
// steers straight at target.
func (e *Enemy) update(dt float64, target core.Vec2, w, h float64, rng *rand.Rand) {
	if e.Behavior != Wander {
		if dir, ok := target.Sub(e.Pos).Normalize(); ok {
			e.Pos = e.Pos.Add(dir.Scale(e.Speed * dt))
		}
		return
	}
	if e.heading.IsZero() || e.turnTimer <= 0 {
		e.pickHeading(rng)
	}
	e.turnTimer -= dt
	e.Pos = e.Pos.Add(e.heading.Scale(e.Speed * dt))
	cx := core.ClampF(e.Pos.X, e.Radius, w-e.Radius)
	cy := core.ClampF(e.Pos.Y, e.Radius, h-e.Radius)
	if cx != e.Pos.X {
		e.heading.X = -e.heading.X
	}
	if cy != e.Pos.Y {
		e.heading.Y = -e.heading.Y
	}
	e.Pos = core.V(cx, cy)
}

func (e *Enemy) pickHeading(rng *rand.Rand) {
	angle := rng.Float64() * 2 * math.Pi
	e.heading = core.V(math.Cos(angle), math.Sin(angle))
	if u, ok := e.heading.Normalize(); ok {
		e.heading = u
	} else {
		e.heading = core.V(1, 0)
	}
	e.turnTimer = e.wanderMin + rng.Float64()*(e.wanderMax-e.wanderMin)
}

// tryShoot fires a standard shot at target when the cooldown allows.
// A target on top of the enemy yields no shot and leaves the timer alone.
func (e *Enemy) tryShoot(now int64, target core.Vec2) (EnemyProjectile, bool) {
	if e.Ranged == nil || now < e.NextShotAt {
		return EnemyProjectile{}, false
	}
	dir, ok := target.Sub(e.Pos).Normalize()
	if !ok {
		return EnemyProjectile{}, false
	}
	e.NextShotAt = now + e.Ranged.IntervalMS
	return EnemyProjectile{
		Pos:    e.Pos,
		Vel:    dir.Scale(e.Ranged.Speed),
		Speed:  e.Ranged.Speed,
		Radius: e.Ranged.Radius,
		Damage: e.Ranged.Damage,
		Color:  e.Ranged.Color,
	}, true
}

// trySpecial launches the special shot when the interval allows and the
// previous one is gone. live reports whether an ID is still in play.
func (e *Enemy) trySpecial(now int64, target core.Vec2, live func(EntityID) bool) (EnemyProjectile, bool) {
	if e.Special == nil || e.Special.IntervalMS <= 0 {
		return EnemyProjectile{}, false
	}
	if e.SpecialID != NoEntity && live(e.SpecialID) {
		return EnemyProjectile{}, false
	}
	if now < e.NextSpecialAt {
		return EnemyProjectile{}, false
	}
	dir, ok := target.Sub(e.Pos).Normalize()
	if !ok {
		dir = core.V(1, 0)
	}
	e.NextSpecialAt = now + e.Special.IntervalMS
	return EnemyProjectile{
		Pos:         e.Pos,
		Vel:         dir.Scale(e.Special.Speed),
		Speed:       e.Special.Speed,
		Radius:      e.Special.Radius,
		Damage:      e.Special.Damage,
		Color:       e.Special.Color,
		Destroyable: true,
		HitPoints:   e.Special.HitPoints,
		Homing:      true,
		Owner:       e.ID,
	}, true
}

// TakeDamage subtracts amount and reports whether the enemy died.
func (e *Enemy) TakeDamage(amount int) bool {
	e.Health -= amount
	return e.Health <= 0
}

// HealthFraction is the health bar fill in [0, 1].
func (e *Enemy) HealthFraction() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return float64(max(0, e.Health)) / float64(e.MaxHealth)
}
