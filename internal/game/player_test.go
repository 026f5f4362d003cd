package game

import (
	"math"
	"testing"

	"github.com/vovakirdan/tower-rush/internal/config"
	"github.com/vovakirdan/tower-rush/internal/core"
)

func testPlayer() *Player {
	return newPlayer(config.DefaultTowerRushConfig(), core.V(800, 450))
}

func TestPlayerMove(t *testing.T) {
	tests := []struct {
		name  string
		start core.Vec2
		in    core.InputFrame
		dt    float64
		want  core.Vec2
	}{
		{"idle", core.V(800, 450), core.InputFrame{}, 1, core.V(800, 450)},
		{"right", core.V(800, 450), core.InputFrame{Right: true}, 0.5, core.V(920, 450)},
		{"up", core.V(800, 450), core.InputFrame{Up: true}, 0.5, core.V(800, 330)},
		{"opposite keys cancel", core.V(800, 450), core.InputFrame{Left: true, Right: true}, 1, core.V(800, 450)},
		{"clamped left", core.V(30, 450), core.InputFrame{Left: true}, 1, core.V(20, 450)},
		{"clamped bottom right", core.V(1590, 890), core.InputFrame{Down: true, Right: true}, 1, core.V(1580, 880)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testPlayer()
			p.Pos = tt.start
			p.Move(tt.dt, tt.in)
			if math.Abs(p.Pos.X-tt.want.X) > 1e-9 || math.Abs(p.Pos.Y-tt.want.Y) > 1e-9 {
				t.Errorf("pos = %v, want %v", p.Pos, tt.want)
			}
		})
	}
}

func TestPlayerDiagonalIsNormalized(t *testing.T) {
	p := testPlayer()
	p.Move(1, core.InputFrame{Up: true, Right: true})
	if d := p.Pos.Sub(core.V(800, 450)).Len(); math.Abs(d-p.Speed) > 1e-9 {
		t.Errorf("diagonal moved %.4f, want %.4f", d, p.Speed)
	}
}

func TestSpeedPowerUpExpiry(t *testing.T) {
	p := testPlayer()
	p.ApplyPowerUp(PowerSpeed, 1000)
	if p.Timers[PowerSpeed] != 9000 {
		t.Fatalf("expiry = %d, want 9000", p.Timers[PowerSpeed])
	}
	if p.Speed != 360 {
		t.Errorf("boosted speed = %v, want 360", p.Speed)
	}
	p.TickTimedEffects(8999)
	if p.Speed != 360 {
		t.Error("boost ended early")
	}
	p.TickTimedEffects(9001)
	if p.Speed != p.BaseSpeed {
		t.Errorf("speed = %v after expiry, want base %v", p.Speed, p.BaseSpeed)
	}
	if _, ok := p.Timers[PowerSpeed]; ok {
		t.Error("timer not removed")
	}
}

func TestTimedPowerUpDoesNotStack(t *testing.T) {
	p := testPlayer()
	p.ApplyPowerUp(PowerSpeed, 1000)
	p.ApplyPowerUp(PowerSpeed, 5000)
	if p.Timers[PowerSpeed] != 13000 {
		t.Errorf("expiry = %d, want 13000", p.Timers[PowerSpeed])
	}
	if p.Speed != 360 {
		t.Errorf("speed = %v, multiplier stacked", p.Speed)
	}
}

func TestTimedPowerUps(t *testing.T) {
	tests := []struct {
		name   string
		check  func(*Player) bool
		revert func(*Player) bool
	}{
		{
			PowerFireRate,
			func(p *Player) bool { return math.Abs(p.Cooldown-0.15) < 1e-9 },
			func(p *Player) bool { return p.Cooldown == p.BaseCooldown },
		},
		{
			PowerBigBullet,
			func(p *Player) bool { return p.BulletRadius == 9 && p.Damage == 2 },
			func(p *Player) bool { return p.BulletRadius == 6 && p.Damage == 1 },
		},
		{
			PowerMultiShot,
			func(p *Player) bool { return p.ShotCount == 3 },
			func(p *Player) bool { return p.ShotCount == 1 },
		},
		{
			PowerPiercing,
			func(p *Player) bool { return p.Piercing },
			func(p *Player) bool { return !p.Piercing },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testPlayer()
			p.ApplyPowerUp(tt.name, 0)
			if !tt.check(p) {
				t.Errorf("%s not applied: %+v", tt.name, p)
			}
			p.TickTimedEffects(8000)
			if !tt.revert(p) {
				t.Errorf("%s not reverted: %+v", tt.name, p)
			}
		})
	}
}

func TestExpiryRevertsToCurrentBase(t *testing.T) {
	p := testPlayer()
	p.ApplyPowerUp(PowerBigBullet, 0)
	p.ApplyPowerUp(PowerPermaDamage, 100)
	if p.BaseDamage != 2 || p.Damage != 3 {
		t.Fatalf("base=%d damage=%d, want 2 and 3", p.BaseDamage, p.Damage)
	}
	p.TickTimedEffects(8000)
	if p.Damage != 2 {
		t.Errorf("damage = %d after expiry, want current base 2", p.Damage)
	}

	p.ApplyPowerUp(PowerFireRate, 9000)
	p.ApplyPowerUp(PowerPermaFireRate, 9100)
	if math.Abs(p.BaseCooldown-0.225) > 1e-9 {
		t.Errorf("base cooldown = %v, want 0.225", p.BaseCooldown)
	}
	p.TickTimedEffects(17000)
	if p.Cooldown != p.BaseCooldown {
		t.Errorf("cooldown = %v, want base %v", p.Cooldown, p.BaseCooldown)
	}
}

func TestSessionPowerUpsCompound(t *testing.T) {
	p := testPlayer()
	for range 3 {
		p.ApplyPowerUp(PowerPermaFireRate, 0)
		p.ApplyPowerUp(PowerPermaDamage, 0)
	}
	if p.PermaFireRate != 3 || p.PermaDamage != 3 {
		t.Errorf("counters = %d/%d", p.PermaFireRate, p.PermaDamage)
	}
	if want := 0.25 * 0.9 * 0.9 * 0.9; math.Abs(p.BaseCooldown-want) > 1e-9 {
		t.Errorf("base cooldown = %v, want %v", p.BaseCooldown, want)
	}
	if p.BaseDamage != 4 || p.Damage != 4 {
		t.Errorf("damage = %d/%d, want 4", p.BaseDamage, p.Damage)
	}
	if len(p.Timers) != 0 {
		t.Error("session power-ups must not start timers")
	}
}

func TestShiftTimers(t *testing.T) {
	p := testPlayer()
	p.ApplyPowerUp(PowerSpeed, 0)
	p.ApplyPowerUp(PowerPiercing, 1000)
	p.ShiftTimers(3000)
	if p.Timers[PowerSpeed] != 11000 || p.Timers[PowerPiercing] != 12000 {
		t.Errorf("timers = %v", p.Timers)
	}
	p.ShiftTimers(-50)
	if p.Timers[PowerSpeed] != 11000 {
		t.Error("negative offset applied")
	}
}

func TestPlayerColor(t *testing.T) {
	cfg := config.DefaultTowerRushConfig()
	p := testPlayer()
	p.HitFlashUntil = 200
	p.InvulnerableUntil = 2000

	tests := []struct {
		now  int64
		want core.Color
	}{
		{100, cfg.Player.HitFlashColor.Color()},
		{240, cfg.Player.InvulnerableTint.Color()},
		{360, cfg.Player.Color.Color()},
		{2100, cfg.Player.Color.Color()},
	}
	for _, tt := range tests {
		if got := p.Color(tt.now); got != tt.want {
			t.Errorf("Color(%d) = %v, want %v", tt.now, got, tt.want)
		}
	}
}

func TestEnemyTakeDamage(t *testing.T) {
	e := &Enemy{Health: 3, MaxHealth: 4}
	if e.TakeDamage(2) {
		t.Error("died with health left")
	}
	if e.HealthFraction() != 0.25 {
		t.Errorf("fraction = %v", e.HealthFraction())
	}
	if !e.TakeDamage(5) {
		t.Error("survived lethal damage")
	}
	if e.Health != -4 || e.HealthFraction() != 0 {
		t.Errorf("health=%d fraction=%v", e.Health, e.HealthFraction())
	}
}

func TestEnemyTryShoot(t *testing.T) {
	e := &Enemy{Pos: core.V(100, 100), Ranged: &RangedProfile{IntervalMS: 1800, Speed: 420, Damage: 1, Radius: 8}}

	if _, ok := e.tryShoot(0, e.Pos); ok {
		t.Fatal("shot fired at a target on top of the shooter")
	}
	if e.NextShotAt != 0 {
		t.Error("timer reset without a shot")
	}
	shot, ok := e.tryShoot(0, core.V(100, 500))
	if !ok {
		t.Fatal("no shot")
	}
	if shot.Vel != core.V(0, 420) || shot.Destroyable || shot.Homing {
		t.Errorf("shot = %+v", shot)
	}
	if _, ok := e.tryShoot(1799, core.V(100, 500)); ok {
		t.Error("fired during cooldown")
	}
	if _, ok := e.tryShoot(1800, core.V(100, 500)); !ok {
		t.Error("did not fire after cooldown")
	}

	melee := &Enemy{Pos: core.V(0, 0)}
	if _, ok := melee.tryShoot(5000, core.V(10, 10)); ok {
		t.Error("melee enemy fired")
	}
}

func TestSpecialShotZeroDirection(t *testing.T) {
	e := &Enemy{ID: 7, Pos: core.V(100, 100), Special: &SpecialProfile{IntervalMS: 2400, Speed: 180, HitPoints: 3, Radius: 12}}
	shot, ok := e.trySpecial(0, e.Pos, func(EntityID) bool { return false })
	if !ok {
		t.Fatal("special not launched")
	}
	if shot.Vel != core.V(180, 0) || shot.Owner != 7 || !shot.Homing || !shot.Destroyable {
		t.Errorf("special = %+v", shot)
	}
}

func TestWanderStaysInArena(t *testing.T) {
	s := newRun(t)
	e := placeEnemy(t, s, "speedster", core.V(30, 30))
	e.Behavior = Wander
	e.Speed = 400
	e.wanderMin, e.wanderMax = 0.4, 1.0
	for range 600 {
		e.update(0.016, s.player.Pos, 1600, 900, s.rng)
		if e.Pos.X < e.Radius || e.Pos.X > 1600-e.Radius || e.Pos.Y < e.Radius || e.Pos.Y > 900-e.Radius {
			t.Fatalf("wanderer escaped to %v", e.Pos)
		}
		if math.Abs(e.heading.Len()-1) > 1e-9 {
			t.Fatalf("heading not unit: %v", e.heading)
		}
	}
}

func TestEnemyChase(t *testing.T) {
	tests := []struct {
		name     string
		behavior Behavior
		from     core.Vec2
		target   core.Vec2
		speed    float64
		dt       float64
		want     core.Vec2
	}{
		{"chase along x", Chase, core.V(100, 300), core.V(1000, 300), 100, 0.5, core.V(150, 300)},
		{"chase diagonal", Chase, core.V(0, 0), core.V(300, 400), 50, 1, core.V(30, 40)},
		{"chase backwards", Chase, core.V(500, 500), core.V(500, 100), 80, 0.25, core.V(500, 480)},
		{"ranged chases too", RangedChase, core.V(100, 300), core.V(1000, 300), 100, 0.5, core.V(150, 300)},
		{"on target stays put", Chase, core.V(400, 400), core.V(400, 400), 100, 0.5, core.V(400, 400)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := &Enemy{Pos: tc.from, Speed: tc.speed, Radius: 16, Behavior: tc.behavior}
			e.update(tc.dt, tc.target, 1600, 900, nil)
			if math.Abs(e.Pos.X-tc.want.X) > 1e-9 || math.Abs(e.Pos.Y-tc.want.Y) > 1e-9 {
				t.Errorf("position = %v, expected %v", e.Pos, tc.want)
			}
		})
	}
}

func TestWanderBounce(t *testing.T) {
	const r = 16
	tests := []struct {
		name        string
		pos         core.Vec2
		heading     core.Vec2
		wantHeading core.Vec2
		wantX       float64 // NaN skips the check
		wantY       float64
	}{
		{"left wall", core.V(r+1, 450), core.V(-1, 0), core.V(1, 0), r, 450},
		{"right wall", core.V(1600-r-1, 450), core.V(1, 0), core.V(-1, 0), 1600 - r, 450},
		{"top wall", core.V(800, r+1), core.V(0, -1), core.V(0, 1), 800, r},
		{"bottom wall", core.V(800, 900-r-1), core.V(0, 1), core.V(0, -1), 800, 900 - r},
		{"glancing right wall keeps y", core.V(1600-r-1, 450), core.V(0.6, 0.8), core.V(-0.6, 0.8), 1600 - r, math.NaN()},
		{"corner flips both", core.V(r+1, r+1), core.V(-0.6, -0.8), core.V(0.6, 0.8), r, r},
		{"open field keeps heading", core.V(800, 450), core.V(0, 1), core.V(0, 1), 800, 460},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := &Enemy{Pos: tc.pos, Speed: 20, Radius: r, Behavior: Wander, heading: tc.heading, turnTimer: 5}
			e.update(0.5, core.V(0, 0), 1600, 900, nil)

			if e.heading != tc.wantHeading {
				t.Errorf("heading = %v, expected %v", e.heading, tc.wantHeading)
			}
			if !math.IsNaN(tc.wantX) && math.Abs(e.Pos.X-tc.wantX) > 1e-9 {
				t.Errorf("x = %v, expected %v", e.Pos.X, tc.wantX)
			}
			if !math.IsNaN(tc.wantY) && math.Abs(e.Pos.Y-tc.wantY) > 1e-9 {
				t.Errorf("y = %v, expected %v", e.Pos.Y, tc.wantY)
			}
			if e.turnTimer != 4.5 {
				t.Errorf("turn timer = %v, expected 4.5", e.turnTimer)
			}
		})
	}
}
