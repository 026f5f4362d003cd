package game

import (
	"math"
	"testing"

	"github.com/vovakirdan/tower-rush/internal/core"
)

func fireAt(aim core.Vec2) core.InputFrame {
	in := core.NewInputFrame()
	in.Fire = true
	in.Aim = aim
	return in
}

func TestHandleShootingCooldown(t *testing.T) {
	s := newRun(t)
	aim := s.player.Pos.Add(core.V(100, 0))

	s.handleShooting(1000, fireAt(aim))
	if len(s.bullets) != 1 || s.player.NextShotAt != 1250 {
		t.Fatalf("bullets=%d next=%d", len(s.bullets), s.player.NextShotAt)
	}
	s.handleShooting(1249, fireAt(aim))
	if len(s.bullets) != 1 {
		t.Error("fired during cooldown")
	}
	s.handleShooting(1250, fireAt(aim))
	if len(s.bullets) != 2 {
		t.Error("did not fire after cooldown")
	}

	s.handleShooting(5000, fireAt(s.player.Pos))
	if len(s.bullets) != 2 {
		t.Error("fired with a zero aim vector")
	}
	s.handleShooting(6000, core.InputFrame{Aim: aim})
	if len(s.bullets) != 2 {
		t.Error("fired without the trigger held")
	}
}

func TestMultiShotSpread(t *testing.T) {
	s := newRun(t)
	s.player.ApplyPowerUp(PowerMultiShot, 0)
	s.handleShooting(10, fireAt(s.player.Pos.Add(core.V(100, 0))))

	if len(s.bullets) != 3 {
		t.Fatalf("bullets = %d, want 3", len(s.bullets))
	}
	want := []float64{-14, 0, 14}
	for i, b := range s.bullets {
		got := math.Atan2(b.Vel.Y, b.Vel.X) * 180 / math.Pi
		if math.Abs(got-want[i]) > 1e-6 {
			t.Errorf("bullet %d angle = %.4f, want %.1f", i, got, want[i])
		}
		if math.Abs(b.Vel.Len()-s.cfg.Bullets.Speed) > 1e-6 {
			t.Errorf("bullet %d speed = %v", i, b.Vel.Len())
		}
	}
}

func TestBulletsCarryPlayerStats(t *testing.T) {
	s := newRun(t)
	s.player.ApplyPowerUp(PowerBigBullet, 0)
	s.player.ApplyPowerUp(PowerPiercing, 0)
	s.handleShooting(10, fireAt(core.V(0, 0)))
	b := s.bullets[0]
	if b.Radius != 9 || b.Damage != 2 || !b.Piercing {
		t.Errorf("bullet = %+v", b)
	}
}

func TestAutoFireDisabledAtLevelZero(t *testing.T) {
	s := newRun(t)
	placeEnemy(t, s, "raider", core.V(300, 300))
	if !math.IsInf(s.autoFireTimer, 1) {
		t.Errorf("timer = %v, want +Inf", s.autoFireTimer)
	}
	for range 1000 {
		s.handleAutoFire(10)
	}
	if len(s.bullets) != 0 {
		t.Errorf("auto-fire produced %d bullets at level 0", len(s.bullets))
	}
}

func TestAutoFireTargetsNearest(t *testing.T) {
	snd := &recordSound{}
	s := newRun(t, WithSound(snd))
	s.MaxOutUpgrades()
	s.applyMeta()
	center := s.player.Pos
	placeEnemy(t, s, "raider", center.Add(core.V(0, -400)))
	near := []*Enemy{
		placeEnemy(t, s, "raider", center.Add(core.V(100, 0))),
		placeEnemy(t, s, "raider", center.Add(core.V(-200, 0))),
		placeEnemy(t, s, "raider", center.Add(core.V(0, 300))),
	}

	s.handleAutoFire(s.effects.AutoFireCooldown / 2)
	if len(s.bullets) != 0 {
		t.Fatal("fired before the cooldown")
	}
	s.handleAutoFire(s.effects.AutoFireCooldown)
	if len(s.bullets) != 3 {
		t.Fatalf("bullets = %d, want 3", len(s.bullets))
	}
	for i, b := range s.bullets {
		dir, _ := near[i].Pos.Sub(center).Normalize()
		if got, _ := b.Vel.Normalize(); math.Abs(got.X-dir.X) > 1e-9 || math.Abs(got.Y-dir.Y) > 1e-9 {
			t.Errorf("bullet %d heads %v, want %v", i, got, dir)
		}
	}
	if snd.count(CueFire) != 1 {
		t.Errorf("fire cue played %d times, want 1", snd.count(CueFire))
	}
	if s.autoFireTimer != s.effects.AutoFireCooldown {
		t.Errorf("timer = %v, want reset to %v", s.autoFireTimer, s.effects.AutoFireCooldown)
	}
}

func TestAutoFireRefillsWhileFieldEmpty(t *testing.T) {
	s := newRun(t)
	s.MaxOutUpgrades()
	s.autoFireTimer = 0.1
	s.handleAutoFire(0.2)
	if math.Abs(s.autoFireTimer-0.3) > 1e-9 {
		t.Errorf("timer = %v, want 0.3", s.autoFireTimer)
	}
	s.handleAutoFire(100)
	if s.autoFireTimer != s.effects.AutoFireCooldown {
		t.Errorf("timer = %v, want capped at %v", s.autoFireTimer, s.effects.AutoFireCooldown)
	}
}
