package game

import (
	"math"

	"github.com/vovakirdan/tower-rush/internal/config"
	"github.com/vovakirdan/tower-rush/internal/core"
)

// IsBossFloor reports whether floor spawns a boss.
func IsBossFloor(floor, interval int) bool {
	return interval > 0 && floor%interval == 0
}

// EnemyCount returns the number of regular enemies on floor.
func EnemyCount(cfg config.EnemiesConfig, floor int) int {
	return max(cfg.BaseCount, int(float64(cfg.BaseCount)+float64(floor)*cfg.CountPerFloor))
}

// BossCycle returns the boss-cycle index for floor, floored at 0.
func BossCycle(floor, interval int) int {
	if interval <= 0 {
		return 0
	}
	return max(0, floor/interval-1)
}

// VariantPool returns the variants unlocked on floor, in catalogue order.
func VariantPool(cfg config.EnemiesConfig, floor int) []config.VariantConfig {
	pool := make([]config.VariantConfig, 0, len(cfg.Variants))
	for _, v := range cfg.Variants {
		if floor >= v.UnlockFloor {
			pool = append(pool, v)
		}
	}
	return pool
}

// spawnFloor replaces the field with the current floor's wave.
func (s *Session) spawnFloor() {
	if s.player == nil {
		return
	}
	s.enemies = s.enemies[:0]
	s.projectiles = s.projectiles[:0]
	if IsBossFloor(s.floor, s.cfg.Floors.BossInterval) {
		boss := s.newBoss()
		s.enemies = append(s.enemies, boss)
		s.activeBoss = boss.ID
		s.log.Info("boss spawned", "floor", s.floor, "health", boss.Health, "speed", boss.Speed)
		return
	}
	s.activeBoss = NoEntity
	count := EnemyCount(s.cfg.Enemies, s.floor)
	for range count {
		s.enemies = append(s.enemies, s.newEnemy())
	}
	s.log.Info("floor spawned", "floor", s.floor, "enemies", count)
}

// edgePoint samples a point just outside a random arena edge.
func (s *Session) edgePoint(margin float64) core.Vec2 {
	w, h := s.cfg.Arena.Width, s.cfg.Arena.Height
	switch s.rng.Intn(4) {
	case 0:
		return core.V(s.rng.Float64()*w, -margin)
	case 1:
		return core.V(s.rng.Float64()*w, h+margin)
	case 2:
		return core.V(-margin, s.rng.Float64()*h)
	default:
		return core.V(w+margin, s.rng.Float64()*h)
	}
}

// interiorPoint samples a point at least margin away from every wall.
func (s *Session) interiorPoint(margin float64) core.Vec2 {
	w, h := s.cfg.Arena.Width, s.cfg.Arena.Height
	return core.V(
		margin+s.rng.Float64()*(w-2*margin),
		margin+s.rng.Float64()*(h-2*margin),
	)
}

// farFromPlayer rejection-samples gen until the point is farther than
// minDist from the player. The attempt cap keeps a degenerate arena from
// looping forever; the last sample is used when it runs out.
func (s *Session) farFromPlayer(minDist float64, gen func() core.Vec2) core.Vec2 {
	attempts := max(1, s.cfg.Floors.MaxSpawnAttempt)
	var p core.Vec2
	for range attempts {
		p = gen()
		if core.DistSq(p, s.player.Pos) > minDist*minDist {
			return p
		}
	}
	return p
}

func (s *Session) newEnemy() *Enemy {
	ec := s.cfg.Enemies
	pos := s.farFromPlayer(ec.MinSpawnDistance, func() core.Vec2 {
		return s.edgePoint(ec.SpawnMargin)
	})
	pool := VariantPool(ec, s.floor)
	v := pool[s.rng.Intn(len(pool))]

	clears := max(0, (s.floor-1)/s.cfg.Floors.BossInterval)
	speed := (ec.BaseSpeed + float64(clears)*ec.SpeedIncrement) * v.SpeedMultiplier
	health := v.Health + clears
	if v.FixedHealth > 0 {
		health = v.FixedHealth
	}
	if v.SpeedBonus > 0 {
		speed *= v.SpeedBonus
	}

	e := &Enemy{
		ID:        s.ids.next(),
		Name:      v.Name,
		Pos:       pos,
		Speed:     speed,
		Color:     v.Color.Color(),
		Health:    health,
		MaxHealth: health,
		Radius:    v.Radius,
		Score:     v.Score,
		Reward:    v.Reward,
		wanderMin: ec.WanderMinSeconds,
		wanderMax: ec.WanderMaxSeconds,
	}
	switch v.Behavior {
	case config.BehaviorWander:
		e.Behavior = Wander
	case config.BehaviorRanged:
		e.Behavior = RangedChase
	}
	if v.Ranged != nil {
		e.Ranged = &RangedProfile{
			IntervalMS: v.Ranged.IntervalMS,
			Speed:      v.Ranged.ProjectileSpeed,
			Damage:     v.Ranged.ProjectileDamage,
			Radius:     ec.ProjectileRadius,
			Color:      v.Ranged.Color.Color(),
		}
	}
	return e
}

// BossStats is the scaled boss profile for one floor.
type BossStats struct {
	Health    int
	Speed     float64
	Shot      RangedProfile
	Special   SpecialProfile
	Cycle     int
	Milestone bool
}

// ScaleBoss computes the boss profile for floor.
func ScaleBoss(cfg config.TowerRushConfig, floor int) BossStats {
	bc := cfg.Boss
	cycle := BossCycle(floor, cfg.Floors.BossInterval)
	milestone := bc.Milestone.IsMilestone(floor)

	st := BossStats{Cycle: cycle, Milestone: milestone}
	st.Health = bc.BaseHealth +
		max(0, floor-1)*(bc.HealthIncrement/2+1) +
		cycle*bc.CycleHealthBonus
	st.Speed = bc.BaseSpeed + float64(cycle)*bc.CycleSpeedBonus

	shot := bc.Shot
	st.Shot = RangedProfile{
		IntervalMS: max(shot.MinIntervalMS, shot.IntervalMS-int64(cycle)*shot.IntervalStepMS),
		Speed:      shot.Speed + float64(cycle)*shot.SpeedStep,
		Damage:     shot.Damage + perStep(cycle, shot.CyclesPerDamageUp),
		Radius:     cfg.Enemies.ProjectileRadius,
		Color:      shot.Color.Color(),
	}
	if milestone {
		ms := bc.Milestone
		st.Health += ms.HealthBonus
		st.Speed += ms.SpeedBonus
		st.Shot.IntervalMS = max(ms.MinIntervalMS, st.Shot.IntervalMS-ms.IntervalCutMS)
		st.Shot.Damage += ms.DamageBonus
	}

	sp := bc.Special
	st.Special = SpecialProfile{
		IntervalMS: max(sp.MinIntervalMS, sp.IntervalMS-int64(cycle)*sp.IntervalStepMS),
		Speed:      sp.Speed + float64(cycle)*sp.SpeedStep,
		Damage:     sp.Damage,
		HitPoints:  sp.HitPoints + perStep(cycle, sp.CyclesPerHPUp),
		Radius:     sp.Radius,
		Color:      sp.Color.Color(),
	}
	if milestone {
		st.Special.Damage += sp.MilestoneDamage
		st.Special.HitPoints += sp.MilestoneHPBonus
		st.Special.Radius = sp.MilestoneRadius
		st.Special.Color = sp.MilestoneColor.Color()
		st.Special.IntervalMS = max(sp.MilestoneMinMS, st.Special.IntervalMS-sp.MilestoneCutMS)
		st.Special.Speed = math.Min(sp.MilestoneMaxSpeed, st.Special.Speed+sp.MilestoneSpeedUp)
	}
	return st
}

func perStep(cycle, every int) int {
	if every <= 0 {
		return 0
	}
	return cycle / every
}

func (s *Session) newBoss() *Enemy {
	bc := s.cfg.Boss
	pos := s.farFromPlayer(bc.MinSpawnDistance, func() core.Vec2 {
		return s.interiorPoint(bc.SpawnMargin)
	})
	st := ScaleBoss(s.cfg, s.floor)
	shot := st.Shot
	special := st.Special
	return &Enemy{
		ID:        s.ids.next(),
		Name:      "boss",
		Pos:       pos,
		Speed:     st.Speed,
		Color:     bc.Color.Color(),
		Health:    st.Health,
		MaxHealth: st.Health,
		Radius:    bc.Radius,
		Score:     bc.Score,
		Boss:      true,
		Behavior:  RangedChase,
		Ranged:    &shot,
		Special:   &special,
	}
}

// spawnPowerUp places a weighted random timed power-up inside the arena,
// nudged sideways when it lands on top of the player.
func (s *Session) spawnPowerUp() {
	pc := s.cfg.PowerUps
	name, ok := s.rollPowerUp()
	if !ok {
		return
	}
	pos := s.interiorPoint(pc.SpawnMargin)
	if core.DistSq(pos, s.player.Pos) < pc.MinPlayerDistance*pc.MinPlayerDistance {
		pos = pos.Add(core.V(pc.Nudge, 0))
		pos.X = core.ClampF(pos.X, pc.SpawnMargin, s.cfg.Arena.Width-pc.SpawnMargin)
		pos.Y = core.ClampF(pos.Y, pc.SpawnMargin, s.cfg.Arena.Height-pc.SpawnMargin)
	}
	s.powerUps = append(s.powerUps, &PowerUp{ID: s.ids.next(), Name: name, Pos: pos, Size: pc.Size})
}

func (s *Session) rollPowerUp() (string, bool) {
	total := 0
	for _, k := range s.cfg.PowerUps.Kinds {
		total += max(0, k.Weight)
	}
	if total == 0 {
		return "", false
	}
	roll := s.rng.Intn(total)
	for _, k := range s.cfg.PowerUps.Kinds {
		if k.Weight <= 0 {
			continue
		}
		if roll < k.Weight {
			return k.Name, true
		}
		roll -= k.Weight
	}
	return "", false
}

// dropBossLoot pays the boss reward and drops both session power-ups
// near where the boss died.
func (s *Session) dropBossLoot(at core.Vec2) {
	bc := s.cfg.Boss
	s.reward(bc.RewardBase + BossCycle(s.floor, s.cfg.Floors.BossInterval)*bc.RewardPerCycle)
	pc := s.cfg.PowerUps
	offsets := make([]core.Vec2, 0, 2)
	for range 2 {
		offsets = append(offsets, core.V(
			(s.rng.Float64()*2-1)*pc.DropSpread,
			(s.rng.Float64()*2-1)*pc.DropSpread,
		))
	}
	for i, name := range []string{PowerPermaFireRate, PowerPermaDamage} {
		pos := at.Add(offsets[i])
		pos.X = core.ClampF(pos.X, pc.DropMargin, s.cfg.Arena.Width-pc.DropMargin)
		pos.Y = core.ClampF(pos.Y, pc.DropMargin, s.cfg.Arena.Height-pc.DropMargin)
		s.powerUps = append(s.powerUps, &PowerUp{ID: s.ids.next(), Name: name, Pos: pos, Size: pc.Size})
	}
}
