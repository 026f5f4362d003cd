package game

import "math"

// Snapshot is a flat copy of the simulation state, used to compare runs.
// Entity data is flattened into float slices so the struct stays
// comparable field by field.
type Snapshot struct {
	State     string
	Score     int
	Coins     int
	Bank      int
	Lives     int
	Floor     int
	Waiting   bool
	BossAlive bool

	// Player is X, Y, Speed, Cooldown, BulletRadius, Damage, ShotCount.
	Player []float64

	// Each enemy is 4 values: X, Y, Health, Radius.
	EnemyCount int
	EnemyData  []float64

	// Each bullet is 3 values: X, Y, Damage.
	BulletCount int
	BulletData  []float64

	// Each projectile is 3 values: X, Y, HitPoints.
	ProjectileCount int
	ProjectileData  []float64

	PowerUps []string
}

// Snapshot returns the current simulation state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:     s.state.String(),
		Score:     s.score,
		Coins:     s.runCoins,
		Bank:      s.bank,
		Lives:     s.lives,
		Floor:     s.floor,
		Waiting:   s.waiting,
		BossAlive: s.activeBoss != NoEntity,
	}
	if p := s.player; p != nil {
		snap.Player = []float64{p.Pos.X, p.Pos.Y, p.Speed, p.Cooldown, p.BulletRadius, float64(p.Damage), float64(p.ShotCount)}
	}

	snap.EnemyCount = len(s.enemies)
	snap.EnemyData = make([]float64, 0, len(s.enemies)*4)
	for _, e := range s.enemies {
		snap.EnemyData = append(snap.EnemyData, e.Pos.X, e.Pos.Y, float64(e.Health), e.Radius)
	}

	snap.BulletCount = len(s.bullets)
	snap.BulletData = make([]float64, 0, len(s.bullets)*3)
	for _, b := range s.bullets {
		snap.BulletData = append(snap.BulletData, b.Pos.X, b.Pos.Y, float64(b.Damage))
	}

	snap.ProjectileCount = len(s.projectiles)
	snap.ProjectileData = make([]float64, 0, len(s.projectiles)*3)
	for _, p := range s.projectiles {
		snap.ProjectileData = append(snap.ProjectileData, p.Pos.X, p.Pos.Y, float64(p.HitPoints))
	}

	for _, pu := range s.powerUps {
		snap.PowerUps = append(snap.PowerUps, pu.Name)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(len(snap.State))
	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	for _, v := range []int{snap.Score, snap.Coins, snap.Bank, snap.Lives, snap.Floor, snap.EnemyCount, snap.BulletCount, snap.ProjectileCount} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	if snap.Waiting {
		h = h*31 + 1
	}
	if snap.BossAlive {
		h = h*31 + 2
	}
	for _, data := range [][]float64{snap.Player, snap.EnemyData, snap.BulletData, snap.ProjectileData} {
		for _, v := range data {
			h = h*31 + math.Float64bits(v)
		}
	}
	for _, name := range snap.PowerUps {
		for _, r := range name {
			h = h*31 + uint64(r) //#nosec G115 -- hash computation
		}
	}
	return h
}
