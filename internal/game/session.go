// Package game implements the Tower Rush simulation: a single-player
// top-down arena shooter with floors of enemies, periodic bosses, timed
// and session power-ups, and a meta-upgrade workshop between runs.
//
// The session is driven entirely by the host: each tick it receives a
// millisecond timestamp, a delta time and the sampled input. Nothing in
// the package reads a clock, blocks, or spawns goroutines.
package game

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tower-rush/internal/config"
	"github.com/vovakirdan/tower-rush/internal/core"
	"github.com/vovakirdan/tower-rush/internal/meta"
)

// Frame is the host input for one tick.
type Frame struct {
	Now   int64   // monotonic clock in ms
	DT    float64 // seconds since the previous tick
	Input core.InputFrame
}

// Session owns every entity collection and the top-level state machine.
type Session struct {
	cfg   config.TowerRushConfig
	rng   *rand.Rand
	log   *log.Logger
	sound Sound
	ids   idGen

	ledger  *meta.Ledger
	effects meta.Effects

	state      State
	shopReturn State
	pausedAt   int64
	gameOverAt int64
	quit       bool
	runEnded   bool

	player      *Player
	bullets     []*Bullet
	enemies     []*Enemy
	projectiles []*EnemyProjectile
	powerUps    []*PowerUp

	score         int
	bestScore     int
	runCoins      int
	bank          int
	lives         int
	floor         int
	waiting       bool
	clearedAt     int64
	lastPowerUpAt int64
	activeBoss    EntityID
	autoFireTimer float64
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithSound sets the cue player.
func WithSound(snd Sound) Option {
	return func(s *Session) {
		if snd != nil {
			s.sound = snd
		}
	}
}

// WithSeed seeds the session RNG.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- gameplay randomness, not security
	}
}

// WithBestScore seeds the record shown on the menu and game-over screens,
// typically the host's stored high score.
func WithBestScore(score int) Option {
	return func(s *Session) {
		s.bestScore = max(0, score)
	}
}

// New creates a session sitting in the main menu.
func New(cfg config.TowerRushConfig, opts ...Option) *Session {
	s := &Session{
		cfg:        cfg,
		rng:        rand.New(rand.NewSource(1)), // #nosec G404 -- gameplay randomness, not security
		log:        log.New(io.Discard),
		sound:      NopSound{},
		ledger:     meta.NewLedger(cfg),
		state:      StateMenu,
		shopReturn: StateMenu,
		floor:      1,
		lives:      cfg.Player.BaseLives,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.refreshEffects()
	return s
}

// Step advances the session by one tick.
func (s *Session) Step(f Frame) core.StepResult {
	s.runEnded = false
	s.handleActions(f.Now, f.Input)
	if s.state == StatePlaying {
		s.updateGameplay(f.Now, f.DT, f.Input)
	}
	return core.StepResult{State: s.State(), RunEnded: s.runEnded}
}

// handleActions applies discrete key presses. The cheat is honored in
// every state; otherwise at most one state action is taken per tick.
func (s *Session) handleActions(now int64, in core.InputFrame) {
	if in.Has(core.ActionMaxUpgrades) {
		s.MaxOutUpgrades()
	}
	if in.Has(core.ActionQuit) {
		s.quit = true
		return
	}
	switch s.state {
	case StateMenu:
		switch {
		case in.Has(core.ActionConfirm):
			s.startRun(now)
		case in.Has(core.ActionShop):
			s.openShop()
		case in.Has(core.ActionBack):
			s.quit = true
		}
	case StateMetaShop:
		if in.Has(core.ActionBack) {
			s.transition(s.shopReturn)
			return
		}
		for slot := 1; slot <= 9; slot++ {
			if in.Has(core.BuyAction(slot)) {
				s.BuySlot(slot)
				return
			}
		}
	case StatePlaying:
		switch {
		case in.Has(core.ActionBack), in.Has(core.ActionPause):
			s.pause(now)
		case in.Has(core.ActionRestart):
			s.startRun(now)
		}
	case StatePaused:
		switch {
		case in.Has(core.ActionBack), in.Has(core.ActionPause):
			s.resume(now)
		case in.Has(core.ActionRestart):
			s.startRun(now)
		}
	case StateGameOver:
		switch {
		case in.Has(core.ActionConfirm), in.Has(core.ActionRestart):
			s.startRun(now)
		case in.Has(core.ActionShop):
			s.openShop()
		case in.Has(core.ActionMenu):
			s.transition(StateMenu)
		case in.Has(core.ActionBack):
			s.quit = true
		}
	}
}

// updateGameplay runs one simulation tick in the fixed resolution order.
// A game over mid-tick skips the remaining phases.
func (s *Session) updateGameplay(now int64, dt float64, in core.InputFrame) {
	if s.player == nil {
		return
	}
	s.player.Move(dt, in)
	s.player.TickTimedEffects(now)
	s.handleShooting(now, in)
	s.handleAutoFire(dt)
	s.updateBullets(dt)
	s.updateEnemies(dt, now)
	if s.state == StateGameOver {
		return
	}
	s.updateProjectiles(dt, now)
	if s.state == StateGameOver {
		return
	}
	s.handlePowerUps(now)
	s.updateFloors(now)
}

// transition moves to the target state if the move is legal.
func (s *Session) transition(to State) bool {
	if !CanTransition(s.state, to) {
		s.log.Warn("illegal state transition", "from", s.state, "to", to)
		return false
	}
	s.log.Debug("state transition", "from", s.state, "to", to)
	s.state = to
	return true
}

func (s *Session) startRun(now int64) {
	if !s.transition(StatePlaying) {
		return
	}
	s.reset(now)
}

func (s *Session) openShop() {
	from := s.state
	if s.transition(StateMetaShop) {
		s.shopReturn = from
	}
}

func (s *Session) pause(now int64) {
	if s.transition(StatePaused) {
		s.pausedAt = now
	}
}

// resume shifts every running power-up timer by the time spent paused.
func (s *Session) resume(now int64) {
	if !s.transition(StatePlaying) {
		return
	}
	if s.player != nil {
		s.player.ShiftTimers(now - s.pausedAt)
	}
}

// reset starts a fresh run on floor 1 with the current meta effects.
func (s *Session) reset(now int64) {
	s.player = newPlayer(s.cfg, s.arenaCenter())
	s.applyMeta()
	s.bullets = s.bullets[:0]
	s.enemies = s.enemies[:0]
	s.projectiles = s.projectiles[:0]
	s.powerUps = s.powerUps[:0]
	s.score = 0
	s.runCoins = 0
	s.floor = 1
	s.waiting = false
	s.clearedAt = 0
	s.lastPowerUpAt = now
	s.activeBoss = NoEntity
	s.pausedAt = 0
	s.log.Info("run started", "lives", s.lives, "bank", s.bank)
	s.spawnFloor()
}

func (s *Session) gameOver(now int64) {
	if !s.transition(StateGameOver) {
		return
	}
	s.gameOverAt = now
	if s.score > s.bestScore {
		s.bestScore = s.score
		s.log.Info("new best score", "score", s.score)
	}
	clear(s.bullets)
	s.bullets = s.bullets[:0]
	clear(s.projectiles)
	s.projectiles = s.projectiles[:0]
	s.runEnded = true
	s.log.Info("run over", "score", s.score, "floor", s.floor, "coins", s.runCoins, "bank", s.bank)
}

// applyMeta rebuilds the player's base stats from the meta effects and
// drops every power-up it carried.
func (s *Session) applyMeta() {
	p := s.player
	if p == nil {
		return
	}
	fx := s.effects
	p.BaseSpeed = s.cfg.Player.Speed * fx.SpeedMultiplier
	p.Speed = p.BaseSpeed
	p.BaseCooldown = s.cfg.Player.FireCooldown * fx.FireRateMultiplier
	p.Cooldown = p.BaseCooldown
	p.BaseDamage = s.cfg.Bullets.Damage + fx.DamageBonus
	p.Damage = p.BaseDamage
	p.BaseBulletRadius = s.cfg.Bullets.Radius
	p.BulletRadius = p.BaseBulletRadius
	p.ShotCount = 1
	p.Piercing = false
	clear(p.Timers)
	p.PermaFireRate = 0
	p.PermaDamage = 0
	s.lives = fx.StartingLives
	s.autoFireTimer = math.Inf(1)
	if fx.AutoFireLevel > 0 {
		s.autoFireTimer = fx.AutoFireCooldown
	}
}

func (s *Session) refreshEffects() {
	s.effects = s.ledger.Effects()
	if s.effects.AutoFireLevel == 0 {
		s.autoFireTimer = math.Inf(1)
	}
}

// BuySlot purchases the upgrade in 1-based workshop slot. It reports
// whether the purchase went through; an unknown slot, a maxed upgrade or
// a short bank is a no-op.
func (s *Session) BuySlot(slot int) bool {
	up, ok := s.ledger.Slot(slot)
	if !ok {
		return false
	}
	cost, err := s.ledger.Purchase(up.Key, s.bank)
	if err != nil {
		s.log.Debug("purchase rejected", "upgrade", up.Key, "err", err)
		return false
	}
	s.bank -= cost
	s.refreshEffects()
	s.sound.Play(CuePowerUp)
	s.log.Info("upgrade purchased", "upgrade", up.Key, "level", s.ledger.Level(up.Key), "cost", cost, "bank", s.bank)
	if s.state == StatePlaying {
		s.applyMeta()
	}
	return true
}

// MaxOutUpgrades raises every upgrade to its cap.
func (s *Session) MaxOutUpgrades() {
	s.ledger.MaxAll()
	s.refreshEffects()
	if s.state == StatePlaying {
		s.applyMeta()
	}
	s.sound.Play(CuePowerUp)
	s.log.Info("upgrades maxed")
}

func (s *Session) arenaCenter() core.Vec2 {
	return core.V(s.cfg.Arena.Width/2, s.cfg.Arena.Height/2)
}

// State returns the host-facing summary.
func (s *Session) State() core.GameState {
	return core.GameState{
		Mode:     s.state.String(),
		Score:    s.score,
		Floor:    s.floor,
		Lives:    s.lives,
		Coins:    s.runCoins,
		Bank:     s.bank,
		GameOver: s.state == StateGameOver,
		Paused:   s.state == StatePaused,
		Quit:     s.quit,
	}
}

// BestScore returns the highest score known to the session.
func (s *Session) BestScore() int { return s.bestScore }

// Mode returns the current state.
func (s *Session) Mode() State { return s.state }

// Config returns the tuning the session was built with.
func (s *Session) Config() config.TowerRushConfig { return s.cfg }

// Ledger exposes the meta-upgrade ledger for read-only views.
func (s *Session) Ledger() *meta.Ledger { return s.ledger }

// Player returns the current player, or nil outside a run.
func (s *Session) Player() *Player { return s.player }

// Enemies returns the live enemies. The slice must not be modified.
func (s *Session) Enemies() []*Enemy { return s.enemies }

// Bullets returns the live player bullets.
func (s *Session) Bullets() []*Bullet { return s.bullets }

// Projectiles returns the live enemy projectiles.
func (s *Session) Projectiles() []*EnemyProjectile { return s.projectiles }

// PowerUps returns the pickups on the field.
func (s *Session) PowerUps() []*PowerUp { return s.powerUps }

// ActiveBoss returns the boss of the current floor, or nil.
func (s *Session) ActiveBoss() *Enemy { return s.enemy(s.activeBoss) }
