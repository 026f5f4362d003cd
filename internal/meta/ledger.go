// Package meta implements the persistent upgrade tree: per-upgrade levels,
// the cost curve, purchases, and the derived effects snapshot consumed by
// the simulation at run start.
//
// The ledger lives for the process lifetime and is never written to disk.
package meta

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tower-rush/internal/config"
)

// Purchase failures.
var (
	ErrUnknownUpgrade    = errors.New("meta: unknown upgrade")
	ErrMaxLevel          = errors.New("meta: upgrade at max level")
	ErrInsufficientFunds = errors.New("meta: insufficient funds")
)

// Upgrade keys understood by Effects.
const (
	Speed      = "speed"
	FireRate   = "fire_rate"
	StartingHP = "starting_hp"
	Money      = "money"
	Damage     = "damage"
	AutoFire   = "auto_fire"
)

// Effects is the snapshot derived from current levels.
type Effects struct {
	SpeedMultiplier    float64
	FireRateMultiplier float64 // multiplies the fire cooldown
	StartingLives      int
	MoneyMultiplier    float64
	DamageBonus        int
	AutoFireLevel      int
	AutoFireCooldown   float64 // seconds
	AutoFireShots      int
}

// Ledger holds upgrade levels. The zero value is not usable; call NewLedger.
type Ledger struct {
	defs     []config.UpgradeConfig
	levels   map[string]int
	tuning   config.MetaConfig
	autoFire config.AutoFireConfig
	lives    int
	effects  Effects
}

// NewLedger creates a ledger with every upgrade at level 0.
func NewLedger(cfg config.TowerRushConfig) *Ledger {
	l := &Ledger{
		defs:     cfg.Meta.Upgrades,
		levels:   make(map[string]int, len(cfg.Meta.Upgrades)),
		tuning:   cfg.Meta,
		autoFire: cfg.AutoFire,
		lives:    cfg.Player.BaseLives,
	}
	for _, d := range l.defs {
		l.levels[d.Key] = 0
	}
	l.recompute()
	return l
}

// Upgrades returns the catalogue in workshop order.
func (l *Ledger) Upgrades() []config.UpgradeConfig {
	return l.defs
}

// Slot returns the upgrade in the 1-based workshop slot.
func (l *Ledger) Slot(n int) (config.UpgradeConfig, bool) {
	if n < 1 || n > len(l.defs) {
		return config.UpgradeConfig{}, false
	}
	return l.defs[n-1], true
}

// Level returns the current level of key (0 for unknown keys).
func (l *Ledger) Level(key string) int {
	return l.levels[key]
}

// Levels returns a copy of all levels.
func (l *Ledger) Levels() map[string]int {
	out := make(map[string]int, len(l.levels))
	for k, v := range l.levels {
		out[k] = v
	}
	return out
}

// Cost returns the price of the next level, or 0 when key is maxed or unknown.
// Prices round half to even.
func (l *Ledger) Cost(key string) int {
	def, ok := l.def(key)
	if !ok {
		return 0
	}
	level := l.levels[key]
	if level >= def.MaxLevel {
		return 0
	}
	return int(math.RoundToEven(def.BaseCost * math.Pow(def.CostScale, float64(level))))
}

// Purchase buys one level of key with the given funds and returns the price
// paid. The caller owns the currency and deducts the returned cost.
func (l *Ledger) Purchase(key string, funds int) (int, error) {
	def, ok := l.def(key)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUpgrade, key)
	}
	if l.levels[key] >= def.MaxLevel {
		return 0, fmt.Errorf("%w: %s", ErrMaxLevel, def.Label)
	}
	cost := l.Cost(key)
	if funds < cost {
		return 0, fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientFunds, def.Label, cost, funds)
	}
	l.levels[key]++
	l.recompute()
	return cost, nil
}

// MaxAll sets every upgrade to its max level.
func (l *Ledger) MaxAll() {
	for _, d := range l.defs {
		l.levels[d.Key] = d.MaxLevel
	}
	l.recompute()
}

// Effects returns the current effects snapshot.
func (l *Ledger) Effects() Effects {
	return l.effects
}

func (l *Ledger) def(key string) (config.UpgradeConfig, bool) {
	for _, d := range l.defs {
		if d.Key == key {
			return d, true
		}
	}
	return config.UpgradeConfig{}, false
}

func (l *Ledger) recompute() {
	auto := l.levels[AutoFire]
	shots := 0
	if auto > 0 {
		shots = min(l.autoFire.MaxShots, 1+auto/2)
	}
	l.effects = Effects{
		SpeedMultiplier:    1 + l.tuning.SpeedPerLevel*float64(l.levels[Speed]),
		FireRateMultiplier: math.Pow(l.tuning.FireRateDecay, float64(l.levels[FireRate])),
		StartingLives:      l.lives + l.levels[StartingHP],
		MoneyMultiplier:    1 + l.tuning.MoneyPerLevel*float64(l.levels[Money]),
		DamageBonus:        l.levels[Damage],
		AutoFireLevel:      auto,
		AutoFireCooldown:   math.Max(l.autoFire.MinCooldown, l.autoFire.BaseCooldown*math.Pow(l.autoFire.Decay, float64(auto))),
		AutoFireShots:      shots,
	}
}
