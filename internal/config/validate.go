package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Known power-up and upgrade names. The simulation switches on these.
var (
	TimedPowerUps   = []string{"speed", "fire_rate", "big_bullet", "multi_shot", "piercing"}
	SessionPowerUps = []string{"perma_fire_rate", "perma_damage"}
	UpgradeKeys     = []string{"speed", "fire_rate", "starting_hp", "money", "damage", "auto_fire"}
)

// Validate rejects tables the simulation cannot run with.
func (c TowerRushConfig) Validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return invalid("arena must have a positive size, got %vx%v", c.Arena.Width, c.Arena.Height)
	}
	if c.Player.Radius <= 0 || c.Player.Speed < 0 || c.Player.FireCooldown <= 0 {
		return invalid("player radius and fire cooldown must be positive")
	}
	if c.Player.BaseLives <= 0 {
		return invalid("player base_lives must be positive, got %d", c.Player.BaseLives)
	}
	if c.Bullets.Speed <= 0 || c.Bullets.Radius <= 0 || c.Bullets.MultiShot < 1 {
		return invalid("bullets need positive speed and radius and multi_shot >= 1")
	}
	if c.Floors.BossInterval <= 0 {
		return invalid("floors boss_interval must be positive, got %d", c.Floors.BossInterval)
	}
	if c.Floors.MaxSpawnAttempt <= 0 {
		return invalid("floors max_spawn_attempts must be positive")
	}
	if c.Floors.DelayMS < 0 {
		return invalid("floors delay_ms must not be negative, got %d", c.Floors.DelayMS)
	}
	if c.PowerUps.DurationMS < 0 {
		return invalid("powerups duration_ms must not be negative, got %d", c.PowerUps.DurationMS)
	}
	if err := c.validateVariants(); err != nil {
		return err
	}
	if err := c.validatePowerUps(); err != nil {
		return err
	}
	return c.validateUpgrades()
}

func (c TowerRushConfig) validateVariants() error {
	if len(c.Enemies.Variants) == 0 {
		return invalid("enemies need at least one variant")
	}
	if c.Enemies.WanderMinSeconds < 0 || c.Enemies.WanderMinSeconds > c.Enemies.WanderMaxSeconds {
		return invalid("enemies wander range [%v, %v] is empty or negative",
			c.Enemies.WanderMinSeconds, c.Enemies.WanderMaxSeconds)
	}
	seen := make(map[string]bool)
	for i, v := range c.Enemies.Variants {
		if v.Name == "" || seen[v.Name] {
			return invalid("variant %d has an empty or duplicate name %q", i, v.Name)
		}
		seen[v.Name] = true
		if v.Radius <= 0 || v.Health <= 0 {
			return invalid("variant %q needs positive radius and health", v.Name)
		}
		switch v.Behavior {
		case BehaviorChase, BehaviorWander:
		case BehaviorRanged:
			if v.Ranged == nil {
				return invalid("variant %q is ranged but has no ranged profile", v.Name)
			}
		default:
			return invalid("variant %q has unknown behavior %q", v.Name, v.Behavior)
		}
	}
	if c.Enemies.Variants[0].UnlockFloor > 1 {
		return invalid("the first variant must be available from floor 1")
	}
	return nil
}

func (c TowerRushConfig) validatePowerUps() error {
	total := 0
	for _, name := range TimedPowerUps {
		k, ok := c.PowerUps.Kind(name)
		if !ok {
			return invalid("power-up %q missing from catalogue", name)
		}
		if k.Weight < 0 {
			return invalid("power-up %q has negative weight", name)
		}
		total += k.Weight
	}
	if total == 0 {
		return invalid("timed power-ups need a positive total weight")
	}
	for _, name := range SessionPowerUps {
		if _, ok := c.PowerUps.Kind(name); !ok {
			return invalid("power-up %q missing from catalogue", name)
		}
	}
	return nil
}

func (c TowerRushConfig) validateUpgrades() error {
	if len(c.Meta.Upgrades) > 9 {
		return invalid("at most 9 upgrades fit the workshop, got %d", len(c.Meta.Upgrades))
	}
	byKey := make(map[string]bool)
	for _, u := range c.Meta.Upgrades {
		if byKey[u.Key] {
			return invalid("duplicate upgrade %q", u.Key)
		}
		byKey[u.Key] = true
		if u.MaxLevel < 0 || u.BaseCost < 0 || u.CostScale <= 0 {
			return invalid("upgrade %q has a bad cost curve", u.Key)
		}
	}
	for _, key := range UpgradeKeys {
		if !byKey[key] {
			return invalid("upgrade %q missing", key)
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("config: %w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
