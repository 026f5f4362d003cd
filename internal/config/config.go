// Package config provides YAML-based tuning for Tower Rush: arena size,
// player and bullet stats, the enemy variant catalogue, boss scaling,
// power-ups, floor rewards and the meta-upgrade tree.
//
// A TowerRushConfig is loaded once at process start and handed to the
// simulation by value; nothing mutates it afterwards.
package config

import "github.com/vovakirdan/tower-rush/internal/core"

// TowerRushConfig contains every tunable table of the game.
type TowerRushConfig struct {
	Arena    ArenaConfig    `yaml:"arena"`
	Player   PlayerConfig   `yaml:"player"`
	Bullets  BulletConfig   `yaml:"bullets"`
	Enemies  EnemiesConfig  `yaml:"enemies"`
	Boss     BossConfig     `yaml:"boss"`
	PowerUps PowerUpsConfig `yaml:"powerups"`
	Floors   FloorsConfig   `yaml:"floors"`
	AutoFire AutoFireConfig `yaml:"auto_fire"`
	Meta     MetaConfig     `yaml:"meta"`
}

// RGB is a color written as a three-element YAML sequence.
type RGB [3]uint8

// Color converts to the core color type.
func (c RGB) Color() core.Color {
	return core.RGB(c[0], c[1], c[2])
}

// ArenaConfig defines the playfield.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	FPS    int     `yaml:"fps"`
}

// PlayerConfig defines the player's base stats.
type PlayerConfig struct {
	Speed            float64 `yaml:"speed"`
	Radius           float64 `yaml:"radius"`
	FireCooldown     float64 `yaml:"fire_cooldown"` // seconds between manual shots
	InvulnerableMS   int64   `yaml:"invulnerable_ms"`
	HitFlashMS       int64   `yaml:"hit_flash_ms"`
	BaseLives        int     `yaml:"base_lives"`
	Color            RGB     `yaml:"color"`
	HitFlashColor    RGB     `yaml:"hit_flash_color"`
	InvulnerableTint RGB     `yaml:"invulnerable_tint"`
}

// BulletConfig defines player bullets.
type BulletConfig struct {
	Speed          float64 `yaml:"speed"`
	Radius         float64 `yaml:"radius"`
	Damage         int     `yaml:"damage"`
	BigMultiplier  float64 `yaml:"big_multiplier"`
	BigDamageBonus int     `yaml:"big_damage_bonus"`
	MultiShot      int     `yaml:"multi_shot"`
	SpreadDegrees  float64 `yaml:"spread_degrees"`
	Color          RGB     `yaml:"color"`
}

// Behavior names for enemy movement profiles.
const (
	BehaviorChase  = "chase"
	BehaviorWander = "wander"
	BehaviorRanged = "ranged"
)

// EnemiesConfig defines regular enemy spawning and the variant catalogue.
type EnemiesConfig struct {
	BaseSpeed        float64         `yaml:"base_speed"`
	SpeedIncrement   float64         `yaml:"speed_increment"` // added per boss cleared
	SpawnMargin      float64         `yaml:"spawn_margin"`
	MinSpawnDistance float64         `yaml:"min_spawn_distance"`
	BaseCount        int             `yaml:"base_count"`
	CountPerFloor    float64         `yaml:"count_per_floor"`
	ProjectileRadius float64         `yaml:"projectile_radius"`
	WanderMinSeconds float64         `yaml:"wander_min_seconds"`
	WanderMaxSeconds float64         `yaml:"wander_max_seconds"`
	Variants         []VariantConfig `yaml:"variants"`
}

// VariantConfig describes one regular enemy type.
type VariantConfig struct {
	Name            string        `yaml:"name"`
	Color           RGB           `yaml:"color"`
	SpeedMultiplier float64       `yaml:"speed_multiplier"`
	Health          int           `yaml:"health"`
	Radius          float64       `yaml:"radius"`
	Score           int           `yaml:"score"`
	Reward          int           `yaml:"reward"`
	UnlockFloor     int           `yaml:"unlock_floor"`
	Behavior        string        `yaml:"behavior"`
	FixedHealth     int           `yaml:"fixed_health,omitempty"` // overrides scaled health when > 0
	SpeedBonus      float64       `yaml:"speed_bonus,omitempty"`  // extra speed factor when > 0
	Ranged          *RangedConfig `yaml:"ranged,omitempty"`
}

// RangedConfig is the standard-shot profile of a ranged enemy.
type RangedConfig struct {
	IntervalMS       int64   `yaml:"interval_ms"`
	ProjectileSpeed  float64 `yaml:"projectile_speed"`
	ProjectileDamage int     `yaml:"projectile_damage"`
	Color            RGB     `yaml:"color"`
}

// BossConfig defines boss scaling by boss-cycle index.
type BossConfig struct {
	BaseHealth       int           `yaml:"base_health"`
	HealthIncrement  int           `yaml:"health_increment"`
	CycleHealthBonus int           `yaml:"cycle_health_bonus"`
	BaseSpeed        float64       `yaml:"base_speed"`
	CycleSpeedBonus  float64       `yaml:"cycle_speed_bonus"`
	Radius           float64       `yaml:"radius"`
	Color            RGB           `yaml:"color"`
	Score            int           `yaml:"score"`
	RewardBase       int           `yaml:"reward_base"`
	RewardPerCycle   int           `yaml:"reward_per_cycle"`
	SpawnMargin      float64       `yaml:"spawn_margin"`
	MinSpawnDistance float64       `yaml:"min_spawn_distance"`
	PushbackGap      float64       `yaml:"pushback_gap"`
	ContactDamage    int           `yaml:"contact_damage"`
	Shot             BossShot      `yaml:"shot"`
	Special          BossSpecial   `yaml:"special"`
	Milestone        BossMilestone `yaml:"milestone"`
}

// BossShot is the boss's standard ranged attack.
type BossShot struct {
	IntervalMS        int64   `yaml:"interval_ms"`
	IntervalStepMS    int64   `yaml:"interval_step_ms"`
	MinIntervalMS     int64   `yaml:"min_interval_ms"`
	Speed             float64 `yaml:"speed"`
	SpeedStep         float64 `yaml:"speed_step"`
	Damage            int     `yaml:"damage"`
	CyclesPerDamageUp int     `yaml:"cycles_per_damage_up"`
	Color             RGB     `yaml:"color"`
}

// BossSpecial is the homing, destroyable special shot.
type BossSpecial struct {
	IntervalMS        int64   `yaml:"interval_ms"`
	IntervalStepMS    int64   `yaml:"interval_step_ms"`
	MinIntervalMS     int64   `yaml:"min_interval_ms"`
	Speed             float64 `yaml:"speed"`
	SpeedStep         float64 `yaml:"speed_step"`
	Damage            int     `yaml:"damage"`
	HitPoints         int     `yaml:"hit_points"`
	CyclesPerHPUp     int     `yaml:"cycles_per_hp_up"`
	Radius            float64 `yaml:"radius"`
	Color             RGB     `yaml:"color"`
	MilestoneRadius   float64 `yaml:"milestone_radius"`
	MilestoneColor    RGB     `yaml:"milestone_color"`
	MilestoneHPBonus  int     `yaml:"milestone_hp_bonus"`
	MilestoneDamage   int     `yaml:"milestone_damage_bonus"`
	MilestoneCutMS    int64   `yaml:"milestone_interval_cut_ms"`
	MilestoneMinMS    int64   `yaml:"milestone_min_interval_ms"`
	MilestoneSpeedUp  float64 `yaml:"milestone_speed_bonus"`
	MilestoneMaxSpeed float64 `yaml:"milestone_max_speed"`
}

// BossMilestone holds the extra boost applied on milestone floors.
type BossMilestone struct {
	Floors        []int   `yaml:"floors"`
	HealthBonus   int     `yaml:"health_bonus"`
	SpeedBonus    float64 `yaml:"speed_bonus"`
	IntervalCutMS int64   `yaml:"interval_cut_ms"`
	MinIntervalMS int64   `yaml:"min_interval_ms"`
	DamageBonus   int     `yaml:"damage_bonus"`
}

// PowerUpsConfig defines pickups and their effects.
type PowerUpsConfig struct {
	Size                float64             `yaml:"size"`
	DurationMS          int64               `yaml:"duration_ms"`
	IntervalMS          int64               `yaml:"interval_ms"`
	SpawnMargin         float64             `yaml:"spawn_margin"`
	MinPlayerDistance   float64             `yaml:"min_player_distance"`
	Nudge               float64             `yaml:"nudge"`
	DropSpread          float64             `yaml:"drop_spread"`
	DropMargin          float64             `yaml:"drop_margin"`
	SpeedMultiplier     float64             `yaml:"speed_multiplier"`
	FireRateMultiplier  float64             `yaml:"fire_rate_multiplier"`
	PermaFireMultiplier float64             `yaml:"perma_fire_multiplier"`
	PermaDamageBonus    int                 `yaml:"perma_damage_bonus"`
	Kinds               []PowerUpKindConfig `yaml:"kinds"`
}

// PowerUpKindConfig describes one power-up in the catalogue.
// Weight 0 means the kind never spawns periodically (boss drops only).
type PowerUpKindConfig struct {
	Name   string `yaml:"name"`
	Label  string `yaml:"label"`
	Color  RGB    `yaml:"color"`
	Weight int    `yaml:"weight"`
}

// FloorsConfig defines floor progression.
type FloorsConfig struct {
	BossInterval    int   `yaml:"boss_interval"`
	DelayMS         int64 `yaml:"delay_ms"`
	RewardBase      int   `yaml:"reward_base"`
	RewardPerFloor  int   `yaml:"reward_per_floor"`
	MaxSpawnAttempt int   `yaml:"max_spawn_attempts"`
}

// AutoFireConfig defines the auto-fire upgrade curve.
type AutoFireConfig struct {
	BaseCooldown float64 `yaml:"base_cooldown"` // seconds
	Decay        float64 `yaml:"decay"`
	MinCooldown  float64 `yaml:"min_cooldown"`
	MaxShots     int     `yaml:"max_shots"`
}

// MetaConfig defines the persistent upgrade tree.
type MetaConfig struct {
	SpeedPerLevel float64         `yaml:"speed_per_level"`
	FireRateDecay float64         `yaml:"fire_rate_decay"`
	MoneyPerLevel float64         `yaml:"money_per_level"`
	Upgrades      []UpgradeConfig `yaml:"upgrades"`
}

// UpgradeConfig describes one meta-upgrade. Order in the list is the
// workshop slot order.
type UpgradeConfig struct {
	Key         string  `yaml:"key"`
	Label       string  `yaml:"label"`
	BaseCost    float64 `yaml:"base_cost"`
	CostScale   float64 `yaml:"cost_scale"`
	MaxLevel    int     `yaml:"max_level"`
	Description string  `yaml:"description"`
}

// Variant returns the variant with the given name.
func (c EnemiesConfig) Variant(name string) (VariantConfig, bool) {
	for _, v := range c.Variants {
		if v.Name == name {
			return v, true
		}
	}
	return VariantConfig{}, false
}

// Kind returns the power-up kind with the given name.
func (c PowerUpsConfig) Kind(name string) (PowerUpKindConfig, bool) {
	for _, k := range c.Kinds {
		if k.Name == name {
			return k, true
		}
	}
	return PowerUpKindConfig{}, false
}

// IsMilestone reports whether floor gets the milestone boss boost.
func (c BossMilestone) IsMilestone(floor int) bool {
	for _, f := range c.Floors {
		if f == floor {
			return true
		}
	}
	return false
}
