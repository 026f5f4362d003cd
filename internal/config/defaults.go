package config

import (
	_ "embed"
)

//go:embed defaults/towerrush.yaml
var defaultTowerRushYAML []byte

// DefaultTowerRushConfig returns the built-in tuning. It mirrors
// defaults/towerrush.yaml and is the fallback when the embedded YAML
// cannot be parsed.
func DefaultTowerRushConfig() TowerRushConfig {
	return TowerRushConfig{
		Arena: ArenaConfig{
			Width:  1600,
			Height: 900,
			FPS:    60,
		},
		Player: PlayerConfig{
			Speed:            240,
			Radius:           20,
			FireCooldown:     0.25,
			InvulnerableMS:   2000,
			HitFlashMS:       200,
			BaseLives:        3,
			Color:            RGB{80, 160, 255},
			HitFlashColor:    RGB{255, 120, 120},
			InvulnerableTint: RGB{200, 200, 255},
		},
		Bullets: BulletConfig{
			Speed:          600,
			Radius:         6,
			Damage:         1,
			BigMultiplier:  1.6,
			BigDamageBonus: 1,
			MultiShot:      3,
			SpreadDegrees:  14,
			Color:          RGB{255, 220, 120},
		},
		Enemies: EnemiesConfig{
			BaseSpeed:        100,
			SpeedIncrement:   4,
			SpawnMargin:      40,
			MinSpawnDistance: 180,
			BaseCount:        4,
			CountPerFloor:    1.4,
			ProjectileRadius: 8,
			WanderMinSeconds: 0.4,
			WanderMaxSeconds: 1.0,
			Variants: []VariantConfig{
				{Name: "raider", Color: RGB{220, 70, 70}, SpeedMultiplier: 1.0, Health: 1, Radius: 24, Score: 1, Reward: 2, UnlockFloor: 1, Behavior: BehaviorChase},
				{Name: "brute", Color: RGB{240, 150, 70}, SpeedMultiplier: 0.72, Health: 3, Radius: 28, Score: 2, Reward: 3, UnlockFloor: 3, Behavior: BehaviorChase},
				{Name: "warden", Color: RGB{120, 200, 150}, SpeedMultiplier: 0.55, Health: 5, Radius: 30, Score: 3, Reward: 4, UnlockFloor: 5, Behavior: BehaviorChase},
				{Name: "speedster", Color: RGB{255, 230, 120}, SpeedMultiplier: 1.35, Health: 2, Radius: 20, Score: 3, Reward: 2, UnlockFloor: 4, Behavior: BehaviorWander, FixedHealth: 1, SpeedBonus: 1.1},
				{
					Name: "artillery", Color: RGB{180, 120, 255}, SpeedMultiplier: 0.45, Health: 4, Radius: 26, Score: 4, Reward: 3, UnlockFloor: 6, Behavior: BehaviorRanged,
					Ranged: &RangedConfig{IntervalMS: 1800, ProjectileSpeed: 420, ProjectileDamage: 1, Color: RGB{255, 160, 90}},
				},
			},
		},
		Boss: BossConfig{
			BaseHealth:       24,
			HealthIncrement:  6,
			CycleHealthBonus: 16,
			BaseSpeed:        80,
			CycleSpeedBonus:  6,
			Radius:           52,
			Color:            RGB{255, 90, 160},
			Score:            10,
			RewardBase:       40,
			RewardPerCycle:   12,
			SpawnMargin:      100,
			MinSpawnDistance: 260,
			PushbackGap:      12,
			ContactDamage:    2,
			Shot: BossShot{
				IntervalMS:        1400,
				IntervalStepMS:    130,
				MinIntervalMS:     700,
				Speed:             480,
				SpeedStep:         20,
				Damage:            2,
				CyclesPerDamageUp: 2,
				Color:             RGB{255, 120, 180},
			},
			Special: BossSpecial{
				IntervalMS:        2400,
				IntervalStepMS:    180,
				MinIntervalMS:     1500,
				Speed:             180,
				SpeedStep:         20,
				Damage:            2,
				HitPoints:         3,
				CyclesPerHPUp:     2,
				Radius:            12,
				Color:             RGB{255, 205, 140},
				MilestoneRadius:   16,
				MilestoneColor:    RGB{255, 220, 140},
				MilestoneHPBonus:  2,
				MilestoneDamage:   1,
				MilestoneCutMS:    200,
				MilestoneMinMS:    1200,
				MilestoneSpeedUp:  60,
				MilestoneMaxSpeed: 360,
			},
			Milestone: BossMilestone{
				Floors:        []int{25, 50, 75, 100},
				HealthBonus:   80,
				SpeedBonus:    18,
				IntervalCutMS: 200,
				MinIntervalMS: 600,
				DamageBonus:   1,
			},
		},
		PowerUps: PowerUpsConfig{
			Size:                26,
			DurationMS:          8000,
			IntervalMS:          25000,
			SpawnMargin:         80,
			MinPlayerDistance:   120,
			Nudge:               140,
			DropSpread:          50,
			DropMargin:          60,
			SpeedMultiplier:     1.5,
			FireRateMultiplier:  0.6,
			PermaFireMultiplier: 0.9,
			PermaDamageBonus:    1,
			Kinds: []PowerUpKindConfig{
				{Name: "speed", Label: "Speed Boost", Color: RGB{120, 220, 255}, Weight: 3},
				{Name: "fire_rate", Label: "Rapid Fire", Color: RGB{255, 200, 90}, Weight: 3},
				{Name: "big_bullet", Label: "Heavy Rounds", Color: RGB{255, 150, 120}, Weight: 2},
				{Name: "multi_shot", Label: "Multi Shot", Color: RGB{190, 160, 255}, Weight: 2},
				{Name: "piercing", Label: "Piercing Shots", Color: RGB{140, 255, 200}, Weight: 2},
				{Name: "perma_fire_rate", Label: "Session Fire Rate", Color: RGB{255, 110, 180}},
				{Name: "perma_damage", Label: "Session Damage", Color: RGB{255, 90, 120}},
			},
		},
		Floors: FloorsConfig{
			BossInterval:    5,
			DelayMS:         2000,
			RewardBase:      12,
			RewardPerFloor:  4,
			MaxSpawnAttempt: 100,
		},
		AutoFire: AutoFireConfig{
			BaseCooldown: 2.2,
			Decay:        0.82,
			MinCooldown:  0.35,
			MaxShots:     3,
		},
		Meta: MetaConfig{
			SpeedPerLevel: 0.05,
			FireRateDecay: 0.92,
			MoneyPerLevel: 0.12,
			Upgrades: []UpgradeConfig{
				{Key: "speed", Label: "Agility", BaseCost: 120, CostScale: 1.65, MaxLevel: 8, Description: "+5% move speed"},
				{Key: "fire_rate", Label: "Trigger Discipline", BaseCost: 130, CostScale: 1.7, MaxLevel: 8, Description: "+8% fire rate"},
				{Key: "starting_hp", Label: "Reserves", BaseCost: 160, CostScale: 1.8, MaxLevel: 5, Description: "+1 starting heart"},
				{Key: "money", Label: "Spoils Bonus", BaseCost: 140, CostScale: 1.7, MaxLevel: 6, Description: "+12% more coins"},
				{Key: "damage", Label: "Ballistics", BaseCost: 150, CostScale: 1.75, MaxLevel: 6, Description: "+1 base damage"},
				{Key: "auto_fire", Label: "Auto Salvo", BaseCost: 220, CostScale: 1.85, MaxLevel: 5, Description: "Unlocks auto fire, higher levels shorten cooldown"},
			},
		},
	}
}
