package game

import "math"

// FloorReward is the currency paid for clearing floor, before the money
// multiplier.
func (s *Session) FloorReward(floor int) int {
	return s.cfg.Floors.RewardBase + (floor-1)*s.cfg.Floors.RewardPerFloor
}

// updateFloors pays the clear reward once when the field empties, then
// spawns the next floor after the configured delay.
func (s *Session) updateFloors(now int64) {
	if s.state != StatePlaying {
		return
	}
	if len(s.enemies) == 0 && !s.waiting {
		s.waiting = true
		s.clearedAt = now
		s.reward(s.FloorReward(s.floor))
		s.log.Info("floor cleared", "floor", s.floor, "coins", s.runCoins, "bank", s.bank)
	}
	if s.waiting && now-s.clearedAt >= s.cfg.Floors.DelayMS {
		s.floor++
		s.spawnFloor()
		s.waiting = false
	}
}

// reward scales base by the money multiplier, rounding half to even, and
// credits both the run and the bank.
func (s *Session) reward(base int) {
	amount := int(math.RoundToEven(float64(base) * s.effects.MoneyMultiplier))
	if amount <= 0 {
		return
	}
	s.runCoins += amount
	s.bank += amount
}
