package game

// Cue identifies a sound effect.
type Cue int

const (
	CueFire Cue = iota
	CueHit
	CuePowerUp
	CueDamage
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueFire:
		return "fire"
	case CueHit:
		return "hit"
	case CuePowerUp:
		return "power_up"
	case CueDamage:
		return "damage"
	default:
		return "unknown"
	}
}

// Sound plays cues. Implementations must not block and must swallow
// device errors; the simulation never looks at the outcome.
type Sound interface {
	Play(c Cue)
}

// NopSound discards every cue.
type NopSound struct{}

// Play does nothing.
func (NopSound) Play(Cue) {}
