// Package audio plays the game's sound cues through the system speaker.
//
// Cues are short generated sine beeps mixed into a single beep.Mixer.
// When the audio device cannot be opened the player stays disabled and
// every Play call is a no-op.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tower-rush/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// Tone describes one generated beep.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Volume   float64 // linear amplitude in (0, 1]
}

// Tones maps each cue to its beep.
var Tones = map[game.Cue]Tone{
	game.CueFire:    {Freq: 880, Duration: 50 * time.Millisecond, Volume: 0.4},
	game.CueHit:     {Freq: 660, Duration: 80 * time.Millisecond, Volume: 0.5},
	game.CuePowerUp: {Freq: 520, Duration: 120 * time.Millisecond, Volume: 0.4},
	game.CueDamage:  {Freq: 220, Duration: 100 * time.Millisecond, Volume: 0.6},
}

// Player implements game.Sound on top of the speaker.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	enabled bool
}

// New creates a disabled player. Call Init to open the device.
func New() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker. On error the player stays disabled.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.enabled {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.enabled = true
	return nil
}

// Enabled reports whether cues reach the device.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Play queues the cue. It never blocks on the device.
func (p *Player) Play(c game.Cue) {
	tone, ok := Tones[c]
	if !ok {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	speaker.Lock()
	p.mixer.Add(Beep(tone, sampleRate))
	speaker.Unlock()
}

// Close silences everything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.enabled = false
}

// Beep builds the streamer for a tone.
func Beep(t Tone, rate beep.SampleRate) beep.Streamer {
	osc := &sine{freq: t.Freq, rate: rate}
	s := beep.Take(rate.N(t.Duration), osc)
	if t.Volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(t.Volume)}
}

// sine is an endless unit-amplitude sine oscillator.
type sine struct {
	freq  float64
	phase float64
	rate  beep.SampleRate
}

func (o *sine) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		v := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = v
		samples[i][1] = v
		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
	}
	return len(samples), true
}

func (o *sine) Err() error { return nil }
