// Package audio synthesizes the game's retro blips and plays them on the
// system speaker.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Effect is one of the game's sounds
type Effect int

const (
	PaddleHit Effect = iota
	WallBounce
	Score
	Win
)

// Player plays effects on the speaker. A nil Player is silent.
type Player struct{}

// Open initializes the speaker
func Open() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		return nil, err
	}
	return &Player{}, nil
}

// Close shuts down the speaker
func (p *Player) Close() {
	if p == nil {
		return
	}
	speaker.Close()
}

// Play starts e without waiting for it to finish
func (p *Player) Play(e Effect) {
	if p == nil {
		return
	}
	if s := Stream(e); s != nil {
		speaker.Play(s)
	}
}

// Stream builds the samples for e, or nil for an unknown effect
func Stream(e Effect) beep.Streamer {
	switch e {
	case PaddleHit:
		// High-pitched short beep
		return note(square, 880, 50*time.Millisecond)
	case WallBounce:
		return note(square, 440, 30*time.Millisecond)
	case Score:
		// Descending
		return beep.Seq(
			note(square, 660, 100*time.Millisecond),
			note(square, 440, 100*time.Millisecond),
			note(square, 330, 150*time.Millisecond),
		)
	case Win:
		// C major arpeggio
		return beep.Seq(
			note(sine, 523.25, 120*time.Millisecond),
			note(sine, 659.25, 120*time.Millisecond),
			note(sine, 783.99, 120*time.Millisecond),
			note(sine, 1046.5, 300*time.Millisecond),
		)
	}
	return nil
}

// waveform returns a sample for a phase in [0, 1)
type waveform func(phase float64) float64

func square(phase float64) float64 {
	if phase < 0.5 {
		return 0.2
	}
	return -0.2
}

func sine(phase float64) float64 {
	return 0.3 * math.Sin(2*math.Pi*phase)
}

// note plays freq on both channels for d
func note(wave waveform, freq float64, d time.Duration) beep.Streamer {
	remaining := sampleRate.N(d)
	step := freq / float64(sampleRate)
	phase := 0.0

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			if remaining <= 0 {
				return i, i > 0
			}
			v := wave(phase)
			samples[i][0] = v
			samples[i][1] = v
			phase = math.Mod(phase+step, 1)
			remaining--
		}
		return len(samples), true
	})
}
