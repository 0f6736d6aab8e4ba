// Package audio plays short synthesized tones for game feedback events.
package audio

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/letterfall/internal/core"
)

// SampleRate is the rate every tone is generated at.
const SampleRate = beep.SampleRate(44100)

// Tone lengths and fade timings.
const (
	noteDuration     = 90 * time.Millisecond
	noteAttack       = 5 * time.Millisecond
	noteRelease      = 60 * time.Millisecond
	buzzDuration     = 150 * time.Millisecond
	buzzAttack       = 10 * time.Millisecond
	buzzRelease      = 80 * time.Millisecond
	gameOverDuration = 220 * time.Millisecond
)

// Wave selects a generator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// generator returns an endless stream of w at freq. Noise ignores freq.
func generator(w Wave, freq float64, rate beep.SampleRate) (beep.Streamer, error) {
	var (
		s   beep.Streamer
		err error
	)
	switch w {
	case WaveSine:
		s, err = generators.SineTone(rate, freq)
	case WaveSquare:
		s, err = generators.SquareTone(rate, freq)
	case WaveSaw:
		s, err = generators.SawtoothTone(rate, freq)
	case WaveNoise:
		s = noise{}
	default:
		return nil, fmt.Errorf("audio: unknown wave %d", w)
	}
	if err != nil {
		return nil, fmt.Errorf("audio: %.2f Hz at %d Hz: %w", freq, rate, err)
	}
	return s, nil
}

// noise streams uniform white noise forever.
type noise struct{}

func (noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := rand.Float64()*2 - 1
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (noise) Err() error { return nil }

// shape cuts s to duration and fades it in over attack and out over release.
// Fades longer than the tone are shortened to fit.
func shape(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	sus := total - att - rel

	return beep.Seq(
		effects.Transition(beep.Take(att, s), att, 0, 1, effects.TransitionLinear),
		beep.Take(sus, s),
		effects.Transition(beep.Take(rel, s), rel, 1, 0, effects.TransitionLinear),
	)
}

// newVolume scales s linearly. math.Log2(0) is -Inf, so zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// toneBuilder collects the first generator error so tone recipes stay flat.
type toneBuilder struct {
	rate beep.SampleRate
	err  error
}

func (b *toneBuilder) tone(w Wave, freq float64, duration, attack, release time.Duration) beep.Streamer {
	s, err := generator(w, freq, b.rate)
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		return beep.Silence(b.rate.N(duration))
	}
	return shape(s, duration, attack, release, b.rate)
}

func (b *toneBuilder) note(w Wave, freq float64) beep.Streamer {
	return b.tone(w, freq, noteDuration, noteAttack, noteRelease)
}

// validTone is a rising two-note chime.
func (b *toneBuilder) validTone() beep.Streamer {
	return beep.Seq(
		b.note(WaveSquare, 987.77),  // B5
		b.note(WaveSquare, 1318.51), // E6
	)
}

// bonusTone is a major arpeggio with an octave overtone on the last note.
func (b *toneBuilder) bonusTone() beep.Streamer {
	top := beep.Mix(
		newVolume(b.note(WaveSine, 1046.50), 0.7), // C6
		newVolume(b.note(WaveSine, 2093.00), 0.3), // C7
	)
	return beep.Seq(
		b.note(WaveSine, 523.25), // C5
		b.note(WaveSine, 659.25), // E5
		b.note(WaveSine, 783.99), // G5
		top,
	)
}

// invalidTone is a short low saw buzz.
func (b *toneBuilder) invalidTone() beep.Streamer {
	return b.tone(WaveSaw, 100, buzzDuration, buzzAttack, buzzRelease)
}

// gameOverTone is a slow falling line ending in noise.
func (b *toneBuilder) gameOverTone() beep.Streamer {
	fall := func(freq float64) beep.Streamer {
		return b.tone(WaveSaw, freq, gameOverDuration, noteAttack, gameOverDuration/2)
	}
	hiss := b.tone(WaveNoise, 0, gameOverDuration, noteAttack, gameOverDuration)
	return beep.Seq(fall(392.00), fall(311.13), fall(261.63), newVolume(hiss, 0.4))
}

// ToneFor returns the streamer for ev at the given master volume. Events
// without a sound return nil. The error reports frequencies the rate cannot
// carry.
func ToneFor(ev core.Event, volume float64, rate beep.SampleRate) (beep.Streamer, error) {
	b := &toneBuilder{rate: rate}
	var s beep.Streamer
	switch ev {
	case core.EventValid:
		s = b.validTone()
	case core.EventBonus:
		s = b.bonusTone()
	case core.EventInvalid:
		s = b.invalidTone()
	case core.EventGameOver:
		s = b.gameOverTone()
	default:
		return nil, nil
	}
	if b.err != nil {
		return nil, fmt.Errorf("audio: %s tone: %w", ev, b.err)
	}
	return newVolume(s, volume), nil
}
