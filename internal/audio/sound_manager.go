package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/letterfall/internal/core"
)

// DefaultVolume is the master volume used when none is configured.
const DefaultVolume = 0.3

// SoundManager mixes feedback tones into the speaker.
// Play is safe to call before Initialize or after Cleanup; it does nothing.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	opened      bool // Speaker device is open
	initialized bool
}

// NewSoundManager creates a manager with the given master volume in [0, 1].
func NewSoundManager(volume float64) *SoundManager {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the audio device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if !sm.opened {
		if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
			return fmt.Errorf("audio: init speaker: %w", err)
		}
		speaker.Play(sm.mixer)
		sm.opened = true
	}
	sm.initialized = true
	return nil
}

// Play queues the tone for ev. Tones that fail to build are skipped.
func (sm *SoundManager) Play(ev core.Event) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s, err := ToneFor(ev, sm.volume, SampleRate)
	if err != nil || s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Volume returns the master volume.
func (sm *SoundManager) Volume() float64 {
	return sm.volume
}

// Cleanup silences queued tones. beep has no way to close the speaker, so a
// later Initialize reuses the open device.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}
