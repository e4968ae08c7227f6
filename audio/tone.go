package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// ToneManager plays short sine beeps for collision feedback
// Every Play is a no-op until Initialize succeeds, so the game runs without a sound device
type ToneManager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	volume      float64
	enabled     bool
	initialized bool

	played  uint64
	dropped uint64
}

// NewToneManager creates a tone manager at the given sample rate and master volume in [0,1]
func NewToneManager(sampleRate int, volume float64) *ToneManager {
	tm := &ToneManager{
		rate:    beep.SampleRate(sampleRate),
		mixer:   &beep.Mixer{},
		enabled: true,
	}
	tm.SetVolume(volume)
	return tm
}

// Initialize opens the speaker and attaches the mixer
func (tm *ToneManager) Initialize() error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if tm.initialized {
		return nil
	}

	if err := speaker.Init(tm.rate, tm.rate.N(50*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(tm.mixer)
	tm.initialized = true
	return nil
}

// Cleanup clears pending tones and closes the speaker
func (tm *ToneManager) Cleanup() {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if !tm.initialized {
		return
	}

	speaker.Lock()
	tm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	tm.initialized = false
}

// Play queues a tone of freq Hz lasting d, returns false if nothing was queued
func (tm *ToneManager) Play(freq int, d time.Duration) bool {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if !tm.initialized || !tm.enabled {
		return false
	}

	s, err := tm.tone(float64(freq), d)
	if err != nil {
		tm.dropped++
		return false
	}

	speaker.Lock()
	tm.mixer.Add(s)
	speaker.Unlock()
	tm.played++
	return true
}

// tone builds a volume-scaled sine streamer of finite length
func (tm *ToneManager) tone(freq float64, d time.Duration) (beep.Streamer, error) {
	return NewTone(tm.rate, freq, d, tm.volume)
}

// NewTone returns a sine streamer of duration d at linear gain vol in [0,1]
func NewTone(rate beep.SampleRate, freq float64, d time.Duration, vol float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: beep.Take(rate.N(d), sine),
		Base:     2,
		Volume:   gainToVolume(vol),
		Silent:   vol <= 0,
	}, nil
}

// gainToVolume maps linear gain to the base-2 exponent used by effects.Volume
func gainToVolume(vol float64) float64 {
	if vol <= 0 {
		return 0
	}
	return math.Log2(vol)
}

// SetVolume updates master volume (0.0-1.0)
func (tm *ToneManager) SetVolume(vol float64) {
	if vol < 0 {
		vol = 0
	} else if vol > 1 {
		vol = 1
	}

	tm.mu.Lock()
	tm.volume = vol
	tm.mu.Unlock()
}

// ToggleMute flips playback, returns true if now enabled
func (tm *ToneManager) ToggleMute() bool {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	tm.enabled = !tm.enabled
	return tm.enabled
}

// IsEnabled returns true if initialized and unmuted
func (tm *ToneManager) IsEnabled() bool {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	return tm.initialized && tm.enabled
}

// GetStats returns played and dropped tone counts
func (tm *ToneManager) GetStats() (played, dropped uint64) {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	return tm.played, tm.dropped
}
