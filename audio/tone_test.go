package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain counts samples until the streamer ends
func drain(s beep.Streamer) (n int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		got, ok := s.Stream(buf)
		for i := 0; i < got; i++ {
			if v := buf[i][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		n += got
		if !ok || got == 0 {
			return n, peak
		}
	}
}

func TestNewToneLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	s, err := NewTone(rate, 1000, 10*time.Millisecond, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	n, peak := drain(s)
	if n != rate.N(10*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(10*time.Millisecond), n)
	}
	if peak <= 0.5 || peak > 1.0001 {
		t.Errorf("Expected full-scale peak near 1, got %f", peak)
	}
}

func TestNewToneVolume(t *testing.T) {
	rate := beep.SampleRate(44100)

	half, _ := NewTone(rate, 500, 20*time.Millisecond, 0.5)
	_, peak := drain(half)
	if peak > 0.5001 || peak < 0.4 {
		t.Errorf("Expected peak near 0.5, got %f", peak)
	}

	silent, _ := NewTone(rate, 500, 20*time.Millisecond, 0)
	_, peak = drain(silent)
	if peak != 0 {
		t.Errorf("Expected silence at zero volume, got %f", peak)
	}
}

func TestNewToneRejectsInvalidFrequency(t *testing.T) {
	if _, err := NewTone(beep.SampleRate(8000), 5000, time.Millisecond, 1); err == nil {
		t.Error("Expected error for frequency above Nyquist")
	}
}

// TestToneManagerGracefulDegradation verifies Play without a device is a safe no-op
func TestToneManagerGracefulDegradation(t *testing.T) {
	tm := NewToneManager(44100, 0.5)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Tone operations panicked without initialization: %v", r)
		}
	}()

	if tm.Play(1000, 10*time.Millisecond) {
		t.Error("Expected Play to report false before Initialize")
	}
	if tm.IsEnabled() {
		t.Error("Expected IsEnabled false before Initialize")
	}
	tm.Cleanup()
}

// TestToneManagerInitialization verifies init and cleanup when a device exists
func TestToneManagerInitialization(t *testing.T) {
	tm := NewToneManager(44100, 0.5)

	if err := tm.Initialize(); err != nil {
		t.Logf("Speaker initialization failed (expected in test environment): %v", err)
		return
	}
	defer tm.Cleanup()

	if err := tm.Initialize(); err != nil {
		t.Errorf("Second initialization should be a no-op, got %v", err)
	}
	if !tm.Play(750, 10*time.Millisecond) {
		t.Error("Expected Play to queue after Initialize")
	}
	if played, _ := tm.GetStats(); played != 1 {
		t.Errorf("Expected 1 played, got %d", played)
	}
}

func TestToneManagerMuteAndVolume(t *testing.T) {
	tm := NewToneManager(44100, 2)
	if tm.volume != 1 {
		t.Errorf("Expected volume clamped to 1, got %f", tm.volume)
	}
	tm.SetVolume(-1)
	if tm.volume != 0 {
		t.Errorf("Expected volume clamped to 0, got %f", tm.volume)
	}

	if tm.ToggleMute() {
		t.Error("Expected first toggle to mute")
	}
	if !tm.ToggleMute() {
		t.Error("Expected second toggle to unmute")
	}
}
