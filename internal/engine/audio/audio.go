// Package audio plays short feedback tones for input events.
package audio

import (
	"fmt"
	gomath "math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// Cue identifies a feedback sound.
type Cue int

const (
	CueClick Cue = iota
	CueDoubleClick
	CueLock
	CueUnlock
)

// tone is a sine burst.
type tone struct {
	freq float64
	dur  time.Duration
}

var cueTones = map[Cue][]tone{
	CueClick:       {{880, 30 * time.Millisecond}},
	CueDoubleClick: {{880, 30 * time.Millisecond}, {1320, 40 * time.Millisecond}},
	CueLock:        {{440, 60 * time.Millisecond}, {330, 60 * time.Millisecond}},
	CueUnlock:      {{330, 60 * time.Millisecond}, {440, 60 * time.Millisecond}},
}

// Manager owns the speaker and mixes cues.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
}

// New creates a manager at the given volume (0.0 to 1.0).
func New(volume float64) *Manager {
	return &Manager{
		sampleRate: DefaultSampleRate,
		volume:     clamp(volume, 0, 1),
		mixer:      &beep.Mixer{},
	}
}

// Init opens the audio device.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Close stops playback.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.initialized {
		speaker.Clear()
		m.initialized = false
	}
}

// SetVolume sets the volume (0.0 to 1.0).
func (m *Manager) SetVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = clamp(vol, 0, 1)
}

// Volume returns the volume.
func (m *Manager) Volume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.volume
}

// Play mixes a cue in. It is a no-op before Init.
func (m *Manager) Play(c Cue) error {
	m.mu.RLock()
	initialized, vol := m.initialized, m.volume
	m.mu.RUnlock()

	if !initialized {
		return nil
	}
	s, err := cueStreamer(m.sampleRate, c, vol)
	if err != nil {
		return err
	}
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
	return nil
}

// cueStreamer builds the volume-adjusted tone sequence for c.
func cueStreamer(sr beep.SampleRate, c Cue, vol float64) (beep.Streamer, error) {
	tones, ok := cueTones[c]
	if !ok {
		return nil, fmt.Errorf("unknown cue %d", c)
	}
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		sine, err := generators.SineTone(sr, t.freq)
		if err != nil {
			return nil, fmt.Errorf("tone %.0fHz: %w", t.freq, err)
		}
		parts = append(parts, beep.Take(sr.N(t.dur), sine))
	}
	// Base 2 volume counts doublings, about 6dB each.
	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   volumeToDb(vol) / 6,
		Silent:   vol <= 0,
	}, nil
}

// volumeToDb converts a 0-1 volume to decibels: 1 is 0dB, 0.5 about -6dB.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100
	}
	return 20 * gomath.Log10(vol)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
