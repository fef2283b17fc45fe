// Package audio plays the scene's sound effects.
package audio

import (
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"go.uber.org/zap"

	"github.com/Faultbox/shadowball/internal/logger"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// Manager plays the bounce effect. Until Init succeeds every call is a
// no-op, so a machine without audio still runs the scene.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate
	volume      float64 // 0.0 to 1.0

	mixer  *beep.Mixer
	bounce *beep.Buffer
	log    *zap.Logger
}

// New creates a new audio manager.
func New(volume float64) *Manager {
	return &Manager{
		sampleRate: DefaultSampleRate,
		volume:     clamp(volume, 0, 1),
		mixer:      &beep.Mixer{},
		log:        logger.Named("audio"),
	}
}

// Init opens the speaker and prepares the bounce sound. soundPath names a
// WAV file; when empty a short thud is synthesized instead.
func (m *Manager) Init(soundPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	bounce, err := m.loadBounce(soundPath)
	if err != nil {
		return err
	}

	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.mixer)

	m.bounce = bounce
	m.initialized = true
	m.log.Info("audio initialized",
		zap.Int("sample_rate", int(m.sampleRate)),
		zap.Duration("bounce", m.sampleRate.D(bounce.Len())),
	)
	return nil
}

func (m *Manager) loadBounce(path string) (*beep.Buffer, error) {
	if path == "" {
		return synthesizeBounce(m.sampleRate)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bounce sound: %w", err)
	}
	defer f.Close()
	return decodeWAV(f, m.sampleRate)
}

// Close stops playback.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.initialized = false
}

// IsInitialized returns whether the audio system is initialized.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetVolume sets the effect volume (0.0 to 1.0).
func (m *Manager) SetVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = clamp(vol, 0, 1)
}

// Volume returns the effect volume.
func (m *Manager) Volume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.volume
}

// PlayBounce plays the bounce effect. strength in [0, 1] scales its
// loudness, so glancing hits are quieter than head-on ones.
func (m *Manager) PlayBounce(strength float64) {
	m.mu.RLock()
	initialized := m.initialized
	vol := m.volume * clamp(strength, 0, 1)
	bounce := m.bounce
	m.mu.RUnlock()

	if !initialized || vol <= 0 {
		return
	}

	s := &effects.Volume{
		Streamer: bounce.Streamer(0, bounce.Len()),
		Base:     2,
		Volume:   volumeToDb(vol),
	}

	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// volumeToDb converts a 0-1 volume to the exponent effects.Volume expects
// with base 2. vol=1 -> 0, vol=0.5 -> -1.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100 // Effectively silent
	}
	return math.Log2(vol)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
