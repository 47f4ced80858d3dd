package tui

import (
	"math"
	"sync"
	"time"

	"labsim/internal/sims/projectile"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Chime is a decaying sine tone.
type Chime struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewChime creates a chime at freq Hz.
func NewChime(sr beep.SampleRate, freq float64) *Chime {
	return &Chime{sr: sr, freq: freq}
}

// Stream fills samples with the tone. It never ends on its own; wrap it in
// beep.Take.
func (c *Chime) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(c.pos) / float64(c.sr)
		v := 0.25 * math.Sin(2*math.Pi*c.freq*t) * math.Exp(-6*t)
		samples[i][0] = v
		samples[i][1] = v
		c.pos++
	}
	return len(samples), true
}

// Err always returns nil.
func (c *Chime) Err() error { return nil }

// Sound plays short cues through the system speaker.
type Sound struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSound returns a silent Sound. Call Init to open the speaker.
func NewSound() *Sound {
	return &Sound{mixer: &beep.Mixer{}}
}

// Init opens the speaker. Without it every cue is dropped.
func (s *Sound) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// ChimeOnLanding returns a finish callback that calls play only for runs
// that reached the ground. Runs cut by the step cap stay silent.
func ChimeOnLanding(play func()) func(runID int, reason projectile.FinishReason) {
	return func(_ int, reason projectile.FinishReason) {
		if reason == projectile.FinishLanded {
			play()
		}
	}
}

// Landing queues the cue played when a projectile lands.
func (s *Sound) Landing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return false
	}
	speaker.Lock()
	s.mixer.Add(beep.Take(sampleRate.N(250*time.Millisecond), NewChime(sampleRate, 660)))
	speaker.Unlock()
	return true
}

// Close silences pending cues.
func (s *Sound) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}
