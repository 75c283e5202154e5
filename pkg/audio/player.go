// Package audio plays short synthesized sounds for engine events.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/pervaizahmed26/snake-game/pkg/game"
)

const sampleRate = beep.SampleRate(44100)

// sounds maps an event kind to the notes it plays
var sounds = map[game.EventKind][]note{
	game.EventFoodEaten: {
		{freq: 660, duration: 70 * time.Millisecond, wave: WaveSine},
	},
	game.EventPowerUpSpawned: {
		{freq: 440, duration: 50 * time.Millisecond, wave: WaveSine},
	},
	game.EventPowerUpCollected: {
		{freq: 880, duration: 60 * time.Millisecond, wave: WaveSquare},
		{freq: 1318.51, duration: 120 * time.Millisecond, wave: WaveSquare},
	},
	game.EventEffectExpired: {
		{freq: 330, duration: 120 * time.Millisecond, wave: WaveSine},
	},
	game.EventLevelUp: {
		{freq: 523.25, duration: 80 * time.Millisecond, wave: WaveSine},
		{freq: 659.25, duration: 80 * time.Millisecond, wave: WaveSine},
		{freq: 783.99, duration: 160 * time.Millisecond, wave: WaveSine},
	},
	game.EventWallCollision:     crashNotes,
	game.EventSelfCollision:     crashNotes,
	game.EventObstacleCollision: crashNotes,
	game.EventTimeExpired: {
		{freq: 440, duration: 150 * time.Millisecond, wave: WaveSquare},
		{freq: 220, duration: 300 * time.Millisecond, wave: WaveSquare},
	},
}

var crashNotes = []note{
	{freq: 110, duration: 300 * time.Millisecond, wave: WaveSaw},
}

// Player mixes event sounds into a single speaker stream. It is a no-op
// until Init succeeds, so hosts without a sound device keep running.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	enabled     bool
	volume      float64
}

// NewPlayer creates a player with a linear volume in [0,1]
func NewPlayer(enabled bool, volume float64) *Player {
	p := &Player{
		mixer:   &beep.Mixer{},
		enabled: enabled,
	}
	p.SetVolume(volume)
	return p
}

// Init opens the audio device
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// SetVolume sets the master gain, clamped to [0,1]
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	switch {
	case v < 0:
		v = 0
	case v > 1:
		v = 1
	}
	p.volume = v
}

// Volume returns the master gain
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// Toggle flips sound on or off and returns the new state
func (p *Player) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = !p.enabled
	return p.enabled
}

// Enabled reports whether sounds are played
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// SoundFor builds the streamer for an event kind, nil when it has no sound
func (p *Player) SoundFor(kind game.EventKind) beep.Streamer {
	notes, ok := sounds[kind]
	if !ok {
		return nil
	}
	return withVolume(sequence(sampleRate, notes...), p.Volume())
}

// HandleEvents queues one sound per distinct event kind of a frame
func (p *Player) HandleEvents(events []game.Event) {
	p.mu.Lock()
	active := p.initialized && p.enabled
	p.mu.Unlock()
	if !active {
		return
	}

	seen := make(map[game.EventKind]bool, len(events))
	for _, e := range events {
		if seen[e.Kind] {
			continue
		}
		seen[e.Kind] = true
		if s := p.SoundFor(e.Kind); s != nil {
			speaker.Lock()
			p.mixer.Add(s)
			speaker.Unlock()
		}
	}
}

// Close stops playback and releases the device
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
