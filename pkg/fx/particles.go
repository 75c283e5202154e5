// Package fx turns engine events into short-lived particle bursts.
package fx

import (
	"math"
	"time"

	"golang.org/x/exp/rand"

	"github.com/pervaizahmed26/snake-game/pkg/config"
	"github.com/pervaizahmed26/snake-game/pkg/game"
)

// Particle is a purely visual point in grid coordinates
type Particle struct {
	X, Y    float64
	VX, VY  float64 // cells per second
	Life    time.Duration
	MaxLife time.Duration
	Glyph   string
}

// Alpha returns the remaining life as a fraction in [0,1]
func (p Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

// System owns all live particles. It is driven from the render loop and is
// not safe for concurrent use.
type System struct {
	particles []Particle
	rng       *rand.Rand
	max       int
}

// NewSystem creates an empty particle system
func NewSystem(seed uint64) *System {
	return &System{
		rng: rand.New(rand.NewSource(seed)),
		max: config.MaxParticles,
	}
}

// burst describes the particles one event kind produces
type burst struct {
	count int
	speed float64
	glyph string
}

var bursts = map[game.EventKind]burst{
	game.EventFoodEaten:         {count: config.ParticlesPerBurst, speed: 3, glyph: config.CharParticle},
	game.EventPowerUpCollected:  {count: config.ParticlesPerBurst, speed: 4, glyph: "⭐"},
	game.EventLevelUp:           {count: 2 * config.ParticlesPerBurst, speed: 6, glyph: "🎉"},
	game.EventWallCollision:     {count: 2 * config.ParticlesPerBurst, speed: 5, glyph: config.CharCrash},
	game.EventSelfCollision:     {count: 2 * config.ParticlesPerBurst, speed: 5, glyph: config.CharCrash},
	game.EventObstacleCollision: {count: 2 * config.ParticlesPerBurst, speed: 5, glyph: config.CharCrash},
}

// Emit spawns a burst for every event that has one
func (s *System) Emit(events []game.Event) {
	for _, e := range events {
		b, ok := bursts[e.Kind]
		if !ok {
			continue
		}
		s.spawn(e.Pos, b)
	}
}

func (s *System) spawn(at game.Point, b burst) {
	for i := 0; i < b.count && len(s.particles) < s.max; i++ {
		angle := float64(i)*2*math.Pi/float64(b.count) + s.rng.Float64()*0.5
		speed := b.speed * (0.5 + s.rng.Float64())
		life := config.ParticleLifetime/2 + time.Duration(s.rng.Int63n(int64(config.ParticleLifetime)))
		s.particles = append(s.particles, Particle{
			X:       float64(at.X),
			Y:       float64(at.Y),
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Life:    life,
			MaxLife: life,
			Glyph:   b.glyph,
		})
	}
}

// Update moves particles by dt and drops the dead ones
func (s *System) Update(dt time.Duration) {
	secs := dt.Seconds()
	drag := math.Pow(0.3, secs)

	alive := s.particles[:0]
	for _, p := range s.particles {
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}
		p.X += p.VX * secs
		p.Y += p.VY * secs
		p.VX *= drag
		p.VY *= drag
		alive = append(alive, p)
	}
	s.particles = alive
}

// Clear removes every particle
func (s *System) Clear() {
	s.particles = s.particles[:0]
}

// Len returns the number of live particles
func (s *System) Len() int {
	return len(s.particles)
}

// Particles returns a copy of the live particles
func (s *System) Particles() []Particle {
	out := make([]Particle, len(s.particles))
	copy(out, s.particles)
	return out
}

// Cells maps live particles onto grid cells for character renderers.
// Cells outside width x height are skipped.
func (s *System) Cells(width, height int) map[game.Point]string {
	cells := make(map[game.Point]string, len(s.particles))
	for _, p := range s.particles {
		pt := game.Point{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
		if pt.X < 0 || pt.X >= width || pt.Y < 0 || pt.Y >= height {
			continue
		}
		cells[pt] = p.Glyph
	}
	return cells
}
