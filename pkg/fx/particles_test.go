package fx

import (
	"testing"
	"time"

	"github.com/pervaizahmed26/snake-game/pkg/config"
	"github.com/pervaizahmed26/snake-game/pkg/game"
)

// TestEmitBursts spawns particles only for visual events
func TestEmitBursts(t *testing.T) {
	s := NewSystem(1)
	s.Emit([]game.Event{
		{Kind: game.EventFoodEaten, Pos: game.Point{X: 3, Y: 3}},
		{Kind: game.EventEffectExpired},
		{Kind: game.EventPowerUpSpawned},
	})
	if s.Len() != config.ParticlesPerBurst {
		t.Errorf("Expected %d particles, got %d", config.ParticlesPerBurst, s.Len())
	}
	for _, p := range s.Particles() {
		if p.X != 3 || p.Y != 3 {
			t.Errorf("Particle should start at the event, got (%v,%v)", p.X, p.Y)
		}
		if p.Alpha() != 1 {
			t.Errorf("Fresh particle should be fully opaque, got %v", p.Alpha())
		}
	}
}

// TestEmitCapped never exceeds the particle limit
func TestEmitCapped(t *testing.T) {
	s := NewSystem(1)
	events := make([]game.Event, 50)
	for i := range events {
		events[i] = game.Event{Kind: game.EventLevelUp}
	}
	s.Emit(events)
	if s.Len() != config.MaxParticles {
		t.Errorf("Expected the cap of %d, got %d", config.MaxParticles, s.Len())
	}
}

// TestUpdateExpires moves particles and drops them when their life ends
func TestUpdateExpires(t *testing.T) {
	s := NewSystem(2)
	s.Emit([]game.Event{{Kind: game.EventWallCollision, Pos: game.Point{X: 10, Y: 10}}})
	n := s.Len()

	s.Update(100 * time.Millisecond)
	if s.Len() != n {
		t.Errorf("No particle should die in 100ms, %d of %d left", s.Len(), n)
	}
	moved := false
	for _, p := range s.Particles() {
		if p.X != 10 || p.Y != 10 {
			moved = true
		}
		if p.Alpha() >= 1 {
			t.Errorf("Alpha should fade, got %v", p.Alpha())
		}
	}
	if !moved {
		t.Error("Particles should move")
	}

	s.Update(2 * config.ParticleLifetime)
	if s.Len() != 0 {
		t.Errorf("Expected all particles gone, %d left", s.Len())
	}
}

// TestCellsClipsToGrid skips particles that left the board
func TestCellsClipsToGrid(t *testing.T) {
	s := NewSystem(3)
	s.Emit([]game.Event{{Kind: game.EventFoodEaten, Pos: game.Point{X: 0, Y: 0}}})

	cells := s.Cells(5, 5)
	if cells[game.Point{X: 0, Y: 0}] != config.CharParticle {
		t.Errorf("Expected a particle glyph at the origin, got %v", cells)
	}
	for pt := range cells {
		if pt.X < 0 || pt.Y < 0 || pt.X >= 5 || pt.Y >= 5 {
			t.Errorf("Cell %v is off the grid", pt)
		}
	}

	s.Clear()
	if len(s.Cells(5, 5)) != 0 {
		t.Error("Clear should remove every particle")
	}
}
