package game

import "github.com/pervaizahmed26/snake-game/pkg/config"

// Bounds limits the values effects may push Stats to
type Bounds struct {
	MinSpeed      int
	MaxSpeed      int
	MaxMultiplier int
}

// EffectRegistry tracks active power-up effects and their remaining ticks.
// At most one entry exists per kind.
type EffectRegistry struct {
	bounds    Bounds
	remaining [powerUpKindEnd]int
	active    [powerUpKindEnd]bool
}

// NewEffectRegistry creates an empty registry clamping to b
func NewEffectRegistry(b Bounds) *EffectRegistry {
	if b.MaxMultiplier < 1 {
		b.MaxMultiplier = config.MaxMultiplier
	}
	return &EffectRegistry{bounds: b}
}

// Apply activates kind for its nominal duration. A kind that is already
// active only has its duration refreshed; its modifier is not applied again.
func (r *EffectRegistry) Apply(kind PowerUpKind, s *Stats) {
	if !kind.Valid() {
		return
	}
	spec := powerUpTable[kind]
	if !r.active[kind] {
		r.modify(s, spec.speedDelta, spec.multiplierDelta)
		r.active[kind] = true
	}
	r.remaining[kind] = spec.duration
}

// Tick decrements every active effect and reverses the ones that ran out.
// Expired kinds are returned in declaration order.
func (r *EffectRegistry) Tick(s *Stats) []PowerUpKind {
	var expired []PowerUpKind
	for k := SpeedBoost; k < powerUpKindEnd; k++ {
		if !r.active[k] {
			continue
		}
		r.remaining[k]--
		if r.remaining[k] > 0 {
			continue
		}
		spec := powerUpTable[k]
		r.modify(s, -spec.speedDelta, -spec.multiplierDelta)
		r.active[k] = false
		r.remaining[k] = 0
		expired = append(expired, k)
	}
	return expired
}

// IsActive reports whether kind currently has an effect running
func (r *EffectRegistry) IsActive(kind PowerUpKind) bool {
	return kind.Valid() && r.active[kind]
}

// Remaining returns the ticks left on kind, 0 when inactive
func (r *EffectRegistry) Remaining(kind PowerUpKind) int {
	if !r.IsActive(kind) {
		return 0
	}
	return r.remaining[kind]
}

// Active returns the remaining ticks of every running effect
func (r *EffectRegistry) Active() map[PowerUpKind]int {
	out := make(map[PowerUpKind]int)
	for k := SpeedBoost; k < powerUpKindEnd; k++ {
		if r.active[k] {
			out[k] = r.remaining[k]
		}
	}
	return out
}

// Clear drops all effects without reversing them
func (r *EffectRegistry) Clear() {
	r.remaining = [powerUpKindEnd]int{}
	r.active = [powerUpKindEnd]bool{}
}

// modify applies deltas, clamping each independently. Clamping makes a
// boost applied near the cap not exactly reversible.
func (r *EffectRegistry) modify(s *Stats, speedDelta, multDelta int) {
	if speedDelta != 0 {
		s.Speed = clamp(s.Speed+speedDelta, r.bounds.MinSpeed, r.bounds.MaxSpeed)
	}
	if multDelta != 0 {
		s.Multiplier = clamp(s.Multiplier+multDelta, 1, r.bounds.MaxMultiplier)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
