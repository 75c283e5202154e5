package game

import (
	"fmt"

	"github.com/pervaizahmed26/snake-game/pkg/config"
)

// PowerUpKind represents the different collectible effects
type PowerUpKind int

const (
	SpeedBoost      PowerUpKind = iota + 1 // +5 speed, 300 ticks
	ScoreMultiplier                        // +1 multiplier, 600 ticks
	Invincibility                          // ignore self/obstacle hits, 300 ticks
	GhostMode                              // wrap through walls, 300 ticks
	DoubleFood                             // food worth double, 600 ticks
	SlowTime                               // -5 speed, 300 ticks

	powerUpKindEnd // must stay last
)

// powerUpKindCount is the number of real kinds; 0 means no power-up
const powerUpKindCount = int(powerUpKindEnd - SpeedBoost)

// powerUpSpec is one row of the kind table
type powerUpSpec struct {
	name            string
	emoji           string
	duration        int // effect ticks
	speedDelta      int
	multiplierDelta int
}

var powerUpTable = [powerUpKindEnd]powerUpSpec{
	SpeedBoost:      {name: "speed_boost", emoji: "⚡", duration: 300, speedDelta: config.SpeedBoostDelta},
	ScoreMultiplier: {name: "score_multiplier", emoji: "💰", duration: 600, multiplierDelta: 1},
	Invincibility:   {name: "invincibility", emoji: "🛡️", duration: 300},
	GhostMode:       {name: "ghost_mode", emoji: "👻", duration: 300},
	DoubleFood:      {name: "double_food", emoji: "🍒", duration: 600},
	SlowTime:        {name: "slow_time", emoji: "🐌", duration: 300, speedDelta: config.SlowTimeDelta},
}

// AllPowerUpKinds lists every kind in declaration order
func AllPowerUpKinds() []PowerUpKind {
	kinds := make([]PowerUpKind, 0, powerUpKindCount)
	for k := SpeedBoost; k < powerUpKindEnd; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Valid reports whether k is a known kind
func (k PowerUpKind) Valid() bool {
	return k >= SpeedBoost && k < powerUpKindEnd
}

func (k PowerUpKind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return powerUpTable[k].name
}

// Duration returns the nominal effect duration in ticks
func (k PowerUpKind) Duration() int {
	if !k.Valid() {
		return 0
	}
	return powerUpTable[k].duration
}

// GetEmoji returns the emoji for the power-up kind
func (k PowerUpKind) GetEmoji() string {
	if !k.Valid() {
		return "❓"
	}
	return powerUpTable[k].emoji
}

// MarshalText encodes the kind by name
func (k PowerUpKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid power-up kind %d", int(k))
	}
	return []byte(powerUpTable[k].name), nil
}

// UnmarshalText decodes a kind name
func (k *PowerUpKind) UnmarshalText(text []byte) error {
	kind, ok := ParsePowerUpKind(string(text))
	if !ok {
		return fmt.Errorf("unknown power-up kind %q", text)
	}
	*k = kind
	return nil
}

// RandomPowerUpKind draws a kind uniformly using intn
func RandomPowerUpKind(intn func(int) int) PowerUpKind {
	return SpeedBoost + PowerUpKind(intn(powerUpKindCount))
}

// ParsePowerUpKind looks a kind up by name
func ParsePowerUpKind(name string) (PowerUpKind, bool) {
	for k := SpeedBoost; k < powerUpKindEnd; k++ {
		if powerUpTable[k].name == name {
			return k, true
		}
	}
	return 0, false
}

// GetEmoji returns the emoji for the power-up on the board
func (p *PowerUp) GetEmoji() string {
	return p.Kind.GetEmoji()
}

// IsExpired reports whether the power-up lifetime is used up
func (p *PowerUp) IsExpired() bool {
	return p.Remaining <= 0
}
