package game

import (
	"fmt"
	"time"

	"github.com/pervaizahmed26/snake-game/pkg/config"
)

// Mode is a named ruleset
type Mode int

const (
	ModeClassic Mode = iota
	ModeSurvival
	ModeTimeAttack
)

// AllModes lists the modes in menu order
func AllModes() []Mode {
	return []Mode{ModeClassic, ModeSurvival, ModeTimeAttack}
}

func (m Mode) String() string {
	switch m {
	case ModeSurvival:
		return "survival"
	case ModeTimeAttack:
		return "time_attack"
	default:
		return "classic"
	}
}

// Title is the display name
func (m Mode) Title() string {
	switch m {
	case ModeSurvival:
		return "Survival"
	case ModeTimeAttack:
		return "Time Attack"
	default:
		return "Classic"
	}
}

// ParseMode looks a mode up by name
func ParseMode(s string) (Mode, error) {
	switch s {
	case "classic", "":
		return ModeClassic, nil
	case "survival":
		return ModeSurvival, nil
	case "time_attack", "timeattack", "time-attack":
		return ModeTimeAttack, nil
	}
	return ModeClassic, fmt.Errorf("unknown mode %q", s)
}

// MarshalText encodes the mode by name
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText decodes a mode name
func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// ModePolicy holds the per-mode parameters. It is a pure lookup value.
type ModePolicy struct {
	InitialSpeed   int
	MinSpeed       int
	MaxSpeed       int
	SpeedStep      int // speed gained per level
	LevelThreshold int // points per level
	TimeLimit      time.Duration
	obstacles      func(score, level int) int
}

// ObstacleCount returns how many obstacle cells the board should hold
func (p ModePolicy) ObstacleCount(score, level int) int {
	if p.obstacles == nil {
		return 0
	}
	n := p.obstacles(score, level)
	if n < 0 {
		return 0
	}
	return n
}

// HasTimer reports whether the mode runs a countdown
func (p ModePolicy) HasTimer() bool {
	return p.TimeLimit > 0
}

// Bounds returns the clamping bounds used by the effect registry
func (p ModePolicy) Bounds() Bounds {
	return Bounds{MinSpeed: p.MinSpeed, MaxSpeed: p.MaxSpeed, MaxMultiplier: config.MaxMultiplier}
}

// Policy returns the parameters for m
func (m Mode) Policy() ModePolicy {
	switch m {
	case ModeSurvival:
		return ModePolicy{
			InitialSpeed:   config.FastInitialSpeed,
			MinSpeed:       config.MinSpeed,
			MaxSpeed:       config.MaxSpeed,
			SpeedStep:      config.LevelSpeedStep,
			LevelThreshold: config.SurvivalLevelThreshold,
			obstacles: func(score, level int) int {
				return 4 + 3*(level-1) + score/100
			},
		}
	case ModeTimeAttack:
		return ModePolicy{
			InitialSpeed:   config.FastInitialSpeed,
			MinSpeed:       config.MinSpeed,
			MaxSpeed:       config.MaxSpeed,
			SpeedStep:      config.LevelSpeedStep,
			LevelThreshold: config.ClassicLevelThreshold,
			TimeLimit:      config.TimeAttackDuration,
			obstacles: func(score, level int) int {
				return 2 * (level - 1)
			},
		}
	default:
		return ModePolicy{
			InitialSpeed:   config.ClassicInitialSpeed,
			MinSpeed:       config.MinSpeed,
			MaxSpeed:       config.MaxSpeed,
			SpeedStep:      config.LevelSpeedStep,
			LevelThreshold: config.ClassicLevelThreshold,
		}
	}
}
