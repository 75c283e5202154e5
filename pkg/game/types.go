package game

import "fmt"

// Point represents a coordinate on the game board
type Point struct {
	X int `json:"x" msgpack:"x"`
	Y int `json:"y" msgpack:"y"`
}

// Add returns the point shifted by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Direction is one of the four grid headings
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Delta returns the unit vector for the direction (Up decreases Y)
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection maps a client action name to a direction
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "up":
		return Up, true
	case "down":
		return Down, true
	case "left":
		return Left, true
	case "right":
		return Right, true
	}
	return 0, false
}

// PowerUp is a collectible lying on the board
type PowerUp struct {
	Pos       Point       `json:"pos"`
	Kind      PowerUpKind `json:"kind"`
	Remaining int         `json:"remaining"` // ticks until it vanishes
}

// Stats is the numeric part of the round state
type Stats struct {
	Score      int `json:"score"`
	Multiplier int `json:"multiplier"`
	Level      int `json:"level"`
	Speed      int `json:"speed"` // grid ticks per second
}

// Status is the engine state after a tick
type Status int

const (
	StatusContinue Status = iota
	StatusGameOver
)

func (s Status) String() string {
	if s == StatusGameOver {
		return "game_over"
	}
	return "continue"
}

// EventKind identifies something the presentation layer may react to
type EventKind int

const (
	EventNone EventKind = iota
	EventFoodEaten
	EventPowerUpSpawned
	EventPowerUpCollected
	EventPowerUpExpired
	EventEffectExpired
	EventLevelUp
	EventWallCollision
	EventSelfCollision
	EventObstacleCollision
	EventTimeExpired
)

var eventNames = map[EventKind]string{
	EventNone:              "none",
	EventFoodEaten:         "food_eaten",
	EventPowerUpSpawned:    "powerup_spawned",
	EventPowerUpCollected:  "powerup_collected",
	EventPowerUpExpired:    "powerup_expired",
	EventEffectExpired:     "effect_expired",
	EventLevelUp:           "level_up",
	EventWallCollision:     "wall_collision",
	EventSelfCollision:     "self_collision",
	EventObstacleCollision: "obstacle_collision",
	EventTimeExpired:       "time_expired",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether the event ends the round
func (k EventKind) Terminal() bool {
	switch k {
	case EventWallCollision, EventSelfCollision, EventObstacleCollision, EventTimeExpired:
		return true
	}
	return false
}

// Event is emitted by a tick for sound, particles and score popups
type Event struct {
	Kind    EventKind   `json:"kind"`
	Pos     Point       `json:"pos"`
	Points  int         `json:"points,omitempty"`
	PowerUp PowerUpKind `json:"powerUp,omitempty"`
	Level   int         `json:"level,omitempty"`
	Speed   int         `json:"speed,omitempty"`
}

// TickOutcome is returned by Step and Advance
type TickOutcome struct {
	Status Status
	Reason EventKind // terminal event when Status is StatusGameOver
	Events []Event
	Steps  int // grid ticks performed
}

// Config configures a new game
type Config struct {
	Width  int
	Height int
	Mode   Mode
	Seed   uint64
}

// MarshalText encodes the kind by name
func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes an event kind name
func (k *EventKind) UnmarshalText(text []byte) error {
	for kind, name := range eventNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown event kind %q", text)
}
