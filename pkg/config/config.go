package config

import "time"

// Game board dimensions
const (
	StandardWidth  = 25
	StandardHeight = 25
	LargeWidth     = 38
	LargeHeight    = 38
)

// Frame loop settings
const (
	FrameRate     = 60
	FrameInterval = time.Second / FrameRate
	// MaxStepsPerFrame bounds accumulator catch-up after a stall
	MaxStepsPerFrame = 5
)

// Speed settings, in grid ticks per second
const (
	ClassicInitialSpeed = 10
	FastInitialSpeed    = 12
	MinSpeed            = 8
	MaxSpeed            = 25
	LevelSpeedStep      = 2
)

// Level thresholds (points per level)
const (
	ClassicLevelThreshold  = 50
	SurvivalLevelThreshold = 30
)

// Time-Attack settings
const (
	TimeAttackDuration = 60 * time.Second
)

// Food settings
const (
	FoodPoints = 10
)

// Placement settings
const (
	PlacementAttempts = 1000
	// ObstacleSafeCells keeps the cells directly ahead of the head clear
	ObstacleSafeCells   = 3
	MaxObstacleCluster  = 5
	ObstacleGridDivisor = 4 // at most 1/4 of the grid may be obstacles
)

// Power-up settings
const (
	PowerUpSpawnChance = 10 // percent per food eaten
	MaxPowerUpsOnBoard = 3
	PowerUpLifetime    = 150 // ticks before an uncollected power-up vanishes
	MaxMultiplier      = 4
)

// Effect modifiers
const (
	SpeedBoostDelta = 5
	SlowTimeDelta   = -5
)

// High score settings
const (
	TopScores = 10
)

// Particle settings
const (
	ParticlesPerBurst = 12
	ParticleLifetime  = 600 * time.Millisecond
	MaxParticles      = 256
)

// Emoji characters for rendering
const (
	CharEmpty    = "  " // Two spaces to match emoji width
	CharWall     = "⬜"
	CharHead     = "🟢"
	CharBody     = "🟩"
	CharCrash    = "💥"
	CharFood     = "🔴"
	CharObstacle = "🪨"
	CharParticle = "✨"
)
