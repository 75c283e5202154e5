package game

// EffectInfo is a DTO for a running effect
type EffectInfo struct {
	Kind      PowerUpKind `json:"kind"`
	Remaining int         `json:"remaining"`
}

// GameState is a read-only snapshot of the round for the presentation layer
type GameState struct {
	Width         int          `json:"width"`
	Height        int          `json:"height"`
	Mode          Mode         `json:"mode"`
	Snake         []Point      `json:"snake"`
	Direction     string       `json:"direction"`
	Food          *Point       `json:"food,omitempty"`
	Obstacles     []Point      `json:"obstacles"`
	PowerUps      []PowerUp    `json:"powerUps"`
	Effects       []EffectInfo `json:"effects"`
	Score         int          `json:"score"`
	Multiplier    int          `json:"multiplier"`
	Level         int          `json:"level"`
	Speed         int          `json:"speed"`
	FoodEaten     int          `json:"foodEaten"`
	Ticks         int          `json:"ticks"`
	TimeRemaining int          `json:"timeRemaining"` // seconds, timed modes only
	GameOver      bool         `json:"gameOver"`
	Reason        string       `json:"reason,omitempty"`
	CrashPoint    *Point       `json:"crashPoint,omitempty"`
}

// GameConfig is a DTO for game settings sent to a client on connect
type GameConfig struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Mode      string `json:"mode"`
	TimeLimit int    `json:"timeLimit"` // seconds, 0 when untimed
	MinSpeed  int    `json:"minSpeed"`
	MaxSpeed  int    `json:"maxSpeed"`
}

// GetGameStateSnapshot returns a copy of the current round state
func (g *Game) GetGameStateSnapshot() GameState {
	effects := make([]EffectInfo, 0)
	for _, k := range AllPowerUpKinds() {
		if g.effects.IsActive(k) {
			effects = append(effects, EffectInfo{Kind: k, Remaining: g.effects.Remaining(k)})
		}
	}

	state := GameState{
		Width:      g.width,
		Height:     g.height,
		Mode:       g.mode,
		Snake:      g.Snake(),
		Direction:  g.direction.String(),
		Obstacles:  g.Obstacles(),
		PowerUps:   g.PowerUps(),
		Effects:    effects,
		Score:      g.stats.Score,
		Multiplier: g.stats.Multiplier,
		Level:      g.stats.Level,
		Speed:      g.stats.Speed,
		FoodEaten:  g.foodEaten,
		Ticks:      g.ticks,
		GameOver:   g.gameOver,
	}
	if g.policy.HasTimer() {
		state.TimeRemaining = int(g.timeRemaining.Seconds())
	}
	if g.hasFood {
		food := g.food
		state.Food = &food
	}
	if g.gameOver {
		crash := g.crashPoint
		state.CrashPoint = &crash
		state.Reason = g.reason.String()
	}
	return state
}

// GetGameConfig returns the current game configuration
func (g *Game) GetGameConfig() GameConfig {
	return GameConfig{
		Width:     g.width,
		Height:    g.height,
		Mode:      g.mode.String(),
		TimeLimit: int(g.policy.TimeLimit.Seconds()),
		MinSpeed:  g.policy.MinSpeed,
		MaxSpeed:  g.policy.MaxSpeed,
	}
}
