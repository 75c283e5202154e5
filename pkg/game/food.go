package game

import "github.com/pervaizahmed26/snake-game/pkg/config"

// FoodScore returns the points for one food given the current multiplier
func FoodScore(multiplier int, doubled bool) int {
	points := config.FoodPoints * multiplier
	if doubled {
		points *= 2
	}
	return points
}

// GetFoodEmoji returns the emoji for food, marking it while DoubleFood runs
func GetFoodEmoji(doubled bool) string {
	if doubled {
		return "🍒"
	}
	return config.CharFood
}

// spawnFood places food outside the snake and the obstacles. On failure the
// board is left without food and the next tick retries.
func (g *Game) spawnFood() {
	excluded := exclusion(g.snake)
	g.obstacles.Each(func(p Point) {
		excluded.Put(p)
	})

	pos, err := g.placer.PickFreeCell(excluded)
	if err != nil {
		g.hasFood = false
		g.logger.Printf("food spawn skipped: %v", err)
		return
	}
	g.food = pos
	g.hasFood = true
}

// eatFood scores the food at pos and runs the level and power-up triggers
func (g *Game) eatFood(pos Point, events []Event) []Event {
	prev := g.stats.Score
	points := FoodScore(g.stats.Multiplier, g.effects.IsActive(DoubleFood))
	g.stats.Score += points
	g.foodEaten++
	events = append(events, Event{Kind: EventFoodEaten, Pos: pos, Points: points})

	g.spawnFood()

	if t := g.policy.LevelThreshold; t > 0 {
		if crossed := g.stats.Score/t - prev/t; crossed > 0 {
			g.stats.Level += crossed
			g.stats.Speed = clamp(g.stats.Speed+crossed*g.policy.SpeedStep, g.policy.MinSpeed, g.policy.MaxSpeed)
			g.regenerateObstacles()
			events = append(events, Event{
				Kind:  EventLevelUp,
				Pos:   pos,
				Level: g.stats.Level,
				Speed: g.stats.Speed,
			})
		}
	}

	return g.trySpawnPowerUp(events)
}
