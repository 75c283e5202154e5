package game

import (
	"io"
	"log"
	"slices"
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/pervaizahmed26/snake-game/pkg/config"
)

// Game holds one round of the simulation. It is not safe for concurrent
// use; the host drives it from a single goroutine.
type Game struct {
	width    int
	height   int
	mode     Mode
	nextMode Mode // applied by Reset
	policy   ModePolicy
	placer   *Placer
	logger   *log.Logger

	snake     []Point // head first
	direction Direction
	nextDir   Direction
	food      Point
	hasFood   bool
	obstacles mapset.Set[Point]
	powerUps  []PowerUp
	effects   *EffectRegistry
	stats     Stats
	foodEaten int

	ticks         int
	elapsed       time.Duration
	timeRemaining time.Duration
	accumulator   time.Duration

	gameOver   bool
	reason     EventKind
	crashPoint Point
}

// NewGame creates a game and starts its first round
func NewGame(cfg Config) *Game {
	if cfg.Width < 5 || cfg.Height < 5 {
		cfg.Width, cfg.Height = config.StandardWidth, config.StandardHeight
	}
	g := &Game{
		width:    cfg.Width,
		height:   cfg.Height,
		nextMode: cfg.Mode,
		placer:   NewPlacer(cfg.Width, cfg.Height, cfg.Seed),
		logger:   log.New(io.Discard, "", 0),
	}
	g.Reset()
	return g
}

// SetLogger routes recovered placement failures to l
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	g.logger = l
}

// SetMode selects the ruleset used from the next Reset on. The running
// round keeps its mode.
func (g *Game) SetMode(m Mode) {
	g.nextMode = m
}

// Reset replaces all round state with a fresh round of the current mode
func (g *Game) Reset() {
	g.mode = g.nextMode
	g.policy = g.mode.Policy()

	g.snake = []Point{{X: g.width / 2, Y: g.height / 2}}
	g.direction = Right
	g.nextDir = Right
	g.powerUps = nil
	g.obstacles = mapset.New[Point]()
	g.effects = NewEffectRegistry(g.policy.Bounds())
	g.stats = Stats{
		Multiplier: 1,
		Level:      1,
		Speed:      g.policy.InitialSpeed,
	}
	g.foodEaten = 0

	g.ticks = 0
	g.elapsed = 0
	g.accumulator = 0
	g.timeRemaining = g.policy.TimeLimit

	g.gameOver = false
	g.reason = EventNone
	g.crashPoint = Point{}

	g.spawnFood()
	g.regenerateObstacles()
}

// SetIntendedDirection latches d for the next tick unless it reverses the
// committed direction. Only the last accepted call before a tick counts.
func (g *Game) SetIntendedDirection(d Direction) bool {
	if d < Up || d > Right {
		return false
	}
	if d == g.direction.Opposite() {
		return false
	}
	g.nextDir = d
	return true
}

// StepInterval is the real time one grid tick takes at the current speed
func (g *Game) StepInterval() time.Duration {
	speed := g.stats.Speed
	if speed <= 0 {
		speed = 1
	}
	return time.Second / time.Duration(speed)
}

// Step performs exactly one grid tick. A running countdown is charged one
// step interval.
func (g *Game) Step() TickOutcome {
	if g.gameOver {
		return g.outcome(nil, 0)
	}

	interval := g.StepInterval()
	g.elapsed += interval
	var events []Event
	if g.countdown(interval, &events) {
		return g.outcome(events, 0)
	}

	events = g.step(events)
	return g.outcome(events, 1)
}

// Advance is called once per frame with the real time elapsed since the
// previous frame. It performs as many grid ticks as the accumulated time
// allows at the current speed, at most config.MaxStepsPerFrame.
func (g *Game) Advance(dt time.Duration) TickOutcome {
	if g.gameOver {
		return g.outcome(nil, 0)
	}
	if dt < 0 {
		dt = 0
	}

	g.elapsed += dt
	var events []Event
	if g.countdown(dt, &events) {
		return g.outcome(events, 0)
	}

	g.accumulator += dt
	steps := 0
	for !g.gameOver {
		interval := g.StepInterval()
		if g.accumulator < interval {
			break
		}
		if steps == config.MaxStepsPerFrame {
			// Drop the backlog instead of fast-forwarding after a stall
			g.accumulator = 0
			break
		}
		g.accumulator -= interval
		events = g.step(events)
		steps++
	}
	return g.outcome(events, steps)
}

// countdown charges d to the Time-Attack clock and ends the round when it
// runs out
func (g *Game) countdown(d time.Duration, events *[]Event) bool {
	if !g.policy.HasTimer() {
		return false
	}
	g.timeRemaining -= d
	if g.timeRemaining > 0 {
		return false
	}
	g.timeRemaining = 0
	*events = g.finish(EventTimeExpired, g.snake[0], *events)
	return true
}

// step is one grid tick: move, resolve collisions, eat, collect, age
func (g *Game) step(events []Event) []Event {
	g.ticks++
	g.direction = g.nextDir

	head := g.snake[0]
	newHead := head.Add(g.direction.Delta())

	if !g.placer.InBounds(newHead) {
		if !g.effects.IsActive(GhostMode) {
			return g.finish(EventWallCollision, newHead, events)
		}
		newHead = g.wrap(newHead)
	}

	invincible := g.effects.IsActive(Invincibility)
	if !invincible && g.isSnakeAt(newHead) {
		return g.finish(EventSelfCollision, newHead, events)
	}
	if !invincible && g.obstacles.Has(newHead) {
		return g.finish(EventObstacleCollision, newHead, events)
	}

	// Move snake
	g.snake = append([]Point{newHead}, g.snake...)

	if g.hasFood && newHead == g.food {
		events = g.eatFood(newHead, events)
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}

	events = g.collectPowerUp(newHead, events)
	events = g.agePowerUps(events)

	for _, kind := range g.effects.Tick(&g.stats) {
		events = append(events, Event{Kind: EventEffectExpired, Pos: newHead, PowerUp: kind})
	}

	if !g.hasFood {
		g.spawnFood()
	}
	return events
}

func (g *Game) finish(kind EventKind, at Point, events []Event) []Event {
	g.gameOver = true
	g.reason = kind
	g.crashPoint = at
	return append(events, Event{Kind: kind, Pos: at})
}

func (g *Game) outcome(events []Event, steps int) TickOutcome {
	o := TickOutcome{Status: StatusContinue, Events: events, Steps: steps}
	if g.gameOver {
		o.Status = StatusGameOver
		o.Reason = g.reason
	}
	return o
}

func (g *Game) wrap(p Point) Point {
	return Point{
		X: (p.X%g.width + g.width) % g.width,
		Y: (p.Y%g.height + g.height) % g.height,
	}
}

func (g *Game) isSnakeAt(p Point) bool {
	for _, s := range g.snake {
		if s == p {
			return true
		}
	}
	return false
}

// trySpawnPowerUp rolls the spawn chance and places a random kind
func (g *Game) trySpawnPowerUp(events []Event) []Event {
	if len(g.powerUps) >= config.MaxPowerUpsOnBoard {
		return events
	}
	rng := g.placer.Rand()
	if rng.Intn(100) >= config.PowerUpSpawnChance {
		return events
	}
	kind := RandomPowerUpKind(rng.Intn)

	excluded := exclusion(g.snake, g.powerUpPositions())
	if g.hasFood {
		excluded.Put(g.food)
	}
	g.obstacles.Each(func(p Point) {
		excluded.Put(p)
	})

	pos, err := g.placer.PickFreeCell(excluded)
	if err != nil {
		g.logger.Printf("power-up spawn skipped: %v", err)
		return events
	}
	g.powerUps = append(g.powerUps, PowerUp{Pos: pos, Kind: kind, Remaining: config.PowerUpLifetime})
	return append(events, Event{Kind: EventPowerUpSpawned, Pos: pos, PowerUp: kind})
}

// collectPowerUp applies the power-up lying at pos, if any
func (g *Game) collectPowerUp(pos Point, events []Event) []Event {
	retained := make([]PowerUp, 0, len(g.powerUps))
	for _, p := range g.powerUps {
		if p.Pos != pos {
			retained = append(retained, p)
			continue
		}
		g.effects.Apply(p.Kind, &g.stats)
		events = append(events, Event{Kind: EventPowerUpCollected, Pos: pos, PowerUp: p.Kind})
	}
	g.powerUps = retained
	return events
}

// agePowerUps counts down uncollected power-ups and drops the expired ones
func (g *Game) agePowerUps(events []Event) []Event {
	retained := make([]PowerUp, 0, len(g.powerUps))
	for _, p := range g.powerUps {
		p.Remaining--
		if p.IsExpired() {
			events = append(events, Event{Kind: EventPowerUpExpired, Pos: p.Pos, PowerUp: p.Kind})
			continue
		}
		retained = append(retained, p)
	}
	g.powerUps = retained
	return events
}

func (g *Game) powerUpPositions() []Point {
	pts := make([]Point, len(g.powerUps))
	for i, p := range g.powerUps {
		pts[i] = p.Pos
	}
	return pts
}

// regenerateObstacles replaces the obstacle set with as many cells as the
// mode formula asks for, grown in small clusters
func (g *Game) regenerateObstacles() {
	g.obstacles = mapset.New[Point]()

	target := g.policy.ObstacleCount(g.stats.Score, g.stats.Level)
	if limit := g.width * g.height / config.ObstacleGridDivisor; target > limit {
		target = limit
	}
	if target == 0 {
		return
	}

	excluded := exclusion(g.snake, g.powerUpPositions(), g.safeZone())
	if g.hasFood {
		excluded.Put(g.food)
	}

	rng := g.placer.Rand()
	dirs := []Point{{X: 0, Y: 1}, {X: 0, Y: -1}, {X: 1, Y: 0}, {X: -1, Y: 0}}
	for g.obstacles.Size() < target {
		start, err := g.placer.PickFreeCell(excluded)
		if err != nil {
			g.logger.Printf("obstacle placement stopped at %d/%d cells: %v", g.obstacles.Size(), target, err)
			return
		}
		points := []Point{start}
		excluded.Put(start)
		g.obstacles.Put(start)

		size := rng.Intn(config.MaxObstacleCluster) + 1
		for i := 1; i < size && g.obstacles.Size() < target; i++ {
			base := points[rng.Intn(len(points))]
			rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })
			for _, d := range dirs {
				next := base.Add(d)
				if g.placer.InBounds(next) && !excluded.Has(next) {
					points = append(points, next)
					excluded.Put(next)
					g.obstacles.Put(next)
					break
				}
			}
		}
	}
}

// safeZone returns the cells directly ahead of the head
func (g *Game) safeZone() []Point {
	zone := make([]Point, 0, config.ObstacleSafeCells)
	p := g.snake[0]
	for i := 0; i < config.ObstacleSafeCells; i++ {
		p = p.Add(g.nextDir.Delta())
		if g.placer.InBounds(p) {
			zone = append(zone, p)
		}
	}
	return zone
}

// Width returns the grid width
func (g *Game) Width() int { return g.width }

// Height returns the grid height
func (g *Game) Height() int { return g.height }

// Mode returns the mode of the current round
func (g *Game) Mode() Mode { return g.mode }

// Stats returns a copy of score, multiplier, level and speed
func (g *Game) Stats() Stats { return g.stats }

// Snake returns a copy of the snake, head first
func (g *Game) Snake() []Point { return slices.Clone(g.snake) }

// Direction returns the committed direction
func (g *Game) Direction() Direction { return g.direction }

// Food returns the food position; ok is false while no food is placed
func (g *Game) Food() (pos Point, ok bool) { return g.food, g.hasFood }

// PowerUps returns a copy of the power-ups on the board
func (g *Game) PowerUps() []PowerUp { return slices.Clone(g.powerUps) }

// Obstacles returns the obstacle cells sorted row by row
func (g *Game) Obstacles() []Point {
	pts := make([]Point, 0, g.obstacles.Size())
	g.obstacles.Each(func(p Point) {
		pts = append(pts, p)
	})
	slices.SortFunc(pts, func(a, b Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return pts
}

// IsActive reports whether an effect of kind is running
func (g *Game) IsActive(kind PowerUpKind) bool { return g.effects.IsActive(kind) }

// EffectRemaining returns the ticks left on an effect
func (g *Game) EffectRemaining(kind PowerUpKind) int { return g.effects.Remaining(kind) }

// IsGameOver reports whether the round has ended
func (g *Game) IsGameOver() bool { return g.gameOver }

// Reason returns the terminal event of a finished round
func (g *Game) Reason() EventKind { return g.reason }

// TimeRemaining returns the Time-Attack countdown, 0 for untimed modes
func (g *Game) TimeRemaining() time.Duration { return g.timeRemaining }

// Elapsed returns the simulated time of the round
func (g *Game) Elapsed() time.Duration { return g.elapsed }

// Ticks returns the number of grid ticks performed
func (g *Game) Ticks() int { return g.ticks }

// FoodEaten returns the number of foods eaten this round
func (g *Game) FoodEaten() int { return g.foodEaten }
