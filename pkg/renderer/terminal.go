package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/leonelquinteros/gotext"

	"github.com/pervaizahmed26/snake-game/pkg/config"
	"github.com/pervaizahmed26/snake-game/pkg/game"
)

// HUD carries host-side state shown around the board
type HUD struct {
	Paused       bool
	Muted        bool
	BestScore    int
	NewHighScore bool
}

// TerminalRenderer handles terminal-based rendering
type TerminalRenderer struct {
	board  [][]int
	width  int
	height int
	out    io.Writer
	locale *gotext.Locale
	buffer strings.Builder
}

// Cell types for the board
const (
	cellEmpty = iota
	cellWall
	cellHead
	cellBody
	cellCrash
	cellFood
	cellObstacle
)

// NewLocale loads the "default" catalog for lang from dir. Missing
// catalogs fall back to the English message ids.
func NewLocale(dir, lang string) *gotext.Locale {
	l := gotext.NewLocale(dir, lang)
	l.AddDomain("default")
	return l
}

// NewTerminalRenderer creates a renderer for a width x height grid. The
// board gets a one-cell wall border around the grid.
func NewTerminalRenderer(width, height int, out io.Writer, locale *gotext.Locale) *TerminalRenderer {
	// Pre-allocate board to reduce GC pressure
	board := make([][]int, height+2)
	for i := range board {
		board[i] = make([]int, width+2)
	}

	return &TerminalRenderer{
		board:  board,
		width:  width,
		height: height,
		out:    out,
		locale: locale,
	}
}

func (r *TerminalRenderer) tr(msg string, vars ...interface{}) string {
	if r.locale == nil {
		if len(vars) == 0 {
			return msg
		}
		return fmt.Sprintf(msg, vars...)
	}
	return r.locale.Get(msg, vars...)
}

// clearScreen moves the cursor home and clears the terminal
func (r *TerminalRenderer) clearScreen() {
	fmt.Fprint(r.out, "\033[H\033[2J\033[3J")
}

// ShowCursor shows the cursor (call on exit)
func (r *TerminalRenderer) ShowCursor() {
	fmt.Fprint(r.out, "\033[?25h")
}

// HideCursor hides the cursor (call on start)
func (r *TerminalRenderer) HideCursor() {
	fmt.Fprint(r.out, "\033[?25l")
}

// Render clears the terminal and draws one frame
func (r *TerminalRenderer) Render(state game.GameState, particles map[game.Point]string, hud HUD) {
	frame := r.Frame(state, particles, hud)
	r.clearScreen()
	fmt.Fprint(r.out, frame)
}

// Frame builds the text of one frame. Grid coordinates are shifted by one
// to make room for the border.
func (r *TerminalRenderer) Frame(state game.GameState, particles map[game.Point]string, hud HUD) string {
	r.buffer.Reset()
	r.resize(state.Width, state.Height)

	// Reset board
	for y := range r.board {
		for x := range r.board[y] {
			r.board[y][x] = cellEmpty
		}
	}

	// Draw walls
	for x := 0; x < r.width+2; x++ {
		r.board[0][x] = cellWall
		r.board[r.height+1][x] = cellWall
	}
	for y := 0; y < r.height+2; y++ {
		r.board[y][0] = cellWall
		r.board[y][r.width+1] = cellWall
	}

	for _, p := range state.Obstacles {
		r.set(p, cellObstacle)
	}
	if state.Food != nil {
		r.set(*state.Food, cellFood)
	}
	for i, p := range state.Snake {
		if i == 0 {
			r.set(p, cellHead)
		} else {
			r.set(p, cellBody)
		}
	}
	if state.CrashPoint != nil {
		r.set(*state.CrashPoint, cellCrash)
	}

	powerUps := make(map[game.Point]string, len(state.PowerUps))
	for _, pu := range state.PowerUps {
		powerUps[pu.Pos] = pu.GetEmoji()
	}
	doubled := false
	for _, e := range state.Effects {
		if e.Kind == game.DoubleFood {
			doubled = true
		}
	}

	r.buffer.WriteString("\n  🐍 " + r.tr("SNAKE GAME") + " 🐍  " + r.tr(state.Mode.Title()) + "\n")
	r.buffer.WriteString("  " + r.tr("Score: %d", state.Score))
	r.buffer.WriteString("  |  " + r.tr("Level: %d", state.Level))
	r.buffer.WriteString("  |  " + r.tr("Speed: %d", state.Speed))
	if state.Multiplier > 1 {
		r.buffer.WriteString(fmt.Sprintf("  |  x%d", state.Multiplier))
	}
	if state.Mode == game.ModeTimeAttack {
		r.buffer.WriteString("  |  " + r.tr("Time Left: %ds", state.TimeRemaining))
	}
	r.buffer.WriteString("  |  " + r.tr("Best: %d", hud.BestScore))
	r.buffer.WriteString("\n")

	if len(state.Effects) > 0 {
		r.buffer.WriteString(" ")
		for _, e := range state.Effects {
			r.buffer.WriteString(fmt.Sprintf(" %s %s %d", e.Kind.GetEmoji(), r.tr(effectTitle(e.Kind)), e.Remaining))
		}
	}
	r.buffer.WriteString("\n\n")

	// Render board
	for y, row := range r.board {
		r.buffer.WriteString("  ")
		for x, cell := range row {
			pos := game.Point{X: x - 1, Y: y - 1}
			if cell == cellEmpty {
				if emoji, ok := powerUps[pos]; ok {
					r.buffer.WriteString(emoji)
					continue
				}
				if glyph, ok := particles[pos]; ok {
					r.buffer.WriteString(glyph)
					continue
				}
			}
			switch cell {
			case cellEmpty:
				r.buffer.WriteString(config.CharEmpty)
			case cellWall:
				r.buffer.WriteString(config.CharWall)
			case cellHead:
				r.buffer.WriteString(config.CharHead)
			case cellBody:
				r.buffer.WriteString(config.CharBody)
			case cellCrash:
				r.buffer.WriteString(config.CharCrash)
			case cellFood:
				r.buffer.WriteString(game.GetFoodEmoji(doubled))
			case cellObstacle:
				r.buffer.WriteString(config.CharObstacle)
			}
		}
		r.buffer.WriteString("\n")
	}

	r.buffer.WriteString("\n  " + r.tr("Use WASD or Arrow keys to move, 1/2/3 to pick a mode") + "\n")
	r.buffer.WriteString("  " + r.tr("P to pause, M to mute, Q to quit") + "\n")

	if hud.Muted {
		r.buffer.WriteString("  🔇 " + r.tr("Sound off") + "\n")
	}
	if hud.Paused && !state.GameOver {
		r.buffer.WriteString("\n  ⏸️  " + r.tr("PAUSED - Press P to continue") + "\n")
	}
	if state.GameOver {
		r.buffer.WriteString("\n  💀 " + r.tr("GAME OVER: %s", r.tr(reasonText(state.Reason))) + "\n")
		if hud.NewHighScore {
			r.buffer.WriteString("  🏆 " + r.tr("New high score!") + "\n")
		}
		r.buffer.WriteString("  " + r.tr("Press R to restart or Q to quit") + "\n")
	}

	return r.buffer.String()
}

// resize reallocates the board when the grid size changed
func (r *TerminalRenderer) resize(width, height int) {
	if width == r.width && height == r.height {
		return
	}
	r.board = make([][]int, height+2)
	for i := range r.board {
		r.board[i] = make([]int, width+2)
	}
	r.width, r.height = width, height
}

// set marks a grid cell, ignoring points off the grid
func (r *TerminalRenderer) set(p game.Point, cell int) {
	if p.X < 0 || p.X >= r.width || p.Y < 0 || p.Y >= r.height {
		return
	}
	r.board[p.Y+1][p.X+1] = cell
}

func effectTitle(kind game.PowerUpKind) string {
	switch kind {
	case game.SpeedBoost:
		return "Speed Boost"
	case game.ScoreMultiplier:
		return "Score Multiplier"
	case game.Invincibility:
		return "Invincibility"
	case game.GhostMode:
		return "Ghost Mode"
	case game.DoubleFood:
		return "Double Food"
	case game.SlowTime:
		return "Slow Time"
	}
	return kind.String()
}

func reasonText(reason string) string {
	switch reason {
	case "wall_collision":
		return "hit the wall"
	case "self_collision":
		return "bit yourself"
	case "obstacle_collision":
		return "hit an obstacle"
	case "time_expired":
		return "time is up"
	}
	return reason
}
