package renderer

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/pervaizahmed26/snake-game/pkg/config"
	"github.com/pervaizahmed26/snake-game/pkg/game"
)

func sampleState() game.GameState {
	food := game.Point{X: 4, Y: 1}
	return game.GameState{
		Width:      6,
		Height:     5,
		Mode:       game.ModeSurvival,
		Snake:      []game.Point{{X: 2, Y: 2}, {X: 1, Y: 2}},
		Direction:  "right",
		Food:       &food,
		Obstacles:  []game.Point{{X: 5, Y: 4}},
		PowerUps:   []game.PowerUp{{Pos: game.Point{X: 0, Y: 0}, Kind: game.GhostMode, Remaining: 20}},
		Effects:    []game.EffectInfo{{Kind: game.SpeedBoost, Remaining: 120}},
		Score:      10,
		Multiplier: 1,
		Level:      1,
		Speed:      17,
	}
}

// TestFrameDrawsEntities checks every entity lands on the board
func TestFrameDrawsEntities(t *testing.T) {
	r := NewTerminalRenderer(6, 5, io.Discard, nil)
	frame := r.Frame(sampleState(), map[game.Point]string{{X: 3, Y: 3}: config.CharParticle}, HUD{BestScore: 90})

	for _, want := range []string{
		config.CharHead, config.CharBody, config.CharFood, config.CharObstacle, config.CharParticle,
		game.GhostMode.GetEmoji(), "Score: 10", "Speed: 17", "Best: 90", "Speed Boost 120", "Survival",
	} {
		if !strings.Contains(frame, want) {
			t.Errorf("Frame is missing %q", want)
		}
	}
	if n := strings.Count(frame, config.CharWall); n != 2*8+2*5 {
		t.Errorf("Expected %d wall cells, got %d", 2*8+2*5, n)
	}
	if strings.Contains(frame, "GAME OVER") || strings.Contains(frame, "Time Left") {
		t.Error("Running survival round should not show game over or a timer")
	}
}

// TestFrameGameOver shows the crash and the reason
func TestFrameGameOver(t *testing.T) {
	r := NewTerminalRenderer(6, 5, io.Discard, nil)
	state := sampleState()
	crash := game.Point{X: 3, Y: 2}
	state.GameOver = true
	state.Reason = "self_collision"
	state.CrashPoint = &crash

	frame := r.Frame(state, nil, HUD{NewHighScore: true, Paused: true})
	for _, want := range []string{config.CharCrash, "GAME OVER: bit yourself", "New high score!"} {
		if !strings.Contains(frame, want) {
			t.Errorf("Frame is missing %q", want)
		}
	}
	if strings.Contains(frame, "PAUSED") {
		t.Error("A finished round should not show the pause banner")
	}
}

// TestFrameResizes follows a grid size change
func TestFrameResizes(t *testing.T) {
	r := NewTerminalRenderer(3, 3, io.Discard, nil)
	frame := r.Frame(sampleState(), nil, HUD{})
	if !strings.Contains(frame, config.CharObstacle) {
		t.Error("Obstacle at (5,4) should be drawn after resizing to 6x5")
	}
}

// TestFrameLocalized renders with the Chinese catalog
func TestFrameLocalized(t *testing.T) {
	r := NewTerminalRenderer(6, 5, io.Discard, NewLocale("../../locales", "zh_CN"))
	state := sampleState()
	state.Mode = game.ModeTimeAttack
	state.TimeRemaining = 42

	frame := r.Frame(state, nil, HUD{})
	for _, want := range []string{"得分: 10", "限时模式", "剩余时间: 42 秒", "加速 120"} {
		if !strings.Contains(frame, want) {
			t.Errorf("Frame is missing %q", want)
		}
	}

	// Unknown languages fall back to the message ids
	r = NewTerminalRenderer(6, 5, io.Discard, NewLocale("../../locales", "xx_XX"))
	if frame := r.Frame(state, nil, HUD{}); !strings.Contains(frame, "Score: 10") {
		t.Error("Expected English fallback")
	}
}

// TestRenderWritesFrame clears the screen before the frame
func TestRenderWritesFrame(t *testing.T) {
	var out bytes.Buffer
	r := NewTerminalRenderer(6, 5, &out, nil)
	r.Render(sampleState(), nil, HUD{Muted: true})
	if !strings.HasPrefix(out.String(), "\033[H\033[2J") {
		t.Error("Render should start by clearing the screen")
	}
	if !strings.Contains(out.String(), "Sound off") {
		t.Error("Muted HUD should be shown")
	}
}

// BenchmarkFrame measures building a full standard-size frame
func BenchmarkFrame(b *testing.B) {
	g := game.NewGame(game.Config{Width: config.StandardWidth, Height: config.StandardHeight, Mode: game.ModeSurvival, Seed: 1})
	r := NewTerminalRenderer(config.StandardWidth, config.StandardHeight, io.Discard, nil)
	state := g.GetGameStateSnapshot()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Frame(state, nil, HUD{})
	}
}
