package input

import (
	"testing"

	"github.com/eiannone/keyboard"

	"github.com/pervaizahmed26/snake-game/pkg/game"
)

// TestParseDirection covers arrows, WASD and vi keys
func TestParseDirection(t *testing.T) {
	tests := []struct {
		name  string
		input KeyInput
		want  game.Direction
		ok    bool
	}{
		{"arrow up", KeyInput{Key: keyboard.KeyArrowUp}, game.Up, true},
		{"arrow left", KeyInput{Key: keyboard.KeyArrowLeft}, game.Left, true},
		{"w", KeyInput{Char: 'w'}, game.Up, true},
		{"S", KeyInput{Char: 'S'}, game.Down, true},
		{"d", KeyInput{Char: 'd'}, game.Right, true},
		{"j", KeyInput{Char: 'j'}, game.Down, true},
		{"H", KeyInput{Char: 'H'}, game.Left, true},
		{"x", KeyInput{Char: 'x'}, game.Up, false},
		{"enter", KeyInput{Key: keyboard.KeyEnter}, game.Up, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDirection(tt.input)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("ParseDirection = %v,%v, want %v,%v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

// TestParseMode maps the number row
func TestParseMode(t *testing.T) {
	if m, ok := ParseMode(KeyInput{Char: '3'}); !ok || m != game.ModeTimeAttack {
		t.Errorf("Expected time attack for 3, got %v %v", m, ok)
	}
	if _, ok := ParseMode(KeyInput{Char: '4'}); ok {
		t.Error("4 is not a mode key")
	}
}

// TestCommands checks the command keys do not overlap
func TestCommands(t *testing.T) {
	if !IsQuit(KeyInput{Key: keyboard.KeyEsc}) || !IsQuit(KeyInput{Char: 'q'}) {
		t.Error("Esc and q should quit")
	}
	if !IsPause(KeyInput{Key: keyboard.KeySpace}) || IsPause(KeyInput{Char: 'r'}) {
		t.Error("Space pauses, r does not")
	}
	if !IsRestart(KeyInput{Char: 'R'}) || !IsMute(KeyInput{Char: 'm'}) {
		t.Error("R restarts and m mutes")
	}
}
