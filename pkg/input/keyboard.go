package input

import (
	"unicode"

	"github.com/eiannone/keyboard"

	"github.com/pervaizahmed26/snake-game/pkg/game"
)

// KeyboardHandler handles keyboard input
type KeyboardHandler struct {
	inputChan chan KeyInput
	done      chan struct{}
}

// KeyInput represents a keyboard input event
type KeyInput struct {
	Char rune
	Key  keyboard.Key
}

// NewKeyboardHandler creates a new keyboard input handler
func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{
		inputChan: make(chan KeyInput, 16),
		done:      make(chan struct{}),
	}
}

// Start begins listening for keyboard input
func (h *KeyboardHandler) Start() error {
	if err := keyboard.Open(); err != nil {
		return err
	}

	go func() {
		for {
			char, key, err := keyboard.GetKey()
			if err != nil {
				return
			}
			select {
			case h.inputChan <- KeyInput{Char: char, Key: key}:
			case <-h.done:
				return
			}
		}
	}()

	return nil
}

// Stop stops the keyboard handler and restores the terminal
func (h *KeyboardHandler) Stop() {
	select {
	case <-h.done:
	default:
		close(h.done)
	}
	keyboard.Close()
}

// GetInputChan returns the input channel
func (h *KeyboardHandler) GetInputChan() <-chan KeyInput {
	return h.inputChan
}

var arrowKeys = map[keyboard.Key]game.Direction{
	keyboard.KeyArrowUp:    game.Up,
	keyboard.KeyArrowDown:  game.Down,
	keyboard.KeyArrowLeft:  game.Left,
	keyboard.KeyArrowRight: game.Right,
}

// WASD plus vi keys
var letterKeys = map[rune]game.Direction{
	'w': game.Up, 'a': game.Left, 's': game.Down, 'd': game.Right,
	'k': game.Up, 'h': game.Left, 'j': game.Down, 'l': game.Right,
}

// ParseDirection maps arrows, WASD and hjkl to a direction
func ParseDirection(input KeyInput) (game.Direction, bool) {
	if input.Char == 0 {
		dir, ok := arrowKeys[input.Key]
		return dir, ok
	}
	dir, ok := letterKeys[unicode.ToLower(input.Char)]
	return dir, ok
}

// ParseMode maps the number keys to modes: 1 classic, 2 survival, 3 time attack
func ParseMode(input KeyInput) (game.Mode, bool) {
	switch input.Char {
	case '1':
		return game.ModeClassic, true
	case '2':
		return game.ModeSurvival, true
	case '3':
		return game.ModeTimeAttack, true
	}
	return game.ModeClassic, false
}

// IsQuit checks if the input is a quit command
func IsQuit(input KeyInput) bool {
	return input.Char == 'q' || input.Char == 'Q' ||
		input.Key == keyboard.KeyEsc || input.Key == keyboard.KeyCtrlC
}

// IsRestart checks if the input is a restart command
func IsRestart(input KeyInput) bool {
	return input.Char == 'r' || input.Char == 'R'
}

// IsPause checks if the input is a pause command
func IsPause(input KeyInput) bool {
	return input.Char == 'p' || input.Char == 'P' || input.Key == keyboard.KeySpace
}

// IsMute checks if the input toggles sound
func IsMute(input KeyInput) bool {
	return input.Char == 'm' || input.Char == 'M'
}
