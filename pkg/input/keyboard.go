package input

import (
	"github.com/eiannone/keyboard"

	"github.com/greenworm/snake/pkg/game"
)

// KeyboardHandler handles keyboard input
type KeyboardHandler struct {
	inputChan chan KeyInput
}

// KeyInput represents a keyboard input event
type KeyInput struct {
	Char rune
	Key  keyboard.Key
}

// NewKeyboardHandler creates a new keyboard input handler
func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{
		inputChan: make(chan KeyInput),
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
			h.inputChan <- KeyInput{Char: char, Key: key}
		}
	}()

	return nil
}

// Stop stops the keyboard handler
func (h *KeyboardHandler) Stop() {
	keyboard.Close()
}

// GetInputChan returns the input channel
func (h *KeyboardHandler) GetInputChan() <-chan KeyInput {
	return h.inputChan
}

// ParseDirection parses a key input into a direction
func ParseDirection(input KeyInput) (dir game.Point, isValid bool) {
	// Handle arrow keys
	switch input.Key {
	case keyboard.KeyArrowUp:
		return game.DirUp, true
	case keyboard.KeyArrowDown:
		return game.DirDown, true
	case keyboard.KeyArrowLeft:
		return game.DirLeft, true
	case keyboard.KeyArrowRight:
		return game.DirRight, true
	}

	// Handle WASD keys
	switch input.Char {
	case 'w', 'W':
		return game.DirUp, true
	case 's', 'S':
		return game.DirDown, true
	case 'a', 'A':
		return game.DirLeft, true
	case 'd', 'D':
		return game.DirRight, true
	}

	return game.Point{}, false
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
	return input.Char == 'p' || input.Char == 'P' ||
		input.Char == ' ' || input.Key == keyboard.KeySpace
}

// IsAutoPlay checks if the input toggles the autoplay controller
func IsAutoPlay(input KeyInput) bool {
	return input.Char == 'o' || input.Char == 'O'
}
