package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/greenworm/snake/pkg/config"
	"github.com/greenworm/snake/pkg/game"
	"github.com/greenworm/snake/pkg/input"
	"github.com/greenworm/snake/pkg/renderer"
)

func main() {
	width := flag.Int("width", config.DefaultWidth, "board width in cells")
	height := flag.Int("height", config.DefaultHeight, "board height in cells")
	flag.Parse()

	if *width < 5 || *height < 5 {
		fmt.Fprintln(os.Stderr, "board must be at least 5x5")
		os.Exit(1)
	}

	// Initialize input handler
	inputHandler := input.NewKeyboardHandler()
	if err := inputHandler.Start(); err != nil {
		fmt.Println("Error opening keyboard:", err)
		return
	}
	defer inputHandler.Stop()

	// Initialize renderer
	render := renderer.NewTerminalRenderer(*width, *height)
	render.HideCursor()
	defer render.ShowCursor()

	// Create new game
	g := game.NewGame(*width, *height)

	inputChan := inputHandler.GetInputChan()

	// Game loop ticker. Moves happen every g.GetTicksPerMove() base ticks,
	// so the snake speeds up as the score grows.
	ticker := time.NewTicker(config.BaseTick)
	defer ticker.Stop()

	tickCount := 0

	// Initial render
	render.Render(g)

	for {
		select {
		case inputEvent := <-inputChan:
			if input.IsQuit(inputEvent) {
				fmt.Println("\n  Thanks for playing! 👋")
				return
			}

			if input.IsRestart(inputEvent) && g.GameOver {
				g.Reset()
				tickCount = 0
				render.Render(g)
			}

			if input.IsPause(inputEvent) && !g.GameOver {
				g.TogglePause()
				render.Render(g)
			}

			if input.IsAutoPlay(inputEvent) {
				g.ToggleAutoPlay()
			}

			if dir, ok := input.ParseDirection(inputEvent); ok {
				// Last valid key before the next move wins.
				g.SetDirection(dir)
			}

		case <-ticker.C:
			tickCount++
			if tickCount < g.GetTicksPerMove() {
				continue
			}
			tickCount = 0

			if !g.GameOver && !g.Paused {
				if g.AutoPlay {
					g.UpdateAI()
				}
				g.Tick()
			}
			render.Render(g)
		}
	}
}
