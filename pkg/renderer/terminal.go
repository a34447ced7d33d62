package renderer

import (
	"fmt"
	"strings"

	"github.com/greenworm/snake/pkg/config"
	"github.com/greenworm/snake/pkg/game"
)

// TerminalRenderer handles terminal-based rendering. The drawn board is the
// logical grid plus a one-cell wall frame on every side.
type TerminalRenderer struct {
	board  [][]int
	buffer strings.Builder
}

// Cell types for the board
const (
	cellEmpty = iota
	cellWall
	cellHead
	cellBody
	cellFood
	cellCrash
)

// NewTerminalRenderer creates a renderer for a width x height grid.
func NewTerminalRenderer(width, height int) *TerminalRenderer {
	// Pre-allocate board to reduce GC pressure
	board := make([][]int, height+2)
	for i := range board {
		board[i] = make([]int, width+2)
	}

	return &TerminalRenderer{
		board: board,
	}
}

// clearScreen clears the terminal using ANSI escape codes
func (r *TerminalRenderer) clearScreen() {
	fmt.Print("\033[H\033[2J\033[3J")
}

// ShowCursor shows the cursor (call on exit)
func (r *TerminalRenderer) ShowCursor() {
	fmt.Print("\033[?25h")
}

// HideCursor hides the cursor (call on start)
func (r *TerminalRenderer) HideCursor() {
	fmt.Print("\033[?25l")
}

// Render clears the screen and draws the current game state.
func (r *TerminalRenderer) Render(g *game.Game) {
	r.clearScreen()
	fmt.Print(r.RenderString(g))
}

// RenderString builds the full frame as a single string.
func (r *TerminalRenderer) RenderString(g *game.Game) string {
	r.buffer.Reset()

	rows := g.Height + 2
	cols := g.Width + 2

	// Reset board
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			r.board[y][x] = cellEmpty
		}
	}

	// Draw walls around the grid
	for x := 0; x < cols; x++ {
		r.board[0][x] = cellWall
		r.board[rows-1][x] = cellWall
	}
	for y := 0; y < rows; y++ {
		r.board[y][0] = cellWall
		r.board[y][cols-1] = cellWall
	}

	// Food, then snake on top of it (the head lands on the food cell on a
	// growing tick)
	if !g.Won {
		r.board[g.Food.Y+1][g.Food.X+1] = cellFood
	}
	for i, p := range g.Snake {
		if i == 0 {
			r.board[p.Y+1][p.X+1] = cellHead
		} else {
			r.board[p.Y+1][p.X+1] = cellBody
		}
	}

	// Draw crash point if the snake died inside the grid or in the wall
	// frame
	if g.GameOver && !g.Won {
		cy, cx := g.CrashPoint.Y+1, g.CrashPoint.X+1
		if cy >= 0 && cy < rows && cx >= 0 && cx < cols {
			r.board[cy][cx] = cellCrash
		}
	}

	r.buffer.WriteString("\n  🐍 SNAKE 🐍\n")
	r.buffer.WriteString(fmt.Sprintf("  Score: %d  |  Speed: %d moves/s  |  Time: %ds\n",
		g.Score, g.GetMovesPerSecond(), int(g.GetElapsed().Seconds())))
	r.buffer.WriteString("\n")

	for y := 0; y < rows; y++ {
		r.buffer.WriteString("  ")
		for x := 0; x < cols; x++ {
			switch r.board[y][x] {
			case cellEmpty:
				r.buffer.WriteString(config.CharEmpty)
			case cellWall:
				r.buffer.WriteString(config.CharWall)
			case cellHead:
				r.buffer.WriteString(config.CharHead)
			case cellBody:
				r.buffer.WriteString(config.CharBody)
			case cellFood:
				r.buffer.WriteString(config.CharFood)
			case cellCrash:
				r.buffer.WriteString(config.CharCrash)
			}
		}
		r.buffer.WriteString("\n")
	}

	r.buffer.WriteString("\n  Use WASD or Arrow keys to move\n")
	r.buffer.WriteString("  P to pause, O for autoplay, Q to quit\n")

	if g.Paused {
		r.buffer.WriteString("\n  ⏸️  PAUSED - Press P to continue\n")
	}

	if g.GameOver {
		if g.Won {
			r.buffer.WriteString(fmt.Sprintf("\n  🏆 YOU WIN! Board full, final score %d. Press R to restart or Q to quit\n", g.Score))
		} else {
			r.buffer.WriteString(fmt.Sprintf("\n  💀 GAME OVER! Final score %d. Press R to restart or Q to quit\n", g.Score))
		}
	}

	return r.buffer.String()
}
