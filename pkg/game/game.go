package game

import (
	"time"

	"github.com/greenworm/snake/pkg/config"
)

// NewGame creates a game with a length-3 snake centered on the board,
// heading right, and one food on a random free cell.
func NewGame(width, height int) *Game {
	g := &Game{Width: width, Height: height}
	g.Reset()
	return g
}

// Reset reinitializes all fields to the starting configuration. Intended to
// be called after game over, but valid at any time.
func (g *Game) Reset() {
	cx, cy := g.Width/2, g.Height/2
	g.Snake = []Point{
		{X: cx, Y: cy},
		{X: cx - 1, Y: cy},
		{X: cx - 2, Y: cy},
	}
	g.Direction = DirRight
	g.PendingDir = DirRight
	g.Score = 0
	g.GameOver = false
	g.Won = false
	g.CrashPoint = Point{}
	g.AutoPlay = false
	g.StartTime = time.Now()
	g.EndTime = time.Time{}
	g.Paused = false
	g.PauseStart = time.Time{}
	g.PausedTime = 0
	g.placeFood()
}

// SetDirection requests a heading change to be applied on the next tick.
// Only the last accepted request before a tick takes effect. Returns false
// for malformed vectors, reversals of the current heading, or when the game
// is over.
func (g *Game) SetDirection(d Point) bool {
	if g.GameOver {
		return false
	}
	if !isUnitDir(d) {
		return false
	}
	// Reversal would drive the head straight into the neck.
	if d.X != 0 && g.Direction.X == -d.X {
		return false
	}
	if d.Y != 0 && g.Direction.Y == -d.Y {
		return false
	}
	g.PendingDir = d
	return true
}

// Tick advances the game by exactly one step. Ticking a finished game is a
// no-op that keeps reporting TickTerminated until Reset.
func (g *Game) Tick() TickResult {
	if g.GameOver {
		return TickTerminated
	}

	g.Direction = g.PendingDir
	head := g.Snake[0]
	newHead := Point{X: head.X + g.Direction.X, Y: head.Y + g.Direction.Y}

	if newHead.X < 0 || newHead.X >= g.Width || newHead.Y < 0 || newHead.Y >= g.Height {
		g.terminate(newHead)
		return TickTerminated
	}

	grows := newHead == g.Food
	if g.hitsBody(newHead, grows) {
		g.terminate(newHead)
		return TickTerminated
	}

	g.Snake = append([]Point{newHead}, g.Snake...)

	if grows {
		g.Score++
		if err := g.placeFood(); err != nil {
			// The snake fills the board. Terminal, but a win.
			g.GameOver = true
			g.Won = true
			g.EndTime = time.Now()
			return TickTerminated
		}
		return TickGrew
	}

	g.Snake = g.Snake[:len(g.Snake)-1]
	return TickMoved
}

// hitsBody reports whether p collides with the snake. The tail cell is
// exempt when the move does not grow: it vacates on the same tick, so
// moving onto it is legal. A growing move keeps the tail in place.
func (g *Game) hitsBody(p Point, grows bool) bool {
	last := len(g.Snake)
	if !grows {
		last--
	}
	for i := 0; i < last; i++ {
		if g.Snake[i] == p {
			return true
		}
	}
	return false
}

func (g *Game) terminate(crash Point) {
	g.GameOver = true
	g.CrashPoint = crash
	g.EndTime = time.Now()
}

// TogglePause flips the pause state and keeps the paused-time accounting
// straight. No effect after game over.
func (g *Game) TogglePause() {
	if g.GameOver {
		return
	}
	if !g.Paused {
		g.PauseStart = time.Now()
	} else {
		g.PausedTime += time.Since(g.PauseStart)
	}
	g.Paused = !g.Paused
}

// ToggleAutoPlay flips the heuristic-controller mode.
func (g *Game) ToggleAutoPlay() {
	g.AutoPlay = !g.AutoPlay
}

// GetMovesPerSecond returns the current speed: the base rate plus a bump
// for every few foods eaten.
func (g *Game) GetMovesPerSecond() int {
	mps := config.BaseMovesPerSec + (g.Score/config.SpeedupEvery)*config.SpeedupAmount
	if mps > config.MaxMovesPerSec {
		mps = config.MaxMovesPerSec
	}
	return mps
}

// GetMoveInterval returns the wall-clock time between moves at the current
// speed.
func (g *Game) GetMoveInterval() time.Duration {
	return time.Second / time.Duration(g.GetMovesPerSecond())
}

// GetTicksPerMove returns how many base ticks pass between moves at the
// current speed.
func (g *Game) GetTicksPerMove() int {
	ticks := int(g.GetMoveInterval() / config.BaseTick)
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// GetElapsed returns play time excluding pauses.
func (g *Game) GetElapsed() time.Duration {
	end := time.Now()
	if g.GameOver && !g.EndTime.IsZero() {
		end = g.EndTime
	}
	paused := g.PausedTime
	if g.Paused {
		paused += end.Sub(g.PauseStart)
	}
	return end.Sub(g.StartTime) - paused
}

func isUnitDir(d Point) bool {
	return d == DirUp || d == DirDown || d == DirLeft || d == DirRight
}
