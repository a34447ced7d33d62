package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/greenworm/snake/pkg/config"
	"github.com/greenworm/snake/pkg/game"
)

const cellSize = 20

var (
	bgColor    = color.RGBA{18, 18, 18, 255}
	snakeColor = color.RGBA{80, 220, 120, 255}
	headColor  = color.RGBA{50, 190, 95, 255}
	foodColor  = color.RGBA{220, 80, 80, 255}
)

// App drives one Game through the ebiten loop: input and move timing in
// Update, read-only drawing in Draw.
type App struct {
	game     *game.Game
	lastMove time.Time
}

func NewApp(width, height int) *App {
	return &App{
		game:     game.NewGame(width, height),
		lastMove: time.Now(),
	}
}

func (a *App) Update() error {
	g := a.game

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) && g.GameOver {
		g.Reset()
		a.lastMove = time.Now()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) && !g.GameOver {
		g.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.ToggleAutoPlay()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.SetDirection(game.DirUp)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.SetDirection(game.DirDown)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.SetDirection(game.DirLeft)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.SetDirection(game.DirRight)
	}

	if g.GameOver || g.Paused {
		a.lastMove = time.Now()
		return nil
	}

	if time.Since(a.lastMove) >= g.GetMoveInterval() {
		a.lastMove = time.Now()
		if g.AutoPlay {
			g.UpdateAI()
		}
		g.Tick()
	}

	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	g := a.game
	screen.Fill(bgColor)

	if !g.Won {
		drawCell(screen, g.Food, foodColor)
	}
	for i, p := range g.Snake {
		if i == 0 {
			drawCell(screen, p, headColor)
		} else {
			drawCell(screen, p, snakeColor)
		}
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", g.Score), 8, 6)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Speed: %d", g.GetMovesPerSecond()), 8, 22)

	if g.Paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED", g.Width*cellSize/2-18, g.Height*cellSize/2)
	}

	if g.GameOver {
		msg1 := "Game Over"
		if g.Won {
			msg1 = "You Win!"
		}
		msg2 := "Press R to restart, Esc to quit"
		cx := g.Width * cellSize / 2
		cy := g.Height * cellSize / 2
		ebitenutil.DebugPrintAt(screen, msg1, cx-len(msg1)*6/2, cy-18)
		ebitenutil.DebugPrintAt(screen, msg2, cx-len(msg2)*6/2, cy)
	}
}

func drawCell(screen *ebiten.Image, p game.Point, clr color.Color) {
	ebitenutil.DrawRect(screen,
		float64(p.X*cellSize), float64(p.Y*cellSize),
		cellSize, cellSize, clr)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Width * cellSize, a.game.Height * cellSize
}

func main() {
	width := flag.Int("width", config.DefaultWidth, "board width in cells")
	height := flag.Int("height", config.DefaultHeight, "board height in cells")
	flag.Parse()

	if *width < 5 || *height < 5 {
		log.Fatal("board must be at least 5x5")
	}

	app := NewApp(*width, *height)
	ebiten.SetWindowSize(*width*cellSize, *height*cellSize)
	ebiten.SetWindowTitle("Snake")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
