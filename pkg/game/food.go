package game

import (
	"errors"
	"math/rand"
)

// ErrNoSpace is returned by placeFood when the snake occupies every cell.
var ErrNoSpace = errors.New("no free cell left for food")

// maxSpawnAttempts bounds the rejection-sampling phase before falling back
// to a full scan of free cells.
const maxSpawnAttempts = 100

// placeFood moves the food to a uniformly random cell not occupied by the
// snake. While the board is mostly empty, rejection sampling almost always
// succeeds within a couple of attempts; on crowded boards it falls back to
// enumerating the free cells so termination stays guaranteed.
func (g *Game) placeFood() error {
	total := g.Width * g.Height
	free := total - len(g.Snake)
	if free <= 0 {
		return ErrNoSpace
	}

	if free > total/4 {
		for attempts := 0; attempts < maxSpawnAttempts; attempts++ {
			pos := Point{X: rand.Intn(g.Width), Y: rand.Intn(g.Height)}
			if !g.onSnake(pos) {
				g.Food = pos
				return nil
			}
		}
	}

	cells := make([]Point, 0, free)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			pos := Point{X: x, Y: y}
			if !g.onSnake(pos) {
				cells = append(cells, pos)
			}
		}
	}
	g.Food = cells[rand.Intn(len(cells))]
	return nil
}

func (g *Game) onSnake(p Point) bool {
	for _, s := range g.Snake {
		if s == p {
			return true
		}
	}
	return false
}
