package game

// UpdateAI decides the next heading when AutoPlay is on. It feeds the
// result through SetDirection, so it obeys the same reversal rules a human
// player does. Call it once per move, before Tick.
func (g *Game) UpdateAI() {
	if !g.AutoPlay || g.GameOver || len(g.Snake) == 0 {
		return
	}

	head := g.Snake[0]
	candidates := []Point{DirUp, DirDown, DirLeft, DirRight}

	bestDir := g.Direction
	bestScore := -1 << 30
	for _, d := range candidates {
		// SetDirection would reject reversals anyway; skip them so a
		// blocked forward path can't leave us scoring the neck cell.
		if d.X == -g.Direction.X && d.Y == -g.Direction.Y {
			continue
		}
		next := Point{X: head.X + d.X, Y: head.Y + d.Y}
		if !g.isSafe(next) {
			continue
		}

		score := -(abs(g.Food.X-next.X) + abs(g.Food.Y-next.Y))
		if d == g.Direction {
			// Tie-break toward going straight to avoid dithering.
			score++
		}
		if score > bestScore {
			bestScore = score
			bestDir = d
		}
	}

	g.SetDirection(bestDir)
}

// isSafe reports whether the snake can move into p on the next tick without
// dying. The tail cell is treated as occupied: whether it vacates depends
// on food placement, and the controller plays it conservatively.
func (g *Game) isSafe(p Point) bool {
	if p.X < 0 || p.X >= g.Width || p.Y < 0 || p.Y >= g.Height {
		return false
	}
	return !g.onSnake(p)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
