package game

import "testing"

func TestPlaceFoodAvoidsBody(t *testing.T) {
	g := newTestGame(6, 6,
		[]Point{{2, 2}, {2, 3}, {3, 3}, {3, 2}},
		DirRight, Point{})

	for i := 0; i < 500; i++ {
		if err := g.placeFood(); err != nil {
			t.Fatalf("placeFood failed on a mostly empty board: %v", err)
		}
		if g.onSnake(g.Food) {
			t.Fatalf("iteration %d: food %v landed on the body", i, g.Food)
		}
	}
}

func TestPlaceFoodSingleFreeCell(t *testing.T) {
	// 2x2 board with three cells occupied forces the full-scan fallback.
	g := newTestGame(2, 2,
		[]Point{{0, 0}, {0, 1}, {1, 1}},
		DirRight, Point{})

	for i := 0; i < 20; i++ {
		if err := g.placeFood(); err != nil {
			t.Fatalf("placeFood failed with one free cell: %v", err)
		}
		if g.Food != (Point{X: 1, Y: 0}) {
			t.Fatalf("expected food on the only free cell (1,0), got %v", g.Food)
		}
	}
}

func TestPlaceFoodFullBoard(t *testing.T) {
	g := newTestGame(2, 2,
		[]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		DirRight, Point{})

	if err := g.placeFood(); err != ErrNoSpace {
		t.Fatalf("expected ErrNoSpace on a full board, got %v", err)
	}
}

func TestPlaceFoodCoversAllFreeCells(t *testing.T) {
	// On a crowded 3x1 strip with two free cells, both must be reachable.
	g := newTestGame(3, 1,
		[]Point{{1, 0}},
		DirRight, Point{})

	seen := make(map[Point]bool)
	for i := 0; i < 200; i++ {
		if err := g.placeFood(); err != nil {
			t.Fatalf("placeFood failed: %v", err)
		}
		seen[g.Food] = true
	}

	for _, want := range []Point{{0, 0}, {2, 0}} {
		if !seen[want] {
			t.Errorf("free cell %v was never chosen in 200 placements", want)
		}
	}
	if len(seen) != 2 {
		t.Errorf("expected exactly 2 reachable cells, saw %d: %v", len(seen), seen)
	}
}
