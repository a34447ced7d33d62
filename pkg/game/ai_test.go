package game

import "testing"

func TestUpdateAIMovesTowardFood(t *testing.T) {
	g := newTestGame(10, 10,
		[]Point{{5, 5}, {4, 5}, {3, 5}},
		DirRight, Point{X: 5, Y: 2})
	g.AutoPlay = true

	g.UpdateAI()
	g.Tick()

	if g.Snake[0] != (Point{X: 5, Y: 4}) {
		t.Errorf("expected the controller to turn up toward the food, head at %v", g.Snake[0])
	}
}

func TestUpdateAIAvoidsWall(t *testing.T) {
	// Head against the right wall, food straight ahead beyond it.
	g := newTestGame(10, 10,
		[]Point{{9, 5}, {8, 5}, {7, 5}},
		DirRight, Point{X: 9, Y: 0})
	g.AutoPlay = true

	g.UpdateAI()
	res := g.Tick()

	if res == TickTerminated {
		t.Fatalf("controller drove the snake into the wall, crash at %v", g.CrashPoint)
	}
	if g.Snake[0].X > 9 {
		t.Errorf("head left the board: %v", g.Snake[0])
	}
}

func TestUpdateAIAvoidsBody(t *testing.T) {
	// A C-shaped body with the food placed so the greedy move would cut
	// through the snake.
	g := newTestGame(10, 10,
		[]Point{{5, 5}, {5, 4}, {4, 4}, {4, 5}, {4, 6}, {5, 6}, {6, 6}},
		DirDown, Point{X: 3, Y: 5})
	g.AutoPlay = true

	g.UpdateAI()
	res := g.Tick()

	if res == TickTerminated {
		t.Fatalf("controller picked a fatal move, crash at %v", g.CrashPoint)
	}
}

func TestUpdateAISurvivesOpenBoard(t *testing.T) {
	g := NewGame(20, 20)
	g.AutoPlay = true

	for step := 0; step < 30; step++ {
		g.UpdateAI()
		if res := g.Tick(); res == TickTerminated {
			t.Fatalf("controller died on step %d of an open 20x20 board", step)
		}
	}
}

func TestUpdateAIRespectsManualMode(t *testing.T) {
	g := newTestGame(10, 10,
		[]Point{{5, 5}, {4, 5}, {3, 5}},
		DirRight, Point{X: 5, Y: 2})

	g.UpdateAI() // AutoPlay off: must not touch pending input
	if g.PendingDir != DirRight {
		t.Errorf("UpdateAI changed direction with AutoPlay off: %v", g.PendingDir)
	}
}
