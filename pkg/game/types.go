package game

import "time"

// Point represents a coordinate on the game board. It doubles as a
// direction unit vector.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Direction unit vectors. Y grows downward, matching screen rows.
var (
	DirUp    = Point{X: 0, Y: -1}
	DirDown  = Point{X: 0, Y: 1}
	DirLeft  = Point{X: -1, Y: 0}
	DirRight = Point{X: 1, Y: 0}
)

// TickResult is the outcome of one simulation step.
type TickResult int

const (
	TickMoved      TickResult = iota // net movement, length unchanged
	TickGrew                         // food eaten, length +1
	TickTerminated                   // wall, self-collision or board full
)

func (r TickResult) String() string {
	switch r {
	case TickMoved:
		return "MOVED"
	case TickGrew:
		return "GREW"
	case TickTerminated:
		return "TERMINATED"
	default:
		return "UNKNOWN"
	}
}

// Game represents the full game state. One instance is owned by the host
// loop; all mutation happens through Tick, SetDirection, TogglePause and
// Reset.
type Game struct {
	Width  int
	Height int

	Snake      []Point // head first, tail last
	Direction  Point   // heading applied on the last tick
	PendingDir Point   // latest accepted input, promoted at the next tick
	Food       Point
	Score      int
	GameOver   bool
	Won        bool  // board filled, nowhere left to place food
	CrashPoint Point // where the head ended up on a fatal tick

	AutoPlay bool // heuristic controller feeds SetDirection

	StartTime  time.Time
	EndTime    time.Time
	Paused     bool
	PauseStart time.Time
	PausedTime time.Duration // accumulated across pause intervals
}
