package config

import "time"

// Game board dimensions (grid cells, all playable)
const (
	DefaultWidth  = 30
	DefaultHeight = 20
)

// Speed settings
const (
	BaseTick = 16 * time.Millisecond // Base tick interval (~60 FPS)

	// Moves per second grow with the score: every SpeedupEvery points
	// add SpeedupAmount moves/sec, capped at MaxMovesPerSec.
	BaseMovesPerSec = 5
	SpeedupEvery    = 5
	SpeedupAmount   = 2
	MaxMovesPerSec  = 20
)

// Emoji characters for terminal rendering
const (
	CharEmpty = "  " // Two spaces to match emoji width
	CharWall  = "⬜"
	CharHead  = "🟢"
	CharBody  = "🟩"
	CharFood  = "🔴"
	CharCrash = "💥"
)
