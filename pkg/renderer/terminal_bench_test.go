package renderer

import (
	"fmt"
	"os"
	"testing"

	"github.com/greenworm/snake/pkg/config"
	"github.com/greenworm/snake/pkg/game"
)

// BenchmarkANSIClear benchmarks the ANSI escape code screen clear.
func BenchmarkANSIClear(b *testing.B) {
	// Redirect stdout to discard
	old := os.Stdout
	os.Stdout, _ = os.Open(os.DevNull)
	defer func() { os.Stdout = old }()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fmt.Print("\033[H\033[2J")
	}
}

// BenchmarkStringBuilderRender benchmarks building a full frame into a
// single buffer.
func BenchmarkStringBuilderRender(b *testing.B) {
	g := game.NewGame(config.DefaultWidth, config.DefaultHeight)
	r := NewTerminalRenderer(config.DefaultWidth, config.DefaultHeight)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.RenderString(g)
	}
}
