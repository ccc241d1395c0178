package region_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/pipeloop/looptrace"
	"github.com/katalvlaran/pipeloop/pipegrid"
	"github.com/katalvlaran/pipeloop/region"
)

// BenchmarkClassify measures the parity scan of a 500×500 border loop
// (≈248k interior tiles, each scanned to the left edge).
// Complexity: O(W²×H)
func BenchmarkClassify(b *testing.B) {
	const n = 500
	rows := make([]string, n)
	rows[0] = "S" + strings.Repeat("-", n-2) + "7"
	for y := 1; y < n-1; y++ {
		rows[y] = "|" + strings.Repeat(".", n-2) + "|"
	}
	rows[n-1] = "L" + strings.Repeat("-", n-2) + "J"
	g, err := pipegrid.NewGrid(rows)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}
	loop, err := looptrace.Trace(g)
	if err != nil {
		b.Fatalf("setup Trace failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := region.Classify(g, loop.Tiles); err != nil {
			b.Fatalf("Classify failed: %v", err)
		}
	}
}
