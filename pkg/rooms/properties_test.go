package rooms

import (
	"testing"

	"github.com/dshills/dungo/pkg/grid"
	"github.com/dshills/dungo/pkg/rng"
	"pgregory.net/rapid"
)

// TestGenerate_NeverOverlapsProperty fuzzes grid size, room count, and seed
// and checks the room-separation invariant holds no matter what.
func TestGenerate_NeverOverlapsProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cfg := Config{
			GridWidth:         rapid.IntRange(30, 80).Draw(rt, "gw"),
			GridHeight:        rapid.IntRange(30, 80).Draw(rt, "gh"),
			CountMin:          rapid.IntRange(2, 10).Draw(rt, "countMin"),
			Padding:           rapid.IntRange(0, 3).Draw(rt, "padding"),
			SizeMin:           rapid.IntRange(3, 5).Draw(rt, "sizeMin"),
			CircleChance:      0.2,
			ComplexRoomChance: 0.2,
		}
		cfg.CountMax = cfg.CountMin + rapid.IntRange(0, 5).Draw(rt, "countSpan")
		cfg.SizeMax = cfg.SizeMin + rapid.IntRange(0, 6).Draw(rt, "sizeSpan")

		if err := cfg.Validate(); err != nil {
			rt.Skip("generated config invalid: " + err.Error())
		}

		seed := uint64(rapid.IntRange(0, 1_000_000).Draw(rt, "seed"))
		res := New(cfg).Generate(rng.NewFromSeed(seed))

		for i, a := range res.Rooms {
			for j, b := range res.Rooms {
				if i == j {
					continue
				}
				if grid.RectOverlap(a.Bounds, b.Bounds, cfg.Padding) {
					rt.Fatalf("rooms %d and %d overlap with padding %d: %+v %+v", i, j, cfg.Padding, a.Bounds, b.Bounds)
				}
			}
		}

		if res.PlacedCount > res.RequestedCount {
			rt.Fatalf("placed %d rooms but only %d were requested", res.PlacedCount, res.RequestedCount)
		}
	})
}
