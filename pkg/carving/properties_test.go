package carving

import (
	"testing"

	"github.com/dshills/dungo/pkg/graph"
	"github.com/dshills/dungo/pkg/grid"
	"github.com/dshills/dungo/pkg/rng"
	"pgregory.net/rapid"
)

// TestCarve_AlwaysConnectsEndpointsProperty fuzzes room layouts, widths,
// and styles and checks every corridor's centerline still starts and ends
// at its rooms' center cells (spec §3's Corridor invariant), regardless of
// how the L/Z/diagonal/organic routing resolved.
func TestCarve_AlwaysConnectsEndpointsProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(2, 6).Draw(rt, "n")
		rooms := make([]grid.Room, n)
		for i := 0; i < n; i++ {
			rooms[i] = rectRoom(i,
				rapid.IntRange(0, 80).Draw(rt, "x"),
				rapid.IntRange(0, 80).Draw(rt, "y"),
				4, 4)
		}
		conns := make([]graph.Connection, 0, n-1)
		for i := 0; i+1 < n; i++ {
			conns = append(conns, graph.Connection{A: i, B: i + 1})
		}

		styles := []string{StyleStraight, StyleOrganic, StyleDiagonal}
		cfg := Config{
			Width:          rapid.IntRange(1, 2).Draw(rt, "width"),
			Style:          styles[rapid.IntRange(0, 2).Draw(rt, "style")],
			WideChance:     rapid.Float64Range(0, 1).Draw(rt, "wideChance"),
			DiagonalChance: rapid.Float64Range(0, 1).Draw(rt, "diagonalChance"),
		}
		seed := uint64(rapid.IntRange(0, 1_000_000).Draw(rt, "seed"))

		corridors := Carve(rooms, conns, cfg, rng.NewFromSeed(seed))
		byID := make(map[int]grid.Room, n)
		for _, rm := range rooms {
			byID[rm.ID] = rm
		}

		for _, c := range corridors {
			if len(c.Centerline) == 0 {
				rt.Fatal("corridor has an empty centerline")
			}
			a, b := byID[c.A].Center(), byID[c.B].Center()
			if c.Centerline[0] != a {
				rt.Fatalf("centerline start = %v, want room A center %v", c.Centerline[0], a)
			}
			if c.Centerline[len(c.Centerline)-1] != b {
				rt.Fatalf("centerline end = %v, want room B center %v", c.Centerline[len(c.Centerline)-1], b)
			}
			if len(c.Cells) == 0 {
				rt.Fatal("corridor has an empty cell set")
			}
		}
	})
}
