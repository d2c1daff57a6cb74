package graph

import (
	"testing"

	"github.com/dshills/dungo/pkg/grid"
	"github.com/dshills/dungo/pkg/rng"
	"pgregory.net/rapid"
)

func rectRoom(id, x, y, w, h int) grid.Room {
	return grid.Room{ID: id, Shape: grid.ShapeRectangle, Bounds: grid.Rect{X: x, Y: y, Width: w, Height: h}}
}

func TestBuild_ProducesSpanningTreeWithZeroLoopChance(t *testing.T) {
	rooms := []grid.Room{
		rectRoom(0, 0, 0, 4, 4),
		rectRoom(1, 10, 0, 4, 4),
		rectRoom(2, 20, 0, 4, 4),
		rectRoom(3, 10, 10, 4, 4),
	}

	conns := Build(rooms, 0, rng.NewFromSeed(1))
	if len(conns) != len(rooms)-1 {
		t.Fatalf("Build with loopChance=0 should produce exactly n-1 edges, got %d", len(conns))
	}

	g, err := NewGraph([]int{0, 1, 2, 3}, conns)
	if err != nil {
		t.Fatal(err)
	}
	if !g.IsConnected() {
		t.Error("MST-only connections should form a connected graph")
	}
}

func TestBuild_LoopChanceOneAddsAllRemainingEdges(t *testing.T) {
	rooms := []grid.Room{
		rectRoom(0, 0, 0, 4, 4),
		rectRoom(1, 10, 0, 4, 4),
		rectRoom(2, 20, 0, 4, 4),
		rectRoom(3, 10, 10, 4, 4),
	}

	conns := Build(rooms, 1, rng.NewFromSeed(1))
	n := len(rooms)
	wantEdges := n * (n - 1) / 2
	if len(conns) != wantEdges {
		t.Fatalf("Build with loopChance=1 should produce a complete graph (%d edges), got %d", wantEdges, len(conns))
	}
}

func TestBuild_Determinism(t *testing.T) {
	rooms := []grid.Room{
		rectRoom(0, 0, 0, 4, 4),
		rectRoom(1, 10, 0, 4, 4),
		rectRoom(2, 20, 5, 4, 4),
		rectRoom(3, 10, 15, 4, 4),
		rectRoom(4, 30, 10, 4, 4),
	}

	c1 := Build(rooms, 0.4, rng.NewFromSeed(99))
	c2 := Build(rooms, 0.4, rng.NewFromSeed(99))

	if len(c1) != len(c2) {
		t.Fatalf("non-deterministic edge count: %d vs %d", len(c1), len(c2))
	}
	for i := range c1 {
		if c1[i] != c2[i] {
			t.Errorf("edge %d differs between runs: %v vs %v", i, c1[i], c2[i])
		}
	}
}

func TestBuild_SingleRoomProducesNoConnections(t *testing.T) {
	rooms := []grid.Room{rectRoom(0, 0, 0, 4, 4)}
	if conns := Build(rooms, 1, rng.NewFromSeed(1)); conns != nil {
		t.Errorf("expected no connections for a single room, got %v", conns)
	}
}

// TestBuild_AlwaysConnectedProperty fuzzes room layouts and loop chances
// and checks the resulting graph is always connected (spec §3's
// Connection invariant: "the set of connections is connected, plus zero
// or more extra edges").
func TestBuild_AlwaysConnectedProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(2, 12).Draw(rt, "n")
		rooms := make([]grid.Room, n)
		for i := 0; i < n; i++ {
			rooms[i] = rectRoom(i,
				rapid.IntRange(0, 100).Draw(rt, "x"),
				rapid.IntRange(0, 100).Draw(rt, "y"),
				4, 4)
		}
		loopChance := rapid.Float64Range(0, 1).Draw(rt, "loopChance")
		seed := uint64(rapid.IntRange(0, 1_000_000).Draw(rt, "seed"))

		conns := Build(rooms, loopChance, rng.NewFromSeed(seed))

		ids := make([]int, n)
		for i := range ids {
			ids[i] = i
		}
		g, err := NewGraph(ids, conns)
		if err != nil {
			rt.Fatal(err)
		}
		if !g.IsConnected() {
			rt.Fatalf("graph with %d rooms and loopChance=%f was not connected", n, loopChance)
		}
	})
}
