package carving

import (
	"reflect"
	"testing"

	"github.com/dshills/dungo/pkg/graph"
	"github.com/dshills/dungo/pkg/grid"
	"github.com/dshills/dungo/pkg/rng"
)

func rectRoom(id, x, y, w, h int) grid.Room {
	return grid.Room{ID: id, Shape: grid.ShapeRectangle, Bounds: grid.Rect{X: x, Y: y, Width: w, Height: h}}
}

func TestCarve_ConnectsRoomCenters(t *testing.T) {
	rooms := []grid.Room{
		rectRoom(0, 0, 0, 4, 4),
		rectRoom(1, 20, 0, 4, 4),
	}
	conns := []graph.Connection{{A: 0, B: 1}}
	cfg := Config{Width: 1, Style: StyleStraight}

	corridors := Carve(rooms, conns, cfg, rng.NewFromSeed(1))
	if len(corridors) != 1 {
		t.Fatalf("expected 1 corridor, got %d", len(corridors))
	}

	c := corridors[0]
	a, b := rooms[0].Center(), rooms[1].Center()
	if c.Centerline[0] != a {
		t.Errorf("centerline should start at room A's center, got %v want %v", c.Centerline[0], a)
	}
	if c.Centerline[len(c.Centerline)-1] != b {
		t.Errorf("centerline should end at room B's center, got %v want %v", c.Centerline[len(c.Centerline)-1], b)
	}
	if len(c.Cells) == 0 {
		t.Error("expected non-empty cell set")
	}
}

func TestCarve_Determinism(t *testing.T) {
	rooms := []grid.Room{
		rectRoom(0, 0, 0, 4, 4),
		rectRoom(1, 30, 0, 4, 4),
		rectRoom(2, 30, 30, 4, 4),
		rectRoom(3, 0, 30, 4, 4),
	}
	conns := []graph.Connection{{A: 0, B: 1}, {A: 1, B: 2}, {A: 2, B: 3}}
	cfg := Config{Width: 1, Style: StyleOrganic, WideChance: 0.2}

	c1 := Carve(rooms, conns, cfg, rng.NewFromSeed(7))
	c2 := Carve(rooms, conns, cfg, rng.NewFromSeed(7))

	if len(c1) != len(c2) {
		t.Fatalf("non-deterministic corridor count: %d vs %d", len(c1), len(c2))
	}
	for i := range c1 {
		if len(c1[i].Cells) != len(c2[i].Cells) {
			t.Fatalf("corridor %d cell count differs between runs: %d vs %d", i, len(c1[i].Cells), len(c2[i].Cells))
		}
		for j := range c1[i].Cells {
			if !reflect.DeepEqual(c1[i].Cells[j], c2[i].Cells[j]) {
				t.Errorf("corridor %d cell %d differs between runs: %+v vs %+v", i, j, c1[i].Cells[j], c2[i].Cells[j])
			}
		}
	}
}

func TestRouteLOrZ_PicksCleanOrientationWhenOnlyOneClean(t *testing.T) {
	// roomC sits just below the horizontal-first L's elbow row along most
	// of its length, so every one of those cells is outside roomC's
	// bounding box but 4-adjacent to it: the horizontal-first route must
	// be rejected (alongsideCount > 1) in favor of vertical-first.
	roomA := rectRoom(0, 0, 0, 4, 4)
	roomB := rectRoom(1, 20, 20, 4, 4)
	roomC := rectRoom(2, 10, 3, 4, 3)
	rooms := []grid.Room{roomA, roomB, roomC}

	corners, dirty := routeLOrZ(roomA, roomB, rooms, 1, rng.NewFromSeed(1))
	if dirty {
		t.Fatal("expected a clean route to exist")
	}
	hFirstElbow := grid.Point{X: roomB.Center().X, Y: roomA.Center().Y}
	for _, c := range corners {
		if c == hFirstElbow {
			t.Error("expected vertical-first route, got horizontal-first elbow")
		}
	}
}

func TestCarve_EmptyConnectionsProducesNoCorridors(t *testing.T) {
	rooms := []grid.Room{rectRoom(0, 0, 0, 4, 4)}
	corridors := Carve(rooms, nil, Config{Width: 1}, rng.NewFromSeed(1))
	if len(corridors) != 0 {
		t.Errorf("expected no corridors, got %d", len(corridors))
	}
}

func TestExpandSegment_WidthOne(t *testing.T) {
	cells := expandSegment(grid.Point{X: 0, Y: 5}, grid.Point{X: 3, Y: 5}, 1)
	for _, c := range cells {
		if c.Y != 5 {
			t.Errorf("width-1 horizontal segment should not expand off row 5, got y=%d", c.Y)
		}
	}
	if len(cells) != 4 {
		t.Errorf("expected 4 cells, got %d", len(cells))
	}
}

func TestExpandSegment_WidthTwo(t *testing.T) {
	cells := expandSegment(grid.Point{X: 0, Y: 5}, grid.Point{X: 3, Y: 5}, 2)
	ys := map[int]bool{}
	for _, c := range cells {
		ys[c.Y] = true
	}
	if len(ys) != 2 || !ys[5] || !ys[6] {
		t.Errorf("width-2 horizontal segment should cover rows {5,6}, got %v", ys)
	}
}

func TestTryDiagonal_RejectsTooCloseRooms(t *testing.T) {
	roomA := rectRoom(0, 0, 0, 4, 4)
	roomB := rectRoom(1, 5, 0, 4, 4)
	_, ok := tryDiagonal(roomA, roomB, []grid.Room{roomA, roomB}, 1)
	if ok {
		t.Error("expected diagonal routing to be ineligible for rooms offset on only one axis")
	}
}

func TestTryDiagonal_ProducesWedgeSegments(t *testing.T) {
	roomA := rectRoom(0, 0, 0, 4, 4)
	roomB := rectRoom(1, 20, 20, 4, 4)
	corridor, ok := tryDiagonal(roomA, roomB, []grid.Room{roomA, roomB}, 1)
	if !ok {
		t.Fatal("expected diagonal routing to be eligible")
	}
	if !corridor.HasDiagonals {
		t.Error("expected HasDiagonals to be true")
	}

	hasSegments := false
	for _, c := range corridor.Cells {
		if len(c.Segments) > 0 {
			hasSegments = true
			break
		}
	}
	if !hasSegments {
		t.Error("expected at least one wedge-segmented cell in a diagonal route")
	}
}
