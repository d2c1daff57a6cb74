package materializer

import (
	"testing"

	"github.com/dshills/dungo/pkg/carving"
	"github.com/dshills/dungo/pkg/grid"
	"github.com/dshills/dungo/pkg/stairs"
)

func rectRoom(id, x, y, w, h int) grid.Room {
	return grid.Room{ID: id, Shape: grid.ShapeRectangle, Bounds: grid.Rect{X: x, Y: y, Width: w, Height: h}}
}

func cellAt(cells []grid.Cell, x, y int) (grid.Cell, bool) {
	for _, c := range cells {
		if c.X == x && c.Y == y {
			return c, true
		}
	}
	return grid.Cell{}, false
}

func TestMaterialize_RoomCellsAreFullFloorColored(t *testing.T) {
	rooms := []grid.Room{rectRoom(0, 0, 0, 2, 2)}
	cells := Materialize(rooms, nil, nil, "#c2a878")

	if len(cells) != 4 {
		t.Fatalf("expected 4 room cells, got %d", len(cells))
	}
	for _, c := range cells {
		if !c.IsFull() || c.Color != "#c2a878" {
			t.Errorf("expected full floor-colored cell, got %+v", c)
		}
	}
}

func TestMaterialize_CorridorFillsAbsentCells(t *testing.T) {
	corridors := []carving.Corridor{{
		A: 0, B: 1,
		Cells: []grid.Cell{{X: 5, Y: 5}, {X: 6, Y: 5, Segments: []grid.Wedge{grid.WedgeNE}}},
	}}
	cells := Materialize(nil, corridors, nil, "#c2a878")

	if len(cells) != 2 {
		t.Fatalf("expected 2 corridor cells, got %d", len(cells))
	}
	full, ok := cellAt(cells, 5, 5)
	if !ok || !full.IsFull() || full.Color != "#c2a878" {
		t.Errorf("expected full floor-colored corridor cell, got %+v", full)
	}
	wedge, ok := cellAt(cells, 6, 5)
	if !ok || wedge.IsFull() || len(wedge.Segments) != 1 || wedge.Segments[0] != grid.WedgeNE {
		t.Errorf("expected segmented corridor cell to keep its wedge, got %+v", wedge)
	}
}

func TestMaterialize_RoomFullWinsOverCorridorSegments(t *testing.T) {
	rooms := []grid.Room{rectRoom(0, 0, 0, 3, 3)}
	corridors := []carving.Corridor{{
		A: 0, B: 1,
		Cells: []grid.Cell{{X: 1, Y: 1, Segments: []grid.Wedge{grid.WedgeSW}}},
	}}
	cells := Materialize(rooms, corridors, nil, "#c2a878")

	c, ok := cellAt(cells, 1, 1)
	if !ok {
		t.Fatal("expected cell at (1,1)")
	}
	if !c.IsFull() {
		t.Errorf("expected the room's full cell to win over the corridor's segmented cell, got %+v", c)
	}
}

func TestMaterialize_CorridorFullUpgradesExistingSegments(t *testing.T) {
	corridors := []carving.Corridor{
		{A: 0, B: 1, Cells: []grid.Cell{{X: 2, Y: 2, Segments: []grid.Wedge{grid.WedgeNW}}}},
		{A: 0, B: 2, Cells: []grid.Cell{{X: 2, Y: 2}}},
	}
	cells := Materialize(nil, corridors, nil, "#c2a878")

	c, ok := cellAt(cells, 2, 2)
	if !ok {
		t.Fatal("expected cell at (2,2)")
	}
	if !c.IsFull() {
		t.Errorf("expected a later full corridor cell to upgrade an earlier segmented one, got %+v", c)
	}
}

func TestMaterialize_WaterOverwritesFloor(t *testing.T) {
	rooms := []grid.Room{rectRoom(0, 0, 0, 2, 2)}
	water := []stairs.WaterCell{
		{RoomID: 0, Pos: grid.Point{X: 0, Y: 0}, Color: "#1e3a5f", Opacity: 0.6},
		{RoomID: 0, Pos: grid.Point{X: 1, Y: 0}, Color: "#1e3a5f", Opacity: 0.6},
		{RoomID: 0, Pos: grid.Point{X: 0, Y: 1}, Color: "#1e3a5f", Opacity: 0.6},
		{RoomID: 0, Pos: grid.Point{X: 1, Y: 1}, Color: "#1e3a5f", Opacity: 0.6},
	}
	cells := Materialize(rooms, nil, water, "#c2a878")

	for _, c := range cells {
		if c.Color != "#1e3a5f" || c.Opacity != 0.6 || !c.HasOpacity {
			t.Errorf("expected water to overwrite floor color/opacity, got %+v", c)
		}
	}
}

func TestMaterialize_OutputSortedByYThenX(t *testing.T) {
	rooms := []grid.Room{rectRoom(0, 0, 0, 2, 2)}
	cells := Materialize(rooms, nil, nil, "#c2a878")
	for i := 1; i < len(cells); i++ {
		prev, cur := cells[i-1], cells[i]
		if cur.Y < prev.Y || (cur.Y == prev.Y && cur.X < prev.X) {
			t.Errorf("cells not sorted: %+v before %+v", prev, cur)
		}
	}
}
