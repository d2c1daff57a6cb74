package materializer

import (
	"sort"

	"github.com/dshills/dungo/pkg/carving"
	"github.com/dshills/dungo/pkg/grid"
	"github.com/dshills/dungo/pkg/stairs"
)

// Materialize merges room cells, corridor cells, and water cells into the
// final cell collection (spec §4.8). Room cells are inserted first as
// full floor-colored cells; corridor cells fill any still-absent key and
// otherwise yield to an existing full cell or upgrade an existing segment
// cell to full; water cells then overwrite whatever key they land on.
// The result is sorted by (y, x) for stable output.
func Materialize(rooms []grid.Room, corridors []carving.Corridor, water []stairs.WaterCell, floorColor string) []grid.Cell {
	cells := make(map[grid.Point]grid.Cell)

	for _, room := range rooms {
		for _, p := range grid.RoomCells(room) {
			cells[p] = grid.Cell{X: p.X, Y: p.Y, Color: floorColor}
		}
	}

	for _, corridor := range corridors {
		for _, c := range corridor.Cells {
			p := grid.Point{X: c.X, Y: c.Y}
			candidate := grid.Cell{X: c.X, Y: c.Y, Color: floorColor, Segments: c.Segments}
			existing, present := cells[p]
			if !present {
				cells[p] = candidate
				continue
			}
			if !existing.IsFull() && candidate.IsFull() {
				cells[p] = grid.Cell{X: p.X, Y: p.Y, Color: floorColor}
			}
			// existing full + candidate segments: room/earlier-full wins, no change.
			// both full or both segments: first writer wins, no change.
		}
	}

	for _, w := range water {
		cells[w.Pos] = grid.Cell{X: w.Pos.X, Y: w.Pos.Y, Color: w.Color, Opacity: w.Opacity, HasOpacity: true}
	}

	out := make([]grid.Cell, 0, len(cells))
	for _, c := range cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}
