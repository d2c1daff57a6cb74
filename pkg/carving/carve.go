package carving

import (
	"github.com/dshills/dungo/pkg/graph"
	"github.com/dshills/dungo/pkg/grid"
	"github.com/dshills/dungo/pkg/rng"
)

// Carve routes and materializes a corridor for every connection graph
// edge, in the order the edges are given (spec §4.5 CorridorCarver).
func Carve(rooms []grid.Room, conns []graph.Connection, cfg Config, r *rng.RNG) []Corridor {
	byID := make(map[int]grid.Room, len(rooms))
	for _, rm := range rooms {
		byID[rm.ID] = rm
	}

	corridors := make([]Corridor, 0, len(conns))
	for _, c := range conns {
		corridors = append(corridors, carveOne(byID[c.A], byID[c.B], rooms, cfg, r))
	}
	return corridors
}

func carveOne(roomA, roomB grid.Room, rooms []grid.Room, cfg Config, r *rng.RNG) Corridor {
	width := cfg.Width
	if width < 2 && cfg.WideChance > 0 && r.Chance(cfg.WideChance) {
		width = 2
	}

	attemptDiagonal := cfg.Style == StyleDiagonal || (cfg.DiagonalChance > 0 && r.Chance(cfg.DiagonalChance))
	if attemptDiagonal {
		if diag, ok := tryDiagonal(roomA, roomB, rooms, width); ok {
			return diag
		}
	}

	corners, dirty := routeLOrZ(roomA, roomB, rooms, width, r)

	var centerline, extra []grid.Point
	if cfg.Style == StyleOrganic {
		centerline = wobble(corners, roomA, roomB, rooms, r)
		extra = elbowCells(centerline, roomA, roomB, rooms)
	} else {
		centerline = densify(corners)
	}

	points := dedupPoints(append(routeCells(centerline, width), extra...))
	cells := make([]grid.Cell, len(points))
	for i, p := range points {
		cells[i] = grid.Cell{X: p.X, Y: p.Y}
	}

	return Corridor{
		A:          roomA.ID,
		B:          roomB.ID,
		Centerline: centerline,
		Width:      width,
		Dirty:      dirty,
		Cells:      cells,
	}
}
