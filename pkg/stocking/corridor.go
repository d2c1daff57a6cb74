package stocking

import (
	"github.com/dshills/dungo/pkg/carving"
	"github.com/dshills/dungo/pkg/grid"
	"github.com/dshills/dungo/pkg/rng"
	"github.com/dshills/dungo/pkg/themes"
)

// corridorOnlyCells collects every corridor cell that falls outside
// every room, in corridor-then-cell order, deduplicated.
func corridorOnlyCells(rooms []grid.Room, corridors []carving.Corridor) []grid.Point {
	seen := make(map[grid.Point]bool)
	var out []grid.Point
	for _, corridor := range corridors {
		for _, cell := range corridor.Cells {
			p := grid.Point{X: cell.X, Y: cell.Y}
			if seen[p] {
				continue
			}
			inRoom := false
			for _, room := range rooms {
				if grid.IsCellInRoom(p, room) {
					inRoom = true
					break
				}
			}
			if inRoom {
				continue
			}
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

// stockCorridorTraps places floor(len(cells)*corridorTrapChance/10) traps
// at uniformly-chosen free corridor-only cells (spec §4.9 "Corridor
// traps").
func stockCorridorTraps(cells []grid.Point, pool themes.StylePool, corridorTrapChance float64, r *rng.RNG) []Object {
	n := int(float64(len(cells)) * corridorTrapChance / 10)
	if n <= 0 {
		return nil
	}

	occupied := make(map[grid.Point]bool)
	var objs []Object
	for i := 0; i < n; i++ {
		pos, ok := pickFree(cells, occupied, r)
		if !ok {
			break
		}
		occupied[pos] = true
		t := pickWeighted(pool.Traps, r)
		objs = append(objs, newObject(-1, pos, t, "trap", false, "", true))
	}
	return objs
}
