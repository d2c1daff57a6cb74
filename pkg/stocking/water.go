package stocking

import (
	"github.com/dshills/dungo/pkg/grid"
	"github.com/dshills/dungo/pkg/rng"
	"github.com/dshills/dungo/pkg/themes"
)

// stockWaterRoom stocks a water room per spec §4.9's "Water rooms" path:
// a floor(roomCells/12)-minimum-1 budget, an optional center island
// feature in deep water, an optional cavern-style aquatic monster in
// deep water, and shore-pool objects filling the remaining budget on
// shore cells that aren't door-adjacent.
func stockWaterRoom(room grid.Room, doorCells []grid.Point, pool themes.StylePool, style string, r *rng.RNG) []Object {
	cells := grid.RoomCells(room)
	budget := len(cells) / 12
	if budget < 1 {
		budget = 1
	}

	shore, deep := shoreAndDeep(room, cells)
	doorAdjacent := adjacencySet(doorCells)

	occupied := make(map[grid.Point]bool)
	var objs []Object

	if r.Chance(0.30) {
		if pos, ok := pickFree(deep, occupied, r); ok {
			occupied[pos] = true
			t := pickWeighted(themes.IslandFeatures, r)
			objs = append(objs, newObject(room.ID, pos, t, categoryForType(t), false, "", false))
		}
	}

	if style == "cavern" && pool.AquaticOK && r.Chance(0.30) {
		if pos, ok := pickFree(deep, occupied, r); ok {
			occupied[pos] = true
			t := pickWeighted(pool.Monsters, r)
			objs = append(objs, newObject(room.ID, pos, t, categoryForType(t), false, "", false))
		}
	}

	var shorePool []grid.Point
	for _, p := range shore {
		if !doorAdjacent[p] {
			shorePool = append(shorePool, p)
		}
	}
	for i := 0; i < budget; i++ {
		pos, ok := pickFree(shorePool, occupied, r)
		if !ok {
			break
		}
		occupied[pos] = true
		t := pickWeighted(pool.Shore, r)
		objs = append(objs, newObject(room.ID, pos, t, categoryForType(t), false, "", false))
	}

	return objs
}

func pickFree(cells []grid.Point, occupied map[grid.Point]bool, r *rng.RNG) (grid.Point, bool) {
	var free []grid.Point
	for _, c := range cells {
		if !occupied[c] {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return grid.Point{}, false
	}
	return free[r.Int(0, len(free)-1)], true
}
