package stairs

import (
	"sort"

	"github.com/dshills/dungo/pkg/grid"
	"github.com/dshills/dungo/pkg/rng"
)

// Run selects the entry and exit rooms, places their stairs, rolls each
// remaining room into a water room, and emits water cells (spec §4.7).
func Run(rooms []grid.Room, cfg Config, r *rng.RNG) Result {
	if len(rooms) == 0 {
		return Result{EntryRoomID: -1, ExitRoomID: -1}
	}

	entry := pickEntry(rooms)
	exit := pickExit(rooms)

	res := Result{EntryRoomID: entry.ID, ExitRoomID: exit.ID}

	entryCells := grid.RoomCells(entry)
	downPos := entryCells[r.Int(0, len(entryCells)-1)]
	res.StairsDown = &Stair{RoomID: entry.ID, Position: downPos, Type: "stairs-down"}

	if exit.ID == entry.ID {
		upPos := downPos
		if len(entryCells) > 1 {
			upPos = entryCells[r.Int(0, len(entryCells)-1)]
			for upPos == downPos {
				upPos = entryCells[r.Int(0, len(entryCells)-1)]
			}
		}
		res.StairsUp = &Stair{RoomID: exit.ID, Position: upPos, Type: "stairs-up"}
	} else {
		exitCells := grid.RoomCells(exit)
		upPos := exitCells[r.Int(0, len(exitCells)-1)]
		res.StairsUp = &Stair{RoomID: exit.ID, Position: upPos, Type: "stairs-up"}
	}

	for _, room := range rooms {
		if room.ID == entry.ID || room.ID == exit.ID {
			continue
		}
		if r.Chance(cfg.WaterChance) {
			res.WaterRoomIDs = append(res.WaterRoomIDs, room.ID)
		}
	}
	sort.Ints(res.WaterRoomIDs)

	byID := make(map[int]grid.Room, len(rooms))
	for _, room := range rooms {
		byID[room.ID] = room
	}
	for _, id := range res.WaterRoomIDs {
		for _, p := range grid.RoomCells(byID[id]) {
			res.WaterCells = append(res.WaterCells, WaterCell{
				RoomID:  id,
				Pos:     p,
				Color:   cfg.WaterColor,
				Opacity: cfg.WaterOpacity,
			})
		}
	}

	return res
}

// pickEntry returns the room whose center has the smallest y, ties broken
// by the smallest x.
func pickEntry(rooms []grid.Room) grid.Room {
	best := rooms[0]
	bestCenter := best.Center()
	for _, room := range rooms[1:] {
		c := room.Center()
		if c.Y < bestCenter.Y || (c.Y == bestCenter.Y && c.X < bestCenter.X) {
			best, bestCenter = room, c
		}
	}
	return best
}

// pickExit returns the room whose center has the largest y, ties broken
// by the largest x.
func pickExit(rooms []grid.Room) grid.Room {
	best := rooms[0]
	bestCenter := best.Center()
	for _, room := range rooms[1:] {
		c := room.Center()
		if c.Y > bestCenter.Y || (c.Y == bestCenter.Y && c.X > bestCenter.X) {
			best, bestCenter = room, c
		}
	}
	return best
}
