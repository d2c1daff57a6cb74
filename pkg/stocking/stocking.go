package stocking

import (
	"github.com/dshills/dungo/pkg/carving"
	"github.com/dshills/dungo/pkg/doors"
	"github.com/dshills/dungo/pkg/grid"
	"github.com/dshills/dungo/pkg/rng"
	"github.com/dshills/dungo/pkg/stairs"
	"github.com/dshills/dungo/pkg/themes"
)

// Stock runs ObjectPlacer over every room (spec §4.9): entry and exit
// rooms are skipped (their stairs are already placed), water rooms take
// the water-room path, everything else takes the per-room category
// roll, and corridor-only cells get a final trap pass. The second return
// value maps room id to the category it rolled ("water" for water rooms),
// letting a caller retain it in room metadata.
func Stock(rooms []grid.Room, corridors []carving.Corridor, doorList []doors.Door, st stairs.Result, cfg Config, style string, r *rng.RNG) ([]Object, map[int]string) {
	pool, ok := themes.Styles[style]
	if !ok {
		pool = themes.Styles["classic"]
	}

	doorsByRoom := make(map[int][]grid.Point)
	for _, d := range doorList {
		doorsByRoom[d.RoomID] = append(doorsByRoom[d.RoomID], d.Position)
	}

	waterRooms := make(map[int]bool, len(st.WaterRoomIDs))
	for _, id := range st.WaterRoomIDs {
		waterRooms[id] = true
	}

	var objs []Object
	categories := make(map[int]string)
	for _, room := range rooms {
		if room.ID == st.EntryRoomID || room.ID == st.ExitRoomID {
			continue
		}
		doorCells := doorsByRoom[room.ID]
		if waterRooms[room.ID] {
			objs = append(objs, stockWaterRoom(room, doorCells, pool, style, r)...)
			categories[room.ID] = "water"
			continue
		}
		category, roomObjs := stockRoom(room, doorCells, pool, cfg, r)
		objs = append(objs, roomObjs...)
		categories[room.ID] = category
	}

	objs = append(objs, stockCorridorTraps(corridorOnlyCells(rooms, corridors), pool, cfg.CorridorTrapChance, r)...)

	return objs, categories
}
