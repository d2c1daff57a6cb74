package stairs

import "github.com/dshills/dungo/pkg/grid"

// Stair is a materialized stairs-up/stairs-down object (spec §4.7).
type Stair struct {
	RoomID   int
	Position grid.Point
	Type     string // "stairs-down" or "stairs-up"
}

// WaterCell is a single water-overlay cell emitted for a water room.
type WaterCell struct {
	RoomID  int
	Pos     grid.Point
	Color   string
	Opacity float64
}

// Config controls water room selection and overlay appearance (spec
// §6.1's waterChance, waterColor, waterOpacity).
type Config struct {
	WaterChance  float64
	WaterColor   string
	WaterOpacity float64
}

// Result is StairAndWaterPass's output. EntryRoomID and ExitRoomID are -1
// when there are no rooms to place stairs in.
type Result struct {
	EntryRoomID  int
	ExitRoomID   int
	StairsDown   *Stair
	StairsUp     *Stair
	WaterRoomIDs []int
	WaterCells   []WaterCell
}
