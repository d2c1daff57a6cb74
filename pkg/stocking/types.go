package stocking

import "github.com/dshills/dungo/pkg/grid"

// Object is a materialized thematic object placed by ObjectPlacer (spec
// §4.9). RoomID is -1 for corridor-only placements (traps between rooms,
// belonging to no room).
type Object struct {
	RoomID   int
	Position grid.Point
	Type     string
	Tooltip  string
}

// Config controls stocking (spec §6.1's objectDensity, normalized
// category weights, useTemplates, corridorTrapChance).
type Config struct {
	ObjectDensity      float64
	MonsterWeight      float64
	EmptyWeight        float64
	FeatureWeight      float64
	TrapWeight         float64
	UseTemplates       bool
	CorridorTrapChance float64
}
