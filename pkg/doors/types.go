package doors

import "github.com/dshills/dungo/pkg/grid"

// Alignment positions a door within its cell or on a wall edge (spec §3's
// Object.alignment vocabulary, restricted to the eight directions a door
// candidate's travel direction can produce).
type Alignment string

const (
	AlignNorth Alignment = "north"
	AlignSouth Alignment = "south"
	AlignEast  Alignment = "east"
	AlignWest  Alignment = "west"
	AlignNE    Alignment = "ne"
	AlignSE    Alignment = "se"
	AlignSW    Alignment = "sw"
	AlignNW    Alignment = "nw"
)

// Kind is a door candidate's orientation, derived from whether the
// corridor was traveling horizontally or vertically when it crossed the
// room boundary (spec §4.6: a horizontal crossing yields a vertical door).
type Kind string

const (
	KindHorizontal Kind = "horizontal"
	KindVertical   Kind = "vertical"
)

// candidate is an unvalidated, unmaterialized door crossing point.
type candidate struct {
	roomID    int
	pos       grid.Point
	kind      Kind
	alignment Alignment
}

// Door is a materialized door object ready to merge into the artifact.
type Door struct {
	RoomID    int
	Position  grid.Point
	Type      string // "door-horizontal", "door-vertical", or "secret-door"
	Alignment Alignment
	Scale     float64
	Rotation  float64
}

// Config controls door materialization (spec §6.1's doorChance,
// secretDoorChance).
type Config struct {
	DoorChance       float64
	SecretDoorChance float64
}
