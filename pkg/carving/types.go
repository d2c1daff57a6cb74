package carving

import "github.com/dshills/dungo/pkg/grid"

// Corridor is the carved route for one connection graph edge (spec §3's
// Corridor data model): an ordered centerline from room A's center cell to
// room B's center cell, a width, whether it is a diagonal route, and the
// full cell set the corridor occupies.
type Corridor struct {
	A, B         int
	Centerline   []grid.Point
	Width        int
	HasDiagonals bool
	// Dirty reports that both L orientations and every Z-path failed the
	// alongside/adjacent tests and the least-bad L was accepted anyway
	// (spec §7's CorridorDirty, non-fatal).
	Dirty bool
	Cells []grid.Cell
}
