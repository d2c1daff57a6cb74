package grid

// Wedge names one of the eight triangular subdivisions a cell can display
// when it is not a full fill (spec §3, §6.1's segment wedge geometry).
// Naming runs clockwise from the top edge: nw, n, ne along the top, e on
// the right, se, s, sw along the bottom, w on the left.
type Wedge string

const (
	WedgeNW Wedge = "nw"
	WedgeN  Wedge = "n"
	WedgeNE Wedge = "ne"
	WedgeE  Wedge = "e"
	WedgeSE Wedge = "se"
	WedgeS  Wedge = "s"
	WedgeSW Wedge = "sw"
	WedgeW  Wedge = "w"
)

// Cell is a single output grid cell: a full fill when Segments is empty,
// otherwise a partial fill via the named wedges in Segments.
type Cell struct {
	X, Y     int
	Color    string
	Opacity  float64
	HasOpacity bool
	Segments []Wedge
}

// IsFull reports whether the cell is a full-square fill.
func (c Cell) IsFull() bool { return len(c.Segments) == 0 }

// diagonalCrookWedges maps a diagonal travel direction (xDir, yDir, both
// +1 or -1) to the wedge pair used to tile the orthogonal "crook" cells
// adjacent to a diagonal corridor step, keyed by the resulting 45-degree
// corner: ne, se, sw, nw (spec §4.5 "Diagonal corridors").
var diagonalCrookWedges = map[[2]int][2]Wedge{
	{1, -1}:  {WedgeSW, WedgeNE}, // traveling north-east
	{1, 1}:   {WedgeNW, WedgeSE}, // traveling south-east
	{-1, 1}:  {WedgeNE, WedgeSW}, // traveling south-west
	{-1, -1}: {WedgeSE, WedgeNW}, // traveling north-west
}

// DiagonalCrookWedges returns the wedge pair for the crook cells adjacent
// to a diagonal step traveling (xDir, yDir), each one of {-1, +1}. The
// first wedge belongs to the cell offset in xDir, the second to the cell
// offset in yDir.
func DiagonalCrookWedges(xDir, yDir int) (Wedge, Wedge, bool) {
	pair, ok := diagonalCrookWedges[[2]int{xDir, yDir}]
	if !ok {
		return "", "", false
	}
	return pair[0], pair[1], true
}
