package carving

import "github.com/dshills/dungo/pkg/grid"

const diagonalMinOffset = 3

// tryDiagonal attempts the diagonal route of spec §4.5: eligible only when
// both rooms are offset by at least diagonalMinOffset cells on each axis
// and the straight line between their centers crosses no third room's
// bounding box. On success it returns the full corridor (centerline plus
// the diagonal's wedge-tiled crook cells); ok is false when the route is
// not eligible, in which case the caller must fall back to routeLOrZ.
func tryDiagonal(roomA, roomB grid.Room, rooms []grid.Room, width int) (Corridor, bool) {
	a, b := roomA.Center(), roomB.Center()
	dx, dy := b.X-a.X, b.Y-a.Y
	if abs(dx) < diagonalMinOffset || abs(dy) < diagonalMinOffset {
		return Corridor{}, false
	}
	if crossesThirdRoom(a, b, roomA, roomB, rooms) {
		return Corridor{}, false
	}

	xDir, yDir := sign(dx), sign(dy)

	centerline := []grid.Point{a}
	cur := a
	for grid.IsCellInRoomRect(cur, roomA) {
		cur = grid.Point{X: cur.X + xDir, Y: cur.Y}
		centerline = append(centerline, cur)
	}

	var wedgeCells []grid.Cell
	for cur.X != b.X && cur.Y != b.Y {
		next := grid.Point{X: cur.X + xDir, Y: cur.Y + yDir}
		centerline = append(centerline, next)

		if w1, w2, ok := grid.DiagonalCrookWedges(xDir, yDir); ok {
			wedgeCells = append(wedgeCells,
				grid.Cell{X: cur.X + xDir, Y: cur.Y, Segments: []grid.Wedge{w1}},
				grid.Cell{X: cur.X, Y: cur.Y + yDir, Segments: []grid.Wedge{w2}},
			)
		}
		if width >= 2 {
			// Second diagonal track: a parallel full cell offset
			// perpendicular to the direction of travel.
			wedgeCells = append(wedgeCells, grid.Cell{X: next.X - yDir, Y: next.Y + xDir})
		}
		cur = next
	}

	// Transition wedge where the diagonal meets the orthogonal approach to B.
	if w1, w2, ok := grid.DiagonalCrookWedges(xDir, yDir); ok {
		if cur.X == b.X {
			wedgeCells = append(wedgeCells, grid.Cell{X: cur.X, Y: cur.Y, Segments: []grid.Wedge{w2}})
		} else {
			wedgeCells = append(wedgeCells, grid.Cell{X: cur.X, Y: cur.Y, Segments: []grid.Wedge{w1}})
		}
	}

	for cur != b {
		if cur.X != b.X {
			cur = grid.Point{X: cur.X + sign(b.X-cur.X), Y: cur.Y}
		} else {
			cur = grid.Point{X: cur.X, Y: cur.Y + sign(b.Y-cur.Y)}
		}
		centerline = append(centerline, cur)
	}

	cells := make([]grid.Cell, 0, len(centerline)+len(wedgeCells))
	for _, p := range routeCells(centerline, width) {
		cells = append(cells, grid.Cell{X: p.X, Y: p.Y})
	}
	cells = append(cells, wedgeCells...)

	return Corridor{
		A:            roomA.ID,
		B:            roomB.ID,
		Centerline:   centerline,
		Width:        width,
		HasDiagonals: true,
		Cells:        cells,
	}, true
}

// crossesThirdRoom samples the Bresenham line between a and b and reports
// whether any sampled cell falls inside a room other than roomA/roomB.
func crossesThirdRoom(a, b grid.Point, roomA, roomB grid.Room, rooms []grid.Room) bool {
	for _, p := range bresenham(a, b) {
		for _, rm := range rooms {
			if rm.ID == roomA.ID || rm.ID == roomB.ID {
				continue
			}
			if grid.IsCellInRoomRect(p, rm) {
				return true
			}
		}
	}
	return false
}

func bresenham(a, b grid.Point) []grid.Point {
	var out []grid.Point
	x0, y0, x1, y1 := a.X, a.Y, b.X, b.Y
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 >= x1 {
		sx = -1
	}
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy
	for {
		out = append(out, grid.Point{X: x0, Y: y0})
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
