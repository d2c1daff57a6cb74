package stocking

import "github.com/dshills/dungo/pkg/grid"

// zoneSet partitions a room's non-door cells into the four named zones
// of spec §4.9 (corner, wall, and center are not mutually exclusive;
// scattered is every non-door cell).
type zoneSet struct {
	corner, wall, center, scattered []grid.Point
}

func (z zoneSet) cells(name string) []grid.Point {
	switch name {
	case "corner":
		return z.corner
	case "wall":
		return z.wall
	case "center":
		return z.center
	default:
		return z.scattered
	}
}

// identifyZones removes doorCells and their 4-neighbours from room's
// cells, then classifies what remains: wall cells sit on the bounding
// box boundary, corner cells lie within 2 cells of any bbox corner on
// both axes, center cells are everything not on the boundary, and
// scattered is the full remaining set (spec §4.9).
func identifyZones(room grid.Room, doorCells []grid.Point) zoneSet {
	excluded := make(map[grid.Point]bool, len(doorCells)*5)
	for _, d := range doorCells {
		excluded[d] = true
		for _, n := range neighbors4(d) {
			excluded[n] = true
		}
	}

	b := room.Bounds
	minX, minY := b.X, b.Y
	maxX, maxY := b.Right()-1, b.Bottom()-1
	corners := [4]grid.Point{{X: minX, Y: minY}, {X: maxX, Y: minY}, {X: minX, Y: maxY}, {X: maxX, Y: maxY}}

	var z zoneSet
	for _, p := range grid.RoomCells(room) {
		if excluded[p] {
			continue
		}
		z.scattered = append(z.scattered, p)

		if p.X == minX || p.X == maxX || p.Y == minY || p.Y == maxY {
			z.wall = append(z.wall, p)
		} else {
			z.center = append(z.center, p)
		}

		for _, c := range corners {
			if iabs(p.X-c.X) <= 2 && iabs(p.Y-c.Y) <= 2 {
				z.corner = append(z.corner, p)
				break
			}
		}
	}
	return z
}

// shoreAndDeep splits a water room's cells into shore (within 1 cell of
// the bounding box edge) and deepWater (everything else), per spec
// §4.9's water-room path.
func shoreAndDeep(room grid.Room, cells []grid.Point) (shore, deep []grid.Point) {
	b := room.Bounds
	minX, minY := b.X, b.Y
	maxX, maxY := b.Right()-1, b.Bottom()-1
	for _, p := range cells {
		if p.X-minX <= 1 || maxX-p.X <= 1 || p.Y-minY <= 1 || maxY-p.Y <= 1 {
			shore = append(shore, p)
		} else {
			deep = append(deep, p)
		}
	}
	return
}

func adjacencySet(doorCells []grid.Point) map[grid.Point]bool {
	out := make(map[grid.Point]bool, len(doorCells)*5)
	for _, d := range doorCells {
		out[d] = true
		for _, n := range neighbors4(d) {
			out[n] = true
		}
	}
	return out
}

func neighbors4(p grid.Point) [4]grid.Point {
	return [4]grid.Point{
		{X: p.X + 1, Y: p.Y}, {X: p.X - 1, Y: p.Y},
		{X: p.X, Y: p.Y + 1}, {X: p.X, Y: p.Y - 1},
	}
}

func iabs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
