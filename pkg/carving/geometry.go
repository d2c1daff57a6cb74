package carving

import "github.com/dshills/dungo/pkg/grid"

// expandSegment expands an axis-aligned centerline segment perpendicular to
// its direction of travel by the offset range [-(w-1)/2, w/2] (spec §4.5's
// width expansion). Diagonal segments (both axes differ) are returned
// unexpanded; diagonal routing materializes its own cells separately.
func expandSegment(p0, p1 grid.Point, width int) []grid.Point {
	low := -(width - 1) / 2
	high := width / 2

	var out []grid.Point
	switch {
	case p0.Y == p1.Y:
		x0, x1 := p0.X, p1.X
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		for x := x0; x <= x1; x++ {
			for off := low; off <= high; off++ {
				out = append(out, grid.Point{X: x, Y: p0.Y + off})
			}
		}
	case p0.X == p1.X:
		y0, y1 := p0.Y, p1.Y
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		for y := y0; y <= y1; y++ {
			for off := low; off <= high; off++ {
				out = append(out, grid.Point{X: p0.X + off, Y: y})
			}
		}
	default:
		out = append(out, p0, p1)
	}
	return out
}

// routeCells expands every segment of an ordered centerline by width and
// dedupes the result, producing the full cell set a straight or Z-shaped
// route occupies.
func routeCells(centerline []grid.Point, width int) []grid.Point {
	var out []grid.Point
	for i := 0; i+1 < len(centerline); i++ {
		out = append(out, expandSegment(centerline[i], centerline[i+1], width)...)
	}
	return dedupPoints(out)
}

func dedupPoints(pts []grid.Point) []grid.Point {
	seen := make(map[grid.Point]bool, len(pts))
	out := make([]grid.Point, 0, len(pts))
	for _, p := range pts {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// dedupCollinear drops any point that coincides with its predecessor,
// which happens when an L-shape's elbow lands on one of its endpoints
// (the two rooms already share an x or y coordinate).
func dedupCollinear(pts []grid.Point) []grid.Point {
	out := make([]grid.Point, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	return out
}

// alongsideCount counts cells that are outside room's bounding box but
// 4-adjacent to it (spec §4.5's alongside/adjacent test).
func alongsideCount(cells []grid.Point, room grid.Room) int {
	count := 0
	for _, c := range cells {
		if grid.IsCellAdjacentToRoom(c, room) {
			count++
		}
	}
	return count
}

// isCleanRoute reports whether a route's cell set runs alongside neither
// of its endpoint rooms nor any third room (spec §4.5).
func isCleanRoute(cells []grid.Point, roomA, roomB grid.Room, rooms []grid.Room) bool {
	if alongsideCount(cells, roomA) > 1 {
		return false
	}
	if alongsideCount(cells, roomB) > 1 {
		return false
	}
	for _, rm := range rooms {
		if rm.ID == roomA.ID || rm.ID == roomB.ID {
			continue
		}
		if alongsideCount(cells, rm) > 1 {
			return false
		}
	}
	return true
}
