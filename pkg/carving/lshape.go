package carving

import (
	"github.com/dshills/dungo/pkg/grid"
	"github.com/dshills/dungo/pkg/rng"
)

// zOffsets are the elbow offsets tried in order when both L orientations
// run alongside a room (spec §4.5's Z-path fallback).
var zOffsets = []int{2, -2, 3, -3, 4, -4}

func lCenterlineHFirst(a, b grid.Point) []grid.Point {
	return dedupCollinear([]grid.Point{a, {X: b.X, Y: a.Y}, b})
}

func lCenterlineVFirst(a, b grid.Point) []grid.Point {
	return dedupCollinear([]grid.Point{a, {X: a.X, Y: b.Y}, b})
}

func zCenterlineHFirst(a, b grid.Point, offset int) []grid.Point {
	elbowX := (a.X+b.X)/2 + offset
	return dedupCollinear([]grid.Point{a, {X: elbowX, Y: a.Y}, {X: elbowX, Y: b.Y}, b})
}

func zCenterlineVFirst(a, b grid.Point, offset int) []grid.Point {
	elbowY := (a.Y+b.Y)/2 + offset
	return dedupCollinear([]grid.Point{a, {X: a.X, Y: elbowY}, {X: b.X, Y: elbowY}, b})
}

// routeBadness scores a route by how far it overshoots the "at most one
// alongside cell" rule, summed over both endpoint rooms and every third
// room. Used only to pick the least-bad L when nothing passes cleanly.
func routeBadness(cells []grid.Point, roomA, roomB grid.Room, rooms []grid.Room) int {
	score := excess(alongsideCount(cells, roomA)) + excess(alongsideCount(cells, roomB))
	for _, rm := range rooms {
		if rm.ID == roomA.ID || rm.ID == roomB.ID {
			continue
		}
		score += excess(alongsideCount(cells, rm))
	}
	return score
}

func excess(count int) int {
	if count > 1 {
		return count - 1
	}
	return 0
}

// routeLOrZ produces the centerline between roomA and roomB: the clean L
// orientation if exactly one is clean, a uniform choice if both are clean,
// the first clean Z-path if neither L is clean, or the least-bad L (and a
// dirty flag) if nothing clears (spec §4.5).
func routeLOrZ(roomA, roomB grid.Room, rooms []grid.Room, width int, r *rng.RNG) ([]grid.Point, bool) {
	a, b := roomA.Center(), roomB.Center()

	hLine := lCenterlineHFirst(a, b)
	vLine := lCenterlineVFirst(a, b)
	hCells := routeCells(hLine, width)
	vCells := routeCells(vLine, width)
	hClean := isCleanRoute(hCells, roomA, roomB, rooms)
	vClean := isCleanRoute(vCells, roomA, roomB, rooms)

	switch {
	case hClean && !vClean:
		return hLine, false
	case vClean && !hClean:
		return vLine, false
	case hClean && vClean:
		if r.Chance(0.5) {
			return hLine, false
		}
		return vLine, false
	}

	for _, offset := range zOffsets {
		if z := zCenterlineHFirst(a, b, offset); isCleanRoute(routeCells(z, width), roomA, roomB, rooms) {
			return z, false
		}
		if z := zCenterlineVFirst(a, b, offset); isCleanRoute(routeCells(z, width), roomA, roomB, rooms) {
			return z, false
		}
	}

	if routeBadness(hCells, roomA, roomB, rooms) <= routeBadness(vCells, roomA, roomB, rooms) {
		return hLine, true
	}
	return vLine, true
}
