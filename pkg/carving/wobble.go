package carving

import (
	"github.com/dshills/dungo/pkg/grid"
	"github.com/dshills/dungo/pkg/rng"
)

const (
	wobbleMinRunLength  = 4
	wobbleSkipEnds      = 2
	wobbleStartChance   = 0.25
	wobblePersistChance = 0.7
)

// densify expands an ordered corner list into the dense unit-step cell
// sequence spec §3 calls the corridor's centerline path.
func densify(corners []grid.Point) []grid.Point {
	if len(corners) == 0 {
		return nil
	}
	out := []grid.Point{corners[0]}
	for i := 0; i+1 < len(corners); i++ {
		out = append(out, stepsBetween(corners[i], corners[i+1])...)
	}
	return out
}

func stepsBetween(a, b grid.Point) []grid.Point {
	dx, dy := sign(b.X-a.X), sign(b.Y-a.Y)
	var out []grid.Point
	cur := a
	for cur != b {
		cur = grid.Point{X: cur.X + dx, Y: cur.Y + dy}
		out = append(out, cur)
	}
	return out
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// wobble applies the organic wobble pass (spec §4.5) to the dense
// centerline between corner-to-corner straight runs of at least
// wobbleMinRunLength cells, rejecting any nudge that would land inside or
// 4-adjacent to a non-endpoint room.
func wobble(corners []grid.Point, roomA, roomB grid.Room, rooms []grid.Room, r *rng.RNG) []grid.Point {
	if len(corners) == 0 {
		return corners
	}
	result := []grid.Point{corners[0]}
	for i := 0; i+1 < len(corners); i++ {
		run := append([]grid.Point{corners[i]}, stepsBetween(corners[i], corners[i+1])...)
		result = append(result, wobbleRun(run, roomA, roomB, rooms, r)[1:]...)
	}
	return result
}

func wobbleRun(run []grid.Point, roomA, roomB grid.Room, rooms []grid.Room, r *rng.RNG) []grid.Point {
	if len(run) < wobbleMinRunLength {
		return run
	}
	horizontal := run[0].Y == run[1].Y

	out := make([]grid.Point, len(run))
	copy(out, run)

	wobble := 0
	for i := wobbleSkipEnds; i < len(run)-wobbleSkipEnds; i++ {
		switch {
		case wobble == 0 && r.Chance(wobbleStartChance):
			if r.Chance(0.5) {
				wobble = 1
			} else {
				wobble = -1
			}
		case wobble != 0 && !r.Chance(wobblePersistChance):
			wobble = 0
		}
		if wobble == 0 {
			continue
		}

		cand := out[i]
		if horizontal {
			cand.Y += wobble
		} else {
			cand.X += wobble
		}
		if violatesNonEndpoint(cand, roomA, roomB, rooms) {
			wobble = 0
			continue
		}
		out[i] = cand
	}
	return out
}

func violatesNonEndpoint(p grid.Point, roomA, roomB grid.Room, rooms []grid.Room) bool {
	for _, rm := range rooms {
		if rm.ID == roomA.ID || rm.ID == roomB.ID {
			continue
		}
		if grid.IsCellInRoom(p, rm) || grid.IsCellAdjacentToRoom(p, rm) {
			return true
		}
	}
	return false
}

// elbowCells returns the right-angle filler cells for every pair of
// consecutive centerline points that ended up diagonally offset after
// wobbling, preserving 4-connectivity (spec §4.5). Fills that would
// violate adjacency to a non-endpoint room are skipped.
func elbowCells(centerline []grid.Point, roomA, roomB grid.Room, rooms []grid.Room) []grid.Point {
	var out []grid.Point
	for i := 0; i+1 < len(centerline); i++ {
		p0, p1 := centerline[i], centerline[i+1]
		if p0.X == p1.X || p0.Y == p1.Y {
			continue
		}
		for _, elbow := range [2]grid.Point{{X: p0.X, Y: p1.Y}, {X: p1.X, Y: p0.Y}} {
			if !violatesNonEndpoint(elbow, roomA, roomB, rooms) {
				out = append(out, elbow)
			}
		}
	}
	return out
}
