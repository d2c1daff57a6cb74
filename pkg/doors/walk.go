package doors

import "github.com/dshills/dungo/pkg/grid"

// walkCorridor walks a corridor's ordered centerline pairwise, recording a
// door candidate wherever it exits roomA or enters roomB (spec §4.6).
func walkCorridor(centerline []grid.Point, roomA, roomB grid.Room) []candidate {
	if len(centerline) < 2 {
		return nil
	}

	var out []candidate
	prevInA := grid.IsCellInRoom(centerline[0], roomA)
	prevInB := grid.IsCellInRoom(centerline[0], roomB)

	for i := 1; i < len(centerline); i++ {
		prev, curr := centerline[i-1], centerline[i]
		currInA := grid.IsCellInRoom(curr, roomA)
		currInB := grid.IsCellInRoom(curr, roomB)

		dx, dy := curr.X-prev.X, curr.Y-prev.Y

		if prevInA && !currInA {
			out = append(out, candidate{
				roomID:    roomA.ID,
				pos:       curr,
				kind:      travelKind(dx, dy),
				alignment: directionAlignment(-dx, -dy),
			})
		}
		if !prevInB && currInB {
			out = append(out, candidate{
				roomID:    roomB.ID,
				pos:       prev,
				kind:      travelKind(dx, dy),
				alignment: directionAlignment(dx, dy),
			})
		}

		prevInA, prevInB = currInA, currInB
	}
	return out
}

// travelKind reports a crossing's door orientation: a horizontal travel
// direction produces a vertical door and vice versa. A diagonal step
// (both axes nonzero, only possible mid-wobble or on a diagonal route)
// resolves by whichever axis dominates, horizontal on a tie.
func travelKind(dx, dy int) Kind {
	if abs(dx) >= abs(dy) {
		return KindVertical
	}
	return KindHorizontal
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func directionAlignment(dx, dy int) Alignment {
	switch {
	case dx == 1 && dy == 0:
		return AlignEast
	case dx == -1 && dy == 0:
		return AlignWest
	case dx == 0 && dy == 1:
		return AlignSouth
	case dx == 0 && dy == -1:
		return AlignNorth
	case dx == 1 && dy == 1:
		return AlignSE
	case dx == 1 && dy == -1:
		return AlignNE
	case dx == -1 && dy == 1:
		return AlignSW
	case dx == -1 && dy == -1:
		return AlignNW
	default:
		return AlignCenter()
	}
}

// AlignCenter is the fallback alignment for a zero travel vector, which
// should not occur on a well-formed centerline but is handled rather than
// panicking.
func AlignCenter() Alignment { return "center" }

// expandCandidate spreads a candidate perpendicular to its travel
// direction by a width-w corridor's offsets (spec §4.6's width expansion,
// the same offset formula as corridor width expansion). Infer validates
// the spread cells afterwards.
func expandCandidate(c candidate, width int) []candidate {
	low := -(width - 1) / 2
	high := width / 2

	out := make([]candidate, 0, high-low+1)
	for off := low; off <= high; off++ {
		p := c.pos
		if c.kind == KindVertical {
			p.Y += off // vertical door: crossing was horizontal, spread along y
		} else {
			p.X += off // horizontal door: crossing was vertical, spread along x
		}
		cc := c
		cc.pos = p
		out = append(out, cc)
	}
	return out
}

// isValid reports whether a candidate is 4-adjacent to its associated
// room, guarding against floating doors with no room neighbour.
func isValid(c candidate, byID map[int]grid.Room) bool {
	room, ok := byID[c.roomID]
	if !ok {
		return false
	}
	return grid.IsCellAdjacentToRoom(c.pos, room)
}
