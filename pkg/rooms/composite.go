package rooms

import (
	"github.com/dshills/dungo/pkg/grid"
	"github.com/dshills/dungo/pkg/rng"
)

// compositeOverlapDepth is how many cells deep the two parts of an L or T
// overlap. Spec §4.3 requires "at least 1 cell deep so the union is
// 4-connected"; a fixed depth of 1 is the minimal shape that satisfies it.
const compositeOverlapDepth = 1

// buildCompositeShape draws two axis-aligned parts in a canonical
// (unrotated) orientation whose union is an L or a T, and returns them
// along with the union's bounding width and height.
func buildCompositeShape(r *rng.RNG, kind grid.CompositeKind, sizeMin, sizeMax int, _ float64) ([]grid.Rect, int, int) {
	armA := r.Int(sizeMin, sizeMax)
	armB := r.Int(sizeMin, sizeMax)
	thickA := r.Int(sizeMin, sizeMax)
	thickB := r.Int(sizeMin, sizeMax)

	switch kind {
	case grid.CompositeT:
		barW := armA
		barH := thickA
		stemW := thickB
		if stemW >= barW {
			stemW = barW - 1
			if stemW < 1 {
				stemW = 1
			}
		}
		stemH := armB
		stemX := (barW - stemW) / 2

		bar := grid.Rect{X: 0, Y: 0, Width: barW, Height: barH}
		stem := grid.Rect{X: stemX, Y: barH - compositeOverlapDepth, Width: stemW, Height: stemH}

		w := barW
		h := barH - compositeOverlapDepth + stemH
		return []grid.Rect{bar, stem}, w, h

	default: // CompositeL
		vertW := thickA
		vertH := armA
		horizW := armB
		if horizW <= vertW {
			horizW = vertW + 1
		}
		horizH := thickB

		vert := grid.Rect{X: 0, Y: 0, Width: vertW, Height: vertH}
		horiz := grid.Rect{X: 0, Y: vertH - compositeOverlapDepth, Width: horizW, Height: horizH}

		w := horizW
		h := vertH - compositeOverlapDepth + horizH
		return []grid.Rect{vert, horiz}, w, h
	}
}

// rotateParts rotates a set of parts within a w x h bounding box by
// rotations*90 degrees clockwise, returning the rotated parts and the new
// bounding dimensions (swapped on odd rotation counts). All coordinates
// stay relative to the bounding box's own top-left origin.
func rotateParts(parts []grid.Rect, w, h, rotations int) ([]grid.Rect, int, int) {
	rotations = ((rotations % 4) + 4) % 4
	for i := 0; i < rotations; i++ {
		rotated := make([]grid.Rect, len(parts))
		for j, p := range parts {
			rotated[j] = grid.Rect{
				X:      h - (p.Y + p.Height),
				Y:      p.X,
				Width:  p.Height,
				Height: p.Width,
			}
		}
		parts = rotated
		w, h = h, w
	}
	return parts, w, h
}
