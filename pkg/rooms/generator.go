// Package rooms implements Monte Carlo placement of dungeon rooms: plain
// rectangles, circles, and composite L/T shapes, rejecting candidates that
// violate the grid margin or collide with an already-placed room (spec
// §4.3).
package rooms

import (
	"github.com/dshills/dungo/pkg/grid"
	"github.com/dshills/dungo/pkg/rng"
)

// attemptsPerRoom is the rejection-sampling budget multiplier: the
// generator makes at most attemptsPerRoom*targetCount attempts before
// giving up and reporting whatever it managed to place.
const attemptsPerRoom = 50

// Result is the outcome of a Generate call.
type Result struct {
	Rooms []grid.Room

	// RequestedCount is the target sampled from [CountMin, CountMax].
	RequestedCount int

	// PlacedCount is len(Rooms); may be less than RequestedCount if the
	// grid filled up before the target was reached. This is not an error:
	// spec §4.3 says the generator "fails silently" and the caller reports
	// the actual count in metadata (spec §7's RoomTargetUnderfilled).
	PlacedCount int
}

// Underfilled reports whether fewer rooms were placed than requested.
func (r Result) Underfilled() bool { return r.PlacedCount < r.RequestedCount }

// Generator places rooms according to Config.
type Generator struct {
	cfg Config
}

// New creates a room Generator. cfg must already be valid; callers
// validate configuration once at the DungeonAssembly boundary.
func New(cfg Config) *Generator {
	return &Generator{cfg: cfg}
}

// Generate runs Monte Carlo placement and returns every room that was
// accepted, in placement order. IDs are assigned 0..n-1 by placement order.
func (g *Generator) Generate(r *rng.RNG) Result {
	target := r.Int(g.cfg.CountMin, g.cfg.CountMax)
	maxAttempts := attemptsPerRoom * target

	placed := make([]grid.Room, 0, target)

	for attempt := 0; attempt < maxAttempts && len(placed) < target; attempt++ {
		candidate, ok := g.proposeRoom(r, len(placed))
		if !ok {
			continue
		}
		if !g.accepts(candidate, placed) {
			continue
		}
		placed = append(placed, candidate)
	}

	return Result{
		Rooms:          placed,
		RequestedCount: target,
		PlacedCount:    len(placed),
	}
}

// proposeRoom draws a single candidate room shape and position. The second
// return value is false if the drawn dimensions cannot possibly fit inside
// the grid's interior margin (a config-shape mismatch, not a collision).
func (g *Generator) proposeRoom(r *rng.RNG, id int) (grid.Room, bool) {
	roll := r.Float64()
	switch {
	case roll < g.cfg.CircleChance:
		return g.proposeCircle(r, id)
	case roll < g.cfg.CircleChance+g.cfg.ComplexRoomChance:
		return g.proposeComposite(r, id)
	default:
		return g.proposeRectangle(r, id)
	}
}

func (g *Generator) interiorBounds() (minX, minY, maxX, maxY int) {
	m := g.cfg.Padding + 1
	return m, m, g.cfg.GridWidth - m, g.cfg.GridHeight - m
}

func (g *Generator) proposeRectangle(r *rng.RNG, id int) (grid.Room, bool) {
	w := r.BiasedInt(g.cfg.SizeMin, g.cfg.SizeMax, g.cfg.SizeBias)
	h := r.BiasedInt(g.cfg.SizeMin, g.cfg.SizeMax, g.cfg.SizeBias)

	minX, minY, maxX, maxY := g.interiorBounds()
	if maxX-minX < w || maxY-minY < h {
		return grid.Room{}, false
	}
	x := r.Int(minX, maxX-w)
	y := r.Int(minY, maxY-h)

	return grid.Room{
		ID:     id,
		Shape:  grid.ShapeRectangle,
		Bounds: grid.Rect{X: x, Y: y, Width: w, Height: h},
	}, true
}

func (g *Generator) proposeCircle(r *rng.RNG, id int) (grid.Room, bool) {
	radius := r.BiasedInt(g.cfg.SizeMin/2, g.cfg.SizeMax/2, g.cfg.SizeBias)
	if radius < 1 {
		radius = 1
	}
	diameter := 2 * radius

	minX, minY, maxX, maxY := g.interiorBounds()
	if maxX-minX < diameter || maxY-minY < diameter {
		return grid.Room{}, false
	}
	x := r.Int(minX, maxX-diameter)
	y := r.Int(minY, maxY-diameter)

	return grid.Room{
		ID:     id,
		Shape:  grid.ShapeCircle,
		Bounds: grid.Rect{X: x, Y: y, Width: diameter, Height: diameter},
	}, true
}

func (g *Generator) proposeComposite(r *rng.RNG, id int) (grid.Room, bool) {
	kind := grid.CompositeL
	if r.Chance(0.3) {
		kind = grid.CompositeT
	}

	parts, w, h := buildCompositeShape(r, kind, g.cfg.SizeMin, g.cfg.SizeMax, g.cfg.SizeBias)

	rotations := r.Int(0, 3)
	parts, w, h = rotateParts(parts, w, h, rotations)

	minX, minY, maxX, maxY := g.interiorBounds()
	if maxX-minX < w || maxY-minY < h {
		return grid.Room{}, false
	}
	x := r.Int(minX, maxX-w)
	y := r.Int(minY, maxY-h)

	translated := make([]grid.Rect, len(parts))
	for i, p := range parts {
		translated[i] = grid.Rect{X: p.X + x, Y: p.Y + y, Width: p.Width, Height: p.Height}
	}

	return grid.Room{
		ID:            id,
		Shape:         grid.ShapeComposite,
		CompositeKind: kind,
		Bounds:        grid.Rect{X: x, Y: y, Width: w, Height: h},
		Parts:         translated,
	}, true
}

// accepts applies the two rejection tests of spec §4.3: the candidate must
// sit at least padding+1 cells inside the grid (guaranteed by construction
// via interiorBounds), and its padded bounding box must not overlap any
// already-placed room's bounding box.
func (g *Generator) accepts(candidate grid.Room, placed []grid.Room) bool {
	for _, other := range placed {
		if grid.RectOverlap(candidate.Bounds, other.Bounds, g.cfg.Padding) {
			return false
		}
	}
	return true
}
