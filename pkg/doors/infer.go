package doors

import (
	"github.com/dshills/dungo/pkg/carving"
	"github.com/dshills/dungo/pkg/grid"
	"github.com/dshills/dungo/pkg/rng"
)

// Infer walks every corridor's centerline to find room-boundary
// crossings, validates and width-expands the candidates, groups
// contiguous runs, and materializes each group into zero or more doors
// (spec §4.6).
func Infer(rooms []grid.Room, corridors []carving.Corridor, cfg Config, r *rng.RNG) []Door {
	byID := make(map[int]grid.Room, len(rooms))
	for _, rm := range rooms {
		byID[rm.ID] = rm
	}

	var candidates []candidate
	for _, c := range corridors {
		roomA, roomB := byID[c.A], byID[c.B]
		for _, found := range walkCorridor(c.Centerline, roomA, roomB) {
			candidates = append(candidates, expandCandidate(found, c.Width)...)
		}
	}

	valid := candidates[:0]
	for _, c := range candidates {
		if isValid(c, byID) {
			valid = append(valid, c)
		}
	}

	var doors []Door
	for _, g := range groupCandidates(valid) {
		doors = append(doors, materializeGroup(g, cfg, r)...)
	}
	return doors
}
