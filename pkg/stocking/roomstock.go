package stocking

import (
	"math"

	"github.com/dshills/dungo/pkg/grid"
	"github.com/dshills/dungo/pkg/rng"
	"github.com/dshills/dungo/pkg/themes"
)

// objectBudget computes a room's object budget from its cell count: a
// uniform draw from the size-appropriate range, scaled by density and
// rounded, minimum 1 (spec §4.9).
func objectBudget(cellCount int, density float64, r *rng.RNG) int {
	lo, hi := 4, 6
	switch {
	case cellCount <= 6:
		lo, hi = 1, 2
	case cellCount <= 15:
		lo, hi = 2, 4
	}
	base := r.Int(lo, hi)
	budget := int(math.Round(float64(base) * density))
	if budget < 1 {
		budget = 1
	}
	return budget
}

// rollCategory draws one of {monster, empty, feature, trap} using the
// config's normalized weights.
func rollCategory(cfg Config, r *rng.RNG) string {
	names := []string{"monster", "empty", "feature", "trap"}
	weights := []float64{cfg.MonsterWeight, cfg.EmptyWeight, cfg.FeatureWeight, cfg.TrapWeight}
	idx := r.WeightedPick(weights)
	if idx < 0 {
		return "empty"
	}
	return names[idx]
}

// stockRoom stocks a single non-entry, non-exit, non-water room per spec
// §4.9's "Per-room stocking". It returns the category it rolled alongside
// the placed objects, so the caller can retain it in room metadata (spec
// SPEC_FULL's "Room archetyping for stocking context").
func stockRoom(room grid.Room, doorCells []grid.Point, pool themes.StylePool, cfg Config, r *rng.RNG) (string, []Object) {
	cells := grid.RoomCells(room)
	p := newPlacer(identifyZones(room, doorCells))
	budget := objectBudget(len(cells), cfg.ObjectDensity, r)

	category := rollCategory(cfg, r)
	var objs []Object
	switch category {
	case "monster":
		n := int(math.Ceil(0.6 * float64(budget)))
		for i := 0; i < n; i++ {
			objs = append(objs, tryPlace(p, room.ID, pickWeighted(pool.Monsters, r), "monster", false, "", false, r)...)
		}
		if r.Chance(0.50) {
			tn := int(math.Floor(0.3 * float64(budget)))
			for i := 0; i < tn; i++ {
				objs = append(objs, tryPlace(p, room.ID, pickWeighted(pool.Treasure, r), "monster", true, "", false, r)...)
			}
		}
	case "trap":
		n := r.Int(1, 2)
		for i := 0; i < n; i++ {
			objs = append(objs, tryPlace(p, room.ID, pickWeighted(pool.Traps, r), "trap", false, "", false, r)...)
		}
		if r.Chance(0.33) {
			objs = append(objs, tryPlaceIn(p, []string{"center", "scattered"}, room.ID, pickWeighted(pool.Treasure, r), "trap", true, "", false, r)...)
		}
	case "feature":
		placed := false
		if len(cells) >= 9 && cfg.UseTemplates && r.Chance(0.5) {
			if tmpl, ok := pickTemplate(len(cells), r); ok {
				objs = append(objs, applyTemplate(p, room.ID, tmpl, r)...)
				placed = true
			}
		}
		if !placed {
			for i := 0; i < budget; i++ {
				objs = append(objs, tryPlace(p, room.ID, pickWeighted(pool.Features, r), "feature", false, "", false, r)...)
			}
		}
	case "empty":
		if r.Chance(0.17) {
			objs = append(objs, tryPlaceIn(p, []string{"corner", "scattered"}, room.ID, pickWeighted(pool.Treasure, r), "empty", true, "", false, r)...)
		}
	}
	return category, objs
}

// pickTemplate returns a uniformly-chosen template among those whose
// MinRoomSize the room's cell count satisfies.
func pickTemplate(roomCells int, r *rng.RNG) (themes.Template, bool) {
	var valid []themes.Template
	for _, t := range themes.Templates {
		if roomCells >= t.MinRoomSize {
			valid = append(valid, t)
		}
	}
	if len(valid) == 0 {
		return themes.Template{}, false
	}
	return valid[r.Int(0, len(valid)-1)], true
}

// applyTemplate rolls a count for each template entry and places it from
// its preferred zone, falling back to scattered (spec §4.9 "Templates").
func applyTemplate(p *placer, roomID int, tmpl themes.Template, r *rng.RNG) []Object {
	var objs []Object
	for _, entry := range tmpl.Entries {
		count := entry.MinCount
		if entry.MaxCount > entry.MinCount {
			count = r.Int(entry.MinCount, entry.MaxCount)
		}
		zoneOrder := []string{entry.Zone, "scattered"}
		for i := 0; i < count; i++ {
			objs = append(objs, tryPlaceIn(p, zoneOrder, roomID, entry.Type, "feature", false, tmpl.Name, false, r)...)
		}
	}
	return objs
}
