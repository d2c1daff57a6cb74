package stocking

import (
	"github.com/dshills/dungo/pkg/grid"
	"github.com/dshills/dungo/pkg/rng"
	"github.com/dshills/dungo/pkg/themes"
)

// zonePreferences gives each thematic object type its ordered zone
// preference list (spec §4.9 "Placement preferences"). Types not listed
// fall back to scattered-only.
var zonePreferences = map[string][]string{
	"monster":  {"scattered", "center"},
	"guard":    {"scattered", "wall"},
	"boss":     {"center"},
	"boss-alt": {"center"},
	"chest":    {"corner", "wall"},
	"sack":     {"corner", "wall"},
	"crate":    {"wall", "corner"},
	"altar":    {"center"},
	"statue":   {"corner", "wall"},
	"table":    {"center", "wall"},
	"chair":    {"center", "wall"},
	"bed":      {"wall"},
	"coffin":   {"wall", "center"},
	"book":     {"wall"},
	"cauldron": {"center"},
	"fountain": {"center"},
	"anvil":    {"wall"},
	"cage":     {"wall", "corner"},
	"plant":    {"wall", "corner"},
	"flower":   {"wall", "corner"},
	"trap":     {"scattered"},
	"pit":      {"scattered"},
	"hazard":   {"scattered"},
	"poison":   {"scattered"},
}

// categoryForType infers a tooltip category for a type placed outside
// the normal per-room category roll (water rooms, corridor traps).
func categoryForType(objType string) string {
	switch objType {
	case "monster", "guard", "boss", "boss-alt":
		return "monster"
	case "trap", "pit", "hazard", "poison":
		return "trap"
	default:
		return "feature"
	}
}

func zonePreference(objType string) []string {
	if pref, ok := zonePreferences[objType]; ok {
		return pref
	}
	return []string{"scattered"}
}

// placer hands out free cells from a room's zones, tracking what it has
// already occupied.
type placer struct {
	zones    zoneSet
	occupied map[grid.Point]bool
}

func newPlacer(zones zoneSet) *placer {
	return &placer{zones: zones, occupied: make(map[grid.Point]bool)}
}

// placeFrom iterates zoneOrder, picking a uniform cell from the first
// zone with a free cell (spec §4.9). Returns ok=false when every zone in
// the list is exhausted (a PlacementSaturated condition: not an error,
// the caller simply places one fewer object).
func (p *placer) placeFrom(zoneOrder []string, r *rng.RNG) (grid.Point, bool) {
	for _, zoneName := range zoneOrder {
		free := p.free(p.zones.cells(zoneName))
		if len(free) > 0 {
			pos := free[r.Int(0, len(free)-1)]
			p.occupied[pos] = true
			return pos, true
		}
	}
	return grid.Point{}, false
}

func (p *placer) free(cells []grid.Point) []grid.Point {
	var out []grid.Point
	for _, c := range cells {
		if !p.occupied[c] {
			out = append(out, c)
		}
	}
	return out
}

// pickWeighted draws one type from a weighted entry table.
func pickWeighted(entries []themes.WeightedEntry, r *rng.RNG) string {
	if len(entries) == 0 {
		return ""
	}
	weights := make([]float64, len(entries))
	for i, e := range entries {
		weights[i] = float64(e.Weight)
	}
	idx := r.WeightedPick(weights)
	if idx < 0 {
		idx = 0
	}
	return entries[idx].Type
}

// tryPlace places objType using its own zone preference list.
func tryPlace(p *placer, roomID int, objType, category string, isTreasure bool, templateName string, isCorridor bool, r *rng.RNG) []Object {
	return tryPlaceIn(p, zonePreference(objType), roomID, objType, category, isTreasure, templateName, isCorridor, r)
}

// tryPlaceIn places objType using an explicit zone order override,
// falling back to no placement (PlacementSaturated) if every listed zone
// is exhausted.
func tryPlaceIn(p *placer, zoneOrder []string, roomID int, objType, category string, isTreasure bool, templateName string, isCorridor bool, r *rng.RNG) []Object {
	if objType == "" {
		return nil
	}
	pos, ok := p.placeFrom(zoneOrder, r)
	if !ok {
		return nil
	}
	return []Object{newObject(roomID, pos, objType, category, isTreasure, templateName, isCorridor)}
}

func newObject(roomID int, pos grid.Point, objType, category string, isTreasure bool, templateName string, isCorridor bool) Object {
	return Object{
		RoomID:   roomID,
		Position: pos,
		Type:     objType,
		Tooltip:  tooltip(category, isTreasure, templateName, isCorridor),
	}
}

// tooltip gives a placed object its contextual label, keyed by
// (category, isTreasure, templateName, isCorridor) per spec §4.9.
func tooltip(category string, isTreasure bool, templateName string, isCorridor bool) string {
	switch {
	case isCorridor:
		return "Corridor trap"
	case templateName != "":
		return templateName + " furnishing"
	case isTreasure:
		switch category {
		case "monster":
			return "Guarded treasure"
		case "trap":
			return "Trapped treasure"
		default:
			return "Hidden treasure"
		}
	default:
		switch category {
		case "monster":
			return "Monster"
		case "trap":
			return "Trap"
		case "feature":
			return "Feature"
		default:
			return ""
		}
	}
}
