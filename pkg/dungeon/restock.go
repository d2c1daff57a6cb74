package dungeon

import (
	"fmt"

	"github.com/dshills/dungo/pkg/doors"
	"github.com/dshills/dungo/pkg/grid"
	"github.com/dshills/dungo/pkg/rng"
	"github.com/dshills/dungo/pkg/stairs"
	"github.com/dshills/dungo/pkg/stocking"
)

// Restock re-runs ObjectPlacer only (spec §4.10's "objects-only re-roll"
// entry point, spec §8's "Re-stock preserves structure" law): given the
// metadata retained from a prior Generate call, the caller's structural
// objects (doors and stairs, unchanged), and a possibly-updated stocking
// config, it returns a fresh object list whose structural subset equals
// structuralObjects — new thematic objects are rolled, but no room,
// corridor, door, or stair geometry changes.
func Restock(meta Metadata, structuralObjects []Object, cfg StockingCfg, r *rng.RNG) ([]Object, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}

	roomList, err := roomsFromMetadata(meta)
	if err != nil {
		return nil, fmt.Errorf("reconstructing rooms from metadata: %w", err)
	}

	// Metadata's CorridorResult carries only the re-stock-relevant summary
	// fields (width, diagonals, dirty), not cell data, so corridor-only
	// trap cells can't be recomputed from it; Restock passes no corridors
	// to Stock and forces CorridorTrapChance to 0 below, relying entirely
	// on the caller's unchanged structural objects for anything placed
	// between rooms.

	var doorList []doors.Door
	for _, d := range meta.DoorPositions {
		doorList = append(doorList, doors.Door{RoomID: d.RoomID, Position: d.Position, Type: d.Type})
	}

	st := stairs.Result{EntryRoomID: meta.EntryRoomID, ExitRoomID: meta.ExitRoomID, WaterRoomIDs: meta.WaterRoomIDs}

	stockCfg := stocking.Config{
		ObjectDensity: cfg.ObjectDensity, MonsterWeight: cfg.MonsterWeight,
		EmptyWeight: cfg.EmptyWeight, FeatureWeight: cfg.FeatureWeight, TrapWeight: cfg.TrapWeight,
		UseTemplates: cfg.UseTemplates, CorridorTrapChance: 0,
	}
	objs, _ := stocking.Stock(roomList, nil, doorList, st, stockCfg, meta.Style, r)

	out := make([]Object, 0, len(structuralObjects)+len(objs))
	out = append(out, structuralObjects...)
	nextID := nextObjectID(structuralObjects)
	for _, o := range objs {
		out = append(out, Object{
			ID: nextID, Type: o.Type, Position: o.Position, Alignment: "center", Scale: 1,
			CustomTooltip: o.Tooltip,
		})
		nextID++
	}
	return out, nil
}

func nextObjectID(objs []Object) int {
	max := -1
	for _, o := range objs {
		if o.ID > max {
			max = o.ID
		}
	}
	return max + 1
}

// roomsFromMetadata reconstructs the grid.Room values ObjectPlacer needs
// (bounding box, shape, composite parts) from retained RoomMeta records.
func roomsFromMetadata(meta Metadata) ([]grid.Room, error) {
	out := make([]grid.Room, 0, len(meta.Rooms))
	for _, rm := range meta.Rooms {
		shape, ok := shapeFromString(rm.Shape)
		if !ok {
			return nil, fmt.Errorf("unknown room shape %q for room %d", rm.Shape, rm.ID)
		}
		room := grid.Room{
			ID:     rm.ID,
			Bounds: grid.Rect{X: rm.X, Y: rm.Y, Width: rm.Width, Height: rm.Height},
			Shape:  shape,
			Parts:  rm.Parts,
		}
		if shape == grid.ShapeComposite {
			kind, ok := compositeKindFromString(rm.CompositeKind)
			if !ok {
				return nil, fmt.Errorf("unknown composite kind %q for room %d", rm.CompositeKind, rm.ID)
			}
			room.CompositeKind = kind
		}
		out = append(out, room)
	}
	return out, nil
}

func shapeFromString(s string) (grid.ShapeKind, bool) {
	switch s {
	case "rectangle":
		return grid.ShapeRectangle, true
	case "circle":
		return grid.ShapeCircle, true
	case "composite":
		return grid.ShapeComposite, true
	default:
		return 0, false
	}
}

func compositeKindFromString(s string) (grid.CompositeKind, bool) {
	switch s {
	case "L":
		return grid.CompositeL, true
	case "T":
		return grid.CompositeT, true
	default:
		return 0, false
	}
}
