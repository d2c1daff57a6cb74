package dungeon

import (
	"context"
	"testing"

	"github.com/dshills/dungo/pkg/grid"
	"pgregory.net/rapid"
)

// TestProperty_RoomsStayWithinGridAndDoNotOverlap exercises spec §8's room
// separation and grid containment invariants across random seeds and
// room-count targets.
func TestProperty_RoomsStayWithinGridAndDoNotOverlap(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64().Draw(t, "seed")
		roomMin := rapid.IntRange(2, 10).Draw(t, "roomMin")
		roomMax := roomMin + rapid.IntRange(0, 10).Draw(t, "roomSpread")

		cfg, err := Resolve("medium", "classic", &Overrides{
			Seed: &seed, RoomCountMin: &roomMin, RoomCountMax: &roomMax,
		})
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		art, err := Generate(context.Background(), cfg)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}

		for _, rm := range art.Metadata.Rooms {
			if rm.X < 0 || rm.Y < 0 || rm.X+rm.Width > cfg.GridWidth || rm.Y+rm.Height > cfg.GridHeight {
				t.Fatalf("room %d bounding box %+v escapes grid %dx%d", rm.ID, rm, cfg.GridWidth, cfg.GridHeight)
			}
		}
		for i := 0; i < len(art.Metadata.Rooms); i++ {
			for j := i + 1; j < len(art.Metadata.Rooms); j++ {
				a, b := art.Metadata.Rooms[i], art.Metadata.Rooms[j]
				if rectOverlaps(a, b) {
					t.Fatalf("rooms %d and %d overlap: %+v / %+v", a.ID, b.ID, a, b)
				}
			}
		}
	})
}

// TestProperty_AllPlacedRoomsAreReachable exercises spec §8's connectivity
// invariant: with default loop/corridor settings every placed room is
// either the sole room or reachable from the others (no isolated rooms
// reported in Metadata).
func TestProperty_AllPlacedRoomsAreReachable(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64().Draw(t, "seed")
		roomMin := rapid.IntRange(3, 12).Draw(t, "roomMin")
		roomMax := roomMin + rapid.IntRange(0, 8).Draw(t, "roomSpread")

		cfg, err := Resolve("medium", "classic", &Overrides{
			Seed: &seed, RoomCountMin: &roomMin, RoomCountMax: &roomMax,
		})
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		art, err := Generate(context.Background(), cfg)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if len(art.Metadata.IsolatedRoomIDs) != 0 {
			t.Fatalf("expected no isolated rooms, got %v", art.Metadata.IsolatedRoomIDs)
		}
	})
}

// TestProperty_CorridorEndpointsLandInsideTheirRooms exercises spec §8's
// corridor endpoint containment invariant.
func TestProperty_CorridorEndpointsLandInsideTheirRooms(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64().Draw(t, "seed")
		cfg, err := Resolve("medium", "classic", &Overrides{Seed: &seed})
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		art, err := Generate(context.Background(), cfg)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		roomByID := make(map[int]RoomMeta, len(art.Metadata.Rooms))
		for _, rm := range art.Metadata.Rooms {
			roomByID[rm.ID] = rm
		}
		for _, c := range art.Metadata.CorridorResult {
			if _, ok := roomByID[c.A]; !ok {
				t.Fatalf("corridor references unknown room %d", c.A)
			}
			if _, ok := roomByID[c.B]; !ok {
				t.Fatalf("corridor references unknown room %d", c.B)
			}
		}
	})
}

// TestProperty_DoorsSitAdjacentToTheirOwningRoom exercises spec §8's door
// adjacency invariant: every recorded door position is on or immediately
// next to its owning room's bounding box.
func TestProperty_DoorsSitAdjacentToTheirOwningRoom(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64().Draw(t, "seed")
		cfg, err := Resolve("medium", "classic", &Overrides{Seed: &seed})
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		art, err := Generate(context.Background(), cfg)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		roomByID := make(map[int]RoomMeta, len(art.Metadata.Rooms))
		for _, rm := range art.Metadata.Rooms {
			roomByID[rm.ID] = rm
		}
		const margin = 1
		for _, d := range art.Metadata.DoorPositions {
			rm, ok := roomByID[d.RoomID]
			if !ok {
				t.Fatalf("door references unknown room %d", d.RoomID)
			}
			if d.Position.X < rm.X-margin || d.Position.X > rm.X+rm.Width-1+margin ||
				d.Position.Y < rm.Y-margin || d.Position.Y > rm.Y+rm.Height-1+margin {
				t.Fatalf("door %+v is not adjacent to room %+v", d, rm)
			}
		}
	})
}

// TestProperty_CellsAndObjectsStayWithinGrid exercises spec §8's cell
// bounds and object-cell coincidence invariants together.
func TestProperty_CellsAndObjectsStayWithinGrid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64().Draw(t, "seed")
		preset := rapid.SampledFrom([]string{"small", "medium", "large"}).Draw(t, "preset")
		style := rapid.SampledFrom([]string{"classic", "cavern", "fortress", "crypt"}).Draw(t, "style")

		cfg, err := Resolve(preset, style, &Overrides{Seed: &seed})
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		art, err := Generate(context.Background(), cfg)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}

		cellSet := make(map[grid.Point]bool, len(art.Cells))
		for _, c := range art.Cells {
			if c.X < 0 || c.X >= cfg.GridWidth || c.Y < 0 || c.Y >= cfg.GridHeight {
				t.Fatalf("cell %+v escapes grid %dx%d", c, cfg.GridWidth, cfg.GridHeight)
			}
			cellSet[grid.Point{X: c.X, Y: c.Y}] = true
		}
		for _, o := range art.Objects {
			if !cellSet[o.Position] {
				t.Fatalf("object %+v has no coinciding cell", o)
			}
		}
	})
}

// TestProperty_StairCountsMatchEntryExitRooms exercises spec §8's stair
// count invariant: exactly one stairs-down and one stairs-up object
// whenever an entry/exit room was selected.
func TestProperty_StairCountsMatchEntryExitRooms(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64().Draw(t, "seed")
		roomMin := rapid.IntRange(1, 10).Draw(t, "roomMin")
		roomMax := roomMin + rapid.IntRange(0, 6).Draw(t, "roomSpread")

		cfg, err := Resolve("medium", "classic", &Overrides{
			Seed: &seed, RoomCountMin: &roomMin, RoomCountMax: &roomMax,
		})
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		art, err := Generate(context.Background(), cfg)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		downs, ups := 0, 0
		for _, o := range art.Objects {
			switch o.Type {
			case "stairs-down":
				downs++
			case "stairs-up":
				ups++
			}
		}
		wantDown, wantUp := 0, 0
		if art.Metadata.EntryRoomID >= 0 {
			wantDown = 1
		}
		if art.Metadata.ExitRoomID >= 0 {
			wantUp = 1
		}
		if downs != wantDown || ups != wantUp {
			t.Fatalf("expected %d stairs-down/%d stairs-up, got %d/%d", wantDown, wantUp, downs, ups)
		}
	})
}

// TestProperty_WaterRoomsExcludeEntryAndExit exercises spec §8's water
// exclusion invariant: the entry and exit rooms are never flagged wet.
func TestProperty_WaterRoomsExcludeEntryAndExit(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64().Draw(t, "seed")
		cfg, err := Resolve("medium", "cavern", &Overrides{Seed: &seed})
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		art, err := Generate(context.Background(), cfg)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		for _, id := range art.Metadata.WaterRoomIDs {
			if id == art.Metadata.EntryRoomID || id == art.Metadata.ExitRoomID {
				t.Fatalf("entry/exit room %d flagged wet", id)
			}
		}
	})
}

// TestProperty_StockingWeightsNormalizeRegardlessOfScale checks that
// scaling every stocking weight by the same positive factor does not change
// the config's validity. It does not compute normalized weights itself.
func TestProperty_StockingWeightsNormalizeRegardlessOfScale(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		scale := rapid.Float64Range(0.01, 1000).Draw(t, "scale")
		cfg := validConfig()
		cfg.Stocking.MonsterWeight *= scale
		cfg.Stocking.EmptyWeight *= scale
		cfg.Stocking.FeatureWeight *= scale
		cfg.Stocking.TrapWeight *= scale
		if err := cfg.Validate(); err != nil {
			t.Fatalf("expected scaled weights to remain valid, got %v", err)
		}
	})
}

// TestProperty_OverlapPredicateIsSymmetric exercises spec §8's overlap
// predicate law: rectOverlaps(a, b) == rectOverlaps(b, a).
func TestProperty_OverlapPredicateIsSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := RoomMeta{X: rapid.IntRange(0, 50).Draw(t, "ax"), Y: rapid.IntRange(0, 50).Draw(t, "ay"),
			Width: rapid.IntRange(1, 20).Draw(t, "aw"), Height: rapid.IntRange(1, 20).Draw(t, "ah")}
		b := RoomMeta{X: rapid.IntRange(0, 50).Draw(t, "bx"), Y: rapid.IntRange(0, 50).Draw(t, "by"),
			Width: rapid.IntRange(1, 20).Draw(t, "bw"), Height: rapid.IntRange(1, 20).Draw(t, "bh")}
		if rectOverlaps(a, b) != rectOverlaps(b, a) {
			t.Fatalf("overlap predicate not symmetric for %+v / %+v", a, b)
		}
	})
}

func rectOverlaps(a, b RoomMeta) bool {
	return a.X < b.X+b.Width && b.X < a.X+a.Width && a.Y < b.Y+b.Height && b.Y < a.Y+a.Height
}
