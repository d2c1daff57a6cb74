package dungeon

import (
	"context"
	"testing"

	"github.com/dshills/dungo/pkg/grid"
)

func TestGenerate_SmallClassicSeed42(t *testing.T) {
	cfg, err := Resolve("small", "classic", &Overrides{Seed: u64p(42)})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	art, err := Generate(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if art.Metadata.RoomCount < 3 || art.Metadata.RoomCount > 5 {
		t.Errorf("expected actualRoomCount in [3,5], got %d", art.Metadata.RoomCount)
	}
	for _, c := range art.Metadata.CorridorResult {
		if c.Width != 1 {
			t.Errorf("expected every corridor width 1 for small preset, got %d", c.Width)
		}
		if c.HasDiagonals {
			t.Error("expected zero diagonal corridors for small preset (diagonalCorridorChance=0)")
		}
	}
	if art.Metadata.DoorCount < 0 || art.Metadata.DoorCount > art.Metadata.RoomCount*4 {
		t.Errorf("door count %d outside a plausible range for %d rooms", art.Metadata.DoorCount, art.Metadata.RoomCount)
	}
	assertOneStairsDownOneStairsUp(t, art)
}

func TestGenerate_MediumCavernSeed7(t *testing.T) {
	cfg, err := Resolve("medium", "cavern", &Overrides{Seed: u64p(7)})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	art, err := Generate(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for _, o := range art.Objects {
		if o.Type == "door-horizontal" || o.Type == "door-vertical" || o.Type == "secret-door" {
			t.Errorf("expected zero doors with doorChance=0, found %+v", o)
		}
	}
}

func TestGenerate_LargeFortressSeed101HasNoCircleRooms(t *testing.T) {
	cfg, err := Resolve("large", "fortress", &Overrides{Seed: u64p(101)})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	art, err := Generate(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for _, rm := range art.Metadata.Rooms {
		if rm.Shape == "circle" {
			t.Errorf("expected zero circle rooms with circleChance=0, found room %d", rm.ID)
		}
	}
}

func TestGenerate_SingleRoomDegenerateHasNoConnectionsOrDoors(t *testing.T) {
	one := 1
	cfg, err := Resolve("small", "classic", &Overrides{Seed: u64p(5), RoomCountMin: &one, RoomCountMax: &one})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	art, err := Generate(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(art.Metadata.Connections) != 0 {
		t.Errorf("expected zero connections for a single room, got %d", len(art.Metadata.Connections))
	}
	for _, o := range art.Objects {
		if o.Type == "door-horizontal" || o.Type == "door-vertical" || o.Type == "secret-door" {
			t.Errorf("expected zero doors for a single room, found %+v", o)
		}
	}
	assertOneStairsDownOneStairsUp(t, art)
}

func TestGenerate_Determinism(t *testing.T) {
	cfg, err := Resolve("medium", "crypt", &Overrides{Seed: u64p(99)})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	a1, err := Generate(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	a2, err := Generate(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(a1.Cells) != len(a2.Cells) || len(a1.Objects) != len(a2.Objects) {
		t.Fatalf("non-deterministic artifact sizes: cells %d/%d objects %d/%d",
			len(a1.Cells), len(a2.Cells), len(a1.Objects), len(a2.Objects))
	}
	for i := range a1.Cells {
		if a1.Cells[i] != a2.Cells[i] {
			t.Errorf("cell %d differs between runs: %+v vs %+v", i, a1.Cells[i], a2.Cells[i])
		}
	}
	for i := range a1.Objects {
		if a1.Objects[i] != a2.Objects[i] {
			t.Errorf("object %d differs between runs: %+v vs %+v", i, a1.Objects[i], a2.Objects[i])
		}
	}
}

func TestGenerate_EveryCellWithinGridBounds(t *testing.T) {
	cfg, err := Resolve("medium", "classic", &Overrides{Seed: u64p(3)})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	art, err := Generate(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for _, c := range art.Cells {
		if c.X < 0 || c.X >= cfg.GridWidth || c.Y < 0 || c.Y >= cfg.GridHeight {
			t.Errorf("cell %+v outside grid %dx%d", c, cfg.GridWidth, cfg.GridHeight)
		}
	}
}

func TestGenerate_EveryObjectPositionHasACell(t *testing.T) {
	cfg, err := Resolve("small", "classic", &Overrides{Seed: u64p(11)})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	art, err := Generate(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	cellSet := make(map[grid.Point]bool, len(art.Cells))
	for _, c := range art.Cells {
		cellSet[grid.Point{X: c.X, Y: c.Y}] = true
	}
	for _, o := range art.Objects {
		if !cellSet[o.Position] {
			t.Errorf("object %+v has no coinciding cell", o)
		}
	}
}

func TestGenerate_ConfigInvalidFailsTheCall(t *testing.T) {
	cfg := validConfig()
	cfg.GridWidth = 0
	if _, err := Generate(context.Background(), cfg); err == nil {
		t.Fatal("expected ConfigInvalid to fail Generate")
	}
}

func assertOneStairsDownOneStairsUp(t *testing.T, art *Artifact) {
	t.Helper()
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
	if downs != wantDown {
		t.Errorf("expected %d stairs-down, got %d", wantDown, downs)
	}
	if ups != wantUp {
		t.Errorf("expected %d stairs-up, got %d", wantUp, ups)
	}
}

func u64p(v uint64) *uint64 { return &v }
