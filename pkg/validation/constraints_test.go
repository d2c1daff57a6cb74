package validation

import (
	"testing"

	"github.com/dshills/dungo/pkg/dungeon"
	"github.com/dshills/dungo/pkg/grid"
)

func twoRoomMeta(overlap bool) dungeon.Metadata {
	b := dungeon.RoomMeta{ID: 1, X: 10, Y: 10, Width: 5, Height: 5, Shape: "rectangle"}
	if overlap {
		b.X, b.Y = 2, 2
	}
	return dungeon.Metadata{
		GridWidth: 40, GridHeight: 40,
		Rooms: []dungeon.RoomMeta{
			{ID: 0, X: 0, Y: 0, Width: 5, Height: 5, Shape: "rectangle"},
			b,
		},
	}
}

func TestCheckRoomSeparation_PassesWhenDisjoint(t *testing.T) {
	if r := CheckRoomSeparation(twoRoomMeta(false)); !r.Satisfied {
		t.Errorf("expected disjoint rooms to pass, got %q", r.Details)
	}
}

func TestCheckRoomSeparation_FailsWhenOverlapping(t *testing.T) {
	if r := CheckRoomSeparation(twoRoomMeta(true)); r.Satisfied {
		t.Error("expected overlapping rooms to fail")
	}
}

func TestCheckGridContainment_FailsWhenRoomEscapesGrid(t *testing.T) {
	meta := dungeon.Metadata{GridWidth: 10, GridHeight: 10, Rooms: []dungeon.RoomMeta{
		{ID: 0, X: 8, Y: 0, Width: 5, Height: 5},
	}}
	if r := CheckGridContainment(meta); r.Satisfied {
		t.Error("expected room escaping grid bounds to fail")
	}
}

func TestCheckConnectivity_FailsOnIsolatedRoom(t *testing.T) {
	meta := dungeon.Metadata{
		Rooms:           []dungeon.RoomMeta{{ID: 0}, {ID: 1}},
		IsolatedRoomIDs: []int{1},
	}
	if r := CheckConnectivity(meta); r.Satisfied {
		t.Error("expected an isolated room to fail connectivity")
	}
}

func TestCheckConnectivity_PassesWithNoIsolatedRooms(t *testing.T) {
	meta := dungeon.Metadata{Rooms: []dungeon.RoomMeta{{ID: 0}, {ID: 1}}}
	if r := CheckConnectivity(meta); !r.Satisfied {
		t.Errorf("expected connectivity to pass, got %q", r.Details)
	}
}

func TestCheckCorridorEndpoints_FailsOnUnknownRoom(t *testing.T) {
	meta := dungeon.Metadata{
		Rooms:          []dungeon.RoomMeta{{ID: 0}, {ID: 1}},
		CorridorResult: []dungeon.CorridorMeta{{A: 0, B: 5}},
	}
	if r := CheckCorridorEndpoints(meta); r.Satisfied {
		t.Error("expected corridor referencing an unknown room to fail")
	}
}

func TestCheckWaterExclusion_FailsWhenEntryIsWet(t *testing.T) {
	meta := dungeon.Metadata{EntryRoomID: 0, ExitRoomID: 1, WaterRoomIDs: []int{0}}
	if r := CheckWaterExclusion(meta); r.Satisfied {
		t.Error("expected a wet entry room to fail")
	}
}

func TestCheckStairCounts_FailsWhenStairsMissing(t *testing.T) {
	artifact := &dungeon.Artifact{Metadata: dungeon.Metadata{EntryRoomID: 0, ExitRoomID: 1}}
	if r := CheckStairCounts(artifact); r.Satisfied {
		t.Error("expected missing stairs-down/up objects to fail")
	}
}

func TestCheckStairCounts_PassesWhenPresent(t *testing.T) {
	artifact := &dungeon.Artifact{
		Metadata: dungeon.Metadata{EntryRoomID: 0, ExitRoomID: 1},
		Objects: []dungeon.Object{
			{ID: 0, Type: "stairs-down"},
			{ID: 1, Type: "stairs-up"},
		},
	}
	if r := CheckStairCounts(artifact); !r.Satisfied {
		t.Errorf("expected present stairs to pass, got %q", r.Details)
	}
}

func TestCheckObjectCellCoincidence_FailsWhenObjectHasNoCell(t *testing.T) {
	artifact := &dungeon.Artifact{
		Cells:   []dungeon.Cell{{X: 0, Y: 0}},
		Objects: []dungeon.Object{{ID: 0, Type: "torch-wall", Position: grid.Point{X: 5, Y: 5}}},
	}
	if r := CheckObjectCellCoincidence(artifact); r.Satisfied {
		t.Error("expected object with no coinciding cell to fail")
	}
}

func TestCheckRoomTarget_ScoresShortfall(t *testing.T) {
	meta := dungeon.Metadata{RequestedRoomCount: 10, RoomCount: 5}
	r := CheckRoomTarget(meta)
	if r.Score != 0.5 {
		t.Errorf("expected score 0.5 for a 50%% shortfall, got %f", r.Score)
	}
}

func TestCheckDoorRate_PenalizesExcessiveDoors(t *testing.T) {
	meta := dungeon.Metadata{RoomCount: 2, DoorCount: 20}
	r := CheckDoorRate(meta)
	if r.Score >= 1.0 {
		t.Error("expected an excessive door rate to score below 1.0")
	}
}
