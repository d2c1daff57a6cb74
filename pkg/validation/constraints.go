package validation

import (
	"fmt"

	"github.com/dshills/dungo/pkg/dungeon"
)

// CheckConnectivity ensures every placed room is reachable from the others
// (spec §8's connectivity invariant). A single room is trivially connected.
func CheckConnectivity(meta dungeon.Metadata) ConstraintResult {
	if len(meta.Rooms) == 0 {
		return NewHardConstraintResult("Connectivity", "isolatedRoomIDs == []", false, "artifact has no rooms")
	}
	if len(meta.IsolatedRoomIDs) > 0 {
		return NewHardConstraintResult("Connectivity", "isolatedRoomIDs == []", false,
			fmt.Sprintf("rooms unreachable from the rest of the dungeon: %v", meta.IsolatedRoomIDs))
	}
	return NewHardConstraintResult("Connectivity", "isolatedRoomIDs == []", true, "all rooms are reachable")
}

// CheckGridContainment ensures every room's bounding box stays within the
// generated grid.
func CheckGridContainment(meta dungeon.Metadata) ConstraintResult {
	for _, rm := range meta.Rooms {
		if rm.X < 0 || rm.Y < 0 || rm.X+rm.Width > meta.GridWidth || rm.Y+rm.Height > meta.GridHeight {
			return NewHardConstraintResult("GridContainment", "room.bounds ⊆ grid", false,
				fmt.Sprintf("room %d bounding box escapes the %dx%d grid", rm.ID, meta.GridWidth, meta.GridHeight))
		}
	}
	return NewHardConstraintResult("GridContainment", "room.bounds ⊆ grid", true, "every room stays within the grid")
}

// CheckRoomSeparation ensures no two room bounding boxes overlap.
func CheckRoomSeparation(meta dungeon.Metadata) ConstraintResult {
	for i := 0; i < len(meta.Rooms); i++ {
		for j := i + 1; j < len(meta.Rooms); j++ {
			a, b := meta.Rooms[i], meta.Rooms[j]
			if roomsOverlap(a, b) {
				return NewHardConstraintResult("RoomSeparation", "¬overlaps(a, b)", false,
					fmt.Sprintf("rooms %d and %d overlap", a.ID, b.ID))
			}
		}
	}
	return NewHardConstraintResult("RoomSeparation", "¬overlaps(a, b)", true, "no two rooms overlap")
}

func roomsOverlap(a, b dungeon.RoomMeta) bool {
	return a.X < b.X+b.Width && b.X < a.X+a.Width && a.Y < b.Y+b.Height && b.Y < a.Y+a.Height
}

// CheckCorridorEndpoints ensures every corridor references two rooms that
// actually exist in the artifact's Metadata.
func CheckCorridorEndpoints(meta dungeon.Metadata) ConstraintResult {
	ids := make(map[int]bool, len(meta.Rooms))
	for _, rm := range meta.Rooms {
		ids[rm.ID] = true
	}
	for _, c := range meta.CorridorResult {
		if !ids[c.A] || !ids[c.B] {
			return NewHardConstraintResult("CorridorEndpoints", "corridor.{a,b} ∈ rooms", false,
				fmt.Sprintf("corridor references unknown room(s) %d/%d", c.A, c.B))
		}
	}
	return NewHardConstraintResult("CorridorEndpoints", "corridor.{a,b} ∈ rooms", true, "every corridor connects real rooms")
}

// CheckStairCounts ensures exactly one stairs-down and one stairs-up object
// are present whenever an entry/exit room was selected (spec §8).
func CheckStairCounts(artifact *dungeon.Artifact) ConstraintResult {
	downs, ups := 0, 0
	for _, o := range artifact.Objects {
		switch o.Type {
		case "stairs-down":
			downs++
		case "stairs-up":
			ups++
		}
	}
	wantDown, wantUp := 0, 0
	if artifact.Metadata.EntryRoomID >= 0 {
		wantDown = 1
	}
	if artifact.Metadata.ExitRoomID >= 0 {
		wantUp = 1
	}
	if downs != wantDown || ups != wantUp {
		return NewHardConstraintResult("StairCounts", "count(stairs-down)==entry?1:0 ∧ count(stairs-up)==exit?1:0", false,
			fmt.Sprintf("expected %d stairs-down/%d stairs-up, found %d/%d", wantDown, wantUp, downs, ups))
	}
	return NewHardConstraintResult("StairCounts", "count(stairs-down)==entry?1:0 ∧ count(stairs-up)==exit?1:0", true,
		"stair object counts match the selected entry/exit rooms")
}

// CheckWaterExclusion ensures the entry and exit rooms are never flagged wet.
func CheckWaterExclusion(meta dungeon.Metadata) ConstraintResult {
	for _, id := range meta.WaterRoomIDs {
		if id == meta.EntryRoomID || id == meta.ExitRoomID {
			return NewHardConstraintResult("WaterExclusion", "entry, exit ∉ waterRoomIDs", false,
				fmt.Sprintf("entry/exit room %d is flagged wet", id))
		}
	}
	return NewHardConstraintResult("WaterExclusion", "entry, exit ∉ waterRoomIDs", true, "entry and exit rooms are dry")
}

// CheckObjectCellCoincidence ensures every placed object's position
// coincides with a cell the materializer actually emitted.
func CheckObjectCellCoincidence(artifact *dungeon.Artifact) ConstraintResult {
	cellSet := make(map[[2]int]bool, len(artifact.Cells))
	for _, c := range artifact.Cells {
		cellSet[[2]int{c.X, c.Y}] = true
	}
	for _, o := range artifact.Objects {
		if !cellSet[[2]int{o.Position.X, o.Position.Y}] {
			return NewHardConstraintResult("ObjectCellCoincidence", "object.position ∈ cells", false,
				fmt.Sprintf("object %d (%s) at (%d,%d) has no coinciding cell", o.ID, o.Type, o.Position.X, o.Position.Y))
		}
	}
	return NewHardConstraintResult("ObjectCellCoincidence", "object.position ∈ cells", true, "every object sits on a real cell")
}

// CheckRoomTarget is a soft constraint: the placed room count should be
// close to the requested range. A large shortfall is still a valid
// generation (spec §7's RoomTargetUnderfilled is not fatal) but is worth
// flagging for review.
func CheckRoomTarget(meta dungeon.Metadata) ConstraintResult {
	if meta.RequestedRoomCount == 0 {
		return NewSoftConstraintResult("RoomTarget", "roomCount / requestedRoomCount", 1.0, "no room target requested")
	}
	ratio := float64(meta.RoomCount) / float64(meta.RequestedRoomCount)
	if ratio > 1 {
		ratio = 1
	}
	details := fmt.Sprintf("placed %d of %d requested rooms (%.0f%%)", meta.RoomCount, meta.RequestedRoomCount, ratio*100)
	return NewSoftConstraintResult("RoomTarget", "roomCount / requestedRoomCount", ratio, details)
}

// CheckDoorRate is a soft constraint: doors should scale roughly linearly
// with room count rather than being wildly sparse or dense.
func CheckDoorRate(meta dungeon.Metadata) ConstraintResult {
	if meta.RoomCount == 0 {
		return NewSoftConstraintResult("DoorRate", "doorCount / roomCount", 1.0, "no rooms to evaluate")
	}
	rate := float64(meta.DoorCount) / float64(meta.RoomCount)
	score := 1.0
	if rate > 4 {
		score = 4 / rate
	}
	return NewSoftConstraintResult("DoorRate", "doorCount / roomCount", score,
		fmt.Sprintf("%.2f doors per room", rate))
}
