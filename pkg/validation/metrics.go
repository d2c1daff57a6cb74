package validation

import (
	"math"

	"github.com/dshills/dungo/pkg/dungeon"
)

// CalculateBranchingFactor returns the average number of corridor
// connections per room (2*edges/rooms, since each connection touches two
// rooms).
func CalculateBranchingFactor(meta dungeon.Metadata) float64 {
	if len(meta.Rooms) == 0 {
		return 0
	}
	return 2 * float64(len(meta.Connections)) / float64(len(meta.Rooms))
}

// CalculateAverageCorridorLength returns the Chebyshev distance between each
// corridor's two room centers, averaged over every corridor. Used as a
// cheap proxy for actual carved-path length without re-walking cells.
func CalculateAverageCorridorLength(meta dungeon.Metadata) float64 {
	if len(meta.CorridorResult) == 0 {
		return 0
	}
	centers := make(map[int][2]int, len(meta.Rooms))
	for _, rm := range meta.Rooms {
		centers[rm.ID] = [2]int{rm.X + rm.Width/2, rm.Y + rm.Height/2}
	}
	total := 0.0
	for _, c := range meta.CorridorResult {
		a, okA := centers[c.A]
		b, okB := centers[c.B]
		if !okA || !okB {
			continue
		}
		dx := math.Abs(float64(a[0] - b[0]))
		dy := math.Abs(float64(a[1] - b[1]))
		total += math.Max(dx, dy)
	}
	return total / float64(len(meta.CorridorResult))
}

// CalculateRoomDensity returns placed room count over grid area, in rooms
// per 100 cells, a scale-free measure of how tightly packed a dungeon is.
func CalculateRoomDensity(meta dungeon.Metadata) float64 {
	area := meta.GridWidth * meta.GridHeight
	if area == 0 {
		return 0
	}
	return float64(len(meta.Rooms)) * 100 / float64(area)
}

// CalculateDoorsPerRoom returns the average number of doors per room.
func CalculateDoorsPerRoom(meta dungeon.Metadata) float64 {
	if meta.RoomCount == 0 {
		return 0
	}
	return float64(meta.DoorCount) / float64(meta.RoomCount)
}

// CalculateSecretDoorRatio returns the fraction of doors that are secret.
func CalculateSecretDoorRatio(meta dungeon.Metadata) float64 {
	if meta.DoorCount == 0 {
		return 0
	}
	return float64(meta.SecretDoorCount) / float64(meta.DoorCount)
}

// CalculateWetRoomRatio returns the fraction of rooms flagged as water.
func CalculateWetRoomRatio(meta dungeon.Metadata) float64 {
	if meta.RoomCount == 0 {
		return 0
	}
	return float64(len(meta.WaterRoomIDs)) / float64(meta.RoomCount)
}
