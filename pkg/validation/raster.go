package validation

import "fmt"

// getTile retrieves the value at (x, y) in a row-major grid of the given
// dimensions, returning 0 if the position is out of bounds.
func getTile(data []uint32, x, y, width, height int) uint32 {
	if x < 0 || x >= width || y < 0 || y >= height {
		return 0
	}
	idx := y*width + x
	if idx < 0 || idx >= len(data) {
		return 0
	}
	return data[idx]
}

// setTile sets the value at (x, y), erroring if the position is out of bounds.
func setTile(data []uint32, x, y, width, height int, value uint32) error {
	if x < 0 || x >= width || y < 0 || y >= height {
		return fmt.Errorf("position (%d, %d) out of bounds [0, %d) x [0, %d)", x, y, width, height)
	}
	idx := y*width + x
	if idx < 0 || idx >= len(data) {
		return fmt.Errorf("index %d out of data range [0, %d)", idx, len(data))
	}
	data[idx] = value
	return nil
}

// floodFill performs a BFS flood fill from (x, y), replacing every
// 4-connected cell that matches the start cell's value with value.
func floodFill(data []uint32, x, y, width, height int, value uint32) error {
	if x < 0 || x >= width || y < 0 || y >= height {
		return fmt.Errorf("start position (%d, %d) out of bounds", x, y)
	}

	target := getTile(data, x, y, width, height)
	if target == value {
		return nil
	}

	type point struct{ x, y int }
	queue := []point{{x, y}}
	visited := make(map[point]bool)

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		if visited[p] {
			continue
		}
		visited[p] = true

		if getTile(data, p.x, p.y, width, height) != target {
			continue
		}

		if err := setTile(data, p.x, p.y, width, height, value); err != nil {
			return err
		}

		neighbours := []point{
			{p.x - 1, p.y}, {p.x + 1, p.y},
			{p.x, p.y - 1}, {p.x, p.y + 1},
		}
		for _, n := range neighbours {
			if n.x >= 0 && n.x < width && n.y >= 0 && n.y < height && !visited[n] {
				queue = append(queue, n)
			}
		}
	}

	return nil
}

// reachableCount returns the number of cells reachable from (x, y) by
// 4-connected flood fill through cells marked occupied, including the
// start cell itself, without mutating the caller's grid. No check in this
// package calls it; CheckConnectivity reads Metadata.IsolatedRoomIDs.
func reachableCount(occupied []bool, x, y, width, height int) int {
	if x < 0 || x >= width || y < 0 || y >= height || !occupied[y*width+x] {
		return 0
	}

	type point struct{ x, y int }
	visited := make([]bool, len(occupied))
	queue := []point{{x, y}}
	visited[y*width+x] = true
	count := 0

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		count++

		neighbours := []point{
			{p.x - 1, p.y}, {p.x + 1, p.y},
			{p.x, p.y - 1}, {p.x, p.y + 1},
		}
		for _, n := range neighbours {
			if n.x < 0 || n.x >= width || n.y < 0 || n.y >= height {
				continue
			}
			idx := n.y*width + n.x
			if visited[idx] || !occupied[idx] {
				continue
			}
			visited[idx] = true
			queue = append(queue, n)
		}
	}

	return count
}
