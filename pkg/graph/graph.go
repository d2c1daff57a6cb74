package graph

import "fmt"

// Graph is the connection graph over a set of room ids: an adjacency list
// built from a slice of Connections, plus the BFS-based queries later
// phases and validation need.
type Graph struct {
	RoomIDs     []int
	Connections []Connection
	Adjacency   map[int][]int
}

// NewGraph builds a Graph's adjacency list from a set of room ids and
// connections. Connections referencing an id outside roomIDs are an error.
func NewGraph(roomIDs []int, connections []Connection) (*Graph, error) {
	known := make(map[int]bool, len(roomIDs))
	adjacency := make(map[int][]int, len(roomIDs))
	for _, id := range roomIDs {
		known[id] = true
		if _, exists := adjacency[id]; !exists {
			adjacency[id] = nil
		}
	}

	for _, c := range connections {
		if !known[c.A] || !known[c.B] {
			return nil, fmt.Errorf("graph: connection %s references unknown room", c)
		}
		adjacency[c.A] = append(adjacency[c.A], c.B)
		adjacency[c.B] = append(adjacency[c.B], c.A)
	}

	return &Graph{
		RoomIDs:     roomIDs,
		Connections: connections,
		Adjacency:   adjacency,
	}, nil
}

// IsConnected reports whether every room is reachable from every other
// room. An empty or single-room graph is trivially connected.
func (g *Graph) IsConnected() bool {
	if len(g.RoomIDs) <= 1 {
		return true
	}
	reachable := g.GetReachable(g.RoomIDs[0])
	return len(reachable) == len(g.RoomIDs)
}

// GetReachable returns every room id reachable from start via BFS,
// including start itself.
func (g *Graph) GetReachable(start int) map[int]bool {
	reachable := make(map[int]bool)
	if _, exists := g.Adjacency[start]; !exists {
		return reachable
	}

	queue := []int{start}
	reachable[start] = true
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, neighbor := range g.Adjacency[current] {
			if !reachable[neighbor] {
				reachable[neighbor] = true
				queue = append(queue, neighbor)
			}
		}
	}
	return reachable
}

// GetPath finds the shortest path between two rooms using BFS. Returns an
// error if no path exists.
func (g *Graph) GetPath(from, to int) ([]int, error) {
	if _, exists := g.Adjacency[from]; !exists {
		return nil, fmt.Errorf("graph: room %d does not exist", from)
	}
	if _, exists := g.Adjacency[to]; !exists {
		return nil, fmt.Errorf("graph: room %d does not exist", to)
	}
	if from == to {
		return []int{from}, nil
	}

	queue := []int{from}
	visited := map[int]bool{from: true}
	parent := make(map[int]int)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, neighbor := range g.Adjacency[current] {
			if visited[neighbor] {
				continue
			}
			visited[neighbor] = true
			parent[neighbor] = current
			queue = append(queue, neighbor)

			if neighbor == to {
				path := []int{neighbor}
				for node := current; ; node = parent[node] {
					path = append([]int{node}, path...)
					if node == from {
						break
					}
				}
				return path, nil
			}
		}
	}

	return nil, fmt.Errorf("graph: no path exists from %d to %d", from, to)
}
