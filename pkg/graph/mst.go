package graph

import (
	"math"
	"sort"

	"github.com/dshills/dungo/pkg/grid"
	"github.com/dshills/dungo/pkg/rng"
)

// Build computes the connection graph for a set of rooms per spec §4.4:
// a minimum spanning tree over inter-center Euclidean distances (Prim's
// algorithm from room 0), then independently rolls every non-MST edge for
// inclusion with probability loopChance. The returned slice preserves
// insertion order: MST edges first, then accepted loop edges in
// distance-sorted order (ties broken lexicographically on (a, b)).
func Build(rooms []grid.Room, loopChance float64, r *rng.RNG) []Connection {
	n := len(rooms)
	if n <= 1 {
		return nil
	}

	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		ci := rooms[i].Center()
		for j := i + 1; j < n; j++ {
			cj := rooms[j].Center()
			d := math.Hypot(float64(ci.X-cj.X), float64(ci.Y-cj.Y))
			dist[i][j] = d
			dist[j][i] = d
		}
	}

	mstEdges, inTree := primMST(dist, n)

	type loopCandidate struct {
		conn Connection
		dist float64
	}
	var loopCandidates []loopCandidate
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if inTree[i][j] {
				continue
			}
			loopCandidates = append(loopCandidates, loopCandidate{
				conn: Connection{A: i, B: j},
				dist: dist[i][j],
			})
		}
	}
	sort.Slice(loopCandidates, func(a, b int) bool {
		if loopCandidates[a].dist != loopCandidates[b].dist {
			return loopCandidates[a].dist < loopCandidates[b].dist
		}
		if loopCandidates[a].conn.A != loopCandidates[b].conn.A {
			return loopCandidates[a].conn.A < loopCandidates[b].conn.A
		}
		return loopCandidates[a].conn.B < loopCandidates[b].conn.B
	})

	result := make([]Connection, 0, len(mstEdges)+len(loopCandidates))
	result = append(result, mstEdges...)
	for _, lc := range loopCandidates {
		if r.Chance(loopChance) {
			result = append(result, lc.conn)
		}
	}
	return result
}

// primMST runs Prim's algorithm starting from room 0 over the dense
// distance matrix dist, returning the n-1 MST edges (in the order they
// were added) and a symmetric boolean matrix marking which pairs are in
// the tree.
func primMST(dist [][]float64, n int) ([]Connection, [][]bool) {
	inTree := make([][]bool, n)
	for i := range inTree {
		inTree[i] = make([]bool, n)
	}

	visited := make([]bool, n)
	visited[0] = true
	visitedCount := 1

	edges := make([]Connection, 0, n-1)

	for visitedCount < n {
		bestFrom, bestTo := -1, -1
		bestDist := math.Inf(1)

		for i := 0; i < n; i++ {
			if !visited[i] {
				continue
			}
			for j := 0; j < n; j++ {
				if visited[j] || i == j {
					continue
				}
				d := dist[i][j]
				if d < bestDist ||
					(d == bestDist && lexLess(i, j, bestFrom, bestTo)) {
					bestDist = d
					bestFrom, bestTo = i, j
				}
			}
		}

		if bestTo == -1 {
			break
		}

		visited[bestTo] = true
		visitedCount++
		a, b := bestFrom, bestTo
		if a > b {
			a, b = b, a
		}
		edges = append(edges, Connection{A: a, B: b})
		inTree[a][b] = true
		inTree[b][a] = true
	}

	return edges, inTree
}

// lexLess reports whether (i, j) lexicographically precedes (bestI, bestJ),
// used to break equal-distance ties deterministically.
func lexLess(i, j, bestI, bestJ int) bool {
	if bestI == -1 {
		return true
	}
	if i != bestI {
		return i < bestI
	}
	return j < bestJ
}
