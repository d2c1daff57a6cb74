// Package graph builds the connection graph between placed rooms: a
// minimum spanning tree over inter-center distances plus probabilistic
// extra loop edges (spec §4.4), and the BFS-based connectivity helpers
// later phases and validation use to reason about the result.
package graph

import "fmt"

// Connection is an unordered pair of room ids.
type Connection struct {
	A, B int
}

// Normalized returns the connection with A <= B, the canonical form used
// for deduplication and lexicographic tie-breaking.
func (c Connection) Normalized() Connection {
	if c.A <= c.B {
		return c
	}
	return Connection{A: c.B, B: c.A}
}

// String returns a human-readable representation of the connection.
func (c Connection) String() string {
	return fmt.Sprintf("(%d-%d)", c.A, c.B)
}
