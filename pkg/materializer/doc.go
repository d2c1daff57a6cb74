// Package materializer implements CellMaterializer: it merges room
// cells, corridor cells, and water cells keyed by position into the
// dungeon's final cell collection, resolving overlaps by room-wins,
// full-wins-over-segments, and water-overwrites-everything rules.
package materializer
