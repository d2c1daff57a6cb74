// Package dungeon orchestrates the full generation pipeline described by
// the spec: room placement, connection graph, corridor carving, door
// inference, the stair-and-water pass, cell materialization, and object
// stocking. Generate runs every phase in that order against a resolved
// Config and returns the wire-format Artifact. Restock re-runs only the
// stocking phase against a previously-returned Metadata.
package dungeon
