// Package stocking implements ObjectPlacer: it rolls a category for each
// non-entry, non-exit room, computes an object budget from the room's
// cell count, identifies corner/wall/center/scattered placement zones,
// and places thematic objects (monsters, features, traps, treasure) by
// each type's ordered zone preference. Water rooms and corridor-only
// cells get their own specialized placement passes.
package stocking
