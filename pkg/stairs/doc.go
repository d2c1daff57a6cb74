// Package stairs implements StairAndWaterPass: it chooses the dungeon's
// entry and exit rooms, places their stairs, and rolls each remaining
// room into a water room whose cells are emitted with a water overlay
// color and opacity.
package stairs
