// Package doors infers door placements from carved corridors: it walks
// each corridor's centerline to find where it crosses a room boundary,
// validates and widens the candidates, groups contiguous runs, and rolls
// each group into a door, a wide double door, or a secret door.
package doors
