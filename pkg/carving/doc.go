// Package carving routes and materializes the corridors that connect
// placed rooms. Given a connection graph edge, it produces an ordered
// centerline between the two rooms' centers, expands that centerline by
// width into a cell set, and (style permitting) roughens the centerline
// with an organic wobble or replaces it with a diagonal route.
package carving
