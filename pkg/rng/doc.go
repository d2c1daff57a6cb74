// Package rng provides deterministic random number generation for the dungeon generator.
//
// # Overview
//
// The RNG type ensures reproducible dungeon generation by deriving stage-specific
// seeds from a master seed. This allows each pipeline phase (rooms, connections,
// corridors, doors, stairs/water, stocking) to have independent random sequences
// while the overall generate call stays deterministic.
//
// # Sub-Seed Derivation
//
// Each RNG derives its seed using SHA-256:
//
//	seed_phase = H(masterSeed, phaseName, configHash)
//
// where:
//   - masterSeed: Top-level seed for the entire generate call
//   - phaseName: Pipeline phase identifier (e.g., "rooms", "corridors")
//   - configHash: Hash of the resolved configuration
//
// This ensures:
//  1. Same inputs always produce the same RNG sequence (determinism)
//  2. Different phases get independent random sequences (isolation)
//  3. Config changes result in different sequences (sensitivity)
//
// # Usage
//
//	configHash := cfg.Hash()
//	roomsRNG := rng.New(cfg.Seed, "rooms", configHash)
//	corridorRNG := rng.New(cfg.Seed, "corridors", configHash)
//
//	n := roomsRNG.Int(cfg.RoomCount.Min, cfg.RoomCount.Max)
//	if roomsRNG.Chance(0.3) {
//	    // circle room
//	}
//
// # Thread Safety
//
// RNG instances are NOT thread-safe. A single generate call owns exactly one
// RNG tree; multiple generations may run concurrently only if each owns its
// own RNG instances.
package rng
