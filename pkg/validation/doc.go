// Package validation provides constraint checking and metrics calculation
// for generated dungeons.
//
// It validates the hard invariants spec §8 requires of every Artifact
// (connectivity, containment, corridor/stair well-formedness, object-cell
// coincidence), reports
// soft constraints as warnings rather than failures, and computes a handful
// of quality metrics a caller can use to compare generations.
//
// # Hard Constraints
//
//   - Connectivity: every placed room must be reachable from the others
//   - Grid Containment: every room's bounding box must stay within the grid
//   - Room Separation: no two rooms may overlap
//   - Corridor Endpoints: every corridor must reference two real rooms
//   - Stair Counts: exactly one stairs-down/stairs-up per selected entry/exit
//   - Water Exclusion: entry and exit rooms are never flagged wet
//
// # Soft Constraints
//
//   - Room Target: the placed room count should be close to the requested
//     range (a large shortfall still passes generation, but is worth flagging)
//   - Door Rate: the door count should be broadly proportional to room count
//
// # Usage Example
//
//	validator := validation.NewValidator()
//	report, err := validator.Validate(ctx, artifact, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if !report.Passed {
//	    log.Printf("Validation failed: %v", report.Errors)
//	}
package validation
