package validation

import (
	"context"
	"fmt"

	"github.com/dshills/dungo/pkg/dungeon"
)

// Validator validates a generated Artifact against spec §8's invariants and
// reports quality metrics alongside.
type Validator interface {
	Validate(ctx context.Context, artifact *dungeon.Artifact, cfg dungeon.Config) (*ValidationReport, error)
}

// DefaultValidator implements Validator with every hard and soft check this
// package knows about.
type DefaultValidator struct{}

// NewValidator creates a validator with default settings.
func NewValidator() Validator {
	return &DefaultValidator{}
}

// Validate checks all hard and soft constraints and computes metrics.
func (v *DefaultValidator) Validate(ctx context.Context, artifact *dungeon.Artifact, cfg dungeon.Config) (*ValidationReport, error) {
	if artifact == nil {
		return nil, fmt.Errorf("artifact cannot be nil")
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	report := NewValidationReport()

	v.checkHardConstraints(artifact, report)
	v.checkSoftConstraints(artifact, report)
	report.Metrics = v.computeMetrics(artifact)

	report.Passed = len(report.Errors) == 0
	return report, nil
}

func (v *DefaultValidator) checkHardConstraints(artifact *dungeon.Artifact, report *ValidationReport) {
	checks := []ConstraintResult{
		CheckConnectivity(artifact.Metadata),
		CheckGridContainment(artifact.Metadata),
		CheckRoomSeparation(artifact.Metadata),
		CheckCorridorEndpoints(artifact.Metadata),
		CheckStairCounts(artifact),
		CheckWaterExclusion(artifact.Metadata),
		CheckObjectCellCoincidence(artifact),
	}
	for _, result := range checks {
		report.HardConstraintResults = append(report.HardConstraintResults, result)
		if !result.Satisfied {
			report.Passed = false
			report.Errors = append(report.Errors, result.Details)
		}
	}
}

func (v *DefaultValidator) checkSoftConstraints(artifact *dungeon.Artifact, report *ValidationReport) {
	checks := []ConstraintResult{
		CheckRoomTarget(artifact.Metadata),
		CheckDoorRate(artifact.Metadata),
	}
	for _, result := range checks {
		report.SoftConstraintResults = append(report.SoftConstraintResults, result)
		if result.Score < 0.8 {
			report.Warnings = append(report.Warnings, result.Details)
		}
	}
}

func (v *DefaultValidator) computeMetrics(artifact *dungeon.Artifact) *Metrics {
	meta := artifact.Metadata
	return &Metrics{
		BranchingFactor:    CalculateBranchingFactor(meta),
		AverageCorridorLen: CalculateAverageCorridorLength(meta),
		RoomDensity:        CalculateRoomDensity(meta),
		DoorsPerRoom:       CalculateDoorsPerRoom(meta),
		SecretDoorRatio:    CalculateSecretDoorRatio(meta),
		WetRoomRatio:       CalculateWetRoomRatio(meta),
	}
}
