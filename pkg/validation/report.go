package validation

import (
	"fmt"
	"strings"
)

// Constraint names the rule a ConstraintResult evaluated.
type Constraint struct {
	Kind     string
	Severity string // "hard" or "soft"
	Expr     string
}

// ConstraintResult is the outcome of a single hard or soft constraint check.
type ConstraintResult struct {
	Constraint *Constraint
	Satisfied  bool
	Score      float64
	Details    string
}

// Metrics summarizes quality measures computed over a validated Artifact.
type Metrics struct {
	BranchingFactor    float64
	AverageCorridorLen float64
	RoomDensity        float64 // rooms per 100 grid cells
	DoorsPerRoom       float64
	SecretDoorRatio    float64
	WetRoomRatio       float64
}

// ValidationReport is Validate's result: pass/fail plus every constraint
// checked and the computed metrics.
type ValidationReport struct {
	Passed                bool
	HardConstraintResults []ConstraintResult
	SoftConstraintResults []ConstraintResult
	Warnings              []string
	Errors                []string
	Metrics               *Metrics
}

// NewValidationReport creates a new empty validation report.
func NewValidationReport() *ValidationReport {
	return &ValidationReport{
		Passed:                true,
		HardConstraintResults: []ConstraintResult{},
		SoftConstraintResults: []ConstraintResult{},
		Warnings:              []string{},
		Errors:                []string{},
	}
}

// NewHardConstraintResult creates a result for a hard constraint.
// Hard constraints are pass/fail (score is 1.0 or 0.0).
func NewHardConstraintResult(kind, expr string, satisfied bool, details string) ConstraintResult {
	score := 0.0
	if satisfied {
		score = 1.0
	}
	return ConstraintResult{
		Constraint: &Constraint{Kind: kind, Severity: "hard", Expr: expr},
		Satisfied:  satisfied,
		Score:      score,
		Details:    details,
	}
}

// NewSoftConstraintResult creates a result for a soft constraint.
// Soft constraints have a continuous score from 0.0 to 1.0.
func NewSoftConstraintResult(kind, expr string, score float64, details string) ConstraintResult {
	return ConstraintResult{
		Constraint: &Constraint{Kind: kind, Severity: "soft", Expr: expr},
		Satisfied:  score >= 0.8,
		Score:      score,
		Details:    details,
	}
}

// Summary returns a human-readable summary of the validation report.
func Summary(report *ValidationReport) string {
	var b strings.Builder

	b.WriteString("=== Validation Report ===\n\n")
	if report.Passed {
		b.WriteString("Status: PASSED\n")
	} else {
		b.WriteString("Status: FAILED\n")
	}

	if report.Metrics != nil {
		b.WriteString("\n=== Metrics ===\n")
		b.WriteString(fmt.Sprintf("Branching Factor: %.2f\n", report.Metrics.BranchingFactor))
		b.WriteString(fmt.Sprintf("Average Corridor Length: %.2f\n", report.Metrics.AverageCorridorLen))
		b.WriteString(fmt.Sprintf("Room Density: %.2f\n", report.Metrics.RoomDensity))
		b.WriteString(fmt.Sprintf("Doors Per Room: %.2f\n", report.Metrics.DoorsPerRoom))
		b.WriteString(fmt.Sprintf("Secret Door Ratio: %.2f\n", report.Metrics.SecretDoorRatio))
		b.WriteString(fmt.Sprintf("Wet Room Ratio: %.2f\n", report.Metrics.WetRoomRatio))
	}

	b.WriteString("\n=== Hard Constraints ===\n")
	passedHard := 0
	for _, result := range report.HardConstraintResults {
		if result.Satisfied {
			passedHard++
		}
	}
	b.WriteString(fmt.Sprintf("Passed: %d/%d\n", passedHard, len(report.HardConstraintResults)))
	for i, result := range report.HardConstraintResults {
		status := "PASS"
		if !result.Satisfied {
			status = "FAIL"
		}
		b.WriteString(fmt.Sprintf("  %d. [%s] %s: %s\n", i+1, status, result.Constraint.Kind, result.Details))
	}

	b.WriteString("\n=== Soft Constraints ===\n")
	if len(report.SoftConstraintResults) == 0 {
		b.WriteString("None evaluated\n")
	} else {
		for i, result := range report.SoftConstraintResults {
			b.WriteString(fmt.Sprintf("  %d. %s (score: %.2f): %s\n",
				i+1, result.Constraint.Kind, result.Score, result.Details))
		}
	}

	if len(report.Errors) > 0 {
		b.WriteString("\n=== Errors ===\n")
		for i, err := range report.Errors {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err))
		}
	}

	if len(report.Warnings) > 0 {
		b.WriteString("\n=== Warnings ===\n")
		for i, warn := range report.Warnings {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, warn))
		}
	}

	return b.String()
}

// HasErrors returns true if the report contains any hard constraint failures.
func HasErrors(report *ValidationReport) bool { return len(report.Errors) > 0 }

// HasWarnings returns true if the report contains any soft constraint warnings.
func HasWarnings(report *ValidationReport) bool { return len(report.Warnings) > 0 }

// GetFailedConstraints returns all failed hard constraints.
func GetFailedConstraints(report *ValidationReport) []ConstraintResult {
	failed := []ConstraintResult{}
	for _, result := range report.HardConstraintResults {
		if !result.Satisfied {
			failed = append(failed, result)
		}
	}
	return failed
}

// GetLowScoringConstraints returns soft constraints with score below threshold.
func GetLowScoringConstraints(report *ValidationReport, threshold float64) []ConstraintResult {
	lowScoring := []ConstraintResult{}
	for _, result := range report.SoftConstraintResults {
		if result.Score < threshold {
			lowScoring = append(lowScoring, result)
		}
	}
	return lowScoring
}
