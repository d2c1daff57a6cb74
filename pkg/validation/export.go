package validation

import (
	"encoding/json"
	"os"
)

// ExportReportJSON serializes a ValidationReport to JSON with indentation.
func ExportReportJSON(report *ValidationReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}

// ExportReportJSONCompact serializes a ValidationReport to JSON without indentation.
func ExportReportJSONCompact(report *ValidationReport) ([]byte, error) {
	return json.Marshal(report)
}

// SaveReportToFile exports a ValidationReport to a JSON file with indentation.
func SaveReportToFile(report *ValidationReport, filepath string) error {
	data, err := ExportReportJSON(report)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}

// SaveReportCompactToFile exports a ValidationReport to a compact JSON file.
func SaveReportCompactToFile(report *ValidationReport, filepath string) error {
	data, err := ExportReportJSONCompact(report)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}

// LoadReportFromFile loads a ValidationReport from a JSON file.
func LoadReportFromFile(filepath string) (*ValidationReport, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	var report ValidationReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
