package adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/checkcodedoc/internal/model"
)

// ReportStore persists rendered reports and reads JSON reports back.
type ReportStore interface {
	SaveReport(path m.Path, content []byte) error
	LoadReports(path m.Path) ([]m.FileReport, error)
}

// LocalReportStore writes reports to the local filesystem.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

// SaveReport writes content to path, creating parent directories as needed.
func (rs *LocalReportStore) SaveReport(path m.Path, content []byte) error {
	if path == "" {
		return fmt.Errorf("report output path is empty")
	}

	if dir := filepath.Dir(string(path)); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}

	if err := os.WriteFile(string(path), content, 0o600); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}

// LoadReports decodes a report previously written by the json reporter.
func (rs *LocalReportStore) LoadReports(path m.Path) ([]m.FileReport, error) {
	// #nosec G304 - path is an explicit user-provided report file
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read report %s: %w", path, err)
	}

	var reports []m.FileReport
	if err := json.Unmarshal(data, &reports); err != nil {
		return nil, fmt.Errorf("decode report %s: %w", path, err)
	}

	return reports, nil
}
