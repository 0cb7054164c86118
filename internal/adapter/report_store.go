package adapter

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "sabos.dev/pkg/sysport/internal/model"
)

// ReportFormat selects the on-disk encoding of a check report.
type ReportFormat string

const (
	// ReportYAML encodes the CheckReport as YAML.
	ReportYAML ReportFormat = "yaml"
	// ReportSARIF encodes mismatches as a SARIF 2.1.0 log.
	ReportSARIF ReportFormat = "sarif"
)

// SupportedReportFormats lists the accepted --report-format values.
func SupportedReportFormats() []ReportFormat {
	return []ReportFormat{ReportYAML, ReportSARIF}
}

// ReportStore persists check reports for CI consumption.
type ReportStore interface {
	SaveReport(ctx context.Context, path m.Path, format ReportFormat, report m.CheckReport) error
}

// FileReportStore writes reports to the local filesystem.
type FileReportStore struct {
	toolVersion string
}

// NewReportStore creates a FileReportStore stamping toolVersion into SARIF output.
func NewReportStore(toolVersion string) *FileReportStore {
	return &FileReportStore{toolVersion: toolVersion}
}

// SaveReport encodes report in the requested format and writes it to path,
// creating parent directories as needed.
func (s *FileReportStore) SaveReport(ctx context.Context, path m.Path, format ReportFormat, report m.CheckReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}

	// #nosec G304 - report path is supplied by the operator
	f, err := os.Create(string(path))
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}

	defer func() { _ = f.Close() }()

	if err := s.encode(f, format, report); err != nil {
		return err
	}

	return f.Close()
}

func (s *FileReportStore) encode(w io.Writer, format ReportFormat, report m.CheckReport) error {
	switch format {
	case ReportYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)

		if err := encoder.Encode(report); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}

		return encoder.Close()
	case ReportSARIF:
		return writeSARIF(w, report, s.toolVersion)
	default:
		return fmt.Errorf("unknown report format: %s (supported: %v)", format, SupportedReportFormats())
	}
}
