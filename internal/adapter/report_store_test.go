package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/owenrumney/go-sarif/v3/pkg/report/v210/sarif"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "sabos.dev/pkg/sysport/internal/model"
)

func sampleReport() m.CheckReport {
	expected := uint64(1)

	return m.CheckReport{
		Canonical:   "libs/sabos-syscall/src/lib.rs",
		Definitions: 2,
		Scanned:     []m.Path{"rust-std-sabos/os.rs"},
		Mismatches: []m.Mismatch{
			{
				File: "rust-std-sabos/os.rs", Line: 4, Name: "SYS_WRITE", Found: 2, Literal: "2",
				Expected: &expected, Source: m.SourceDeclaration, Kind: m.ValueMismatch,
			},
			{
				File: "rust-std-sabos/os.rs", Line: 9, Name: "SYS_FOO", Found: 7, Literal: "7u64",
				Source: m.SourceInlineLiteral, Kind: m.UnknownIdentifier,
			},
		},
	}
}

func TestReportStore_SaveYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "report.yaml")

	require.NoError(t, NewReportStore("v1.0.0").SaveReport(context.Background(), m.Path(path), ReportYAML, sampleReport()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded m.CheckReport
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, sampleReport(), decoded)
	assert.NotContains(t, string(data), "expected: null")
}

func TestReportStore_SaveSARIF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.sarif")

	require.NoError(t, NewReportStore("v1.0.0").SaveReport(context.Background(), m.Path(path), ReportSARIF, sampleReport()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	report, err := sarif.FromBytes(data)
	require.NoError(t, err)
	require.NoError(t, report.Validate())

	require.Len(t, report.Runs, 1)
	run := report.Runs[0]
	require.NotNil(t, run.Tool.Driver.Name)
	assert.Equal(t, "sysport", *run.Tool.Driver.Name)
	require.NotNil(t, run.Tool.Driver.Version)
	assert.Equal(t, "v1.0.0", *run.Tool.Driver.Version)
	assert.Len(t, run.Tool.Driver.Rules, 2)

	require.Len(t, run.Results, 2)
	first := run.Results[0]
	require.NotNil(t, first.RuleID)
	assert.Equal(t, "value_mismatch", *first.RuleID)
	assert.Equal(t, "error", first.Level)
	require.NotNil(t, first.Message.Text)
	assert.Equal(t, "SYS_WRITE = 2 (expected 1)", *first.Message.Text)

	location := first.Locations[0].PhysicalLocation
	assert.Equal(t, "rust-std-sabos/os.rs", *location.ArtifactLocation.URI)
	assert.Equal(t, 4, *location.Region.StartLine)

	second := run.Results[1]
	assert.Equal(t, "unknown_identifier", *second.RuleID)
	assert.Equal(t, "SYS_FOO = 7u64 (not found in canonical source)", *second.Message.Text)
}

func TestReportStore_UnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")

	err := NewReportStore("").SaveReport(context.Background(), m.Path(path), ReportFormat("json"), sampleReport())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown report format")
}

func TestReportStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "report.yaml")
	require.ErrorIs(t, NewReportStore("").SaveReport(ctx, m.Path(path), ReportYAML, sampleReport()), context.Canceled)

	_, err := os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
