package adapter

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/owenrumney/go-sarif/v3/pkg/report/v210/sarif"

	m "sabos.dev/pkg/sysport/internal/model"
)

const (
	sarifToolName = "sysport"
	sarifToolURI  = "https://sabos.dev/sysport"
)

var sarifRules = []struct {
	kind m.MismatchKind
	name string
	desc string
}{
	{
		kind: m.ValueMismatch,
		name: "ValueMismatch",
		desc: "Redeclared identifier value differs from the canonical definition",
	},
	{
		kind: m.UnknownIdentifier,
		name: "UnknownIdentifier",
		desc: "Identifier is not defined in the canonical source",
	},
}

// writeSARIF maps every mismatch to a SARIF result located at its file and line.
func writeSARIF(w io.Writer, report m.CheckReport, toolVersion string) error {
	log := sarif.NewReport()

	run := sarif.NewRunWithInformationURI(sarifToolName, sarifToolURI)
	if toolVersion != "" {
		run.Tool.Driver.Version = &toolVersion
	}

	for _, r := range sarifRules {
		desc := r.desc
		rule := sarif.NewReportingDescriptor().WithID(string(r.kind))
		rule.WithName(r.name)
		rule.WithShortDescription(&sarif.MultiformatMessageString{Text: &desc})
		rule.WithDefaultConfiguration(&sarif.ReportingConfiguration{Level: "error"})
		run.Tool.Driver.AddRule(rule)
	}

	for _, mismatch := range report.Mismatches {
		run.AddResult(sarifResult(mismatch))
	}

	props := sarif.NewPropertyBag()
	props.Add("canonical", string(report.Canonical))
	props.Add("definitions", report.Definitions)
	props.Add("scannedFiles", len(report.Scanned))
	run.WithProperties(props)

	log.AddRun(run)

	if err := log.Write(w); err != nil {
		return fmt.Errorf("failed to write SARIF output: %w", err)
	}

	_, err := w.Write([]byte("\n"))

	return err
}

func sarifResult(mismatch m.Mismatch) *sarif.Result {
	result := sarif.NewRuleResult(string(mismatch.Kind))
	result.Level = "error"
	result.Kind = "fail"
	result.Message = sarif.NewTextMessage(mismatch.Message())

	region := sarif.NewRegion().WithStartLine(mismatch.Line)
	physical := sarif.NewPhysicalLocation().
		WithArtifactLocation(sarif.NewArtifactLocation().WithURI(filepath.ToSlash(string(mismatch.File)))).
		WithRegion(region)
	result.Locations = []*sarif.Location{sarif.NewLocation().WithPhysicalLocation(physical)}

	props := sarif.NewPropertyBag()
	props.Add("identifier", mismatch.Name)
	if mismatch.Overflow {
		props.Add("found", mismatch.Literal)
		props.Add("overflow", true)
	} else {
		props.Add("found", mismatch.Found)
	}

	props.Add("source", string(mismatch.Source))

	if mismatch.Expected != nil {
		props.Add("expected", *mismatch.Expected)
	}

	result.WithProperties(props)

	return result
}
