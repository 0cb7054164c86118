package domain

import (
	"context"
	"fmt"
	"log/slog"

	"sabos.dev/pkg/sysport/internal/adapter"
	"sabos.dev/pkg/sysport/internal/controller"
	m "sabos.dev/pkg/sysport/internal/model"
)

// CheckArgs contains the arguments for one consistency check run.
type CheckArgs struct {
	Root         m.Path // paths in the report are shown relative to Root
	Canonical    m.Path
	Dir          m.Path
	Extension    string
	Format       controller.OutputFormat
	Report       m.Path // optional report file
	ReportFormat adapter.ReportFormat
}

// CheckWorkflow runs load canonical -> scan -> diff -> report.
type CheckWorkflow interface {
	Check(ctx context.Context, args CheckArgs) (m.CheckReport, error)
}

type checkWorkflow struct {
	adapter.SourceFSAdapter
	adapter.ReportStore
	controller.UI
	Checker
}

// NewCheckWorkflow creates a new CheckWorkflow with the provided dependencies.
func NewCheckWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	checker Checker,
) CheckWorkflow {
	return &checkWorkflow{
		SourceFSAdapter: fsAdapter,
		ReportStore:     reportStore,
		UI:              ui,
		Checker:         checker,
	}
}

// Check returns ErrCanonicalNotFound when the canonical file is missing and
// ErrMismatch after displaying the full list when any mismatch was found.
func (w *checkWorkflow) Check(ctx context.Context, args CheckArgs) (m.CheckReport, error) {
	report := m.CheckReport{Canonical: w.display(args.Root, args.Canonical)}

	registry, err := w.LoadCanonical(ctx, args.Canonical)
	if err != nil {
		return report, err
	}

	report.Definitions = len(registry)

	mismatches, scanned, err := w.Scan(ctx, args.Dir, args.Extension, registry)
	if err != nil {
		return report, fmt.Errorf("scan dependent files: %w", err)
	}

	report.Scanned = make([]m.Path, 0, len(scanned))
	for _, file := range scanned {
		report.Scanned = append(report.Scanned, w.display(args.Root, file))
	}

	report.Mismatches = make([]m.Mismatch, 0, len(mismatches))
	for _, mismatch := range mismatches {
		mismatch.File = w.display(args.Root, mismatch.File)
		report.Mismatches = append(report.Mismatches, mismatch)
	}

	w.DisplayCheckReport(ctx, report, args.Format)

	if args.Report != "" {
		if err := w.SaveReport(ctx, args.Report, args.ReportFormat, report); err != nil {
			return report, fmt.Errorf("save report: %w", err)
		}

		slog.Info("saved check report", "path", args.Report, "format", args.ReportFormat)
	}

	if !report.Passed() {
		slog.Warn("identifier mismatches found", "count", len(report.Mismatches))
		return report, fmt.Errorf("%w: %d mismatch(es) found", ErrMismatch, len(report.Mismatches))
	}

	return report, nil
}

// display shortens path relative to root when possible.
func (w *checkWorkflow) display(root, path m.Path) m.Path {
	if root == "" {
		return path
	}

	rel, err := w.RelPath(root, path)
	if err != nil {
		return path
	}

	return rel
}
