package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "sabos.dev/pkg/sysport/internal/model"
)

// SimpleUI implements UI using the cobra command's output stream.
type SimpleUI struct {
	cmd    *cobra.Command
	styles styles
}

// NewSimpleUI creates a new SimpleUI with plain, unstyled output.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, styles: plainStyles()}
}

// NewStyledUI creates a SimpleUI that colors status tags with lipgloss.
func NewStyledUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, styles: terminalStyles()}
}

// DisplayPatchResult prints one status line per descriptor.
func (s *SimpleUI) DisplayPatchResult(ctx context.Context, result m.PatchResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	tag := s.styles.tag(result.Status)

	switch result.Status {
	case m.Skipped:
		s.printf("%s %s already patched\n", tag, result.Target)
	case m.Patched:
		if result.Diff == "" {
			s.printf("%s %s\n", tag, result.Target)
			return
		}

		s.printf("%s %s (dry run, not written)\n", tag, result.Target)
		s.printf("%s", result.Diff)
	case m.NoEffect:
		s.printf("%s %s patch had no effect!\n", tag, result.Target)
	default:
		s.printf("%s %s\n", tag, result.Target)
	}
}

// DisplayPatchError prints a failure for a descriptor that could not be processed.
func (s *SimpleUI) DisplayPatchError(ctx context.Context, target m.Path, err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return
	}

	s.errorf("%s %s: %v\n", s.styles.errorTag(), target, err)
}

// DisplayDescriptors renders the active descriptor table.
func (s *SimpleUI) DisplayDescriptors(ctx context.Context, specs []m.DescriptorSpec) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s", renderDescriptorTable(specs))
}

func renderDescriptorTable(specs []m.DescriptorSpec) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Target", "Marker", "Steps"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, spec := range specs {
		steps := make([]string, 0, len(spec.Steps))
		for _, step := range spec.Steps {
			steps = append(steps, fmt.Sprintf("%s %q", step.Strategy, strings.TrimSpace(step.Anchor)))
		}

		table.Append([]string{string(spec.Target), spec.Marker, strings.Join(steps, "\n")})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(specs)), "", ""})
	table.Render()

	return tableBuffer.String()
}

// DisplayCheckReport prints the consistency check outcome.
func (s *SimpleUI) DisplayCheckReport(ctx context.Context, report m.CheckReport, format OutputFormat) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Loaded %d syscall definitions from canonical source\n", report.Definitions)

	if report.Passed() {
		s.printf("%s all PAL syscall numbers match canonical source\n", s.styles.passed())
		return
	}

	s.printf("\n%s %d syscall number mismatch(es) found:\n", s.styles.failed(), len(report.Mismatches))

	if format == FormatTable {
		s.printf("%s", renderMismatchTable(report.Mismatches))
		return
	}

	for _, mismatch := range report.Mismatches {
		s.printf("  %s:%d: %s\n", mismatch.File, mismatch.Line, mismatch.Message())
	}
}

func renderMismatchTable(mismatches []m.Mismatch) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Location", "Identifier", "Found", "Expected", "Kind"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT,
	})

	for _, mismatch := range mismatches {
		expected := "-"
		if mismatch.Expected != nil {
			expected = fmt.Sprintf("%d", *mismatch.Expected)
		}

		table.Append([]string{
			fmt.Sprintf("%s:%d", mismatch.File, mismatch.Line),
			mismatch.Name,
			mismatch.FoundText(),
			expected,
			string(mismatch.Kind),
		})
	}

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}
