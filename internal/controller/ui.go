// Package controller provides output adapters for displaying patch and check results.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "sabos.dev/pkg/sysport/internal/model"
)

// OutputFormat selects how check results are rendered on the console.
type OutputFormat string

const (
	// FormatText prints the classic one-line-per-mismatch report.
	FormatText OutputFormat = "text"
	// FormatTable renders mismatches as a table.
	FormatTable OutputFormat = "table"
	// FormatYAML dumps data as YAML (descriptor listing only).
	FormatYAML OutputFormat = "yaml"
)

// UI defines the interface for displaying run progress and results.
// Implementations decide on styling; status wording is fixed.
type UI interface {
	DisplayPatchResult(ctx context.Context, result m.PatchResult)
	DisplayPatchError(ctx context.Context, target m.Path, err error)
	DisplayDescriptors(ctx context.Context, specs []m.DescriptorSpec)
	DisplayCheckReport(ctx context.Context, report m.CheckReport, format OutputFormat)
}

// NewUI returns the console UI for cmd, styled when stdout is a terminal.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewStyledUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
