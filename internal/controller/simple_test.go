package controller

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	m "sabos.dev/pkg/sysport/internal/model"
)

func newBufferedCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	return cmd, &out, &errOut
}

func TestSimpleUI_DisplayPatchResult(t *testing.T) {
	tests := []struct {
		name   string
		result m.PatchResult
		want   string
	}{
		{
			name:   "skipped",
			result: m.PatchResult{Target: "sys/pal/mod.rs", Status: m.Skipped},
			want:   "[SKIP] sys/pal/mod.rs already patched\n",
		},
		{
			name:   "patched",
			result: m.PatchResult{Target: "sys/pal/mod.rs", Status: m.Patched},
			want:   "[PATCH] sys/pal/mod.rs\n",
		},
		{
			name:   "no effect",
			result: m.PatchResult{Target: "os/mod.rs", Status: m.NoEffect},
			want:   "[WARN] os/mod.rs patch had no effect!\n",
		},
		{
			name:   "dry run diff",
			result: m.PatchResult{Target: "os/mod.rs", Status: m.Patched, Diff: "+pub mod sabos;\n"},
			want:   "[PATCH] os/mod.rs (dry run, not written)\n+pub mod sabos;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, out, _ := newBufferedCmd()

			NewSimpleUI(cmd).DisplayPatchResult(context.Background(), tt.result)

			if got := out.String(); got != tt.want {
				t.Errorf("DisplayPatchResult() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSimpleUI_DisplayPatchError(t *testing.T) {
	cmd, out, errOut := newBufferedCmd()

	NewSimpleUI(cmd).DisplayPatchError(context.Background(), "sys/fs/mod.rs", errors.New("permission denied"))

	if out.Len() != 0 {
		t.Errorf("DisplayPatchError() wrote to stdout: %q", out.String())
	}

	if want := "[ERROR] sys/fs/mod.rs: permission denied\n"; errOut.String() != want {
		t.Errorf("DisplayPatchError() = %q, want %q", errOut.String(), want)
	}
}

func TestSimpleUI_DisplayCheckReport(t *testing.T) {
	expected := uint64(1)

	failing := m.CheckReport{
		Definitions: 42,
		Mismatches: []m.Mismatch{
			{File: "rust-std-sabos/os.rs", Line: 12, Name: "SYS_WRITE", Found: 2, Literal: "2", Expected: &expected, Kind: m.ValueMismatch},
			{File: "rust-std-sabos/os.rs", Line: 30, Name: "SYS_FOO", Found: 7, Literal: "7u64", Kind: m.UnknownIdentifier},
		},
	}

	tests := []struct {
		name         string
		report       m.CheckReport
		format       OutputFormat
		wantContains []string
		wantMissing  []string
	}{
		{
			name:         "passed",
			report:       m.CheckReport{Definitions: 42},
			format:       FormatText,
			wantContains: []string{"Loaded 42 syscall definitions from canonical source\n", "PASSED: all PAL syscall numbers match canonical source\n"},
			wantMissing:  []string{"FAILED"},
		},
		{
			name:   "failed text",
			report: failing,
			format: FormatText,
			wantContains: []string{
				"\nFAILED: 2 syscall number mismatch(es) found:\n",
				"  rust-std-sabos/os.rs:12: SYS_WRITE = 2 (expected 1)\n",
				"  rust-std-sabos/os.rs:30: SYS_FOO = 7u64 (not found in canonical source)\n",
			},
			wantMissing: []string{"PASSED"},
		},
		{
			name:         "failed table",
			report:       failing,
			format:       FormatTable,
			wantContains: []string{"LOCATION", "rust-std-sabos/os.rs:12", "SYS_FOO", "unknown_identifier"},
			wantMissing:  []string{"(expected 1)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, out, _ := newBufferedCmd()

			NewSimpleUI(cmd).DisplayCheckReport(context.Background(), tt.report, tt.format)

			got := out.String()
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("DisplayCheckReport() output missing %q, got: %s", want, got)
				}
			}

			for _, unwanted := range tt.wantMissing {
				if strings.Contains(got, unwanted) {
					t.Errorf("DisplayCheckReport() output contains %q, got: %s", unwanted, got)
				}
			}
		})
	}
}

func TestSimpleUI_DisplayDescriptors(t *testing.T) {
	cmd, out, _ := newBufferedCmd()

	specs := []m.DescriptorSpec{
		{Target: "sys/pal/mod.rs", Marker: `target_os = "sabos"`, Steps: []m.StepSpec{{Strategy: m.StrategyBeforeLine, Anchor: "    _ => {"}}},
		{Target: "os/mod.rs", Marker: `target_os = "sabos"`, Steps: []m.StepSpec{{Strategy: m.StrategyAfterLine, Anchor: "pub mod xous;"}}},
	}

	NewSimpleUI(cmd).DisplayDescriptors(context.Background(), specs)

	got := out.String()
	for _, want := range []string{"TARGET", "sys/pal/mod.rs", `before-line "_ => {"`, `after-line "pub mod xous;"`, "TOTAL 2"} {
		if !strings.Contains(got, want) {
			t.Errorf("DisplayDescriptors() output missing %q, got: %s", want, got)
		}
	}
}

func TestSimpleUI_CanceledContextPrintsNothing(t *testing.T) {
	cmd, out, _ := newBufferedCmd()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ui := NewSimpleUI(cmd)
	ui.DisplayPatchResult(ctx, m.PatchResult{Target: "x.rs", Status: m.Patched})
	ui.DisplayCheckReport(ctx, m.CheckReport{}, FormatText)

	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
}

func TestStyledUI_KeepsWording(t *testing.T) {
	cmd, out, _ := newBufferedCmd()

	NewStyledUI(cmd).DisplayPatchResult(context.Background(), m.PatchResult{Target: "os/mod.rs", Status: m.NoEffect})

	if got := out.String(); !strings.Contains(got, "WARN") || !strings.Contains(got, "os/mod.rs patch had no effect!") {
		t.Errorf("styled output lost its wording: %q", got)
	}
}

func TestNewUI(t *testing.T) {
	cmd, _, _ := newBufferedCmd()

	if _, ok := NewUI(cmd, false).(*SimpleUI); !ok {
		t.Errorf("NewUI() should return *SimpleUI")
	}

	if IsTTY(nil) {
		t.Errorf("IsTTY(nil) = true, want false")
	}
}
