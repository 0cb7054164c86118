package domain

import (
	"context"
	"fmt"
	"log/slog"

	"sabos.dev/pkg/sysport/internal/adapter"
	"sabos.dev/pkg/sysport/internal/controller"
	m "sabos.dev/pkg/sysport/internal/model"
)

// PatchArgs contains the arguments for one patch run.
type PatchArgs struct {
	Root        m.Path
	Descriptors []PatchDescriptor
	DryRun      bool
	Strict      bool // fail the run when a descriptor has no effect
}

// PatchWorkflow applies a descriptor table to a source tree.
type PatchWorkflow interface {
	Patch(ctx context.Context, args PatchArgs) ([]m.PatchResult, error)
}

type patchWorkflow struct {
	adapter.SourceFSAdapter
	controller.UI
	Patcher
}

// NewPatchWorkflow creates a new PatchWorkflow with the provided dependencies.
func NewPatchWorkflow(fsAdapter adapter.SourceFSAdapter, ui controller.UI, patcher Patcher) PatchWorkflow {
	return &patchWorkflow{
		SourceFSAdapter: fsAdapter,
		UI:              ui,
		Patcher:         patcher,
	}
}

// Patch applies the descriptors in order, one status line each. The first
// read or write failure stops the run; files patched before it stay patched.
func (w *patchWorkflow) Patch(ctx context.Context, args PatchArgs) ([]m.PatchResult, error) {
	info, err := w.FileInfo(ctx, args.Root)
	if err != nil {
		return nil, fmt.Errorf("source tree root: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("source tree root %s is not a directory", args.Root)
	}

	slog.Info("applying patches", "root", args.Root, "descriptors", len(args.Descriptors), "dry_run", args.DryRun)

	results := make([]m.PatchResult, 0, len(args.Descriptors))
	noEffect := 0

	for _, descriptor := range args.Descriptors {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result, err := w.Apply(ctx, args.Root, descriptor, args.DryRun)
		if err != nil {
			w.DisplayPatchError(ctx, descriptor.Target, err)
			slog.Error("patch failed", "target", descriptor.Target, "error", err)

			return results, fmt.Errorf("patch %s: %w", descriptor.Target, err)
		}

		if result.Status == m.NoEffect {
			noEffect++
		}

		w.DisplayPatchResult(ctx, result)
		results = append(results, result)
	}

	if args.Strict && noEffect > 0 {
		return results, fmt.Errorf("%w: %d descriptor(s) found no insertion point", ErrNoEffect, noEffect)
	}

	return results, nil
}
