// Package domain contains the patch engine and the consistency checker.
package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"sabos.dev/pkg/sysport/internal/adapter"
	m "sabos.dev/pkg/sysport/internal/model"
)

const defaultFilePerm os.FileMode = 0o644

// Patcher applies a single descriptor to a file below a tree root.
type Patcher interface {
	Apply(ctx context.Context, root m.Path, descriptor PatchDescriptor, dryRun bool) (m.PatchResult, error)
}

type patcher struct {
	adapter.SourceFSAdapter
}

// NewPatcher creates a Patcher backed by the given filesystem adapter.
func NewPatcher(fsAdapter adapter.SourceFSAdapter) Patcher {
	return &patcher{SourceFSAdapter: fsAdapter}
}

// Apply reads the target, skips it when the marker is already present,
// reports NoEffect when the transform changes nothing, and otherwise writes
// the transformed text back in place. Dry runs return a diff instead of
// writing.
func (p *patcher) Apply(ctx context.Context, root m.Path, descriptor PatchDescriptor, dryRun bool) (m.PatchResult, error) {
	result := m.PatchResult{Target: descriptor.Target}

	if descriptor.Transform == nil {
		return result, fmt.Errorf("descriptor %s has no transform", descriptor.Target)
	}

	path := p.JoinPath(string(root), string(descriptor.Target))

	original, err := p.ReadFile(ctx, path)
	if err != nil {
		return result, fmt.Errorf("read %s: %w", descriptor.Target, err)
	}

	content := string(original)
	if strings.Contains(content, descriptor.Marker) {
		slog.Debug("marker present, skipping", "target", descriptor.Target, "marker", descriptor.Marker)

		result.Status = m.Skipped

		return result, nil
	}

	patched := descriptor.Transform.Apply(content)
	if patched == content {
		slog.Warn("patch had no effect", "target", descriptor.Target, "transform", descriptor.Transform.Describe())

		result.Status = m.NoEffect

		return result, nil
	}

	result.Status = m.Patched

	if dryRun {
		result.Diff, err = unifiedDiff(string(descriptor.Target), content, patched)
		if err != nil {
			return result, fmt.Errorf("diff %s: %w", descriptor.Target, err)
		}

		return result, nil
	}

	if err := p.WriteFile(ctx, path, []byte(patched), p.fileMode(ctx, path)); err != nil {
		return result, fmt.Errorf("write %s: %w", descriptor.Target, err)
	}

	slog.Info("patched file", "target", descriptor.Target, "added_bytes", len(patched)-len(content))

	return result, nil
}

// fileMode keeps the existing permission bits of path.
func (p *patcher) fileMode(ctx context.Context, path m.Path) os.FileMode {
	info, err := p.FileInfo(ctx, path)
	if err != nil {
		return defaultFilePerm
	}

	return info.Mode().Perm()
}

func unifiedDiff(name, before, after string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: filepath.ToSlash(filepath.Join("a", name)),
		ToFile:   filepath.ToSlash(filepath.Join("b", name)),
		Context:  3,
	}

	return difflib.GetUnifiedDiffString(diff)
}
