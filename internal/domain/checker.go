package domain

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"sabos.dev/pkg/sysport/internal/adapter"
	m "sabos.dev/pkg/sysport/internal/model"
)

// Checker verifies identifiers duplicated across dependent files against one
// canonical definition file. It never writes.
type Checker interface {
	LoadCanonical(ctx context.Context, path m.Path) (m.Registry, error)
	Scan(ctx context.Context, dir m.Path, extension string, registry m.Registry) ([]m.Mismatch, []m.Path, error)
}

type checker struct {
	adapter.SourceFSAdapter
	canonical  Extractor
	dependents []Extractor
}

// NewChecker creates a Checker recognizing the shapes described by cfg.
func NewChecker(fsAdapter adapter.SourceFSAdapter, cfg PatternConfig) (Checker, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &checker{
		SourceFSAdapter: fsAdapter,
		canonical:       NewCanonicalExtractor(cfg),
		dependents:      NewDependentExtractors(cfg),
	}, nil
}

// LoadCanonical builds the registry from the authoritative file. When a name
// is declared twice the later declaration wins.
func (c *checker) LoadCanonical(ctx context.Context, path m.Path) (m.Registry, error) {
	content, err := c.ReadFile(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrCanonicalNotFound, path)
		}

		return nil, fmt.Errorf("read canonical file %s: %w", path, err)
	}

	registry := make(m.Registry)

	var overflow error

	err = eachLine(content, func(line string, lineNo int) {
		if occ, ok := c.canonical.Extract(line, lineNo); ok {
			if occ.Overflow {
				if overflow == nil {
					overflow = fmt.Errorf("%s:%d: %s = %s does not fit in 64 bits", path, lineNo, occ.Name, occ.Literal)
				}

				return
			}

			if previous, seen := registry[occ.Name]; seen && previous != occ.Value {
				slog.Debug("canonical identifier redeclared", "name", occ.Name, "previous", previous, "value", occ.Value, "line", lineNo)
			}

			registry[occ.Name] = occ.Value
		}
	})
	if err != nil {
		return nil, fmt.Errorf("scan canonical file %s: %w", path, err)
	}

	if overflow != nil {
		return nil, fmt.Errorf("invalid canonical definition: %w", overflow)
	}

	slog.Info("loaded canonical definitions", "path", path, "count", len(registry))

	return registry, nil
}

// Scan checks every file with the given extension directly inside dir. A
// missing dir is not an error: the dependent layer may not exist yet.
func (c *checker) Scan(ctx context.Context, dir m.Path, extension string, registry m.Registry) ([]m.Mismatch, []m.Path, error) {
	files, err := c.listFiles(ctx, dir, extension)
	if err != nil {
		return nil, nil, err
	}

	if files == nil {
		slog.Info("scan directory missing, nothing to verify", "dir", dir)
		return nil, nil, nil
	}

	var mismatches []m.Mismatch

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		content, err := c.ReadFile(ctx, file)
		if err != nil {
			return nil, nil, fmt.Errorf("read %s: %w", file, err)
		}

		found, err := c.checkContent(file, content, registry)
		if err != nil {
			return nil, nil, fmt.Errorf("scan %s: %w", file, err)
		}

		slog.Debug("scanned dependent file", "path", file, "mismatches", len(found))
		mismatches = append(mismatches, found...)
	}

	return mismatches, files, nil
}

// listFiles returns the sorted matching files in dir, or nil when dir does
// not exist.
func (c *checker) listFiles(ctx context.Context, dir m.Path, extension string) ([]m.Path, error) {
	info, err := c.FileInfo(ctx, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("stat scan directory %s: %w", dir, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("scan path %s is not a directory", dir)
	}

	files := []m.Path{}

	err = c.Walk(ctx, dir, false, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() || filepath.Ext(path) != extension {
			return nil
		}

		files = append(files, m.Path(path))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	return files, nil
}

func (c *checker) checkContent(file m.Path, content []byte, registry m.Registry) ([]m.Mismatch, error) {
	var mismatches []m.Mismatch

	err := eachLine(content, func(line string, lineNo int) {
		for _, extractor := range c.dependents {
			occ, ok := extractor.Extract(line, lineNo)
			if !ok {
				continue
			}

			if mismatch, diverges := Compare(file, occ, registry); diverges {
				mismatches = append(mismatches, mismatch)
			}
		}
	})

	return mismatches, err
}

// Compare classifies one occurrence against the registry. It reports false
// when the occurrence agrees with the canonical value.
func Compare(file m.Path, occ m.Occurrence, registry m.Registry) (m.Mismatch, bool) {
	mismatch := m.Mismatch{
		File:     file,
		Line:     occ.Line,
		Name:     occ.Name,
		Found:    occ.Value,
		Literal:  occ.Literal,
		Overflow: occ.Overflow,
		Source:   occ.Kind,
	}

	expected, known := registry[occ.Name]
	if !known {
		mismatch.Kind = m.UnknownIdentifier
		return mismatch, true
	}

	// An overflowing literal can never equal a canonical uint64.
	if !occ.Overflow && expected == occ.Value {
		return m.Mismatch{}, false
	}

	mismatch.Kind = m.ValueMismatch
	mismatch.Expected = &expected

	return mismatch, true
}

// eachLine calls fn for every line with 1-based line numbers.
func eachLine(content []byte, fn func(line string, lineNo int)) error {
	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fn(scanner.Text(), lineNo)
	}

	return scanner.Err()
}
