package domain_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sabos.dev/pkg/sysport/internal/adapter"
	"sabos.dev/pkg/sysport/internal/domain"
	m "sabos.dev/pkg/sysport/internal/model"
)

func newChecker(t *testing.T) domain.Checker {
	t.Helper()

	checker, err := domain.NewChecker(adapter.NewLocalSourceFSAdapter(), domain.DefaultPatternConfig())
	require.NoError(t, err)

	return checker
}

func uint64Ptr(v uint64) *uint64 {
	return &v
}

func TestChecker_LoadCanonical(t *testing.T) {
	ctx := context.Background()
	checker := newChecker(t)

	t.Run("collects pub const declarations", func(t *testing.T) {
		root := writeTree(t, map[string]string{"lib.rs": `#![no_std]
pub const SYS_READ: u64 = 0;
pub const SYS_WRITE:u64=1;
const SYS_PRIVATE: u64 = 7;
pub const NOT_A_SYSCALL: u64 = 3;
pub const SYS_WIDE: u32 = 9;
`})

		registry, err := checker.LoadCanonical(ctx, m.Path(filepath.Join(root, "lib.rs")))
		require.NoError(t, err)
		assert.Equal(t, m.Registry{"SYS_READ": 0, "SYS_WRITE": 1}, registry)
	})

	t.Run("later declaration wins", func(t *testing.T) {
		root := writeTree(t, map[string]string{"lib.rs": "pub const SYS_X: u64 = 1;\npub const SYS_X: u64 = 2;\n"})

		registry, err := checker.LoadCanonical(ctx, m.Path(filepath.Join(root, "lib.rs")))
		require.NoError(t, err)
		assert.Equal(t, uint64(2), registry["SYS_X"])
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := checker.LoadCanonical(ctx, m.Path(filepath.Join(t.TempDir(), "lib.rs")))
		require.ErrorIs(t, err, domain.ErrCanonicalNotFound)
	})

	t.Run("out of range definition is an error", func(t *testing.T) {
		root := writeTree(t, map[string]string{"lib.rs": "pub const SYS_READ: u64 = 0;\npub const SYS_WRITE: u64 = 18446744073709551617;\n"})

		_, err := checker.LoadCanonical(ctx, m.Path(filepath.Join(root, "lib.rs")))
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrCanonicalNotFound)
		assert.Contains(t, err.Error(), "lib.rs:2: SYS_WRITE")
	})

	t.Run("empty file yields empty registry", func(t *testing.T) {
		root := writeTree(t, map[string]string{"lib.rs": ""})

		registry, err := checker.LoadCanonical(ctx, m.Path(filepath.Join(root, "lib.rs")))
		require.NoError(t, err)
		assert.Empty(t, registry)
	})
}

func TestChecker_Scan(t *testing.T) {
	ctx := context.Background()
	checker := newChecker(t)
	registry := m.Registry{"SYS_READ": 0, "SYS_WRITE": 1, "SYS_EXIT": 60}

	t.Run("classifies value drift and unknown identifiers", func(t *testing.T) {
		root := writeTree(t, map[string]string{
			"pal/b.rs":        "const SYS_WRITE: u64 = 2;\n",
			"pal/a.rs":        "// header\nconst SYS_FOO: u64 = 5;\n        in(\"rax\") 61u64, // SYS_EXIT\n",
			"pal/notes.txt":   "const SYS_WRITE: u64 = 9;\n",
			"pal/sub/deep.rs": "const SYS_WRITE: u64 = 9;\n",
		})
		dir := filepath.Join(root, "pal")

		mismatches, scanned, err := checker.Scan(ctx, m.Path(dir), ".rs", registry)
		require.NoError(t, err)

		fileA := m.Path(filepath.Join(dir, "a.rs"))
		fileB := m.Path(filepath.Join(dir, "b.rs"))

		want := []m.Mismatch{
			{File: fileA, Line: 2, Name: "SYS_FOO", Found: 5, Literal: "5", Source: m.SourceDeclaration, Kind: m.UnknownIdentifier},
			{File: fileA, Line: 3, Name: "SYS_EXIT", Found: 61, Literal: "61u64", Expected: uint64Ptr(60), Source: m.SourceInlineLiteral, Kind: m.ValueMismatch},
			{File: fileB, Line: 1, Name: "SYS_WRITE", Found: 2, Literal: "2", Expected: uint64Ptr(1), Source: m.SourceDeclaration, Kind: m.ValueMismatch},
		}

		if diff := cmp.Diff(want, mismatches); diff != "" {
			t.Errorf("Scan() mismatches (-want +got):\n%s", diff)
		}

		assert.Equal(t, []m.Path{fileA, fileB}, scanned)
	})

	t.Run("consistent files produce no mismatches", func(t *testing.T) {
		root := writeTree(t, map[string]string{
			"pal/os.rs": "pub const SYS_READ: u64 = 0;\nsyscall1(in(\"rax\") 1u64, // SYS_WRITE\n",
		})

		mismatches, scanned, err := checker.Scan(ctx, m.Path(filepath.Join(root, "pal")), ".rs", registry)
		require.NoError(t, err)
		assert.Empty(t, mismatches)
		assert.Len(t, scanned, 1)
	})

	t.Run("inline literal without naming comment is ignored", func(t *testing.T) {
		root := writeTree(t, map[string]string{"pal/os.rs": "in(\"rax\") 99u64,\n"})

		mismatches, _, err := checker.Scan(ctx, m.Path(filepath.Join(root, "pal")), ".rs", registry)
		require.NoError(t, err)
		assert.Empty(t, mismatches)
	})

	t.Run("out of range literals are reported", func(t *testing.T) {
		root := writeTree(t, map[string]string{
			"pal/os.rs": "const SYS_WRITE: u64 = 18446744073709551617;\nin(\"rax\") 99999999999999999999u64, // SYS_NOPE\n",
		})
		file := m.Path(filepath.Join(root, "pal", "os.rs"))

		mismatches, _, err := checker.Scan(ctx, m.Path(filepath.Join(root, "pal")), ".rs", registry)
		require.NoError(t, err)

		want := []m.Mismatch{
			{
				File: file, Line: 1, Name: "SYS_WRITE", Literal: "18446744073709551617", Expected: uint64Ptr(1),
				Overflow: true, Source: m.SourceDeclaration, Kind: m.ValueMismatch,
			},
			{
				File: file, Line: 2, Name: "SYS_NOPE", Literal: "99999999999999999999u64",
				Overflow: true, Source: m.SourceInlineLiteral, Kind: m.UnknownIdentifier,
			},
		}

		if diff := cmp.Diff(want, mismatches); diff != "" {
			t.Errorf("Scan() mismatches (-want +got):\n%s", diff)
		}

		assert.Equal(t, "SYS_WRITE = 18446744073709551617 (expected 1)", mismatches[0].Message())
	})

	t.Run("missing directory is not an error", func(t *testing.T) {
		mismatches, scanned, err := checker.Scan(ctx, m.Path(filepath.Join(t.TempDir(), "absent")), ".rs", registry)
		require.NoError(t, err)
		assert.Empty(t, mismatches)
		assert.Empty(t, scanned)
	})

	t.Run("scan path that is a file is an error", func(t *testing.T) {
		root := writeTree(t, map[string]string{"os.rs": ""})

		_, _, err := checker.Scan(ctx, m.Path(filepath.Join(root, "os.rs")), ".rs", registry)
		require.Error(t, err)
	})
}

func TestCompare(t *testing.T) {
	registry := m.Registry{"SYS_WRITE": 1}

	_, diverges := domain.Compare("os.rs", m.Occurrence{Name: "SYS_WRITE", Value: 1, Line: 4}, registry)
	assert.False(t, diverges)

	mismatch, diverges := domain.Compare("os.rs", m.Occurrence{Name: "SYS_WRITE", Value: 2, Literal: "2", Line: 4}, registry)
	require.True(t, diverges)
	assert.Equal(t, m.ValueMismatch, mismatch.Kind)
	assert.Equal(t, "SYS_WRITE = 2 (expected 1)", mismatch.Message())

	mismatch, diverges = domain.Compare("os.rs", m.Occurrence{Name: "SYS_ZERO", Literal: "18446744073709551616", Overflow: true, Line: 5}, m.Registry{"SYS_ZERO": 0})
	require.True(t, diverges, "an overflowing literal never matches")
	assert.Equal(t, m.ValueMismatch, mismatch.Kind)

	mismatch, diverges = domain.Compare("os.rs", m.Occurrence{Name: "SYS_FOO", Value: 3, Literal: "3u64", Line: 9}, registry)
	require.True(t, diverges)
	assert.Equal(t, m.UnknownIdentifier, mismatch.Kind)
	assert.Nil(t, mismatch.Expected)
	assert.Equal(t, "SYS_FOO = 3u64 (not found in canonical source)", mismatch.Message())
}

func TestNewChecker_RejectsEmptyPattern(t *testing.T) {
	_, err := domain.NewChecker(adapter.NewLocalSourceFSAdapter(), domain.PatternConfig{Prefix: "", IntType: "u64"})
	require.Error(t, err)

	_, err = domain.NewChecker(adapter.NewLocalSourceFSAdapter(), domain.PatternConfig{Prefix: "SYS_"})
	require.Error(t, err)
}
