package model

import "fmt"

// Registry maps identifier names to their canonical numeric value.
type Registry map[string]uint64

// SourceKind identifies which textual shape an occurrence was found in.
type SourceKind string

const (
	// SourceDeclaration is a standalone constant redeclaration
	// (`const SYS_X: u64 = N;`).
	SourceDeclaration SourceKind = "declaration"
	// SourceInlineLiteral is a bare literal annotated with a trailing comment
	// naming the identifier (`in("rax") Nu64, // SYS_X`).
	SourceInlineLiteral SourceKind = "inline-literal"
)

// Occurrence is a (name, value) pair found on a given line of a dependent file.
type Occurrence struct {
	Name     string
	Value    uint64
	Literal  string // value as written, including any type suffix
	Line     int
	Kind     SourceKind
	Overflow bool // Literal does not fit in 64 bits; Value is unset
}

// MismatchKind classifies a detected divergence.
type MismatchKind string

const (
	// ValueMismatch means the identifier exists canonically with another value.
	ValueMismatch MismatchKind = "value_mismatch"
	// UnknownIdentifier means the identifier is absent from the canonical source.
	UnknownIdentifier MismatchKind = "unknown_identifier"
)

// Mismatch is a single divergence between a dependent file and the canonical
// registry.
type Mismatch struct {
	File     Path         `yaml:"file"`
	Line     int          `yaml:"line"`
	Name     string       `yaml:"name"`
	Found    uint64       `yaml:"found"`
	Literal  string       `yaml:"literal"`
	Expected *uint64      `yaml:"expected,omitempty"`
	Overflow bool         `yaml:"overflow,omitempty"`
	Source   SourceKind   `yaml:"source"`
	Kind     MismatchKind `yaml:"kind"`
}

// FoundText is the value as written in the file, falling back to Found.
func (mm Mismatch) FoundText() string {
	if mm.Literal != "" {
		return mm.Literal
	}

	return fmt.Sprintf("%d", mm.Found)
}

// Message renders the mismatch without its location prefix.
func (mm Mismatch) Message() string {
	found := mm.FoundText()

	if mm.Kind == UnknownIdentifier || mm.Expected == nil {
		return fmt.Sprintf("%s = %s (not found in canonical source)", mm.Name, found)
	}

	return fmt.Sprintf("%s = %s (expected %d)", mm.Name, found, *mm.Expected)
}

// CheckReport is the outcome of one consistency check run.
type CheckReport struct {
	Canonical   Path       `yaml:"canonical"`
	Definitions int        `yaml:"definitions"`
	Scanned     []Path     `yaml:"scanned"`
	Mismatches  []Mismatch `yaml:"mismatches"`
}

// Passed reports whether no mismatch was found.
func (r CheckReport) Passed() bool {
	return len(r.Mismatches) == 0
}
