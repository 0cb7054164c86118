package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	m "sabos.dev/pkg/sysport/internal/model"
)

// Extractor finds a (name, value) occurrence on a single line of text.
type Extractor interface {
	Extract(line string, lineNo int) (m.Occurrence, bool)
}

// PatternConfig parameterizes the identifier shapes the checker recognizes.
type PatternConfig struct {
	Prefix  string // identifier prefix, e.g. "SYS_"
	IntType string // integer type / literal suffix, e.g. "u64"
}

// DefaultPatternConfig matches SABOS syscall numbers.
func DefaultPatternConfig() PatternConfig {
	return PatternConfig{Prefix: "SYS_", IntType: "u64"}
}

func (c PatternConfig) validate() error {
	if c.Prefix == "" {
		return fmt.Errorf("identifier prefix must not be empty")
	}

	if c.IntType == "" {
		return fmt.Errorf("integer type must not be empty")
	}

	return nil
}

func (c PatternConfig) name() string {
	return "(" + regexp.QuoteMeta(c.Prefix) + `\w+)`
}

// canonicalPattern matches `pub const NAME: u64 = N;`.
func (c PatternConfig) canonicalPattern() *regexp.Regexp {
	return regexp.MustCompile(`pub const ` + c.name() + `:\s*` + regexp.QuoteMeta(c.IntType) + `\s*=\s*(\d+)\s*;`)
}

// declarationPattern matches `const NAME: u64 = N;` with any visibility.
func (c PatternConfig) declarationPattern() *regexp.Regexp {
	return regexp.MustCompile(`const ` + c.name() + `:\s*` + regexp.QuoteMeta(c.IntType) + `\s*=\s*(\d+)\s*;`)
}

// inlinePattern matches `in("rax") Nu64, // NAME`.
func (c PatternConfig) inlinePattern() *regexp.Regexp {
	return regexp.MustCompile(`in\("rax"\)\s+((\d+)` + regexp.QuoteMeta(c.IntType) + `)\s*,\s*//\s*` + c.name())
}

// declarationExtractor handles the `const NAME: T = N;` shape. It also backs
// canonical loading with the stricter `pub const` pattern.
type declarationExtractor struct {
	re   *regexp.Regexp
	kind m.SourceKind
}

// Extract implements Extractor.
func (e declarationExtractor) Extract(line string, lineNo int) (m.Occurrence, bool) {
	match := e.re.FindStringSubmatch(line)
	if match == nil {
		return m.Occurrence{}, false
	}

	value, overflow, ok := parseLiteral(match[2])
	if !ok {
		return m.Occurrence{}, false
	}

	return m.Occurrence{
		Name:     match[1],
		Value:    value,
		Literal:  match[2],
		Line:     lineNo,
		Kind:     e.kind,
		Overflow: overflow,
	}, true
}

// inlineExtractor handles the `in("rax") Nu64, // NAME` shape.
type inlineExtractor struct {
	re *regexp.Regexp
}

// Extract implements Extractor.
func (e inlineExtractor) Extract(line string, lineNo int) (m.Occurrence, bool) {
	match := e.re.FindStringSubmatch(line)
	if match == nil {
		return m.Occurrence{}, false
	}

	value, overflow, ok := parseLiteral(match[2])
	if !ok {
		return m.Occurrence{}, false
	}

	return m.Occurrence{
		Name:     match[3],
		Value:    value,
		Literal:  match[1],
		Line:     lineNo,
		Kind:     m.SourceInlineLiteral,
		Overflow: overflow,
	}, true
}

// parseLiteral parses a decimal literal. Literals too large for uint64 are
// still reported, flagged as overflowing, so they cannot silently pass.
func parseLiteral(digits string) (value uint64, overflow, ok bool) {
	value, err := strconv.ParseUint(digits, 10, 64)
	if err == nil {
		return value, false, true
	}

	if errors.Is(err, strconv.ErrRange) {
		return 0, true, true
	}

	return 0, false, false
}

// NewCanonicalExtractor returns the extractor used on the authoritative file.
func NewCanonicalExtractor(cfg PatternConfig) Extractor {
	return declarationExtractor{re: cfg.canonicalPattern(), kind: m.SourceDeclaration}
}

// NewDependentExtractors returns the two extractors applied to every line of
// a dependent file: local redeclarations and inline literals.
func NewDependentExtractors(cfg PatternConfig) []Extractor {
	return []Extractor{
		declarationExtractor{re: cfg.declarationPattern(), kind: m.SourceDeclaration},
		inlineExtractor{re: cfg.inlinePattern()},
	}
}
