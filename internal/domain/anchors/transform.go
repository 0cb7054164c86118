package anchors

import (
	"fmt"
	"strings"

	m "sabos.dev/pkg/sysport/internal/model"
)

// Transform rewrites whole-file text. Implementations must return the input
// unchanged when their insertion point cannot be located.
type Transform interface {
	Apply(text string) string
	Describe() string
}

// BeforeLine inserts before the first line containing Anchor.
type BeforeLine struct {
	Anchor string
	Insert string
}

// Apply implements Transform.
func (t BeforeLine) Apply(text string) string {
	return InsertBeforeFirstMatch(text, t.Anchor, t.Insert)
}

// Describe implements Transform.
func (t BeforeLine) Describe() string {
	return fmt.Sprintf("before line containing %q", t.Anchor)
}

// AfterLine inserts after the first line containing Anchor.
type AfterLine struct {
	Anchor string
	Insert string
}

// Apply implements Transform.
func (t AfterLine) Apply(text string) string {
	return InsertAfterFirstMatch(text, t.Anchor, t.Insert)
}

// Describe implements Transform.
func (t AfterLine) Describe() string {
	return fmt.Sprintf("after line containing %q", t.Anchor)
}

// BeforeBlockClose inserts before the closing brace line of the block opened
// on the first line containing Opener.
type BeforeBlockClose struct {
	Opener string
	Insert string
}

// Apply implements Transform.
func (t BeforeBlockClose) Apply(text string) string {
	return InsertBeforeBlockClose(text, t.Opener, t.Insert)
}

// Describe implements Transform.
func (t BeforeBlockClose) Describe() string {
	return fmt.Sprintf("before closing brace of block opened by %q", t.Opener)
}

// Chain applies transforms in order, each one seeing the previous output.
type Chain []Transform

// Apply implements Transform.
func (c Chain) Apply(text string) string {
	for _, t := range c {
		text = t.Apply(text)
	}

	return text
}

// Describe implements Transform.
func (c Chain) Describe() string {
	parts := make([]string, 0, len(c))
	for _, t := range c {
		parts = append(parts, t.Describe())
	}

	return strings.Join(parts, "; ")
}

// Compile builds the Transform described by a declarative step.
func Compile(step m.StepSpec) (Transform, error) {
	if step.Anchor == "" {
		return nil, fmt.Errorf("step %q: empty anchor", step.Strategy)
	}

	switch step.Strategy {
	case m.StrategyBeforeLine:
		return BeforeLine{Anchor: step.Anchor, Insert: step.Insert}, nil
	case m.StrategyAfterLine:
		return AfterLine{Anchor: step.Anchor, Insert: step.Insert}, nil
	case m.StrategyBeforeBlockClose:
		return BeforeBlockClose{Opener: step.Anchor, Insert: step.Insert}, nil
	default:
		return nil, fmt.Errorf("unsupported anchor strategy: %q", step.Strategy)
	}
}

// CompileSteps builds a single Transform from an ordered list of steps.
func CompileSteps(steps []m.StepSpec) (Transform, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("no steps")
	}

	if len(steps) == 1 {
		return Compile(steps[0])
	}

	chain := make(Chain, 0, len(steps))

	for i, step := range steps {
		t, err := Compile(step)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}

		chain = append(chain, t)
	}

	return chain, nil
}
