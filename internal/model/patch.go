package model

// PatchStatus is the outcome of applying one patch descriptor to its target.
type PatchStatus int

const (
	// Skipped indicates the completion marker was already present.
	Skipped PatchStatus = iota
	// Patched indicates the transform changed the file and it was written back.
	Patched
	// NoEffect indicates the transform left the text unchanged (anchor not found).
	NoEffect
)

// String returns the status tag printed for each descriptor.
func (s PatchStatus) String() string {
	switch s {
	case Skipped:
		return "SKIP"
	case Patched:
		return "PATCH"
	case NoEffect:
		return "WARN"
	default:
		return "UNKNOWN"
	}
}

// PatchResult describes what happened to a single target file.
type PatchResult struct {
	Target Path
	Status PatchStatus
	Diff   string // unified diff, only set for dry runs
}

// Strategy names an anchor strategy in a declarative descriptor.
type Strategy string

const (
	// StrategyBeforeLine inserts before the first line containing the anchor.
	StrategyBeforeLine Strategy = "before-line"
	// StrategyAfterLine inserts after the first line containing the anchor.
	StrategyAfterLine Strategy = "after-line"
	// StrategyBeforeBlockClose inserts before the closing line of the block
	// opened on the first line containing the anchor.
	StrategyBeforeBlockClose Strategy = "before-block-close"
)

// StepSpec is one insertion of a descriptor.
type StepSpec struct {
	Strategy Strategy `yaml:"strategy"`
	Anchor   string   `yaml:"anchor"`
	Insert   string   `yaml:"insert"`
}

// DescriptorSpec is the serializable form of a patch descriptor: the target
// path relative to the tree root, the completion marker, and the ordered
// insertion steps making up its transform.
type DescriptorSpec struct {
	Target Path       `yaml:"target"`
	Marker string     `yaml:"marker"`
	Steps  []StepSpec `yaml:"steps"`
}

// DescriptorTable is the on-disk document holding a list of descriptors.
type DescriptorTable struct {
	Patches []DescriptorSpec `yaml:"patches"`
}
