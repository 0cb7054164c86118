package domain

import (
	"fmt"

	"sabos.dev/pkg/sysport/internal/domain/anchors"
	m "sabos.dev/pkg/sysport/internal/model"
)

// PatchDescriptor is one idempotent edit: the target file relative to the
// tree root, the marker proving the edit is already present, and the pure
// text transform performing it.
type PatchDescriptor struct {
	Target    m.Path
	Marker    string
	Transform anchors.Transform
}

// CompileDescriptors turns declarative specs into descriptors, preserving
// their order.
func CompileDescriptors(specs []m.DescriptorSpec) ([]PatchDescriptor, error) {
	descriptors := make([]PatchDescriptor, 0, len(specs))

	for _, spec := range specs {
		if spec.Target == "" {
			return nil, fmt.Errorf("descriptor without target")
		}

		if spec.Marker == "" {
			return nil, fmt.Errorf("descriptor %s: empty completion marker", spec.Target)
		}

		transform, err := anchors.CompileSteps(spec.Steps)
		if err != nil {
			return nil, fmt.Errorf("descriptor %s: %w", spec.Target, err)
		}

		descriptors = append(descriptors, PatchDescriptor{
			Target:    spec.Target,
			Marker:    spec.Marker,
			Transform: transform,
		})
	}

	return descriptors, nil
}
