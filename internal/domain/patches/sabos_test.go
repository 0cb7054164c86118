package patches

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sabos.dev/pkg/sysport/internal/domain/anchors"
)

func TestSABOS_AllDescriptorsCompile(t *testing.T) {
	table := SABOS()
	require.Len(t, table, 9)

	seen := make(map[string]bool)

	for _, spec := range table {
		t.Run(string(spec.Target), func(t *testing.T) {
			assert.False(t, seen[string(spec.Target)], "duplicate target")
			seen[string(spec.Target)] = true

			_, err := anchors.CompileSteps(spec.Steps)
			require.NoError(t, err)
		})
	}
}

// Every insertion embeds the marker, so a second run always sees it and skips.
func TestSABOS_InsertionsCarryMarker(t *testing.T) {
	for _, spec := range SABOS() {
		assert.Equal(t, Marker, spec.Marker)

		for _, step := range spec.Steps {
			assert.True(t, strings.Contains(step.Insert, spec.Marker), "%s: insertion lacks marker", spec.Target)
		}
	}
}

func TestSABOS_ReturnsFreshCopy(t *testing.T) {
	first := SABOS()
	first[0].Target = "changed"

	assert.Equal(t, "sys/pal/mod.rs", string(SABOS()[0].Target))
}

func TestCfgBranch(t *testing.T) {
	got := cfgBranch("mod sabos;", "pub use sabos::*;")
	want := "    target_os = \"sabos\" => {\n        mod sabos;\n        pub use sabos::*;\n    }"
	assert.Equal(t, want, got)
}
