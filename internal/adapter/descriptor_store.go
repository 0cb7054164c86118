package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	m "sabos.dev/pkg/sysport/internal/model"
)

// DescriptorStore loads and writes descriptor tables in YAML form so the
// built-in table can be exported, edited and fed back with --table.
type DescriptorStore interface {
	LoadDescriptors(ctx context.Context, path m.Path) ([]m.DescriptorSpec, error)
	WriteDescriptors(w io.Writer, specs []m.DescriptorSpec) error
}

// YAMLDescriptorStore is the yaml.v3 backed DescriptorStore.
type YAMLDescriptorStore struct{}

// NewDescriptorStore constructs a YAMLDescriptorStore.
func NewDescriptorStore() *YAMLDescriptorStore {
	return &YAMLDescriptorStore{}
}

// LoadDescriptors reads a `patches:` document from path.
func (s *YAMLDescriptorStore) LoadDescriptors(ctx context.Context, path m.Path) ([]m.DescriptorSpec, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - the table path is supplied by the operator
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read descriptor table: %w", err)
	}

	return decodeDescriptors(data)
}

func decodeDescriptors(data []byte) ([]m.DescriptorSpec, error) {
	var table m.DescriptorTable

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&table); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("descriptor table is empty")
		}

		return nil, fmt.Errorf("decode descriptor table: %w", err)
	}

	if len(table.Patches) == 0 {
		return nil, fmt.Errorf("descriptor table has no patches")
	}

	for i, spec := range table.Patches {
		if spec.Target == "" {
			return nil, fmt.Errorf("patch %d: missing target", i)
		}

		if spec.Marker == "" {
			return nil, fmt.Errorf("patch %d (%s): missing marker", i, spec.Target)
		}
	}

	return table.Patches, nil
}

// WriteDescriptors encodes specs as a `patches:` document.
func (s *YAMLDescriptorStore) WriteDescriptors(w io.Writer, specs []m.DescriptorSpec) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(m.DescriptorTable{Patches: specs}); err != nil {
		return fmt.Errorf("encode descriptor table: %w", err)
	}

	return encoder.Close()
}
