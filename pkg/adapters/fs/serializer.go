package fs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/outline/pkg/core"
)

// Serializer defines how to read and write a document snapshot in a specific file format.
type Serializer interface {
	// Parse reads from r and returns a Snapshot.
	Parse(r io.Reader) (core.Snapshot, error)
	// Serialize converts the Snapshot to bytes.
	Serialize(s core.Snapshot) ([]byte, error)
}

// DefaultSerializers returns the standard set of serializers.
func DefaultSerializers(strict bool) map[string]Serializer {
	return map[string]Serializer{
		".yaml": NewYAMLSerializer(strict),
		".yml":  NewYAMLSerializer(strict),
		".json": NewJSONSerializer(strict),
	}
}

// --- JSON Serializer ---

// JSONSerializer handles reading and writing JSON files.
type JSONSerializer struct {
	// Strict rejects unknown fields.
	Strict bool
}

// NewJSONSerializer creates a new JSON serializer.
func NewJSONSerializer(strict bool) *JSONSerializer {
	return &JSONSerializer{Strict: strict}
}

func (s *JSONSerializer) Parse(r io.Reader) (core.Snapshot, error) {
	var snap core.Snapshot
	decoder := json.NewDecoder(r)
	if s.Strict {
		decoder.DisallowUnknownFields()
	}
	if err := decoder.Decode(&snap); err != nil {
		return core.Snapshot{}, fmt.Errorf("invalid json: %w", err)
	}
	return snap, nil
}

func (s *JSONSerializer) Serialize(snap core.Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// --- YAML Serializer ---

// YAMLSerializer handles reading and writing YAML files.
type YAMLSerializer struct {
	// Strict rejects unknown fields.
	Strict bool
}

// NewYAMLSerializer creates a new YAML serializer.
func NewYAMLSerializer(strict bool) *YAMLSerializer {
	return &YAMLSerializer{Strict: strict}
}

func (s *YAMLSerializer) Parse(r io.Reader) (core.Snapshot, error) {
	var snap core.Snapshot
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(s.Strict)
	if err := decoder.Decode(&snap); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty file: an empty document.
			return snap, nil
		}
		return core.Snapshot{}, fmt.Errorf("invalid yaml: %w", err)
	}
	return snap, nil
}

func (s *YAMLSerializer) Serialize(snap core.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(snap); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
