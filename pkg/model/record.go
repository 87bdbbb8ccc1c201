package model

import (
	"errors"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

const defaultRecordName = "Record"

// Record is an ordered attribute set, typically decoded from YAML or JSON data
// files where key order is meaningful for column layout.
type Record struct {
	Name   string
	keys   []string
	values map[string]any
}

// NewRecord returns an empty record. The name is used for derived captions.
func NewRecord(name string) *Record {
	return &Record{Name: name, values: make(map[string]any)}
}

// Set stores value under key, appending key on first use.
func (r *Record) Set(key string, value any) *Record {
	if r.values == nil {
		r.values = make(map[string]any)
	}
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
	return r
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (any, bool) {
	if r == nil {
		return nil, false
	}
	value, ok := r.values[key]
	return value, ok
}

// Keys returns the record keys in insertion order.
func (r *Record) Keys() []string {
	if r == nil {
		return nil
	}
	return slices.Clone(r.keys)
}

// Attribute implements Attributer.
func (r *Record) Attribute(name string) (any, bool) {
	return r.Get(name)
}

// ColumnNames implements ColumnNamer.
func (r *Record) ColumnNames() []string {
	return r.Keys()
}

// TypeName implements TypeNamer.
func (r *Record) TypeName() string {
	if r == nil || r.Name == "" {
		return defaultRecordName
	}
	return r.Name
}

// UnmarshalYAML decodes a mapping node while preserving key order.
func (r *Record) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("model: record expects a mapping, got %s", nodeKind(node))
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		var value any
		if err := valueNode.Decode(&value); err != nil {
			return fmt.Errorf("model: decode record key %q: %w", keyNode.Value, err)
		}
		r.Set(keyNode.Value, value)
	}
	return nil
}

// DecodeRecords parses YAML (or JSON) data holding either a single mapping or
// a sequence of mappings. collection reports which shape was found.
func DecodeRecords(data []byte, name string) (records []*Record, collection bool, err error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, false, fmt.Errorf("model: parse records: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, false, errors.New("model: records document is empty")
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.MappingNode:
		record := NewRecord(name)
		if err := record.UnmarshalYAML(root); err != nil {
			return nil, false, err
		}
		return []*Record{record}, false, nil
	case yaml.SequenceNode:
		records = make([]*Record, 0, len(root.Content))
		for i, item := range root.Content {
			record := NewRecord(name)
			if err := record.UnmarshalYAML(item); err != nil {
				return nil, true, fmt.Errorf("model: record %d: %w", i, err)
			}
			records = append(records, record)
		}
		return records, true, nil
	default:
		return nil, false, fmt.Errorf("model: records must be a mapping or sequence, got %s", nodeKind(root))
	}
}

func nodeKind(node *yaml.Node) string {
	switch node.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
