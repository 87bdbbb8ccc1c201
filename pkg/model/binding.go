package model

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
)

// Attributer lets custom types expose attributes without reflection.
type Attributer interface {
	Attribute(name string) (any, bool)
}

// ColumnNamer lets a model declare its own ordered column list.
type ColumnNamer interface {
	ColumnNames() []string
}

// TypeNamer overrides the type name used for derived captions.
type TypeNamer interface {
	TypeName() string
}

// Column describes a named attribute exposed by a model.
type Column struct {
	Name       string
	Field      string
	PrimaryKey bool
	ForeignKey bool
	index      []int
}

// Lookup reads the named attribute from m.
func Lookup(m any, column string) (any, error) {
	switch typed := m.(type) {
	case nil:
		return nil, fmt.Errorf("%w: %q on nil model", ErrMissingAttribute, column)
	case Attributer:
		value, ok := typed.Attribute(column)
		if !ok {
			return nil, missing(m, column)
		}
		return value, nil
	}

	rv := indirect(reflect.ValueOf(m))
	if !rv.IsValid() {
		return nil, fmt.Errorf("%w: %q on nil %T", ErrMissingAttribute, column, m)
	}

	switch rv.Kind() {
	case reflect.Struct:
		for _, col := range structColumns(rv.Type()) {
			if col.Name == column || col.Field == column {
				return rv.FieldByIndex(col.index).Interface(), nil
			}
		}
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		value := rv.MapIndex(reflect.ValueOf(column).Convert(rv.Type().Key()))
		if value.IsValid() {
			return value.Interface(), nil
		}
	}
	return nil, missing(m, column)
}

// Describe lists the columns m exposes in their natural order: declaration
// order for structs, insertion order for records and sorted keys for maps.
func Describe(m any) ([]Column, error) {
	if namer, ok := m.(ColumnNamer); ok {
		names := namer.ColumnNames()
		out := make([]Column, 0, len(names))
		for _, name := range names {
			out = append(out, Column{Name: name, Field: name})
		}
		return out, nil
	}
	if m == nil {
		return nil, fmt.Errorf("%w: nil", ErrUnsupportedModel)
	}
	return DescribeType(reflect.TypeOf(m), reflect.ValueOf(m))
}

// DescribeType lists the columns of a model type. The optional value is used
// for map keys, which are not part of the type.
func DescribeType(t reflect.Type, value reflect.Value) ([]Column, error) {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return nil, fmt.Errorf("%w: nil", ErrUnsupportedModel)
	}

	switch t.Kind() {
	case reflect.Struct:
		cols := structColumns(t)
		out := make([]Column, len(cols))
		copy(out, cols)
		return out, nil
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			break
		}
		value = indirect(value)
		if !value.IsValid() || value.Kind() != reflect.Map {
			return nil, nil
		}
		keys := make([]string, 0, value.Len())
		for _, key := range value.MapKeys() {
			keys = append(keys, key.String())
		}
		sort.Strings(keys)
		out := make([]Column, 0, len(keys))
		for _, key := range keys {
			out = append(out, Column{Name: key, Field: key})
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedModel, t)
}

// TypeName returns the display name of a model's type, honouring TypeNamer.
func TypeName(m any) string {
	if namer, ok := m.(TypeNamer); ok {
		return namer.TypeName()
	}
	return TypeNameOf(reflect.TypeOf(m))
}

// TypeNameOf returns the bare name of t, dereferencing pointers. Unnamed types
// fall back to their kind ("map", "struct").
func TypeNameOf(t reflect.Type) string {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	if t.Kind() != reflect.Interface && t.Implements(typeNamerType) {
		return reflect.Zero(t).Interface().(TypeNamer).TypeName()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.Kind().String()
}

// Same reports whether a and b refer to the same model. Reference kinds
// (pointers, maps, funcs, chans) compare by identity; other values compare by
// equality when they are comparable.
func Same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}
	if !va.Comparable() || !vb.Comparable() {
		return false
	}
	return va.Equal(vb)
}

var (
	typeNamerType = reflect.TypeOf((*TypeNamer)(nil)).Elem()

	structCache sync.Map // reflect.Type -> []Column
)

func structColumns(t reflect.Type) []Column {
	if cached, ok := structCache.Load(t); ok {
		return cached.([]Column)
	}
	cols := collectFields(t, nil)
	actual, _ := structCache.LoadOrStore(t, cols)
	return actual.([]Column)
}

func collectFields(t reflect.Type, parent []int) []Column {
	var out []Column
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag, hasTag := field.Tag.Lookup("table")
		if tag == "-" {
			continue
		}

		index := make([]int, 0, len(parent)+1)
		index = append(index, parent...)
		index = append(index, i)

		if field.Anonymous && !hasTag {
			ft := field.Type
			if ft.Kind() == reflect.Pointer {
				// nil embedded pointers cannot be traversed safely.
				continue
			}
			if ft.Kind() == reflect.Struct {
				out = append(out, collectFields(ft, index)...)
				continue
			}
		}
		if !field.IsExported() {
			continue
		}

		col := Column{Name: field.Name, Field: field.Name, index: index}
		if hasTag {
			parts := strings.Split(tag, ",")
			if name := strings.TrimSpace(parts[0]); name != "" {
				col.Name = name
			}
			for _, flag := range parts[1:] {
				switch strings.TrimSpace(flag) {
				case "pk":
					col.PrimaryKey = true
				case "fk":
					col.ForeignKey = true
				}
			}
		}
		out = append(out, col)
	}
	return out
}

func indirect(rv reflect.Value) reflect.Value {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

func missing(m any, column string) error {
	return fmt.Errorf("%w: %q on %s", ErrMissingAttribute, column, TypeName(m))
}
