package model

import "reflect"

// CellKind tags how a value read from a model should be displayed.
type CellKind int

const (
	// Scalar values are formatted and escaped as-is.
	Scalar CellKind = iota
	// Boolean values are emphasised.
	Boolean
	// Missing covers nil values, including nil pointers, maps and slices.
	Missing
	// Callback covers func values: unresolved accessors rather than data.
	Callback
)

func (k CellKind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Boolean:
		return "boolean"
	case Missing:
		return "missing"
	case Callback:
		return "callback"
	default:
		return "unknown"
	}
}

// Cell is a classified attribute value. Value holds the dereferenced value for
// Scalar and the plain bool for Boolean.
type Cell struct {
	Kind  CellKind
	Value any
}

// Classify resolves the display kind of v once.
func Classify(v any) Cell {
	if v == nil {
		return Cell{Kind: Missing}
	}
	rv := reflect.ValueOf(v)
	for {
		switch rv.Kind() {
		case reflect.Func:
			return Cell{Kind: Callback, Value: v}
		case reflect.Bool:
			return Cell{Kind: Boolean, Value: rv.Bool()}
		case reflect.Pointer, reflect.Interface:
			if rv.IsNil() {
				return Cell{Kind: Missing}
			}
			rv = rv.Elem()
			continue
		case reflect.Map, reflect.Slice, reflect.Chan:
			if rv.IsNil() {
				return Cell{Kind: Missing}
			}
		}
		return Cell{Kind: Scalar, Value: rv.Interface()}
	}
}
