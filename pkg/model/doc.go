// Package model binds arbitrary Go values to the table renderers. A model is
// any value the renderers can read named attributes from: a struct (or pointer
// to one), a map keyed by strings, an ordered Record decoded from YAML/JSON, or
// a custom type implementing Attributer. Struct fields are exposed in
// declaration order and may be renamed or flagged through the `table` tag:
//
//	type Address struct {
//		ID       int    `table:"id,pk"`
//		PersonID int    `table:"person_id,fk"`
//		Street   string `table:"street"`
//		internal string // unexported fields are never columns
//		Notes    string `table:"-"`
//	}
//
// Values read from a model are classified once into a Cell so renderers can
// branch on Scalar, Boolean, Missing and Callback without repeated reflection.
package model
