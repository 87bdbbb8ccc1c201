package model

import "errors"

var (
	// ErrMissingAttribute is returned when a column cannot be read from the
	// active model.
	ErrMissingAttribute = errors.New("model: missing attribute")
	// ErrUnsupportedModel is returned when columns cannot be derived from a
	// model value (nil, scalars, Attributer without ColumnNamer).
	ErrUnsupportedModel = errors.New("model: unsupported model")
)
