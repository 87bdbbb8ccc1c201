package render

import "errors"

var (
	// ErrUnknownStrategy is returned when a strategy name is not registered.
	ErrUnknownStrategy = errors.New("render: unknown strategy")
	// ErrTemplateEngine is returned when a template-backed renderer has no
	// engine.
	ErrTemplateEngine = errors.New("render: template engine is required")
)
