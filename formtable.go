// Package formtable renders HTML tables from bound models. It re-exports the
// table constructors and option helpers so callers can import one package.
package formtable

import (
	"github.com/goliatone/go-formtable/internal/label"
	"github.com/goliatone/go-formtable/pkg/render"
	"github.com/goliatone/go-formtable/pkg/table"
	"github.com/goliatone/go-formtable/pkg/tag"
)

// Table renders a single model as a header/value table.
type Table = table.Table

// Concat renders several models under one table.
type Concat = table.Concat

// Target pairs a model with its options inside a Concat.
type Target = table.Target

// Option configures a render call.
type Option = table.Option

// Options holds resolved render settings.
type Options = table.Options

// Caption selects caption presence and text.
type Caption = table.Caption

// DisplayFunc overrides a column's cell content with markup.
type DisplayFunc = table.DisplayFunc

// New returns a single model table.
func New(m any, opts ...Option) *Table {
	return table.New(m, opts...)
}

// NewCollection returns a table with one row per model.
func NewCollection[M any](models []M, opts ...Option) *table.Collection[M] {
	return table.NewCollection(models, opts...)
}

// NewConcat joins targets under one table.
func NewConcat(targets ...Target) *Concat {
	return table.NewConcat(targets...)
}

// Models is shorthand for NewConcat with default options per model.
func Models(models ...any) *Concat {
	return table.Models(models...)
}

// Of pairs a model with options for NewConcat.
func Of(m any, opts ...Option) Target {
	return table.Of(m, opts...)
}

// Render renders m as a single model table.
func Render(m any, opts ...Option) (string, error) {
	return table.New(m).Render(opts...)
}

// Caption constructors.
var (
	AutoCaption = table.AutoCaption
	NoCaption   = table.NoCaption
	CaptionText = table.CaptionText
	CaptionFor  = table.CaptionFor
)

// Option helpers.
var (
	WithAlias          = table.WithAlias
	WithAliasFor       = table.WithAliasFor
	WithDisplay        = table.WithDisplay
	WithDisplayFor     = table.WithDisplayFor
	WithCaption        = table.WithCaption
	WithCaptionText    = table.WithCaptionText
	WithoutCaption     = table.WithoutCaption
	WithCollectionSize = table.WithCollectionSize
	WithInclude        = table.WithInclude
	WithExclude        = table.WithExclude
	WithPrimaryKeys    = table.WithPrimaryKeys
	WithForeignKeys    = table.WithForeignKeys
	WithTagRenderer    = table.WithTagRenderer
	WithLabeler        = table.WithLabeler
	WithAliasLabeler   = table.WithAliasLabeler
	WithSanitizer      = table.WithSanitizer
)

// Prettify turns identifiers into sentence case labels ("first_name" becomes
// "First name").
func Prettify(s string) string {
	return label.Prettify(s)
}

// Title turns identifiers into title case labels ("first_name" becomes
// "First Name").
func Title(s string) string {
	return label.Title(s)
}

// WithTitleLabels title-cases headers, derived captions and placeholders.
func WithTitleLabels() Option {
	return table.WithLabeler(label.Title)
}

// WithSanitizedDisplay cleans display callback markup with the shared
// user-content policy.
func WithSanitizedDisplay() Option {
	return table.WithSanitizer(tag.CellSanitizer())
}

// NewStrategies returns the registry of built-in tag renderers ("html" and
// "template").
func NewStrategies() (*render.Registry, error) {
	return render.NewDefaultRegistry()
}

// WithStrategy renders elements with the named built-in strategy.
func WithStrategy(name string) (Option, error) {
	registry, err := render.NewDefaultRegistry()
	if err != nil {
		return nil, err
	}
	tags, err := registry.Get(name)
	if err != nil {
		return nil, err
	}
	return table.WithTagRenderer(tags), nil
}
