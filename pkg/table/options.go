package table

import (
	"maps"
	"slices"

	"github.com/goliatone/go-formtable/internal/label"
	"github.com/goliatone/go-formtable/pkg/model"
	"github.com/goliatone/go-formtable/pkg/tag"
)

// DisplayFunc overrides a column's cell content. The returned string is
// markup and is not escaped.
type DisplayFunc func(m any) string

// Options holds the resolved settings for one render call.
type Options struct {
	// Alias maps column names to header text.
	Alias map[string]string
	// Display maps column names to content callbacks. Nil entries are ignored.
	Display map[string]DisplayFunc
	// Caption controls caption presence and text.
	Caption Caption
	// CollectionSize appends " (<count>)" to collection captions.
	CollectionSize bool
	// Columns selects and orders the rendered columns.
	Columns model.ColumnOptions

	// Tags wraps content into elements.
	Tags tag.Renderer
	// Labeler formats column names, derived captions and placeholders.
	Labeler label.Func
	// AliasLabeler formats alias header text.
	AliasLabeler label.Func
	// Sanitizer, when set, cleans display callback markup.
	Sanitizer tag.Sanitizer
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the settings used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Caption:        AutoCaption(),
		CollectionSize: true,
		Columns:        model.ColumnOptions{PrimaryKeys: true},
		Tags:           tag.Default(),
		Labeler:        label.Prettify,
		AliasLabeler:   label.Capitalize,
	}
}

// NewOptions applies opts over DefaultOptions.
func NewOptions(opts ...Option) Options {
	return resolveOptions(opts)
}

func resolveOptions(layers ...[]Option) Options {
	out := DefaultOptions()
	for _, layer := range layers {
		for _, opt := range layer {
			if opt == nil {
				continue
			}
			opt(&out)
		}
	}
	if out.Tags == nil {
		out.Tags = tag.Default()
	}
	if out.Labeler == nil {
		out.Labeler = label.Prettify
	}
	if out.AliasLabeler == nil {
		out.AliasLabeler = label.Capitalize
	}
	return out
}

// WithAlias replaces the header alias mapping.
func WithAlias(alias map[string]string) Option {
	alias = maps.Clone(alias)
	return func(o *Options) {
		o.Alias = alias
	}
}

// WithAliasFor sets the header text of a single column.
func WithAliasFor(column, text string) Option {
	return func(o *Options) {
		next := maps.Clone(o.Alias)
		if next == nil {
			next = make(map[string]string, 1)
		}
		next[column] = text
		o.Alias = next
	}
}

// WithDisplay replaces the display callback mapping.
func WithDisplay(display map[string]DisplayFunc) Option {
	display = maps.Clone(display)
	return func(o *Options) {
		o.Display = display
	}
}

// WithDisplayFor sets the display callback of a single column.
func WithDisplayFor(column string, fn DisplayFunc) Option {
	return func(o *Options) {
		next := maps.Clone(o.Display)
		if next == nil {
			next = make(map[string]DisplayFunc, 1)
		}
		next[column] = fn
		o.Display = next
	}
}

// WithCaption sets the caption.
func WithCaption(caption Caption) Option {
	return func(o *Options) {
		o.Caption = caption
	}
}

// WithCaptionText is shorthand for WithCaption(CaptionText(text)).
func WithCaptionText(text string) Option {
	return WithCaption(CaptionText(text))
}

// WithoutCaption disables the caption.
func WithoutCaption() Option {
	return WithCaption(NoCaption())
}

// WithCollectionSize toggles the row count suffix on collection captions.
func WithCollectionSize(enabled bool) Option {
	return func(o *Options) {
		o.CollectionSize = enabled
	}
}

// WithInclude renders exactly the given columns, in order.
func WithInclude(columns ...string) Option {
	columns = slices.Clone(columns)
	return func(o *Options) {
		o.Columns.Include = columns
	}
}

// WithExclude drops the given columns.
func WithExclude(columns ...string) Option {
	columns = slices.Clone(columns)
	return func(o *Options) {
		o.Columns.Exclude = columns
	}
}

// WithPrimaryKeys toggles columns tagged `pk`.
func WithPrimaryKeys(enabled bool) Option {
	return func(o *Options) {
		o.Columns.PrimaryKeys = enabled
	}
}

// WithForeignKeys toggles columns tagged `fk`.
func WithForeignKeys(enabled bool) Option {
	return func(o *Options) {
		o.Columns.ForeignKeys = enabled
	}
}

// WithTagRenderer swaps the element renderer.
func WithTagRenderer(r tag.Renderer) Option {
	return func(o *Options) {
		if r != nil {
			o.Tags = r
		}
	}
}

// WithLabeler swaps the label formatter.
func WithLabeler(fn label.Func) Option {
	return func(o *Options) {
		if fn != nil {
			o.Labeler = fn
		}
	}
}

// WithAliasLabeler swaps the formatter applied to alias header text.
func WithAliasLabeler(fn label.Func) Option {
	return func(o *Options) {
		if fn != nil {
			o.AliasLabeler = fn
		}
	}
}

// WithSanitizer cleans display callback markup with s.
func WithSanitizer(s tag.Sanitizer) Option {
	return func(o *Options) {
		o.Sanitizer = s
	}
}
