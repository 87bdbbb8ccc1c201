package table

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/goliatone/go-formtable/pkg/model"
)

// Collection renders a slice of models sharing the same columns.
type Collection[M any] struct {
	models   []M
	defaults []Option
}

// NewCollection binds models with optional default options.
func NewCollection[M any](models []M, opts ...Option) *Collection[M] {
	return &Collection[M]{models: models, defaults: slices.Clone(opts)}
}

// Configure appends default options applied before every render call's own
// options. It must not be called concurrently with Render.
func (c *Collection[M]) Configure(opts ...Option) *Collection[M] {
	c.defaults = append(c.defaults, opts...)
	return c
}

// Len returns the number of models in the collection.
func (c *Collection[M]) Len() int {
	return len(c.models)
}

// Render returns the full <table> markup. Columns are resolved once from the
// first model; a later model lacking one of them fails the render.
func (c *Collection[M]) Render(opts ...Option) (string, error) {
	cells := newCellRenderer(resolveOptions(c.defaults, opts))

	columns, err := c.columns(cells.opts.Columns)
	if err != nil {
		return "", fmt.Errorf("table: resolve columns: %w", err)
	}

	parts := make([]string, 0, 3)
	if cells.opts.Caption.Enabled() {
		caption, err := cells.caption(c.typeName(), len(c.models), true)
		if err != nil {
			return "", err
		}
		parts = append(parts, caption)
	}

	header, err := cells.headerRow(columns)
	if err != nil {
		return "", err
	}
	parts = append(parts, wrap("<thead>", header, "</thead>"))

	rows := make([]string, 0, len(c.models))
	for i, m := range c.models {
		row, err := cells.dataRow(m, columns)
		if err != nil {
			return "", fmt.Errorf("table: row %d: %w", i, err)
		}
		rows = append(rows, row)
	}
	parts = append(parts, wrap("<tbody>", strings.Join(rows, "\n"), "</tbody>"))

	return wrap("<table>", strings.Join(parts, "\n"), "</table>"), nil
}

func (c *Collection[M]) columns(opts model.ColumnOptions) ([]string, error) {
	if len(c.models) > 0 {
		return model.Columns(c.models[0], opts)
	}
	var zero M
	if _, dynamic := any(zero).(model.ColumnNamer); dynamic {
		return model.SelectColumns(nil, opts), nil
	}
	t := reflect.TypeFor[M]()
	if t.Kind() == reflect.Interface {
		return model.SelectColumns(nil, opts), nil
	}
	cols, err := model.DescribeType(t, reflect.Value{})
	if err != nil {
		return nil, err
	}
	return model.SelectColumns(cols, opts), nil
}

func (c *Collection[M]) typeName() string {
	if len(c.models) > 0 {
		return model.TypeName(c.models[0])
	}
	t := reflect.TypeFor[M]()
	if t.Kind() == reflect.Interface {
		return ""
	}
	return model.TypeNameOf(t)
}
