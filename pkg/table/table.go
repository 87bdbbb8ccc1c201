package table

import (
	"fmt"
	"slices"
	"strings"

	"github.com/goliatone/go-formtable/pkg/model"
)

// Table renders one model as a two column table: a header cell and a value
// cell per attribute.
type Table struct {
	model    any
	defaults []Option
}

// New binds m with optional default options.
func New(m any, opts ...Option) *Table {
	return &Table{model: m, defaults: slices.Clone(opts)}
}

// Configure appends default options applied before every render call's own
// options. It must not be called concurrently with Render.
func (t *Table) Configure(opts ...Option) *Table {
	t.defaults = append(t.defaults, opts...)
	return t
}

// Model returns the bound model.
func (t *Table) Model() any {
	return t.model
}

// Render returns the full <table> markup.
func (t *Table) Render(opts ...Option) (string, error) {
	cells := newCellRenderer(resolveOptions(t.defaults, opts))

	parts := make([]string, 0, 2)
	if cells.opts.Caption.Enabled() {
		caption, err := cells.caption(model.TypeName(t.model), 0, false)
		if err != nil {
			return "", err
		}
		parts = append(parts, caption)
	}

	body, err := t.body(cells)
	if err != nil {
		return "", err
	}
	parts = append(parts, body)

	return wrap("<table>", strings.Join(parts, "\n"), "</table>"), nil
}

// Body returns only the <tbody> section.
func (t *Table) Body(opts ...Option) (string, error) {
	return t.body(newCellRenderer(resolveOptions(t.defaults, opts)))
}

func (t *Table) body(cells cellRenderer) (string, error) {
	columns, err := model.Columns(t.model, cells.opts.Columns)
	if err != nil {
		return "", fmt.Errorf("table: resolve columns: %w", err)
	}

	rows := make([]string, 0, len(columns))
	for _, column := range columns {
		th, err := cells.header(column)
		if err != nil {
			return "", err
		}
		td, err := cells.cell(t.model, column)
		if err != nil {
			return "", err
		}
		rows = append(rows, wrap("<tr>", th+"\n"+td, "</tr>"))
	}
	return wrap("<tbody>", strings.Join(rows, "\n"), "</tbody>"), nil
}
