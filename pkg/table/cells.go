package table

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formtable/pkg/model"
	"github.com/goliatone/go-formtable/pkg/tag"
)

const placeholderText = "not available."

// cellRenderer renders header, data and caption cells for one render call.
type cellRenderer struct {
	opts Options
}

func newCellRenderer(opts Options) cellRenderer {
	return cellRenderer{opts: opts}
}

func (c cellRenderer) header(column string) (string, error) {
	var text string
	if alias, ok := c.opts.Alias[column]; ok {
		text = c.opts.AliasLabeler(alias)
	} else {
		text = c.opts.Labeler(column)
	}
	out, err := c.opts.Tags.ContentTag("th", text)
	if err != nil {
		return "", fmt.Errorf("table: render header %q: %w", column, err)
	}
	return out, nil
}

func (c cellRenderer) cell(active any, column string) (string, error) {
	value, err := model.Lookup(active, column)
	if err != nil {
		return "", fmt.Errorf("table: render cell %q: %w", column, err)
	}

	content, err := c.content(active, column, value)
	if err != nil {
		return "", fmt.Errorf("table: render cell %q: %w", column, err)
	}
	out, err := c.opts.Tags.ContentTag("td", content)
	if err != nil {
		return "", fmt.Errorf("table: render cell %q: %w", column, err)
	}
	return out, nil
}

func (c cellRenderer) content(active any, column string, value any) (any, error) {
	if display := c.opts.Display[column]; display != nil {
		return tag.Sanitize(c.opts.Sanitizer, display(active)), nil
	}

	cell := model.Classify(value)
	switch cell.Kind {
	case model.Boolean:
		return c.emphasis(cell.Value)
	case model.Missing, model.Callback:
		return c.emphasis(c.opts.Labeler(placeholderText))
	default:
		return cell.Value, nil
	}
}

func (c cellRenderer) emphasis(content any) (tag.HTML, error) {
	out, err := c.opts.Tags.ContentTag("em", content)
	if err != nil {
		return "", err
	}
	return tag.HTML(out), nil
}

// caption renders the caption for a model type. size is only appended when
// the table owns a collection.
func (c cellRenderer) caption(typeName string, size int, owned bool) (string, error) {
	text, ok := c.opts.Caption.Text()
	if !ok {
		text = c.opts.Labeler(typeName)
	}
	if owned && c.opts.CollectionSize {
		text += fmt.Sprintf(" (%d)", size)
	}
	out, err := c.opts.Tags.ContentTag("caption", text)
	if err != nil {
		return "", fmt.Errorf("table: render caption: %w", err)
	}
	return out, nil
}

func (c cellRenderer) headerRow(columns []string) (string, error) {
	cells := make([]string, 0, len(columns))
	for _, column := range columns {
		th, err := c.header(column)
		if err != nil {
			return "", err
		}
		cells = append(cells, th)
	}
	return wrap("<tr>", strings.Join(cells, "\n"), "</tr>"), nil
}

func (c cellRenderer) dataRow(active any, columns []string) (string, error) {
	cells := make([]string, 0, len(columns))
	for _, column := range columns {
		td, err := c.cell(active, column)
		if err != nil {
			return "", err
		}
		cells = append(cells, td)
	}
	return wrap("<tr>", strings.Join(cells, "\n"), "</tr>"), nil
}

func wrap(start, body, end string) string {
	return start + "\n" + body + "\n" + end
}
