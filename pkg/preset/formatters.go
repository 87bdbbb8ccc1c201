package preset

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formtable/pkg/model"
	"github.com/goliatone/go-formtable/pkg/table"
	"github.com/goliatone/go-formtable/pkg/tag"
)

// Formatter builds a display callback for a column.
type Formatter func(column string) table.DisplayFunc

// DefaultFormatters returns the built-in named formatters:
//
//	code    <code>value</code>
//	upper   upper-cased value
//	mailto  <a href="mailto:value">value</a>
//	link    <a href="value">value</a>, sanitized so only http, https and
//	        mailto targets keep their href
//
// Values are escaped; a missing or nil value renders as an empty string.
func DefaultFormatters() map[string]Formatter {
	return map[string]Formatter{
		"code": escaped(func(v string) string {
			return "<code>" + v + "</code>"
		}),
		"upper": func(column string) table.DisplayFunc {
			return func(m any) string {
				return tag.Escape(strings.ToUpper(text(m, column)))
			}
		},
		"mailto": escaped(func(v string) string {
			return fmt.Sprintf(`<a href="mailto:%s">%s</a>`, v, v)
		}),
		"link": escaped(func(v string) string {
			return tag.CellSanitizer().Sanitize(fmt.Sprintf(`<a href="%s">%s</a>`, v, v))
		}),
	}
}

func escaped(format func(v string) string) Formatter {
	return func(column string) table.DisplayFunc {
		return func(m any) string {
			v := text(m, column)
			if v == "" {
				return ""
			}
			return format(tag.Escape(v))
		}
	}
}

func text(m any, column string) string {
	value, err := model.Lookup(m, column)
	if err != nil {
		return ""
	}
	cell := model.Classify(value)
	if cell.Kind == model.Missing || cell.Kind == model.Callback {
		return ""
	}
	return fmt.Sprint(cell.Value)
}
