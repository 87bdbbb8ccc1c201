// Package tag wraps content into HTML elements. Plain content is escaped;
// values typed as HTML are trusted markup and pass through untouched, which
// lets nested elements (an <em> inside a <td>) compose without double
// escaping.
package tag

import (
	"errors"
	"fmt"
	"html"
	"strings"
)

// ErrEmptyName is returned when an element name is blank.
var ErrEmptyName = errors.New("tag: element name is required")

// HTML is markup that must not be escaped again.
type HTML string

// Renderer wraps content into a named element.
type Renderer interface {
	ContentTag(name string, content any) (string, error)
}

// RendererFunc adapts a function into a Renderer.
type RendererFunc func(name string, content any) (string, error)

// ContentTag calls the underlying function.
func (fn RendererFunc) ContentTag(name string, content any) (string, error) {
	return fn(name, content)
}

type markupRenderer struct{}

var defaultRenderer Renderer = markupRenderer{}

// Default returns the plain element renderer: <name>escaped content</name>.
func Default() Renderer {
	return defaultRenderer
}

func (markupRenderer) ContentTag(name string, content any) (string, error) {
	return ContentTag(name, content)
}

// ContentTag renders <name>content</name> with the default escaping rules.
func ContentTag(name string, content any) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(name)
	b.WriteByte('>')
	b.WriteString(Escape(content))
	b.WriteString("</")
	b.WriteString(name)
	b.WriteByte('>')
	return b.String(), nil
}

// Escape renders content as safe markup. HTML values are returned verbatim,
// nil renders as the empty string and everything else is formatted with fmt
// and escaped.
func Escape(content any) string {
	switch v := content.(type) {
	case nil:
		return ""
	case HTML:
		return string(v)
	case string:
		return html.EscapeString(v)
	case fmt.Stringer:
		return html.EscapeString(v.String())
	default:
		return html.EscapeString(fmt.Sprint(v))
	}
}
