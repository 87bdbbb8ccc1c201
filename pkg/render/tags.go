package render

import (
	"fmt"
	"maps"
	"strings"

	"github.com/goliatone/go-formtable/pkg/render/template"
	"github.com/goliatone/go-formtable/pkg/tag"
)

// TagsOption configures a TemplateTags renderer.
type TagsOption func(*TemplateTags)

// WithFallback sets the renderer used for unmapped elements and failing
// templates.
func WithFallback(r tag.Renderer) TagsOption {
	return func(t *TemplateTags) {
		if r != nil {
			t.fallback = r
		}
	}
}

// WithStrictTemplates returns template errors instead of falling back.
func WithStrictTemplates() TagsOption {
	return func(t *TemplateTags) {
		t.strict = true
	}
}

// WithTemplateData adds values available to every element template.
func WithTemplateData(data map[string]any) TagsOption {
	return func(t *TemplateTags) {
		if len(data) == 0 {
			return
		}
		if t.data == nil {
			t.data = make(map[string]any, len(data))
		}
		maps.Copy(t.data, data)
	}
}

// TemplateTags renders elements through templates keyed by element name
// ("caption", "th", "td", "em"). Each template receives `name` and the
// escaped `content`, plus any template data. Templates may be inline content
// or names resolved by the engine.
type TemplateTags struct {
	engine    template.TemplateRenderer
	templates map[string]string
	data      map[string]any
	fallback  tag.Renderer
	strict    bool
}

var _ tag.Renderer = (*TemplateTags)(nil)

// NewTemplateTags builds a template-backed tag renderer.
func NewTemplateTags(engine template.TemplateRenderer, templates map[string]string, opts ...TagsOption) (*TemplateTags, error) {
	if engine == nil {
		return nil, ErrTemplateEngine
	}
	t := &TemplateTags{
		engine:    engine,
		templates: make(map[string]string, len(templates)),
		fallback:  tag.Default(),
	}
	for name, tpl := range templates {
		name = strings.TrimSpace(name)
		if name == "" || strings.TrimSpace(tpl) == "" {
			continue
		}
		t.templates[name] = tpl
	}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	return t, nil
}

// Elements lists the element names with a template.
func (t *TemplateTags) Elements() []string {
	names := make([]string, 0, len(t.templates))
	for name := range t.templates {
		names = append(names, name)
	}
	return names
}

// ContentTag implements tag.Renderer.
func (t *TemplateTags) ContentTag(name string, content any) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", tag.ErrEmptyName
	}
	tpl, ok := t.templates[name]
	if !ok {
		return t.fallback.ContentTag(name, content)
	}

	data := make(map[string]any, len(t.data)+2)
	maps.Copy(data, t.data)
	data["name"] = name
	data["content"] = tag.Escape(content)

	out, err := t.engine.Render(tpl, data)
	if err != nil {
		if t.strict {
			return "", fmt.Errorf("render: element %q: %w", name, err)
		}
		return t.fallback.ContentTag(name, content)
	}
	return out, nil
}
