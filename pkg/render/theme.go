package render

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formtable/pkg/render/template"
)

// ThemePartialPrefix namespaces table element partials inside a theme, e.g.
// "table.td" or "table.caption".
const ThemePartialPrefix = "table."

// ThemeTags builds a template-backed tag renderer from a theme selection.
// Partials under ThemePartialPrefix become element templates; the theme name,
// variant, tokens and CSS variables are exposed to templates as `theme`.
// A nil config yields a renderer that always falls back to plain markup.
func ThemeTags(cfg *theme.RendererConfig, engine template.TemplateRenderer, opts ...TagsOption) (*TemplateTags, error) {
	templates := make(map[string]string)
	data := map[string]any{}
	if cfg != nil {
		for key, partial := range cfg.Partials {
			if element, ok := strings.CutPrefix(key, ThemePartialPrefix); ok {
				templates[element] = partial
			}
		}
		data["theme"] = map[string]any{
			"name":     cfg.Theme,
			"variant":  cfg.Variant,
			"tokens":   copyStringMap(cfg.Tokens),
			"css_vars": copyStringMap(cfg.CSSVars),
		}
	}
	return NewTemplateTags(engine, templates, append([]TagsOption{WithTemplateData(data)}, opts...)...)
}

// SelectTheme resolves a theme through selector and flattens the selection
// into a renderer config: variant templates and tokens override the
// manifest's, and every token is also exposed as a "--<token>" CSS variable.
func SelectTheme(selector theme.ThemeSelector, name, variant string) (*theme.RendererConfig, error) {
	if selector == nil {
		return nil, errors.New("render: theme selector is required")
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("render: select theme %q: %w", name, err)
	}
	if selection == nil {
		return nil, fmt.Errorf("render: theme %q not found", name)
	}

	cfg := &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: map[string]string{},
		Tokens:   map[string]string{},
		CSSVars:  map[string]string{},
	}
	if manifest := selection.Manifest; manifest != nil {
		maps.Copy(cfg.Partials, manifest.Templates)
		maps.Copy(cfg.Tokens, manifest.Tokens)
		if v, ok := manifest.Variants[selection.Variant]; ok {
			maps.Copy(cfg.Partials, v.Templates)
			maps.Copy(cfg.Tokens, v.Tokens)
		}
	}
	for key, value := range cfg.Tokens {
		cfg.CSSVars["--"+key] = value
	}
	return cfg, nil
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
