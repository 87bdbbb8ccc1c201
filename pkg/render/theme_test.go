package render

import (
	"strings"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formtable/pkg/table"
)

func testThemeConfig() *theme.RendererConfig {
	return &theme.RendererConfig{
		Theme:   "acme",
		Variant: "dark",
		Tokens: map[string]string{
			"brand": "#123456",
		},
		CSSVars: map[string]string{
			"--brand": "#123456",
		},
		Partials: map[string]string{
			"table.caption": "themes/acme/caption",
			"table.th":      `<th style="color: {{ theme.tokens.brand }}">{{ content|safe }}</th>`,
			"forms.input":   "themes/acme/input",
		},
	}
}

func TestThemeTagsUsesTablePartials(t *testing.T) {
	engine := newEngine(t, fstest.MapFS{
		"themes/acme/caption.tpl": {Data: []byte(`<caption data-theme="{{ theme.name }}-{{ theme.variant }}">{{ content|safe }}</caption>`)},
	})
	tags, err := ThemeTags(testThemeConfig(), engine)
	if err != nil {
		t.Fatalf("theme tags: %v", err)
	}

	elements := strings.Join(sortedCopy(tags.Elements()), ",")
	if elements != "caption,th" {
		t.Fatalf("expected only table partials mapped, got %s", elements)
	}

	out, err := table.New(&account{Email: "a@b.c"}).Render(table.WithTagRenderer(tags))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{
		`<caption data-theme="acme-dark">Account</caption>`,
		`<th style="color: #123456">Email</th>`,
		`<td>a@b.c</td>`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in output:\n%s", want, out)
		}
	}
}

func TestThemeTagsNilConfigFallsBack(t *testing.T) {
	tags, err := ThemeTags(nil, newEngine(t, fstest.MapFS{}))
	if err != nil {
		t.Fatalf("theme tags: %v", err)
	}
	got, err := tags.ContentTag("td", "x")
	if err != nil || got != "<td>x</td>" {
		t.Fatalf("expected plain markup, got %q (%v)", got, err)
	}
}

type stubSelector struct {
	selection *theme.Selection
	err       error
}

func (s *stubSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	return s.selection, s.err
}

func TestSelectThemeMergesVariant(t *testing.T) {
	selector := &stubSelector{selection: &theme.Selection{
		Theme:   "acme",
		Variant: "dark",
		Manifest: &theme.Manifest{
			Name:    "acme",
			Version: "1.0.0",
			Tokens:  map[string]string{"brand": "#123456", "muted": "#999999"},
			Templates: map[string]string{
				"table.th": "themes/acme/th",
				"table.td": "themes/acme/td",
			},
			Variants: map[string]theme.Variant{
				"dark": {
					Tokens:    map[string]string{"brand": "#654321"},
					Templates: map[string]string{"table.td": "themes/acme/dark/td"},
				},
			},
		},
	}}

	cfg, err := SelectTheme(selector, "acme", "dark")
	if err != nil {
		t.Fatalf("select theme: %v", err)
	}
	if cfg.Theme != "acme" || cfg.Variant != "dark" {
		t.Fatalf("expected acme/dark, got %s/%s", cfg.Theme, cfg.Variant)
	}
	if cfg.Partials["table.td"] != "themes/acme/dark/td" {
		t.Fatalf("expected variant partial override, got %s", cfg.Partials["table.td"])
	}
	if cfg.Partials["table.th"] != "themes/acme/th" {
		t.Fatalf("expected base partial kept, got %s", cfg.Partials["table.th"])
	}
	if cfg.Tokens["brand"] != "#654321" || cfg.CSSVars["--brand"] != "#654321" {
		t.Fatalf("expected variant token in tokens and css vars, got %s / %s", cfg.Tokens["brand"], cfg.CSSVars["--brand"])
	}
	if cfg.CSSVars["--muted"] != "#999999" {
		t.Fatalf("expected base token css var, got %s", cfg.CSSVars["--muted"])
	}
}

func TestSelectThemeErrors(t *testing.T) {
	if _, err := SelectTheme(nil, "acme", ""); err == nil {
		t.Fatalf("expected error for nil selector")
	}
	if _, err := SelectTheme(&stubSelector{}, "acme", ""); err == nil {
		t.Fatalf("expected error for empty selection")
	}
}
