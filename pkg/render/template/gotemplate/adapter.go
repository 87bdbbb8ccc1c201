package gotemplate

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formtable/internal/label"
	"github.com/goliatone/go-formtable/pkg/render/template"
)

const templateExt = ".tpl"

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	baseDir   string
	templates fs.FS
}

// WithBaseDir loads element templates from a directory on disk.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS loads element templates from an fs.FS.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// Engine renders element templates with pongo2. Named templates resolve to
// "<name>.tpl" in the configured sources; parsed templates are cached by name
// and inline templates by content.
type Engine struct {
	mu     sync.RWMutex
	set    *pongo2.TemplateSet
	files  map[string]*pongo2.Template
	inline map[string]*pongo2.Template
}

var _ template.TemplateRenderer = (*Engine)(nil)

var filtersOnce sync.Once

// New constructs an Engine. At least one template source is required.
func New(options ...Option) (*Engine, error) {
	cfg := &config{}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}
	if cfg.baseDir == "" && cfg.templates == nil {
		return nil, errors.New("gotemplate: need to provide either base dir or fs.FS")
	}

	var loaders []pongo2.TemplateLoader
	if cfg.baseDir != "" {
		loader, err := pongo2.NewLocalFileSystemLoader(cfg.baseDir)
		if err != nil {
			return nil, fmt.Errorf("gotemplate: create local loader: %w", err)
		}
		loaders = append(loaders, loader)
	}
	if cfg.templates != nil {
		loaders = append(loaders, pongo2.NewFSLoader(cfg.templates))
	}

	filtersOnce.Do(registerFilters)

	return &Engine{
		set:    pongo2.NewSet("formtable", loaders...),
		files:  make(map[string]*pongo2.Template),
		inline: make(map[string]*pongo2.Template),
	}, nil
}

// Render treats name as inline content when it contains template tags and as
// a template name otherwise.
func (e *Engine) Render(name string, data map[string]any) (string, error) {
	if strings.Contains(name, "{{") || strings.Contains(name, "{%") {
		return e.RenderString(name, data)
	}
	return e.RenderTemplate(name, data)
}

// RenderTemplate renders a named template from the configured sources.
func (e *Engine) RenderTemplate(name string, data map[string]any) (string, error) {
	path := strings.TrimSuffix(name, templateExt) + templateExt
	tmpl, err := e.load(e.files, path, e.set.FromFile)
	if err != nil {
		return "", fmt.Errorf("gotemplate: load template %q: %w", path, err)
	}
	return execute(tmpl, data, path)
}

// RenderString renders inline template content.
func (e *Engine) RenderString(content string, data map[string]any) (string, error) {
	tmpl, err := e.load(e.inline, content, e.set.FromString)
	if err != nil {
		return "", fmt.Errorf("gotemplate: parse template string: %w", err)
	}
	return execute(tmpl, data, "inline template")
}

func (e *Engine) load(cache map[string]*pongo2.Template, key string, parse func(string) (*pongo2.Template, error)) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl, ok := cache[key]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if tmpl, ok := cache[key]; ok {
		return tmpl, nil
	}
	tmpl, err := parse(key)
	if err != nil {
		return nil, err
	}
	cache[key] = tmpl
	return tmpl, nil
}

func execute(tmpl *pongo2.Template, data map[string]any, what string) (string, error) {
	out, err := tmpl.Execute(pongo2.Context(data))
	if err != nil {
		return "", fmt.Errorf("gotemplate: execute %s: %w", what, err)
	}
	return out, nil
}

// registerFilters adds the label filters element templates use:
// {{ content|prettify }} and {{ content|titlecase }}.
func registerFilters() {
	for name, fn := range map[string]label.Func{
		"prettify":  label.Prettify,
		"titlecase": label.Title,
	} {
		if pongo2.FilterExists(name) {
			continue
		}
		_ = pongo2.RegisterFilter(name, labelFilter(fn))
	}
}

func labelFilter(fn label.Func) pongo2.FilterFunction {
	return func(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		return pongo2.AsValue(fn(in.String())), nil
	}
}
