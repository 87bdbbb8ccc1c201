package render

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-formtable/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formtable/pkg/tag"
)

const (
	// StrategyHTML names the plain markup renderer.
	StrategyHTML = "html"
	// StrategyTemplate names the class-annotated template renderer.
	StrategyTemplate = "template"
)

// Registry stores tag renderers by strategy name, providing discovery and
// duplication safeguards.
type Registry struct {
	mu         sync.RWMutex
	strategies map[string]tag.Renderer
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		strategies: make(map[string]tag.Renderer),
	}
}

// NewDefaultRegistry returns a registry holding the built-in strategies.
func NewDefaultRegistry() (*Registry, error) {
	engine, err := gotemplate.New(gotemplate.WithFS(TemplatesFS()))
	if err != nil {
		return nil, fmt.Errorf("render: configure template engine: %w", err)
	}
	templated, err := NewTemplateTags(engine, DefaultTemplates())
	if err != nil {
		return nil, err
	}

	r := NewRegistry()
	r.MustRegister(StrategyHTML, tag.Default())
	r.MustRegister(StrategyTemplate, templated)
	return r, nil
}

// Register adds a renderer under name. Duplicate names return an error.
func (r *Registry) Register(name string, renderer tag.Renderer) error {
	if renderer == nil {
		return errors.New("render: renderer is required")
	}
	if name == "" {
		return errors.New("render: strategy name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.strategies[name]; exists {
		return fmt.Errorf("render: strategy %q already registered", name)
	}

	r.strategies[name] = renderer
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(name string, renderer tag.Renderer) {
	if err := r.Register(name, renderer); err != nil {
		panic(err)
	}
}

// Get retrieves a renderer by name.
func (r *Registry) Get(name string) (tag.Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return renderer, nil
}

// List returns a sorted list of strategy names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.strategies))
	for name := range r.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a strategy is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.strategies[name]
	return ok
}
