package table

import (
	"slices"
	"strings"

	"github.com/goliatone/go-formtable/pkg/model"
)

// Target is one model rendered by Concat, with its own options.
type Target struct {
	Model   any
	Options []Option
}

// Of pairs a model with per-model options.
func Of(m any, opts ...Option) Target {
	return Target{Model: m, Options: slices.Clone(opts)}
}

// Concat stacks heterogeneous models into a single table, one <tbody> per
// model:
//
//	<table>
//	<caption>Optional caption</caption>
//	<tbody> rows of the first model </tbody>
//	<tbody> rows of the second model </tbody>
//	</table>
type Concat struct {
	targets  []Target
	defaults []Option
}

// NewConcat builds a concatenated table over targets. Bare models can be
// passed as Of(m).
func NewConcat(targets ...Target) *Concat {
	return &Concat{targets: slices.Clone(targets)}
}

// Models is shorthand for NewConcat with bare models.
func Models(models ...any) *Concat {
	targets := make([]Target, 0, len(models))
	for _, m := range models {
		targets = append(targets, Of(m))
	}
	return NewConcat(targets...)
}

// Add appends a target.
func (c *Concat) Add(m any, opts ...Option) *Concat {
	c.targets = append(c.targets, Of(m, opts...))
	return c
}

// Configure sets options applied to every target before its own options. It
// must not be called concurrently with Render.
func (c *Concat) Configure(opts ...Option) *Concat {
	c.defaults = append(c.defaults, opts...)
	return c
}

// Render returns the stacked table. The caption is emitted at most once: by
// the first target for which caption is enabled and either text or a
// reference to that target's model. Per-target caption options are ignored.
func (c *Concat) Render(caption Caption) (string, error) {
	var (
		parts     []string
		bodies    = make([]string, 0, len(c.targets))
		captioned bool
	)

	for _, target := range c.targets {
		t := New(target.Model, append(append([]Option{}, c.defaults...), target.Options...)...)
		cells := newCellRenderer(resolveOptions(t.defaults, []Option{WithCaption(caption)}))

		if caption.Enabled() && !captioned && captionMatches(caption, target.Model) {
			out, err := cells.caption(model.TypeName(target.Model), 0, false)
			if err != nil {
				return "", err
			}
			parts = append(parts, out)
			captioned = true
		}

		body, err := t.body(cells)
		if err != nil {
			return "", err
		}
		bodies = append(bodies, body)
	}
	parts = append(parts, strings.Join(bodies, "\n"))

	return wrap("<table>", strings.Join(parts, "\n"), "</table>"), nil
}

func captionMatches(caption Caption, m any) bool {
	if _, ok := caption.Text(); ok {
		return true
	}
	return model.Same(caption.Model(), m)
}
