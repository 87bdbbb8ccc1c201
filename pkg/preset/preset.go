// Package preset loads named table option sets from YAML.
//
// A preset file holds a `presets` mapping:
//
//	presets:
//	  people:
//	    alias: {name: Full name}
//	    caption: Staff        # true, false or literal text
//	    collection_size: false
//	    include: [name, email]
//	    exclude: [notes]
//	    pk: false
//	    fk: true
//	    display: {email: mailto}
//
// Display values name formatters (see DefaultFormatters). Unknown formatter
// names and unsupported caption values are ignored.
package preset

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formtable/pkg/table"
)

// ErrPresetNotFound is returned when a named preset does not exist.
var ErrPresetNotFound = errors.New("preset: not found")

// Preset is one named option set.
type Preset struct {
	Alias          map[string]string `yaml:"alias"`
	Caption        any               `yaml:"caption"`
	CollectionSize *bool             `yaml:"collection_size"`
	Include        []string          `yaml:"include"`
	Exclude        []string          `yaml:"exclude"`
	PrimaryKeys    *bool             `yaml:"pk"`
	ForeignKeys    *bool             `yaml:"fk"`
	Display        map[string]string `yaml:"display"`
}

// Set holds presets by name.
type Set struct {
	presets map[string]Preset
}

// Load reads a preset file from disk.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("preset: read %s: %w", path, err)
	}
	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("preset: %s: %w", path, err)
	}
	return set, nil
}

// Parse decodes a preset document.
func Parse(data []byte) (*Set, error) {
	var doc struct {
		Presets map[string]any `yaml:"presets"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("preset: parse yaml: %w", err)
	}

	set := &Set{presets: make(map[string]Preset, len(doc.Presets))}
	for name, raw := range doc.Presets {
		p, err := decode(raw)
		if err != nil {
			return nil, fmt.Errorf("preset: decode %q: %w", name, err)
		}
		set.presets[name] = p
	}
	return set, nil
}

func decode(raw any) (Preset, error) {
	var p Preset
	if raw == nil {
		return p, nil
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &p,
		TagName: "yaml",
	})
	if err != nil {
		return p, fmt.Errorf("create decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return p, err
	}
	return p, nil
}

// Get returns the named preset.
func (s *Set) Get(name string) (Preset, error) {
	if s != nil {
		if p, ok := s.presets[name]; ok {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrPresetNotFound, name)
}

// Names lists the preset names in sorted order.
func (s *Set) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.presets))
	for name := range s.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Options converts the preset into table options. Only keys present in the
// preset produce options, so presets layer over table defaults. formatters
// resolves display names; nil uses DefaultFormatters.
func (p Preset) Options(formatters map[string]Formatter) []table.Option {
	if formatters == nil {
		formatters = DefaultFormatters()
	}

	var opts []table.Option
	if p.Alias != nil {
		opts = append(opts, table.WithAlias(p.Alias))
	}
	if caption, ok := captionOf(p.Caption); ok {
		opts = append(opts, table.WithCaption(caption))
	}
	if p.CollectionSize != nil {
		opts = append(opts, table.WithCollectionSize(*p.CollectionSize))
	}
	if p.Include != nil {
		opts = append(opts, table.WithInclude(p.Include...))
	}
	if p.Exclude != nil {
		opts = append(opts, table.WithExclude(p.Exclude...))
	}
	if p.PrimaryKeys != nil {
		opts = append(opts, table.WithPrimaryKeys(*p.PrimaryKeys))
	}
	if p.ForeignKeys != nil {
		opts = append(opts, table.WithForeignKeys(*p.ForeignKeys))
	}
	if len(p.Display) > 0 {
		display := make(map[string]table.DisplayFunc, len(p.Display))
		for column, name := range p.Display {
			if format, ok := formatters[name]; ok && format != nil {
				display[column] = format(column)
			}
		}
		if len(display) > 0 {
			opts = append(opts, table.WithDisplay(display))
		}
	}
	return opts
}

func captionOf(raw any) (table.Caption, bool) {
	switch v := raw.(type) {
	case bool:
		if v {
			return table.AutoCaption(), true
		}
		return table.NoCaption(), true
	case string:
		return table.CaptionText(v), true
	default:
		return table.Caption{}, false
	}
}
