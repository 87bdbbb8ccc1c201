package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formtable/internal/label"
	"github.com/goliatone/go-formtable/pkg/model"
	"github.com/goliatone/go-formtable/pkg/preset"
	"github.com/goliatone/go-formtable/pkg/render"
	"github.com/goliatone/go-formtable/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formtable/pkg/table"
	"github.com/goliatone/go-formtable/pkg/tag"
)

const strategyCustom = "custom"

type renderFlags struct {
	data           string
	name           string
	presetsFile    string
	preset         string
	caption        string
	noCaption      bool
	collectionSize bool
	alias          map[string]string
	columns        []string
	exclude        []string
	primaryKeys    bool
	foreignKeys    bool
	interactive    bool
	strategy       string
	templates      string
	titleLabels    bool
	sanitize       bool
	output         string
}

func newRenderCmd() *cobra.Command {
	flags := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a data file as an HTML table",
		Long: `Render a YAML or JSON data file as an HTML table.

A top-level mapping renders as a two-column attribute table; a sequence of
mappings renders as a collection table with one row per item.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, flags)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.data, "data", "d", "", "YAML or JSON data file (required)")
	f.StringVar(&flags.name, "name", "", "Model name used for derived captions (defaults to the file name)")
	f.StringVar(&flags.presetsFile, "presets", "", "YAML file holding option presets")
	f.StringVarP(&flags.preset, "preset", "p", "", "Preset name to apply")
	f.StringVar(&flags.caption, "caption", "", "Literal caption text")
	f.BoolVar(&flags.noCaption, "no-caption", false, "Render without a caption")
	f.BoolVar(&flags.collectionSize, "collection-size", true, "Append the row count to collection captions")
	f.StringToStringVar(&flags.alias, "alias", nil, "Header alias as column=Text (repeatable)")
	f.StringSliceVar(&flags.columns, "columns", nil, "Columns to render, in order")
	f.StringSliceVar(&flags.exclude, "exclude", nil, "Columns to skip")
	f.BoolVar(&flags.primaryKeys, "pk", true, "Show primary key columns")
	f.BoolVar(&flags.foreignKeys, "fk", false, "Show foreign key columns")
	f.BoolVarP(&flags.interactive, "interactive", "i", false, "Pick columns interactively")
	f.StringVarP(&flags.strategy, "strategy", "s", "", "Tag rendering strategy (html, template, custom)")
	f.StringVar(&flags.templates, "templates", "", "Directory with caption/th/td/em element templates")
	f.BoolVar(&flags.titleLabels, "title", false, "Title-case headers and captions")
	f.BoolVar(&flags.sanitize, "sanitize", false, "Sanitize preset display markup")
	f.StringVarP(&flags.output, "output", "o", "", "Output file (stdout if empty)")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func runRender(cmd *cobra.Command, flags *renderFlags) error {
	logger := newLogger(cmd)
	log := logger.WithField("data", flags.data)

	raw, err := os.ReadFile(flags.data)
	if err != nil {
		return fmt.Errorf("formtable: read data: %w", err)
	}
	name := flags.name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(flags.data), filepath.Ext(flags.data))
	}
	records, collection, err := model.DecodeRecords(raw, name)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"records":    len(records),
		"collection": collection,
	}).Debug("decoded data")

	strategy, tags, err := resolveStrategy(flags)
	if err != nil {
		return err
	}
	log.WithField("strategy", strategy).Debug("selected tag strategy")

	opts, err := buildOptions(cmd, flags, records, log)
	if err != nil {
		return err
	}
	if collection && len(records) == 0 {
		opts = append([]table.Option{table.WithCaptionText(label.Prettify(name))}, opts...)
	}
	opts = append(opts, table.WithTagRenderer(tags))

	var out string
	if collection {
		out, err = table.NewCollection(records).Render(opts...)
	} else {
		out, err = table.New(records[0]).Render(opts...)
	}
	if err != nil {
		return err
	}

	if flags.output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}
	if err := os.WriteFile(flags.output, []byte(out+"\n"), 0o644); err != nil {
		return fmt.Errorf("formtable: write output: %w", err)
	}
	log.WithField("output", flags.output).Info("table written")
	return nil
}

// buildOptions layers preset options under command line flags. Flags only
// apply when set explicitly so presets keep their values otherwise.
func buildOptions(cmd *cobra.Command, flags *renderFlags, records []*model.Record, log *logrus.Entry) ([]table.Option, error) {
	var opts []table.Option

	if flags.preset != "" {
		if flags.presetsFile == "" {
			return nil, errors.New("formtable: --preset requires --presets")
		}
		set, err := preset.Load(flags.presetsFile)
		if err != nil {
			return nil, err
		}
		p, err := set.Get(flags.preset)
		if err != nil {
			return nil, err
		}
		log.WithField("preset", flags.preset).Debug("applying preset")
		opts = append(opts, p.Options(nil)...)
	}

	changed := cmd.Flags().Changed
	if flags.titleLabels {
		opts = append(opts, table.WithLabeler(label.Title))
	}
	if flags.sanitize {
		opts = append(opts, table.WithSanitizer(tag.CellSanitizer()))
	}
	if changed("alias") {
		opts = append(opts, table.WithAlias(flags.alias))
	}
	if changed("collection-size") {
		opts = append(opts, table.WithCollectionSize(flags.collectionSize))
	}
	if changed("pk") {
		opts = append(opts, table.WithPrimaryKeys(flags.primaryKeys))
	}
	if changed("fk") {
		opts = append(opts, table.WithForeignKeys(flags.foreignKeys))
	}
	if changed("exclude") {
		opts = append(opts, table.WithExclude(flags.exclude...))
	}

	switch {
	case flags.noCaption:
		opts = append(opts, table.WithoutCaption())
	case flags.caption != "":
		opts = append(opts, table.WithCaptionText(flags.caption))
	}

	columns := flags.columns
	if flags.interactive {
		available := availableColumns(records)
		if len(available) == 0 {
			log.Warn("no columns to choose from")
		} else {
			picked, err := selectColumns(available)
			if err != nil {
				return nil, err
			}
			columns = picked
		}
	}
	if len(columns) > 0 {
		opts = append(opts, table.WithInclude(columns...))
	}
	return opts, nil
}

func availableColumns(records []*model.Record) []string {
	if len(records) == 0 {
		return nil
	}
	return records[0].Keys()
}

// resolveStrategy picks the tag renderer. A templates directory registers the
// "custom" strategy, which becomes the default.
func resolveStrategy(flags *renderFlags) (string, tag.Renderer, error) {
	registry, err := render.NewDefaultRegistry()
	if err != nil {
		return "", nil, err
	}

	strategy := flags.strategy
	if flags.templates != "" {
		engine, err := gotemplate.New(gotemplate.WithBaseDir(flags.templates))
		if err != nil {
			return "", nil, fmt.Errorf("formtable: load templates: %w", err)
		}
		custom, err := render.NewTemplateTags(engine, render.DefaultTemplates())
		if err != nil {
			return "", nil, err
		}
		if err := registry.Register(strategyCustom, custom); err != nil {
			return "", nil, err
		}
		if strategy == "" {
			strategy = strategyCustom
		}
	}
	if strategy == "" {
		strategy = render.StrategyHTML
	}

	tags, err := registry.Get(strategy)
	if err != nil {
		return "", nil, err
	}
	return strategy, tags, nil
}
