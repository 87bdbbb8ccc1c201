package model

import "slices"

// ColumnOptions filters and orders the columns resolved for a model.
type ColumnOptions struct {
	// Include lists the columns to render, in order. When set it replaces the
	// model's natural column list entirely.
	Include []string
	// Exclude drops columns from the resolved list.
	Exclude []string
	// PrimaryKeys keeps columns tagged `pk`.
	PrimaryKeys bool
	// ForeignKeys keeps columns tagged `fk`.
	ForeignKeys bool
}

// Columns resolves the ordered column names rendered for m.
func Columns(m any, opts ColumnOptions) ([]string, error) {
	if len(opts.Include) > 0 {
		return filterExcluded(slices.Clone(opts.Include), opts.Exclude), nil
	}
	cols, err := Describe(m)
	if err != nil {
		return nil, err
	}
	return SelectColumns(cols, opts), nil
}

// SelectColumns applies opts to an already described column list.
func SelectColumns(cols []Column, opts ColumnOptions) []string {
	if len(opts.Include) > 0 {
		return filterExcluded(slices.Clone(opts.Include), opts.Exclude)
	}
	names := make([]string, 0, len(cols))
	for _, col := range cols {
		if col.PrimaryKey && !opts.PrimaryKeys {
			continue
		}
		if col.ForeignKey && !opts.ForeignKeys {
			continue
		}
		names = append(names, col.Name)
	}
	return filterExcluded(names, opts.Exclude)
}

func filterExcluded(names, exclude []string) []string {
	if len(exclude) == 0 {
		return names
	}
	return slices.DeleteFunc(names, func(name string) bool {
		return slices.Contains(exclude, name)
	})
}
