// Package table renders bound models as HTML tables.
//
// Three layouts are available:
//
//   - Table renders a single model as header/value rows.
//   - Collection renders a homogeneous slice of models with one header row
//     and one body row per model.
//   - Concat stacks several heterogeneous models, each with its own options,
//     into one table with one <tbody> per model.
//
// Options passed to a render call are applied after the options configured
// on the table, and each option replaces its key wholesale.
package table
