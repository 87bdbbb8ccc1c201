// Package render provides element rendering strategies for tables: the plain
// markup renderer, template-backed renderers and renderers derived from a
// go-theme selection, plus a registry to look them up by name.
package render
