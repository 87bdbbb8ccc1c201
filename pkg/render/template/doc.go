// Package template defines the template rendering seam used by
// template-backed tag renderers. Implementations live in subpackages.
package template
