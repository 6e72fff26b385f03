// Package template defines the template engine seam used by the HTML
// renderers, with a pongo2-backed implementation in the pongo subpackage.
package template
