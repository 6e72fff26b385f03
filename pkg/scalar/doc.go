// Package scalar holds option values that need a non standard encoding:
// raw JavaScript fragments, image references, gradients and temporal
// literals.
//
// JSCode values are emitted verbatim by the encoder, without JSON quoting.
// Images render as ECharts "image://" or "path://" references. Dates and
// clock times render as ISO-8601 strings.
package scalar
