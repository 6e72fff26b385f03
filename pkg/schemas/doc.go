// Package schemas declares the ECharts option schemas consumed by the chart
// package. Every schema is built once at package initialization and shared by
// all nodes.
//
// Mixins are plain schemas combined with option.Extends. Elements are the
// reusable styles (TextStyle, LineStyle, Label, Tooltip, ...). Series,
// coordinate layouts, axes and the top-level components are built from them,
// and Root ties everything together.
package schemas
