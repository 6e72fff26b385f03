// Package chart assembles a root option tree into a renderable chart.
//
// A Chart owns one option tree built from the Root schema. Series are built
// with NewSeries, configured through the option API and attached with
// AddChart, which activates the coordinate components and legend entries
// the series needs and records the scripts it depends on:
//
//	c, _ := chart.New(chart.WithSize(800, 0.5))
//	bar, _ := chart.NewSeries("bar", "sales", []any{5, 20, 36})
//	_ = c.AddChart(bar)
//	out, _ := c.JSON()
//
// Every Chart method is safe for concurrent use. Nodes returned by Root or
// NewSeries are not; callers that share them must serialize access or go
// through Update.
package chart
