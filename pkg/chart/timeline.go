package chart

import (
	"fmt"

	"github.com/goliatone/go-chartopts/pkg/odict"
	"github.com/goliatone/go-chartopts/pkg/schemas"
)

// Timeline is a chart whose series data changes page by page. Options
// set through Root, Opts and AddChart go to the shared base option; each
// page carries its own title and series data.
type Timeline struct {
	*Chart
}

// NewTimeline creates an empty timeline chart.
func NewTimeline(opts ...Option) (*Timeline, error) {
	c, err := newChart(schemas.TimelineRoot, "baseOption", opts)
	if err != nil {
		return nil, err
	}
	if err := c.base.MustField("timeline").Set("data", []any{}); err != nil {
		return nil, err
	}
	c.root.MustField("options").Use()
	return &Timeline{Chart: c}, nil
}

// AddPage appends a page. label is the timeline axis entry, title is a
// string or a title mapping, and each seriesData item replaces the data of
// the series at the same position. Items that are lists are wrapped as
// {"data": item}.
func (t *Timeline) AddPage(label any, title any, seriesData ...any) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	series := make([]any, 0, len(seriesData))
	for _, item := range seriesData {
		if toList(item) != nil {
			d := odict.New[any]()
			d.Set("data", item)
			item = d
		}
		series = append(series, item)
	}

	page, err := t.root.MustField("options").Add(nil)
	if err != nil {
		return fmt.Errorf("chart: add page: %w", err)
	}
	switch v := title.(type) {
	case nil:
	case string:
		err = page.MustField("title").Set("text", v)
	default:
		err = page.Set("title", v)
	}
	if err != nil {
		return fmt.Errorf("chart: page title: %w", err)
	}
	if err := page.Set("series", series); err != nil {
		return fmt.Errorf("chart: page series: %w", err)
	}
	if err := t.base.MustField("timeline").MustField("data").Append(label); err != nil {
		return fmt.Errorf("chart: timeline data: %w", err)
	}
	return nil
}

// Pages returns the number of pages.
func (t *Timeline) Pages() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.root.MustField("options").Len()
}

// Clone returns an independent copy with a fresh id.
func (t *Timeline) Clone() *Timeline {
	return &Timeline{Chart: t.Chart.Clone()}
}
