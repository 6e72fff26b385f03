// Package wizard asks a few questions on the terminal and builds a chart
// from the answers.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/goliatone/go-chartopts/pkg/chart"
	"github.com/goliatone/go-chartopts/pkg/option"
	"github.com/goliatone/go-chartopts/pkg/themes"
)

// Kinds lists the series types offered by the wizard.
var Kinds = []string{"bar", "line", "pie", "scatter", "effectScatter", "map"}

// cartesian kinds get a category axis question.
var cartesian = []string{"bar", "line", "scatter", "effectScatter"}

// SeriesAnswer describes one series.
type SeriesAnswer struct {
	Kind string
	Name string
	Data []any
}

// Answers is everything the wizard collected.
type Answers struct {
	Title      string
	Theme      string
	Categories []string
	Series     []SeriesAnswer
}

// Wizard drives the question flow.
type Wizard struct {
	driver PromptDriver
	themes []string
	kinds  []string
}

type Option func(*Wizard)

// WithDriver replaces the survey terminal driver.
func WithDriver(driver PromptDriver) Option {
	return func(w *Wizard) {
		if driver != nil {
			w.driver = driver
		}
	}
}

// WithThemes replaces the theme names offered.
func WithThemes(names ...string) Option {
	return func(w *Wizard) {
		if len(names) > 0 {
			w.themes = slices.Clone(names)
		}
	}
}

// New returns a wizard prompting on the terminal.
func New(opts ...Option) *Wizard {
	w := &Wizard{
		driver: NewSurveyDriver(),
		themes: themes.NewSelector().Names(),
		kinds:  Kinds,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}
	return w
}

// Ask runs the questions and returns the answers.
func (w *Wizard) Ask(ctx context.Context) (Answers, error) {
	var a Answers

	title, err := w.driver.Input(ctx, InputConfig{
		Message: "Chart title",
		Help:    "Leave empty for no title.",
	})
	if err != nil {
		return a, err
	}
	a.Title = strings.TrimSpace(title)

	if len(w.themes) > 0 {
		idx, err := w.driver.Select(ctx, SelectConfig{
			Message:      "Theme",
			Options:      w.themes,
			DefaultIndex: max(slices.Index(w.themes, themes.DefaultTheme), 0),
		})
		if err != nil {
			return a, err
		}
		if idx >= 0 && idx < len(w.themes) {
			a.Theme = w.themes[idx]
		}
	}

	for {
		s, err := w.askSeries(ctx, len(a.Series)+1)
		if err != nil {
			return a, err
		}
		a.Series = append(a.Series, s)

		more, err := w.driver.Confirm(ctx, ConfirmConfig{Message: "Add another series?"})
		if err != nil {
			return a, err
		}
		if !more {
			break
		}
	}

	if a.needsCategories() {
		raw, err := w.driver.Input(ctx, InputConfig{
			Message: "Category axis labels",
			Help:    "Comma separated, e.g. Mon, Tue, Wed. Leave empty for a value axis.",
		})
		if err != nil {
			return a, err
		}
		a.Categories = splitList(raw)
	}
	return a, nil
}

func (w *Wizard) askSeries(ctx context.Context, n int) (SeriesAnswer, error) {
	var s SeriesAnswer

	idx, err := w.driver.Select(ctx, SelectConfig{
		Message: fmt.Sprintf("Series %d type", n),
		Options: w.kinds,
	})
	if err != nil {
		return s, err
	}
	if idx < 0 || idx >= len(w.kinds) {
		return s, fmt.Errorf("wizard: series type index %d out of range", idx)
	}
	s.Kind = w.kinds[idx]

	s.Name, err = w.driver.Input(ctx, InputConfig{
		Message:   fmt.Sprintf("Series %d name", n),
		Default:   fmt.Sprintf("series %d", n),
		Validator: required,
	})
	if err != nil {
		return s, err
	}
	s.Name = strings.TrimSpace(s.Name)

	pairs := s.Kind == "pie" || s.Kind == "map"
	help := "Comma separated numbers, e.g. 5, 20, 36."
	if pairs {
		help = "Comma separated name=value pairs, e.g. apples=3, pears=5."
	}
	raw, err := w.driver.Input(ctx, InputConfig{
		Message: fmt.Sprintf("Series %d data", n),
		Help:    help,
		Validator: func(v string) error {
			_, err := ParseData(v, pairs)
			return err
		},
	})
	if err != nil {
		return s, err
	}
	s.Data, err = ParseData(raw, pairs)
	return s, err
}

func (a Answers) needsCategories() bool {
	for _, s := range a.Series {
		if slices.Contains(cartesian, s.Kind) {
			return true
		}
	}
	return false
}

// Build turns answers into a chart. opts are applied before the theme.
func Build(a Answers, opts ...chart.Option) (*chart.Chart, error) {
	if len(a.Series) == 0 {
		return nil, errors.New("wizard: at least one series is required")
	}
	if a.Theme != "" {
		opts = append(opts, chart.WithTheme(a.Theme, ""))
	}
	c, err := chart.New(opts...)
	if err != nil {
		return nil, err
	}
	if a.Title != "" {
		if err := c.Opts(nil, "title", map[string]any{"text": a.Title}); err != nil {
			return nil, err
		}
	}
	for _, s := range a.Series {
		series, err := chart.NewSeries(s.Kind, s.Name, s.Data)
		if err != nil {
			return nil, err
		}
		if err := c.AddChart(series); err != nil {
			return nil, err
		}
	}
	if len(a.Categories) > 0 && a.needsCategories() {
		cats := make([]any, len(a.Categories))
		for i, v := range a.Categories {
			cats[i] = v
		}
		err := c.Update(func(root *option.Node) error {
			x, err := root.Field("xAxis")
			if err != nil {
				return err
			}
			_, err = x.Opts(nil, "type", "category", "data", cats)
			return err
		})
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Run asks the questions and builds the chart.
func (w *Wizard) Run(ctx context.Context, opts ...chart.Option) (*chart.Chart, error) {
	a, err := w.Ask(ctx)
	if err != nil {
		return nil, err
	}
	return Build(a, opts...)
}

// ParseData parses a comma separated list of numbers, or of name=value
// pairs when pairs is set. Values that are not numbers are kept as text.
func ParseData(raw string, pairs bool) ([]any, error) {
	items := splitList(raw)
	if len(items) == 0 {
		return nil, errors.New("wizard: data is empty")
	}
	out := make([]any, 0, len(items))
	for _, item := range items {
		if !pairs {
			out = append(out, number(item))
			continue
		}
		name, value, ok := strings.Cut(item, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("wizard: %q is not a name=value pair", item)
		}
		out = append(out, []any{strings.TrimSpace(name), number(strings.TrimSpace(value))})
	}
	return out, nil
}

func number(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func required(v string) error {
	if strings.TrimSpace(v) == "" {
		return errors.New("a value is required")
	}
	return nil
}
