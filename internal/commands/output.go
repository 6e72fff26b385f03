package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	chartopts "github.com/goliatone/go-chartopts"
	"github.com/goliatone/go-chartopts/pkg/chart"
	"github.com/goliatone/go-chartopts/pkg/render"
)

// outputFlags are shared by commands that produce a chart.
type outputFlags struct {
	renderer  string
	output    string
	title     string
	id        string
	theme     string
	variant   string
	width     string
	height    string
	engine    string
	indent    bool
	extraHead string
}

func (f *outputFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.renderer, "renderer", "r", "", "renderer: page, fragment, json or yaml (default from config)")
	flags.StringVarP(&f.output, "output", "o", "", "output file (stdout if empty)")
	flags.StringVar(&f.title, "title", "", "page title")
	flags.StringVar(&f.id, "id", "", "chart element id")
	flags.StringVar(&f.theme, "theme", "", "theme name")
	flags.StringVar(&f.variant, "variant", "", "theme variant")
	flags.StringVar(&f.width, "width", "", "container width, e.g. 800 or 100%")
	flags.StringVar(&f.height, "height", "", "container height")
	flags.StringVar(&f.engine, "engine", "", "drawing backend: canvas or svg")
	flags.BoolVar(&f.indent, "indent", false, "pretty-print the option document")
	flags.StringVar(&f.extraHead, "head", "", "extra link or meta markup for the page head")
}

func (f *outputFlags) chartOptions(a *app) []chart.Option {
	opts := []chart.Option{chart.WithConfig(a.cfg)}
	if f.id != "" {
		opts = append(opts, chart.WithID(f.id))
	}
	if f.width != "" || f.height != "" {
		opts = append(opts, chart.WithSize(sizeArg(f.width), sizeArg(f.height)))
	}
	if f.theme != "" {
		opts = append(opts, chart.WithTheme(f.theme, f.variant))
	}
	return opts
}

func sizeArg(v string) any {
	if v == "" {
		return nil
	}
	return v
}

func (f *outputFlags) renderOptions() render.RenderOptions {
	return render.RenderOptions{
		Title:     f.title,
		Engine:    f.engine,
		Indent:    f.indent,
		ExtraHead: f.extraHead,
	}
}

// emit renders c and writes it to the output file or stdout.
func (a *app) emit(ctx context.Context, c *chart.Chart, f *outputFlags) error {
	out, contentType, err := chartopts.Render(ctx, c, strings.TrimSpace(f.renderer), f.renderOptions())
	if err != nil {
		return err
	}
	if f.output == "" {
		_, err := a.stdout.Write(out)
		return err
	}
	if err := os.WriteFile(f.output, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	a.logger.Info("chart written", "path", f.output, "content_type", contentType, "bytes", len(out))
	return nil
}
