package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-chartopts/pkg/chart"
	"github.com/goliatone/go-chartopts/pkg/encode"
)

func newRenderCmd(a *app) *cobra.Command {
	var flags outputFlags
	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a YAML or JSON option document",
		Long: `Render an option document into an HTML page, an embeddable fragment,
or a normalised JSON or YAML document. Series entries are added one by one so
the coordinate components, legend and scripts they need are filled in.
Use "-" to read the document from stdin.`,
		Example: `  # Render a page next to the document
  chartopts render sales.yaml -o sales.html

  # Print the normalised JSON
  chartopts render sales.yaml -r json --indent`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.readDocument(args[0])
			if err != nil {
				return err
			}
			c, err := chart.New(flags.chartOptions(a)...)
			if err != nil {
				return err
			}
			if err := c.Load(doc); err != nil {
				return err
			}
			a.logger.Debug("document loaded", "source", args[0], "dependencies", c.Dependencies())
			return a.emit(cmd.Context(), c, &flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func (a *app) readDocument(path string) (any, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(a.stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return encode.DecodeJSON(data)
	}
	return encode.DecodeYAML(data)
}
