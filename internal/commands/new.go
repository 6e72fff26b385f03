package commands

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-chartopts/internal/wizard"
	"github.com/goliatone/go-chartopts/pkg/themes"
)

func newNewCmd(a *app) *cobra.Command {
	var flags outputFlags
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Build a chart interactively",
		Long: `Ask for a title, a theme and one or more series, then render the
resulting chart like "render" does.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := wizard.New(
				wizard.WithDriver(a.prompt),
				wizard.WithThemes(themes.NewSelector().Names()...),
			)
			c, err := w.Run(cmd.Context(), flags.chartOptions(a)...)
			if err != nil {
				return err
			}
			return a.emit(cmd.Context(), c, &flags)
		},
	}
	flags.register(cmd)
	return cmd
}
