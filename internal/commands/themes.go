package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-chartopts/pkg/themes"
)

func newThemesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the bundled chart themes",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			selector := themes.NewSelector()
			current, _ := a.cfg.Theme()

			w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "NAME\tVARIANTS\tPALETTE")
			for _, name := range selector.Names() {
				sel, err := selector.Select(name, "")
				if err != nil {
					return err
				}
				variants := "-"
				if vs := selector.Variants(name); len(vs) > 0 {
					variants = strings.Join(vs, ", ")
				}
				label := name
				if name == current {
					label += " *"
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", label, variants, strings.Join(themes.Palette(themes.Tokens(sel)), " "))
			}
			return w.Flush()
		},
	}
}
