package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-chartopts/components/mapdata"
)

func newLookupCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Look up bundled city coordinates and map scripts",
	}
	cmd.AddCommand(newLookupCityCmd(a), newLookupMapCmd(a), newLookupSearchCmd(a))
	return cmd
}

func newLookupCityCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "city <name>",
		Short:   "Print the coordinates of a city",
		Example: `  chartopts lookup city "new yrok"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			store, err := mapdata.Default()
			if err != nil {
				return err
			}
			name, coord, err := store.City(strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.stdout, "%s\t%g\t%g\n", name, coord.Lng(), coord.Lat())
			return err
		},
	}
}

func newLookupMapCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "map <name>",
		Short:   "Print the script file of a map",
		Example: `  chartopts lookup map guangdong`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			store, err := mapdata.Default()
			if err != nil {
				return err
			}
			file, err := store.Map(strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.stdout, "%s\t%s\n", file, a.cfg.ResolveAsset(file))
			return err
		},
	}
}

func newLookupSearchCmd(a *app) *cobra.Command {
	var (
		maps  bool
		limit int
	)
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "List cities or maps matching a query",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			store, err := mapdata.Default()
			if err != nil {
				return err
			}
			query := ""
			if len(args) == 1 {
				query = args[0]
			}

			var results []mapdata.Result
			if maps {
				results = store.SearchMaps(query, limit)
			} else {
				results = store.SearchCities(query, limit)
			}
			if len(results) == 0 {
				_, err := fmt.Fprintln(a.stdout, "No matches.")
				return err
			}

			w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "NAME\tVALUE")
			for _, r := range results {
				_, _ = fmt.Fprintf(w, "%s\t%v\n", r.Name, r.Value)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&maps, "maps", false, "search map names instead of cities")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of results")
	return cmd
}
