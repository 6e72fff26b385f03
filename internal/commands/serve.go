package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-chartopts/components/assets"
	"github.com/goliatone/go-chartopts/components/mapdata"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		host    string
		port    int
		prefix  string
		save    bool
		mapData bool
	)
	cmd := &cobra.Command{
		Use:   "serve [dir]",
		Short: "Serve chart scripts from a local directory",
		Long: `Serve a directory of scripts (echarts.min.js, map scripts) and point the
configured assets URL at it. With --save the new URL is written back to the
--config file so later renders load scripts from this server.`,
		Example: `  chartopts serve ./assets --port 8000 --config chartopts.yaml --save`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			if save && a.configPath == "" {
				return errors.New("--save needs --config")
			}

			opts := []assets.OptionFn{
				assets.WithDir(dir),
				assets.WithAddr(host, port),
				assets.WithPrefix(prefix),
				assets.WithConfig(a.cfg),
				assets.WithLogger(a.logger),
			}
			if mapData {
				store, err := mapdata.Default()
				if err != nil {
					return err
				}
				component := mapdata.New(mapdata.WithStore(store), mapdata.WithLogger(a.logger))
				opts = append(opts, assets.WithRoute(component.Options().RoutePath+"/", component.Handler()))
			}
			srv, err := assets.New(opts...)
			if err != nil {
				return err
			}

			if save {
				cancel := a.cfg.OnAssetsURLChange(func(_, next string) {
					if err := a.cfg.Save(a.configPath); err != nil {
						a.logger.Error("save config", "path", a.configPath, "error", err)
						return
					}
					a.logger.Info("config updated", "path", a.configPath, "assets_url", next)
				})
				defer cancel()
			}
			return srv.Run(cmd.Context())
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&host, "host", assets.DefaultHost, "listen host")
	flags.IntVarP(&port, "port", "p", 0, "listen port (0 picks a free one)")
	flags.StringVar(&prefix, "prefix", assets.DefaultPrefix, "URL prefix for the files")
	flags.BoolVar(&save, "save", false, "write the new assets URL to the config file")
	flags.BoolVar(&mapData, "mapdata", true, "also serve the city and map lookup API")
	return cmd
}
