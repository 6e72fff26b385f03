// Package commands contains the chartopts CLI command definitions.
package commands

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-chartopts/internal/wizard"
	"github.com/goliatone/go-chartopts/pkg/config"
)

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	verbose    bool

	cfg    *config.Config
	logger *slog.Logger
	prompt wizard.PromptDriver
}

// Option customises the root command, mostly for tests.
type Option func(*app)

// WithIO replaces the process standard streams.
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(a *app) {
		if in != nil {
			a.stdin = in
		}
		if out != nil {
			a.stdout = out
		}
		if errOut != nil {
			a.stderr = errOut
		}
	}
}

// WithPromptDriver replaces the terminal prompts used by "new".
func WithPromptDriver(driver wizard.PromptDriver) Option {
	return func(a *app) {
		a.prompt = driver
	}
}

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(opts ...Option) *cobra.Command {
	a := &app{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}

	rootCmd := &cobra.Command{
		Use:          "chartopts",
		Short:        "Build and render ECharts option documents",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load()
		},
	}
	rootCmd.SetIn(a.stdin)
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug messages")

	rootCmd.AddCommand(
		newRenderCmd(a),
		newNewCmd(a),
		newServeCmd(a),
		newLookupCmd(a),
		newThemesCmd(a),
	)
	return rootCmd
}

func (a *app) load() error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

	if a.configPath == "" {
		a.cfg = config.Default()
		return nil
	}
	cfg, err := config.Load(a.configPath)
	if errors.Is(err, fs.ErrNotExist) {
		a.logger.Debug("config file not found, using defaults", "path", a.configPath)
		a.cfg = config.Default()
		return nil
	}
	if err != nil {
		return err
	}
	a.logger.Debug("config loaded", "path", a.configPath)
	a.cfg = cfg
	return nil
}
