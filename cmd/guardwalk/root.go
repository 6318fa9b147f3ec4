package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/guardwalk/grid"
	"github.com/katalvlaran/guardwalk/internal/config"
	"github.com/katalvlaran/guardwalk/internal/logging"
	"github.com/katalvlaran/guardwalk/loopdetect"
)

// app carries state resolved once per invocation and shared by subcommands.
type app struct {
	configPath string
	flags      config.Config

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "guardwalk",
		Short: "Simulate a guard patrol and find loop-inducing obstructions",
		Long: `guardwalk walks a guard across a text map until it leaves the map,
then counts the cells where one extra obstruction would make it patrol forever.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.IntVar(&a.flags.Workers, "workers", 1, "concurrent loop trials (1 = sequential)")
	pf.IntVar(&a.flags.MaxSteps, "max-steps", 0, "bound the real patrol (0 = unbounded)")
	pf.StringVar(&a.flags.LogLevel, "log-level", "info", "debug, info, warn or error")
	pf.StringVar(&a.flags.LogFormat, "log-format", config.FormatAuto, "auto, text or json")

	root.AddCommand(newSolveCmd(a), newRenderCmd(a))

	return root
}

// setup loads the config file and lets explicitly set flags override it.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	fs := cmd.Flags()
	if fs.Changed("workers") {
		cfg.Workers = a.flags.Workers
	}
	if fs.Changed("max-steps") {
		cfg.MaxSteps = a.flags.MaxSteps
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = a.flags.LogLevel
	}
	if fs.Changed("log-format") {
		cfg.LogFormat = a.flags.LogFormat
	}
	if fs.Lookup("metrics-file") != nil && fs.Changed("metrics-file") {
		cfg.MetricsFile = a.flags.MetricsFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.FromConfig(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger

	return nil
}

// loadMap parses the map named by args, or standard input for none or "-".
func (a *app) loadMap(cmd *cobra.Command, args []string) (*grid.Map, error) {
	var r io.Reader = cmd.InOrStdin()
	name := "<stdin>"
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r, name = f, args[0]
	}

	m, err := grid.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	a.logger.Debug("map loaded",
		"input", name,
		"width", m.Grid.Width(),
		"height", m.Grid.Height(),
		"obstructions", len(m.Grid.Obstructions()),
		"start", m.Start,
	)

	return m, nil
}

// detectOptions maps the resolved config onto loopdetect options.
func (a *app) detectOptions(cmd *cobra.Command, extra ...loopdetect.Option) []loopdetect.Option {
	opts := []loopdetect.Option{
		loopdetect.WithContext(cmd.Context()),
		loopdetect.WithWorkers(a.cfg.Workers),
		loopdetect.WithMaxSteps(a.cfg.MaxSteps),
		loopdetect.WithLogger(a.logger),
	}
	return append(opts, extra...)
}
