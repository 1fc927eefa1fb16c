package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/oakwood-commons/spatialnav/internal/config"
	"github.com/oakwood-commons/spatialnav/internal/ui"
	"github.com/oakwood-commons/spatialnav/pkg/focus"
	"github.com/oakwood-commons/spatialnav/pkg/logger"
	"github.com/oakwood-commons/spatialnav/pkg/settings"
)

var (
	configFile     string
	configOutput   string
	debug          bool
	noColor        bool
	renderSnapshot bool
	startKeys      []string
	width          int
	height         int
	metricsAddr    string
	logFile        string
)

var rootCmd = &cobra.Command{
	Use:   settings.CliBinaryName,
	Short: "Spatial keyboard focus navigation in the terminal",
	Long: `spatialnav moves focus across a grid of tiles with the arrow keys,
picking the geometrically nearest tile in the pressed direction.

Enter activates the focused tile. Focus styling, key bindings and the board
layout come from the config file, which is reloaded when it changes.`,
	Example: "\n  spatialnav\n  spatialnav --config-file ./board.yaml\n  spatialnav --snapshot --press \"<Right><Down><Enter>\"\n  spatialnav --log-file nav.log --debug --metrics-addr 127.0.0.1:9090\n",
	Args:    cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := logger.SetOutputPath(logFile); err != nil {
			return err
		}
		// --debug enables V(1) diagnostics and V(2) focus transitions.
		var level int8
		if debug {
			level = -2
		}
		lgr := logger.Get(level)
		lgr = logger.WithValues(lgr, logger.CommandKey, cmd.Name())

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx = logger.WithLogger(ctx, lgr)
		ctx = settings.IntoContext(ctx, &settings.Run{
			MinLogLevel: level,
			LogFile:     logFile,
			ConfigFile:  configFile,
			NoColor:     noColor,
			Snapshot:    renderSnapshot,
			MetricsAddr: metricsAddr,
		})
		cmd.SetContext(ctx)
		return nil
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runRoot(cmd)
	},
}

func runRoot(cmd *cobra.Command) error {
	ctx := cmd.Context()
	lgr := logger.FromContext(ctx)
	run, ok := settings.FromContext(ctx)
	if !ok {
		run = settings.NewCliParams()
	}

	cfgPath := resolveConfigPath(run.ConfigFile)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := focus.NewMetrics(reg)
	if run.MetricsAddr != "" {
		srv, err := serveMetrics(run.MetricsAddr, reg, *lgr)
		if err != nil {
			return err
		}
		defer srv.shutdown()
		lgr.Info("serving metrics", "addr", srv.addr)
	}

	opts := ui.Options{
		Config:  cfg,
		NoColor: run.NoColor,
		Width:   width,
		Height:  height,
		Logger:  *lgr,
		Metrics: metrics,
	}

	if run.Snapshot {
		out, err := ui.RenderSnapshot(ui.SnapshotConfig{Options: opts, StartKeys: startKeys})
		if err != nil {
			return err
		}
		if run.NoColor {
			out = ansi.Strip(out)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}

	return ui.Run(ctx, ui.RunConfig{
		Options:    opts,
		StartKeys:  startKeys,
		ConfigPath: cfgPath,
	}, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
}

func init() { //nolint:gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configFile, "config-file", "", "path to a YAML config file (style, keys, board)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log focus diagnostics and transitions")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write JSON logs to this file instead of stderr")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable color output")
	rootCmd.Flags().BoolVar(&renderSnapshot, "snapshot", false, "render a single frame after --press keys and exit; honors --width/--height")
	rootCmd.Flags().StringArrayVar(&startKeys, "press", nil, "Simulate keys on startup. Use <Key> for special keys (e.g. <Right>, <Enter>, <R-Down> for a held key). Example: --press \"<Right><Down><Enter>\"")
	rootCmd.Flags().IntVar(&width, "width", 0, "screen width in columns (default: terminal width)")
	rootCmd.Flags().IntVar(&height, "height", 0, "screen height in rows (default: terminal height)")
	rootCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address, e.g. 127.0.0.1:9090")

	rootCmd.Version = cliVersionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.AddCommand(versionCmd)

	configCmd.Flags().StringVarP(&configOutput, "output", "o", "yaml", "output format: yaml|json|toml")
	rootCmd.AddCommand(configCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// resolveConfigPath returns the explicit configFile if set, otherwise the XDG path
// ($XDG_CONFIG_HOME/spatialnav/config.yaml) or ~/.config/spatialnav/config.yaml if present.
func resolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	xdg := os.Getenv("XDG_CONFIG_HOME")
	candidate := ""
	if xdg != "" {
		candidate = filepath.Join(xdg, settings.CliBinaryName, "config.yaml")
	} else if home, err := os.UserHomeDir(); err == nil {
		candidate = filepath.Join(home, ".config", settings.CliBinaryName, "config.yaml")
	}
	if candidate != "" {
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			return candidate
		}
	}
	return ""
}
