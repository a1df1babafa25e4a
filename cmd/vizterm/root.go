package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"vizterm/internal/config"
	"vizterm/internal/data"
	"vizterm/internal/logging"
	"vizterm/internal/tui"
)

var (
	cfgFile        string
	variant        string
	padding        float64
	fetchTimeout   time.Duration
	reloadOnResize bool
	watchFiles     bool
	logLevel       string
	logFile        string
)

var rootCmd = &cobra.Command{
	Use:   "vizterm [source]",
	Short: "Interactive terminal charts for remote JSON datasets",
	Long: `vizterm fetches a JSON dataset over HTTP or from a local file and draws
it as a scatter plot (cyclist times) or a heatmap (monthly temperature
variance). Hover a point for a tooltip, click to pin its details, and resize
the terminal to re-layout the chart.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, args)
		if err != nil {
			return err
		}
		log, err := logging.New(cfg.Log)
		if err != nil {
			return err
		}
		defer log.Sync()

		opts, err := tui.OptionsFromConfig(cfg, newLoader(cfg, log), log)
		if err != nil {
			return err
		}
		m := tui.New(opts)
		log.Info("starting viewer", logging.String("source", cfg.Source), logging.String("variant", cfg.Variant))
		final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
		if fm, ok := final.(tui.Model); ok {
			fm.Close()
		} else {
			m.Close()
		}
		return err
	},
}

// Execute runs the root command and reports errors on stderr.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file path (default $VIZTERM_CONFIG)")
	pf.StringVar(&variant, "variant", "auto", "dataset variant: auto, scatter or heatmap")
	pf.DurationVar(&fetchTimeout, "fetch-timeout", 0, "dataset fetch timeout (0 disables)")
	pf.StringVar(&logLevel, "log-level", "info", "log level")
	pf.StringVar(&logFile, "log-file", "", "log file path (logging is off when empty)")
	rootCmd.Flags().Float64Var(&padding, "padding", 8, "chart padding in braille pixels")
	rootCmd.Flags().BoolVar(&reloadOnResize, "reload-on-resize", false, "re-fetch the dataset after every settled resize")
	rootCmd.Flags().BoolVar(&watchFiles, "watch", true, "reload local dataset files when they change")
}

// loadConfig layers flags and the source argument over the koanf config.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if len(args) > 0 {
		cfg.Source = args[0]
	}
	flags := cmd.Flags()
	if flags.Changed("variant") {
		cfg.Variant = variant
	}
	if flags.Changed("fetch-timeout") {
		cfg.FetchTimeout = fetchTimeout
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = logFile
	}
	if flags.Lookup("padding") != nil && flags.Changed("padding") {
		cfg.Padding = padding
	}
	if flags.Lookup("reload-on-resize") != nil && flags.Changed("reload-on-resize") {
		cfg.ReloadOnResize = reloadOnResize
	}
	if flags.Lookup("watch") != nil && flags.Changed("watch") {
		cfg.Watch = watchFiles
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLoader(cfg *config.Config, log logging.Logger) *data.Loader {
	return data.NewLoader(
		data.WithTimeout(cfg.FetchTimeout),
		data.WithBaseTemperature(cfg.BaseTemperature),
		data.WithLogger(log),
	)
}
