package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"vizterm/internal/data"
	"vizterm/internal/export"
	"vizterm/internal/logging"
)

var (
	exportOut    string
	exportWidth  int
	exportHeight int
	exportPNG    bool
	exportTitle  string
)

var exportCmd = &cobra.Command{
	Use:   "export [source]",
	Short: "Render a dataset to SVG or PNG without opening the viewer",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, args)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("width") {
			cfg.ExportWidth = exportWidth
		}
		if cmd.Flags().Changed("height") {
			cfg.ExportHeight = exportHeight
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		log, err := logging.New(cfg.Log)
		if err != nil {
			return err
		}
		defer log.Sync()

		kind, err := data.ParseKind(cfg.Variant)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		ds, err := newLoader(cfg, log).Load(ctx, cfg.Source, kind)
		if err != nil {
			return err
		}
		title := exportTitle
		if title == "" {
			title = ds.Source
		}
		snap := export.Headless(ds, cfg.ExportWidth, cfg.ExportHeight, "", title, log)
		paths, err := export.Save(ctx, snap, export.Options{Path: exportOut, AlsoPNG: exportPNG})
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		log.Info("exported", logging.Int("records", ds.Len()), logging.Any("paths", paths))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "chart.svg", "output path; .svg or .png")
	exportCmd.Flags().IntVar(&exportWidth, "width", 960, "image width in pixels")
	exportCmd.Flags().IntVar(&exportHeight, "height", 600, "image height in pixels")
	exportCmd.Flags().BoolVar(&exportPNG, "png", false, "also write a PNG next to the SVG")
	exportCmd.Flags().StringVar(&exportTitle, "title", "", "chart title (default: the source)")
	rootCmd.AddCommand(exportCmd)
}
