// Package export renders a chart's geometry to static SVG and PNG files.
package export

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"vizterm/internal/chart"
	"vizterm/internal/data"
	"vizterm/internal/geometry"
	"vizterm/internal/logging"
	"vizterm/internal/present"
	"vizterm/internal/scale"
	"vizterm/internal/selection"
)

// DefaultPadding is the frame padding used for headless exports.
const DefaultPadding = 50

// Snapshot is everything a static surface needs from a chart.
type Snapshot struct {
	Title    string
	Kind     data.Kind
	Scales   scale.ScaleSet
	Elements []geometry.Element
	Visuals  []selection.Visual
	Summary  present.Summary
}

// FromChart captures the current layout and selection of c.
func FromChart(c *chart.Chart, title string) Snapshot {
	kind := data.KindUnknown
	if ds := c.Dataset(); ds != nil {
		kind = ds.Kind
	}
	return Snapshot{
		Title:    title,
		Kind:     kind,
		Scales:   c.Scales(),
		Elements: c.Elements(),
		Visuals:  c.Visuals(),
		Summary:  c.Summary(),
	}
}

// Headless lays ds out on a width x height pixel frame in a fresh chart
// and captures it. The record with pinnedKey, if any, is marked active.
func Headless(ds *data.Dataset, width, height int, pinnedKey, title string, log logging.Logger) Snapshot {
	c := chart.New(log)
	c.Regenerate(scale.Frame{Width: float64(width), Height: float64(height), Padding: DefaultPadding})
	c.SetDataset(ds)
	if _, i, ok := ds.Lookup(pinnedKey); ok {
		c.Controller().OnClick(i)
	}
	return FromChart(c, title)
}

func (s Snapshot) size() (int, int) {
	return int(s.Scales.Frame.Width), int(s.Scales.Frame.Height)
}

func (s Snapshot) active(i int) bool {
	return i < len(s.Visuals) && s.Visuals[i].Active
}

// Options controls where and how a snapshot is written.
type Options struct {
	Path string
	// Format is "svg" or "png"; empty infers it from Path.
	Format string
	// AlsoPNG writes a .png sibling next to an SVG export.
	AlsoPNG bool
}

// Save writes the snapshot and returns the paths written. With AlsoPNG the
// two files are encoded concurrently.
func Save(ctx context.Context, snap Snapshot, opts Options) ([]string, error) {
	if opts.Path == "" {
		return nil, fmt.Errorf("output path is required")
	}
	format := strings.ToLower(strings.TrimPrefix(opts.Format, "."))
	if format == "" {
		switch strings.ToLower(filepath.Ext(opts.Path)) {
		case ".png":
			format = "png"
		case ".svg":
			format = "svg"
		default:
			format = "svg"
			if filepath.Ext(opts.Path) == "" {
				opts.Path += ".svg"
			}
		}
	}
	if format != "svg" && format != "png" {
		return nil, fmt.Errorf("unsupported format %q (want svg or png)", format)
	}
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return nil, fmt.Errorf("create parent dir: %w", err)
	}

	paths := []string{opts.Path}
	if format == "png" {
		return paths, writePNG(opts.Path, snap)
	}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return writeSVG(opts.Path, snap)
	})
	if opts.AlsoPNG {
		sibling := strings.TrimSuffix(opts.Path, filepath.Ext(opts.Path)) + ".png"
		paths = append(paths, sibling)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return writePNG(sibling, snap)
		})
	}
	return paths, g.Wait()
}

var (
	colorBackdrop = color.RGBA{0xf9, 0xfa, 0xfb, 0xff}
	colorAxis     = color.RGBA{0x37, 0x41, 0x51, 0xff}
	colorText     = color.RGBA{0x11, 0x11, 0x11, 0xff}
	colorSubtle   = color.RGBA{0x66, 0x66, 0x66, 0xff}
	colorActive   = color.RGBA{0x63, 0x66, 0xf1, 0xff}
	colorDoping   = color.RGBA{0xf9, 0x73, 0x16, 0xff}
	colorClean    = color.RGBA{0x3b, 0x82, 0xf6, 0xff}
	colorCoolest  = color.RGBA{0x45, 0x75, 0xb4, 0xff}
	colorCool     = color.RGBA{0xab, 0xd9, 0xe9, 0xff}
	colorWarm     = color.RGBA{0xfd, 0xae, 0x61, 0xff}
	colorWarmest  = color.RGBA{0xd7, 0x30, 0x27, 0xff}
)

func fill(e geometry.Element) color.RGBA {
	if e.Shape == geometry.Cell {
		switch e.Bucket {
		case geometry.Coolest:
			return colorCoolest
		case geometry.Cool:
			return colorCool
		case geometry.Warm:
			return colorWarm
		default:
			return colorWarmest
		}
	}
	if strings.HasSuffix(e.Class, geometry.ClassDoping) {
		return colorDoping
	}
	return colorClean
}

func css(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func summaryLine(s present.Summary) string {
	return fmt.Sprintf("Total: %s  Max: %s  Min: %s  Mean: %s", s.Total, s.Max, s.Min, s.Mean)
}
