package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/palletlab/warevis/pkg/pipeline"
	"github.com/palletlab/warevis/pkg/render"
	"github.com/palletlab/warevis/pkg/warehouse"
)

// renderCommand creates the render command for generating artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output  string
		formats string
		floor   int
		labels  bool
	)

	cmd := &cobra.Command{
		Use:   "render [config.json|layout.json]",
		Short: "Render a warehouse as an SVG floor plan or JSON",
		Long: `Render a warehouse as an SVG floor plan or JSON.

The input can be either a configuration file (resolved first) or an already
resolved layout.json file; the command detects which one it was given.

The SVG output is a top-down floor plan of one floor, with occupied rack
cells filled in their pallet colors. Use --floor to select which floor is
drawn and --labels to annotate blocks and cells with their identifiers.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], output, parseFormats(formats), floor, labels)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file base (default: input base name)")
	cmd.Flags().StringVarP(&formats, "formats", "f", "svg", "comma-separated formats: svg, json")
	cmd.Flags().IntVar(&floor, "floor", 1, "floor shown in the SVG plan (1-based)")
	cmd.Flags().BoolVar(&labels, "labels", false, "draw block and rack identifiers")

	return cmd
}

// runRender loads or resolves a layout and writes one file per format.
func (c *CLI) runRender(ctx context.Context, input, output string, formats []string, floor int, labels bool) error {
	if err := pipeline.ValidateFormats(formats); err != nil {
		return err
	}

	layout, stats, err := c.loadOrResolve(withLogger(ctx, c.Logger), input)
	if err != nil {
		return err
	}

	base := output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
		base = strings.TrimSuffix(base, ".layout")
	}

	printSuccess("Rendered %s", input)
	for _, format := range formats {
		var data []byte
		switch format {
		case pipeline.FormatSVG:
			opts := []render.SVGOption{render.WithFloor(floor)}
			if labels {
				opts = append(opts, render.WithLabels())
			}
			data = render.RenderSVG(layout, opts...)
		case pipeline.FormatJSON:
			if data, err = render.RenderJSON(layout); err != nil {
				return fmt.Errorf("render json: %w", err)
			}
		}

		path := base + "." + format
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	printStats(stats.BlockCount, stats.RackCount, stats.PalletCount)

	return nil
}

// loadOrResolve reads input as a layout file first and falls back to
// resolving it as a configuration.
func (c *CLI) loadOrResolve(ctx context.Context, input string) (warehouse.Layout, pipeline.Stats, error) {
	data, err := os.ReadFile(input)
	if err != nil {
		return warehouse.Layout{}, pipeline.Stats{}, fmt.Errorf("read %s: %w", input, err)
	}

	if l, err := warehouse.UnmarshalLayout(data); err == nil {
		loggerFromContext(ctx).Debug("input is a resolved layout", "file", input)
		return l, pipeline.Stats{
			BlockCount:  len(l.Blocks),
			RackCount:   l.RackCount(),
			PalletCount: l.PalletCount(),
		}, nil
	}

	var cfg warehouse.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return warehouse.Layout{}, pipeline.Stats{}, fmt.Errorf("%s is neither a layout nor a config: %w", input, err)
	}

	runner, err := c.newRunner(ctx, "")
	if err != nil {
		return warehouse.Layout{}, pipeline.Stats{}, err
	}
	defer runner.Close()

	result, err := runner.Create(ctx, pipeline.Options{Config: cfg})
	if err != nil {
		return warehouse.Layout{}, pipeline.Stats{}, fmt.Errorf("resolve %s: %w", input, err)
	}
	return result.Layout, result.Stats, nil
}
