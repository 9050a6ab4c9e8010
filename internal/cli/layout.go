package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/palletlab/warevis/pkg/pipeline"
	"github.com/palletlab/warevis/pkg/warehouse"
)

// layoutCommand creates the layout command for resolving configurations.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		backend string
	)

	cmd := &cobra.Command{
		Use:   "layout [config.json]",
		Short: "Resolve a warehouse configuration into 3D geometry",
		Long: `Resolve a warehouse configuration into 3D geometry.

The layout command takes a configuration file describing the warehouse
envelope, blocks, rack grids, and pallet placements, and resolves it into
absolute positions and dimensions for every block, rack cell, and pallet.
All values in the output are canonical centimeters.

The output is a layout.json file that can be rendered with 'warevis render'
or browsed with 'warevis dashboard'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], output, backend)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().StringVar(&backend, "store", "", "also persist to a store backend: file, redis, mongo")

	return cmd
}

// runLayout loads the configuration, resolves the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input, output, backend string) error {
	ctx = withLogger(ctx, c.Logger)
	prog := newProgress(c.Logger)

	cfg, err := warehouse.ReadConfigFile(input)
	if err != nil {
		return fmt.Errorf("load config %s: %w", input, err)
	}

	runner, err := c.newRunner(ctx, backend)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Resolving layout...")
	spinner.Start()

	result, err := runner.Create(ctx, pipeline.Options{Config: cfg})
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("resolve layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}

	if err := warehouse.WriteLayoutFile(result.Layout, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}
	prog.done(fmt.Sprintf("Resolved %d rack cells", result.Stats.RackCount))

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(result.Stats.BlockCount, result.Stats.RackCount, result.Stats.PalletCount)
	printNewline()
	printNextStep("Render", appName+" render "+outputPath)

	return nil
}
