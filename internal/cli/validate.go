package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/palletlab/warevis/pkg/pipeline"
	"github.com/palletlab/warevis/pkg/warehouse"
)

// validateCommand creates the validate command for dry-running configurations.
func (c *CLI) validateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [config.json]",
		Short: "Check a warehouse configuration without writing anything",
		Long: `Check a warehouse configuration without writing anything.

Validation runs the exact same resolution path as 'warevis layout', so a
configuration that validates cleanly is guaranteed to resolve cleanly.
Nothing is persisted or written to disk.

The command exits non-zero when the configuration is invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(cmd.Context(), args[0])
		},
	}
	return cmd
}

// runValidate loads the configuration and reports the dry-run outcome.
func (c *CLI) runValidate(ctx context.Context, input string) error {
	cfg, err := warehouse.ReadConfigFile(input)
	if err != nil {
		return fmt.Errorf("load config %s: %w", input, err)
	}

	runner, err := c.newRunner(ctx, "")
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	v, err := runner.Validate(ctx, pipeline.Options{Config: cfg})
	if err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	if !v.Valid {
		printError("Configuration is invalid")
		printKeyValue("reason", v.Message)
		return fmt.Errorf("invalid configuration: %s", v.Message)
	}

	printSuccess("Configuration is valid")
	printNewline()
	printNextStep("Resolve", appName+" layout "+input)
	return nil
}
