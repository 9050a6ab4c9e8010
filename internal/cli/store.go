package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/palletlab/warevis/pkg/warehouse"
)

// storeCommand creates the store command group for inspecting stored warehouses.
func (c *CLI) storeCommand() *cobra.Command {
	var backend string

	cmd := &cobra.Command{
		Use:   "store",
		Short: "Inspect and manage stored warehouses",
		Long: `Inspect and manage stored warehouses.

These commands operate on a persistent store backend (file, redis, or
mongo); connection settings come from the server config file. The in-memory
backend is not useful here since it is empty on every invocation.`,
	}

	cmd.PersistentFlags().StringVar(&backend, "backend", "file", "store backend: file, redis, mongo")

	cmd.AddCommand(c.storeListCommand(&backend))
	cmd.AddCommand(c.storeGetCommand(&backend))
	cmd.AddCommand(c.storeDeleteCommand(&backend))

	return cmd
}

func (c *CLI) storeListCommand(backend *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored warehouse IDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStoreList(cmd.Context(), *backend)
		},
	}
}

func (c *CLI) storeGetCommand(backend *string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "get [id]",
		Short: "Fetch a stored warehouse layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStoreGet(cmd.Context(), *backend, args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the layout to a file instead of stdout")
	return cmd
}

func (c *CLI) storeDeleteCommand(backend *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Remove a stored warehouse",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStoreDelete(cmd.Context(), *backend, args[0])
		},
	}
}

func (c *CLI) runStoreList(ctx context.Context, backend string) error {
	runner, err := c.newRunner(ctx, backend)
	if err != nil {
		return err
	}
	defer runner.Close()

	ids, err := runner.List(ctx)
	if err != nil {
		return fmt.Errorf("list warehouses: %w", err)
	}
	if len(ids) == 0 {
		printInfo("No stored warehouses")
		return nil
	}
	for _, id := range ids {
		fmt.Println(id)
	}
	return nil
}

func (c *CLI) runStoreGet(ctx context.Context, backend, id, output string) error {
	runner, err := c.newRunner(ctx, backend)
	if err != nil {
		return err
	}
	defer runner.Close()

	rec, err := runner.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get warehouse %s: %w", id, err)
	}

	if output != "" {
		if err := warehouse.WriteLayoutFile(rec.Layout, output); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
		printSuccess("Wrote layout for %s", id)
		printFile(output)
		return nil
	}

	data, err := warehouse.MarshalLayout(rec.Layout)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func (c *CLI) runStoreDelete(ctx context.Context, backend, id string) error {
	runner, err := c.newRunner(ctx, backend)
	if err != nil {
		return err
	}
	defer runner.Close()

	if err := runner.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete warehouse %s: %w", id, err)
	}
	printSuccess("Deleted %s", id)
	return nil
}
