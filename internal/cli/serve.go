package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/palletlab/warevis/internal/api"
	"github.com/palletlab/warevis/pkg/pipeline"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		addr       string
		backend    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the warehouse HTTP API",
		Long: `Run the warehouse HTTP API.

The server reads its settings from a TOML config file (default:
~/.config/warevis/server.toml). Flags override file settings. With no file
and no flags, the server listens on :8080 with an in-memory store.

Endpoints:
  POST   /api/warehouse/create
  POST   /api/warehouse/validate
  GET    /api/warehouse/{id}
  DELETE /api/warehouse/{id}
  GET    /api/warehouses
  GET    /api/health`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), configPath, addr, backend)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to server.toml")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&backend, "backend", "", "store backend: memory, file, redis, mongo (overrides config)")

	return cmd
}

// runServe builds the configured store and serves until the context ends.
func (c *CLI) runServe(ctx context.Context, configPath, addr, backend string) error {
	cfg, err := c.loadServerConfig(configPath)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Addr = addr
	}
	if backend != "" {
		cfg.Backend = backend
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	st, err := openStore(ctx, cfg.Backend, cfg)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Backend, err)
	}

	runner := pipeline.NewRunner(st, c.Logger)
	defer runner.Close()

	c.Logger.Info("starting server", "addr", cfg.Addr, "backend", cfg.Backend)
	server := api.New(cfg.Addr, runner, c.Logger)
	return server.ListenAndServe(ctx)
}
