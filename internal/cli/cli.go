// Package cli implements the warevis command-line interface.
//
// This package provides commands for resolving warehouse layouts from
// configuration files, rendering them as floor plans, serving the HTTP API,
// and browsing layouts interactively. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - layout: Resolve a configuration file into absolute 3D geometry
//   - validate: Dry-run a configuration without writing anything
//   - render: Generate SVG or JSON artifacts from a configuration or layout
//   - serve: Run the warehouse HTTP API
//   - dashboard: Browse a layout interactively in the terminal
//   - store: Inspect and manage stored warehouses
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/palletlab/warevis/internal/config"
	"github.com/palletlab/warevis/pkg/buildinfo"
	"github.com/palletlab/warevis/pkg/pipeline"
	"github.com/palletlab/warevis/pkg/store"
)

// appName is the application name used for directories and display.
const appName = "warevis"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Warevis resolves warehouse configurations into 3D layouts",
		Long:         `Warevis is a deterministic warehouse layout engine: it turns a declarative configuration (blocks, rack grids, pallets) into absolute 3D geometry, renders floor plans, and serves the result over an HTTP API.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.dashboardCommand())
	root.AddCommand(c.storeCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the given store backend.
// The empty backend name means in-memory (no persistence across runs).
func (c *CLI) newRunner(ctx context.Context, backend string) (*pipeline.Runner, error) {
	st, err := c.newStore(ctx, backend)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(st, c.Logger), nil
}

// newStore builds a store backend by name, using the server config file for
// connection settings.
func (c *CLI) newStore(ctx context.Context, backend string) (store.Store, error) {
	if backend == "" || backend == "memory" {
		return store.NewMemoryStore(), nil
	}

	cfg, err := c.loadServerConfig("")
	if err != nil {
		return nil, err
	}
	return openStore(ctx, backend, cfg)
}

// openStore instantiates the named backend from server settings.
func openStore(ctx context.Context, backend string, cfg config.Server) (store.Store, error) {
	switch backend {
	case "memory":
		return store.NewMemoryStore(), nil
	case "file":
		return store.NewFileStore(cfg.File.Dir)
	case "redis":
		return store.NewRedisStore(ctx, store.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	case "mongo":
		return store.NewMongoStore(ctx, store.MongoConfig{
			URI:        cfg.Mongo.URI,
			Database:   cfg.Mongo.Database,
			Collection: cfg.Mongo.Collection,
		})
	}
	return nil, fmt.Errorf("unknown store backend %q (must be one of: memory, file, redis, mongo)", backend)
}

// loadServerConfig reads the TOML server config, falling back to defaults
// when path is empty and no file exists at the standard location.
func (c *CLI) loadServerConfig(path string) (config.Server, error) {
	if path == "" {
		standard, err := config.DefaultPath()
		if err != nil {
			return config.Default(), nil
		}
		path = standard
	}
	return config.Load(path)
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}
