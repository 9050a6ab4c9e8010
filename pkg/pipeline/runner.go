package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/palletlab/warevis/pkg/errors"
	"github.com/palletlab/warevis/pkg/layout"
	"github.com/palletlab/warevis/pkg/observability"
	"github.com/palletlab/warevis/pkg/render"
	"github.com/palletlab/warevis/pkg/store"
)

// Runner encapsulates pipeline execution with persistence.
// CLI, API, and dashboard all use this to avoid duplicating the
// resolve-then-store logic.
//
// The Runner is stateless except for the store and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Store  store.Store
	Logger *log.Logger
}

// NewRunner creates a runner with the given store.
// If st is nil, an in-memory store is used (persistence effectively off).
// If logger is nil, the default logger is used.
func NewRunner(st store.Store, logger *log.Logger) *Runner {
	if st == nil {
		st = store.NewMemoryStore()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Store: st, Logger: logger}
}

// Create runs the complete validate → layout → render pipeline and persists
// the result. The returned Result carries the resolved geometry and any
// rendered artifacts.
func (r *Runner) Create(ctx context.Context, opts Options) (*Result, error) {
	result, err := r.resolve(ctx, opts)
	if err != nil {
		return nil, err
	}

	if err := r.Store.Set(ctx, store.NewRecord(result.Config, result.Layout)); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "store warehouse %s", result.ID)
	}

	r.Logger.Info("created warehouse",
		"id", result.ID,
		"blocks", result.Stats.BlockCount,
		"racks", result.Stats.RackCount,
		"pallets", result.Stats.PalletCount,
		"layout_time", result.Stats.LayoutTime)

	return result, nil
}

// Validate dry-runs the pipeline without persisting anything. It exercises
// the same resolution path as Create, so a Valid result is a guarantee the
// configuration will create successfully.
func (r *Runner) Validate(ctx context.Context, opts Options) (Validation, error) {
	_, err := r.resolve(ctx, opts)
	if err == nil {
		return Validation{Valid: true}, nil
	}
	if errors.IsLayoutError(err) {
		r.Logger.Debug("validation rejected configuration", "reason", err)
		return Validation{Valid: false, Message: errors.UserMessage(err)}, nil
	}
	return Validation{}, err
}

// resolve performs validation, layout, and rendering. Shared by Create and
// Validate so the two can never diverge.
func (r *Runner) resolve(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	cfg := opts.Config
	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}
	cfg.ApplyDefaults()

	observability.Layout().OnResolveStart(ctx, cfg.ID, cfg.Blocks)
	layoutStart := time.Now()
	l, err := layout.CreateLayout(cfg)
	layoutTime := time.Since(layoutStart)
	observability.Layout().OnResolveComplete(ctx, cfg.ID, l.RackCount(), layoutTime, err)
	if err != nil {
		return nil, err
	}

	result := &Result{
		ID:        cfg.ID,
		Config:    cfg,
		Layout:    l,
		Artifacts: make(map[string][]byte),
		Stats: Stats{
			BlockCount:  len(l.Blocks),
			RackCount:   l.RackCount(),
			PalletCount: l.PalletCount(),
			LayoutTime:  layoutTime,
		},
	}

	observability.Layout().OnRenderStart(ctx, opts.Formats)
	renderStart := time.Now()
	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			svgOpts := []render.SVGOption{render.WithFloor(opts.Floor)}
			if opts.Labels {
				svgOpts = append(svgOpts, render.WithLabels())
			}
			result.Artifacts[format] = render.RenderSVG(l, svgOpts...)
		case FormatJSON:
			data, err := render.RenderJSON(l)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "render json")
			}
			result.Artifacts[format] = data
		}
	}
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Layout().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, nil)

	return result, nil
}

// Get retrieves a stored warehouse by ID.
func (r *Runner) Get(ctx context.Context, id string) (store.Record, error) {
	if err := errors.ValidateWarehouseID(id); err != nil {
		return store.Record{}, err
	}
	return r.Store.Get(ctx, id)
}

// Delete removes a stored warehouse by ID.
func (r *Runner) Delete(ctx context.Context, id string) error {
	if err := errors.ValidateWarehouseID(id); err != nil {
		return err
	}
	if err := r.Store.Delete(ctx, id); err != nil {
		return err
	}
	r.Logger.Info("deleted warehouse", "id", id)
	return nil
}

// List returns the IDs of all stored warehouses.
func (r *Runner) List(ctx context.Context) ([]string, error) {
	return r.Store.List(ctx)
}

// Close releases resources held by the runner (primarily the store).
func (r *Runner) Close() error {
	if r.Store != nil {
		return r.Store.Close()
	}
	return nil
}

// Rebuild recomputes the layout for a stored warehouse from its persisted
// configuration and stores the result. Useful after engine changes.
func (r *Runner) Rebuild(ctx context.Context, id string) (*Result, error) {
	rec, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.Create(ctx, Options{Config: rec.Config})
}
