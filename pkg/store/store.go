// Package store persists warehouse configurations and their computed layouts.
//
// A Record pairs the configuration a warehouse was created from with the
// geometry the engine resolved for it, so both can be served back without
// recomputation. Backends:
//   - memory: in-process map for development and testing
//   - file: JSON files on disk for CLI usage
//   - redis: Redis-backed storage for multi-instance deployments
//   - mongo: MongoDB-backed storage when documents should survive restarts
//
// Usage:
//
//	st := store.NewMemoryStore()
//
//	// or, for production:
//	st, err := store.NewRedisStore(ctx, store.RedisConfig{Addr: "localhost:6379"})
//
//	rec := store.NewRecord(cfg, layout)
//	if err := st.Set(ctx, rec); err != nil {
//	    return err
//	}
package store

import (
	"context"
	"time"

	"github.com/palletlab/warevis/pkg/errors"
	"github.com/palletlab/warevis/pkg/warehouse"
)

// Record is one stored warehouse: the configuration it was created from and
// the layout resolved for it. ID mirrors the configuration's ID.
type Record struct {
	ID        string           `json:"id" bson:"_id"`
	Config    warehouse.Config `json:"config" bson:"config"`
	Layout    warehouse.Layout `json:"layout" bson:"layout"`
	CreatedAt time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time        `json:"updated_at" bson:"updated_at"`
}

// NewRecord builds a Record for a freshly created warehouse.
func NewRecord(cfg warehouse.Config, layout warehouse.Layout) Record {
	now := time.Now().UTC()
	return Record{
		ID:        cfg.ID,
		Config:    cfg,
		Layout:    layout,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Store is the interface for warehouse storage backends.
type Store interface {
	// Get retrieves a record by warehouse ID.
	// Returns a WAREHOUSE_NOT_FOUND error when the ID is unknown.
	Get(ctx context.Context, id string) (Record, error)

	// Set stores a record, replacing any existing record with the same ID.
	Set(ctx context.Context, rec Record) error

	// Delete removes a record.
	// Returns a WAREHOUSE_NOT_FOUND error when the ID is unknown.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all stored warehouses, sorted.
	List(ctx context.Context) ([]string, error)

	// Close releases backend resources.
	Close() error
}

// notFound builds the standard miss error shared by all backends.
func notFound(id string) error {
	return errors.New(errors.ErrCodeWarehouseNotFound, "warehouse %q not found", id)
}

// IsNotFound reports whether err is a storage miss.
func IsNotFound(err error) bool {
	return errors.Is(err, errors.ErrCodeWarehouseNotFound)
}
