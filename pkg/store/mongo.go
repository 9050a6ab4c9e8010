package store

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/palletlab/warevis/pkg/observability"
)

// MongoConfig holds connection settings for the MongoDB store.
type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

// MongoStore is a MongoDB-backed store. Records are kept as single documents
// keyed by warehouse ID, so every operation is one round trip.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB and verifies the connection.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.Database == "" {
		cfg.Database = "warevis"
	}
	if cfg.Collection == "" {
		cfg.Collection = "warehouses"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Get retrieves a record by warehouse ID.
func (s *MongoStore) Get(ctx context.Context, id string) (Record, error) {
	var rec Record
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	observability.Store().OnStoreGet(ctx, "mongo", err == nil)
	if err == mongo.ErrNoDocuments {
		return Record{}, notFound(id)
	}
	if err != nil {
		return Record{}, fmt.Errorf("mongodb find: %w", err)
	}
	return rec, nil
}

// Set stores a record, replacing any existing record with the same ID.
func (s *MongoStore) Set(ctx context.Context, rec Record) error {
	if old, err := s.Get(ctx, rec.ID); err == nil {
		rec.CreatedAt = old.CreatedAt
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": rec.ID}, rec, opts); err != nil {
		return fmt.Errorf("mongodb replace: %w", err)
	}
	observability.Store().OnStoreSet(ctx, "mongo", 0)
	return nil
}

// Delete removes a record.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("mongodb delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return notFound(id)
	}
	observability.Store().OnStoreDelete(ctx, "mongo")
	return nil
}

// List returns the IDs of all stored warehouses, sorted.
func (s *MongoStore) List(ctx context.Context) ([]string, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb list: %w", err)
	}
	defer cur.Close(ctx)

	var ids []string
	for cur.Next(ctx) {
		var doc struct {
			ID string `bson:"_id"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
		ids = append(ids, doc.ID)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("mongodb cursor: %w", err)
	}
	sort.Strings(ids)
	return ids, nil
}

// Close disconnects the underlying MongoDB client.
func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
