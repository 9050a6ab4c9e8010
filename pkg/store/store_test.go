package store

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/palletlab/warevis/pkg/warehouse"
)

func testRecord(id string) Record {
	cfg := warehouse.Config{
		ID:         id,
		Dimensions: warehouse.Dimensions{Length: 3000, Width: 2000, Height: 800, Unit: "cm"},
		Blocks:     1,
		BlockConfigs: []warehouse.BlockConfig{{
			Rack: warehouse.RackConfig{Floors: 1, Rows: 1, Racks: 1},
		}},
	}
	layout := warehouse.Layout{Blocks: []warehouse.Block{{
		ID:         "block_1",
		Dimensions: warehouse.Extent{Length: 3000, Width: 2000, Height: 800},
	}}}
	return NewRecord(cfg, layout)
}

// exerciseStore runs the common behavior suite against any backend.
func exerciseStore(t *testing.T, st Store) {
	t.Helper()
	ctx := context.Background()

	// Miss before anything is stored.
	if _, err := st.Get(ctx, "wh-1"); !IsNotFound(err) {
		t.Fatalf("Get on empty store: got %v, want not-found", err)
	}

	rec := testRecord("wh-1")
	if err := st.Set(ctx, rec); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	got, err := st.Get(ctx, "wh-1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.ID != "wh-1" || got.Config.Blocks != 1 || len(got.Layout.Blocks) != 1 {
		t.Errorf("Get returned wrong record: %+v", got)
	}

	// Replacing keeps CreatedAt but moves UpdatedAt.
	time.Sleep(10 * time.Millisecond)
	upd := testRecord("wh-1")
	upd.Config.Blocks = 2
	if err := st.Set(ctx, upd); err != nil {
		t.Fatalf("Set (replace) error: %v", err)
	}
	got2, err := st.Get(ctx, "wh-1")
	if err != nil {
		t.Fatalf("Get after replace error: %v", err)
	}
	if got2.Config.Blocks != 2 {
		t.Errorf("replace did not take effect: blocks = %d", got2.Config.Blocks)
	}
	if !got2.CreatedAt.Equal(got.CreatedAt) {
		t.Errorf("CreatedAt changed on replace: %v -> %v", got.CreatedAt, got2.CreatedAt)
	}
	if !got2.UpdatedAt.After(got.UpdatedAt) {
		t.Errorf("UpdatedAt did not advance on replace")
	}

	// List is sorted.
	if err := st.Set(ctx, testRecord("wh-0")); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	ids, err := st.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if !reflect.DeepEqual(ids, []string{"wh-0", "wh-1"}) {
		t.Errorf("List = %v, want [wh-0 wh-1]", ids)
	}

	// Delete, then miss.
	if err := st.Delete(ctx, "wh-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := st.Get(ctx, "wh-1"); !IsNotFound(err) {
		t.Errorf("Get after delete: got %v, want not-found", err)
	}
	if err := st.Delete(ctx, "wh-1"); !IsNotFound(err) {
		t.Errorf("Delete of missing record: got %v, want not-found", err)
	}
}

func TestMemoryStore(t *testing.T) {
	st := NewMemoryStore()
	defer st.Close()
	exerciseStore(t, st)
}

func TestFileStore(t *testing.T) {
	st, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore error: %v", err)
	}
	defer st.Close()
	exerciseStore(t, st)
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	st, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore error: %v", err)
	}
	if err := st.Set(ctx, testRecord("wh-persist")); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	st.Close()

	st2, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer st2.Close()

	got, err := st2.Get(ctx, "wh-persist")
	if err != nil {
		t.Fatalf("Get after reopen error: %v", err)
	}
	if got.ID != "wh-persist" {
		t.Errorf("record lost across reopen: %+v", got)
	}
}

func TestMemoryStoreConcurrent(t *testing.T) {
	st := NewMemoryStore()
	defer st.Close()
	ctx := context.Background()

	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func(id string) {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 50; j++ {
				_ = st.Set(ctx, testRecord(id))
				_, _ = st.Get(ctx, id)
				_, _ = st.List(ctx)
			}
		}([]string{"a", "b", "c", "d"}[i])
	}
	for i := 0; i < 4; i++ {
		<-done
	}

	ids, err := st.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(ids) != 4 {
		t.Errorf("expected 4 records, got %v", ids)
	}
}
