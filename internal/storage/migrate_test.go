package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/arteva/arteva-backend/internal/logger"
	"github.com/arteva/arteva-backend/internal/types"
)

// fakeStore is an in-memory ProjectStore with per-id save failures, enough
// to drive the migrator through its skip and error paths.
type fakeStore struct {
	records  map[uuid.UUID]*types.ProjectRecord
	order    []uuid.UUID
	failSave map[uuid.UUID]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		records:  map[uuid.UUID]*types.ProjectRecord{},
		failSave: map[uuid.UUID]bool{},
	}
}

func (f *fakeStore) Save(ctx context.Context, record *types.ProjectRecord) error {
	if f.failSave[record.ID] {
		return fmt.Errorf("save refused for %s", record.ID)
	}
	if _, exists := f.records[record.ID]; !exists {
		f.order = append(f.order, record.ID)
	}
	cp := *record
	f.records[record.ID] = &cp
	return nil
}

func (f *fakeStore) Load(ctx context.Context, id uuid.UUID) (*types.ProjectRecord, error) {
	r, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeStore) List(ctx context.Context) ([]*types.ProjectRecord, error) {
	out := make([]*types.ProjectRecord, 0, len(f.order))
	for _, id := range f.order {
		if r, ok := f.records[id]; ok {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeStore) ListByProduct(ctx context.Context, productID string) ([]*types.ProjectRecord, error) {
	all, _ := f.List(ctx)
	out := []*types.ProjectRecord{}
	for _, r := range all {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.records, id)
	return nil
}

func record(name string) *types.ProjectRecord {
	return &types.ProjectRecord{
		ID:        uuid.New(),
		Name:      name,
		ProductID: "tshirt-essential",
		Scene:     json.RawMessage(`{"version":"1.0","objects":[]}`),
		UpdatedAt: time.Now().UTC(),
	}
}

func newTestMigrator(t *testing.T, local, cloud ProjectStore) *Migrator {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return NewMigrator(local, cloud, log)
}

func seed(t *testing.T, store ProjectStore, records ...*types.ProjectRecord) {
	t.Helper()
	for _, r := range records {
		if err := store.Save(context.Background(), r); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func TestMigrateSkipsExistingCloudProjects(t *testing.T) {
	local, cloud := newFakeStore(), newFakeStore()
	a, b := record("affiche"), record("brochure")
	seed(t, local, a, b)
	seed(t, cloud, a)

	m := newTestMigrator(t, local, cloud)
	result, err := m.Migrate(context.Background(), false)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if !result.Success || result.Migrated != 1 || result.Skipped != 1 || result.Errors != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if got, _ := cloud.Load(context.Background(), b.ID); got == nil {
		t.Error("missing project should have been copied to the cloud")
	}
	if got, _ := local.Load(context.Background(), a.ID); got == nil {
		t.Error("local copies stay put without deleteAfter")
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	local, cloud := newFakeStore(), newFakeStore()
	seed(t, local, record("a"), record("b"))

	m := newTestMigrator(t, local, cloud)
	if _, err := m.Migrate(context.Background(), false); err != nil {
		t.Fatalf("first run: %v", err)
	}
	result, err := m.Migrate(context.Background(), false)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if result.Migrated != 0 || result.Skipped != 2 {
		t.Errorf("second run should skip everything: %+v", result)
	}
}

func TestMigrateContinuesPastFailures(t *testing.T) {
	local, cloud := newFakeStore(), newFakeStore()
	a, b, c := record("a"), record("b"), record("c")
	seed(t, local, a, b, c)
	cloud.failSave[b.ID] = true

	m := newTestMigrator(t, local, cloud)
	result, err := m.Migrate(context.Background(), false)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if result.Success {
		t.Error("a failed item should fail the batch flag")
	}
	if result.Migrated != 2 || result.Errors != 1 {
		t.Fatalf("unexpected counts: %+v", result)
	}
	if got, _ := cloud.Load(context.Background(), c.ID); got == nil {
		t.Error("items after the failure should still migrate")
	}
	var failDetail *MigrationDetail
	for i := range result.Details {
		if result.Details[i].Status == StatusError {
			failDetail = &result.Details[i]
		}
	}
	if failDetail == nil || failDetail.ProjectName != "b" {
		t.Errorf("expected a per-item error detail for b, got %+v", result.Details)
	}
}

func TestMigrateDeleteAfterOnlyOnConfirmedInsert(t *testing.T) {
	local, cloud := newFakeStore(), newFakeStore()
	ok, failing := record("ok"), record("failing")
	seed(t, local, ok, failing)
	cloud.failSave[failing.ID] = true

	m := newTestMigrator(t, local, cloud)
	if _, err := m.Migrate(context.Background(), true); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if got, _ := local.Load(context.Background(), ok.ID); got != nil {
		t.Error("migrated local copy should be deleted with deleteAfter")
	}
	if got, _ := local.Load(context.Background(), failing.ID); got == nil {
		t.Error("failed item must keep its local copy")
	}
}

func TestMigrateEmptyLocalStore(t *testing.T) {
	m := newTestMigrator(t, newFakeStore(), newFakeStore())
	result, err := m.Migrate(context.Background(), false)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if !result.Success || len(result.Details) != 0 {
		t.Errorf("empty store should succeed trivially: %+v", result)
	}
}

func TestPendingCount(t *testing.T) {
	local, cloud := newFakeStore(), newFakeStore()
	a, b := record("a"), record("b")
	seed(t, local, a, b)
	seed(t, cloud, a)

	m := newTestMigrator(t, local, cloud)
	n, err := m.PendingCount(context.Background())
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 pending, got %d", n)
	}
	has, err := m.HasPending(context.Background())
	if err != nil || !has {
		t.Errorf("expected pending flag, got %v err=%v", has, err)
	}
}
