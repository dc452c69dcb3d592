package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/arteva/arteva-backend/internal/editor"
	"github.com/arteva/arteva-backend/internal/logger"
	"github.com/arteva/arteva-backend/internal/render"
	"github.com/arteva/arteva-backend/internal/types"
)

type memStore struct {
	records map[uuid.UUID]*types.ProjectRecord
	saveErr error
}

func newMemStore() *memStore {
	return &memStore{records: map[uuid.UUID]*types.ProjectRecord{}}
}

func (m *memStore) Save(ctx context.Context, record *types.ProjectRecord) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	cp := *record
	m.records[record.ID] = &cp
	return nil
}

func (m *memStore) Load(ctx context.Context, id uuid.UUID) (*types.ProjectRecord, error) {
	r, ok := m.records[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (m *memStore) List(ctx context.Context) ([]*types.ProjectRecord, error) {
	out := []*types.ProjectRecord{}
	for _, r := range m.records {
		cp := *r
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memStore) ListByProduct(ctx context.Context, productID string) ([]*types.ProjectRecord, error) {
	return m.List(ctx)
}

func (m *memStore) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.records, id)
	return nil
}

func newTestProjectService(t *testing.T) *ProjectService {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return NewProjectService(log, render.NewRenderer(log), nil)
}

func newTestEditor() *editor.Editor {
	geom := types.CanvasGeometry{Width: 1000, Height: 800, SafeMargin: 50, BleedMargin: 80, DPI: 300}
	return editor.New(geom, 1400)
}

func TestSaveDefaultsAndClearsDirty(t *testing.T) {
	svc := newTestProjectService(t)
	store := newMemStore()
	ed := newTestEditor()
	ed.Scene.AddText(nil)

	record, err := svc.Save(context.Background(), store, ed, SaveParams{ProductID: "mug-ceramique"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if record.ID == uuid.Nil {
		t.Error("expected a minted id")
	}
	if record.Name != "mug-ceramique-draft" {
		t.Errorf("expected default draft name, got %q", record.Name)
	}
	if record.Preview == "" {
		t.Error("expected a preview thumbnail")
	}
	if ed.Scene.IsDirty() {
		t.Error("successful save should clear the dirty flag")
	}
	if _, ok := store.records[record.ID]; !ok {
		t.Error("record not persisted")
	}
}

func TestSaveKeepsDirtyOnFailure(t *testing.T) {
	svc := newTestProjectService(t)
	store := newMemStore()
	store.saveErr = fmt.Errorf("backend down")
	ed := newTestEditor()
	ed.Scene.AddText(nil)

	if _, err := svc.Save(context.Background(), store, ed, SaveParams{ProductID: "pen-s1"}); err == nil {
		t.Fatal("expected save error")
	}
	if !ed.Scene.IsDirty() {
		t.Error("failed save must leave the scene dirty for retry")
	}
}

func TestSaveOverwritesByID(t *testing.T) {
	svc := newTestProjectService(t)
	store := newMemStore()
	ed := newTestEditor()
	ed.Scene.AddText(nil)

	first, err := svc.Save(context.Background(), store, ed, SaveParams{Name: "v1", ProductID: "tshirt-essential"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	ed.Scene.AddShape(types.ObjectRect)
	second, err := svc.Save(context.Background(), store, ed, SaveParams{ID: first.ID, Name: "v2", ProductID: "tshirt-essential"})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if second.ID != first.ID {
		t.Error("saving with an id should overwrite, not fork")
	}
	if len(store.records) != 1 {
		t.Errorf("expected a single record, got %d", len(store.records))
	}
	if store.records[first.ID].Name != "v2" {
		t.Error("overwrite should be complete, including the name")
	}
}

func TestLoadRoundTrip(t *testing.T) {
	svc := newTestProjectService(t)
	store := newMemStore()
	ed := newTestEditor()
	id := ed.Scene.AddText(nil)
	ed.Scene.SetTextContent([]string{id}, "Bonjour")

	record, err := svc.Save(context.Background(), store, ed, SaveParams{ProductID: "totebag-canvas"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	fresh := newTestEditor()
	loaded, err := svc.Load(context.Background(), store, fresh, record.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected record")
	}
	if fresh.Scene.ObjectCount() != 1 {
		t.Fatalf("scene not restored, %d objects", fresh.Scene.ObjectCount())
	}
	if fresh.Scene.IsDirty() {
		t.Error("loading a saved project should start clean")
	}
}

func TestLoadUnknownID(t *testing.T) {
	svc := newTestProjectService(t)
	record, err := svc.Load(context.Background(), newMemStore(), newTestEditor(), uuid.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if record != nil {
		t.Error("unknown id should yield nil record, not an error")
	}
}
