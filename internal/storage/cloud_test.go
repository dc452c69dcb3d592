package storage

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/arteva/arteva-backend/internal/logger"
	"github.com/arteva/arteva-backend/internal/repos"
	"github.com/arteva/arteva-backend/internal/requestdata"
	"github.com/arteva/arteva-backend/internal/types"
)

func newCloudFixture(t *testing.T) (ProjectStore, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "cloud.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&types.Project{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return NewCloudStore(repos.NewProjectRepo(db, log), log), db
}

func userCtx(id uuid.UUID) context.Context {
	return requestdata.WithRequestData(context.Background(), &requestdata.RequestData{UserID: id})
}

func cloudRecord(name string) *types.ProjectRecord {
	return &types.ProjectRecord{
		ID:        uuid.New(),
		Name:      name,
		ProductID: "tshirt-essential",
		Scene:     json.RawMessage(`{"version":"1.0","objects":[]}`),
	}
}

func TestCloudSaveRejectsForeignProjectID(t *testing.T) {
	store, db := newCloudFixture(t)
	owner, intruder := uuid.New(), uuid.New()

	rec := cloudRecord("affiche")
	if err := store.Save(userCtx(owner), rec); err != nil {
		t.Fatalf("owner save: %v", err)
	}

	stolen := cloudRecord("hijacked")
	stolen.ID = rec.ID
	if err := store.Save(userCtx(intruder), stolen); err != ErrNotOwner {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}

	var row types.Project
	if err := db.First(&row, "id = ?", rec.ID).Error; err != nil {
		t.Fatalf("reload row: %v", err)
	}
	if row.UserID != owner {
		t.Errorf("owner changed to %s", row.UserID)
	}
	if row.Name != "affiche" {
		t.Errorf("content overwritten by foreign save: %q", row.Name)
	}

	// The intruder cannot read it either.
	if got, err := store.Load(userCtx(intruder), rec.ID); err != nil || got != nil {
		t.Errorf("foreign load should be a miss, got %v err=%v", got, err)
	}
}

func TestCloudResavePreservesSharingState(t *testing.T) {
	store, db := newCloudFixture(t)
	owner := uuid.New()

	rec := cloudRecord("brochure")
	if err := store.Save(userCtx(owner), rec); err != nil {
		t.Fatalf("save: %v", err)
	}
	err := db.Model(&types.Project{}).Where("id = ?", rec.ID).Updates(map[string]any{
		"is_public": true,
		"tags":      datatypes.JSON([]byte(`["featured"]`)),
	}).Error
	if err != nil {
		t.Fatalf("share project: %v", err)
	}

	rec.Name = "brochure v2"
	if err := store.Save(userCtx(owner), rec); err != nil {
		t.Fatalf("re-save: %v", err)
	}

	var row types.Project
	if err := db.First(&row, "id = ?", rec.ID).Error; err != nil {
		t.Fatalf("reload row: %v", err)
	}
	if row.Name != "brochure v2" {
		t.Errorf("re-save should update the name, got %q", row.Name)
	}
	if !row.IsPublic {
		t.Error("re-save must not unshare the project")
	}
	if !strings.Contains(string(row.Tags), "featured") {
		t.Errorf("re-save must keep tags, got %s", row.Tags)
	}
}

func TestCloudSaveRequiresUser(t *testing.T) {
	store, _ := newCloudFixture(t)
	if err := store.Save(context.Background(), cloudRecord("anon")); err != ErrNotAuthenticated {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}
