package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/arteva/arteva-backend/internal/logger"
	"github.com/arteva/arteva-backend/internal/repos"
	"github.com/arteva/arteva-backend/internal/types"
)

type localStore struct {
	repo repos.LocalProjectRepo
	log  *logger.Logger
}

// NewLocalStore wraps the sqlite-backed repo as a ProjectStore.
func NewLocalStore(repo repos.LocalProjectRepo, log *logger.Logger) ProjectStore {
	return &localStore{repo: repo, log: log.With("store", "local")}
}

func localToRecord(p *types.LocalProject) *types.ProjectRecord {
	return &types.ProjectRecord{
		ID:        p.ID,
		Name:      p.Name,
		ProductID: p.ProductID,
		Scene:     json.RawMessage(p.Canvas),
		Preview:   p.PreviewDataURL,
		UpdatedAt: p.UpdatedAt,
	}
}

func (s *localStore) Save(ctx context.Context, record *types.ProjectRecord) error {
	row := &types.LocalProject{
		ID:             record.ID,
		Name:           record.Name,
		ProductID:      record.ProductID,
		Canvas:         datatypes.JSON(record.Scene),
		PreviewDataURL: record.Preview,
		UpdatedAt:      record.UpdatedAt,
	}
	if row.UpdatedAt.IsZero() {
		row.UpdatedAt = time.Now().UTC()
	}
	return s.repo.Upsert(ctx, nil, row)
}

func (s *localStore) Load(ctx context.Context, id uuid.UUID) (*types.ProjectRecord, error) {
	row, err := s.repo.GetByID(ctx, nil, id)
	if err != nil || row == nil {
		return nil, err
	}
	return localToRecord(row), nil
}

func (s *localStore) List(ctx context.Context) ([]*types.ProjectRecord, error) {
	rows, err := s.repo.ListAll(ctx, nil)
	if err != nil {
		return nil, err
	}
	out := make([]*types.ProjectRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, localToRecord(row))
	}
	return out, nil
}

func (s *localStore) ListByProduct(ctx context.Context, productID string) ([]*types.ProjectRecord, error) {
	rows, err := s.repo.ListByProduct(ctx, nil, productID)
	if err != nil {
		return nil, err
	}
	out := make([]*types.ProjectRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, localToRecord(row))
	}
	return out, nil
}

func (s *localStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, nil, id)
}
