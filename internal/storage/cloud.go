package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/arteva/arteva-backend/internal/logger"
	"github.com/arteva/arteva-backend/internal/repos"
	"github.com/arteva/arteva-backend/internal/requestdata"
	"github.com/arteva/arteva-backend/internal/types"
)

type cloudStore struct {
	repo repos.ProjectRepo
	log  *logger.Logger
}

// NewCloudStore wraps the Postgres repo as a ProjectStore. Every operation
// requires an authenticated context and only ever touches that user's
// rows.
func NewCloudStore(repo repos.ProjectRepo, log *logger.Logger) ProjectStore {
	return &cloudStore{repo: repo, log: log.With("store", "cloud")}
}

func cloudToRecord(p *types.Project) *types.ProjectRecord {
	return &types.ProjectRecord{
		ID:        p.ID,
		Name:      p.Name,
		ProductID: p.ProductID,
		Scene:     json.RawMessage(p.Canvas),
		Preview:   p.PreviewURL,
		UpdatedAt: p.UpdatedAt,
	}
}

func (s *cloudStore) userID(ctx context.Context) (uuid.UUID, error) {
	uid := requestdata.UserID(ctx)
	if uid == uuid.Nil {
		return uuid.Nil, ErrNotAuthenticated
	}
	return uid, nil
}

func (s *cloudStore) Save(ctx context.Context, record *types.ProjectRecord) error {
	uid, err := s.userID(ctx)
	if err != nil {
		return err
	}
	row := &types.Project{
		ID:         record.ID,
		UserID:     uid,
		Name:       record.Name,
		ProductID:  record.ProductID,
		Canvas:     datatypes.JSON(record.Scene),
		PreviewURL: record.Preview,
		Tags:       datatypes.JSON([]byte("[]")),
		UpdatedAt:  record.UpdatedAt,
	}
	if row.UpdatedAt.IsZero() {
		row.UpdatedAt = time.Now().UTC()
	}
	// Tags here is the insert default; re-saves leave existing sharing
	// state untouched.
	if err := s.repo.Upsert(ctx, nil, row); err != nil {
		if errors.Is(err, repos.ErrNotOwner) {
			return ErrNotOwner
		}
		return err
	}
	return nil
}

func (s *cloudStore) Load(ctx context.Context, id uuid.UUID) (*types.ProjectRecord, error) {
	uid, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	row, err := s.repo.GetByID(ctx, nil, uid, id)
	if err != nil || row == nil {
		return nil, err
	}
	return cloudToRecord(row), nil
}

func (s *cloudStore) List(ctx context.Context) ([]*types.ProjectRecord, error) {
	uid, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ListByUser(ctx, nil, uid)
	if err != nil {
		return nil, err
	}
	out := make([]*types.ProjectRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, cloudToRecord(row))
	}
	return out, nil
}

func (s *cloudStore) ListByProduct(ctx context.Context, productID string) ([]*types.ProjectRecord, error) {
	uid, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ListByProduct(ctx, nil, uid, productID)
	if err != nil {
		return nil, err
	}
	out := make([]*types.ProjectRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, cloudToRecord(row))
	}
	return out, nil
}

// ListPublic returns community-shared projects across all users, newest
// first. It needs no authenticated context; the repo filters on the
// is_public flag.
func (s *cloudStore) ListPublic(ctx context.Context, limit int) ([]*types.ProjectRecord, error) {
	rows, err := s.repo.ListPublic(ctx, nil, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*types.ProjectRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, cloudToRecord(row))
	}
	return out, nil
}

func (s *cloudStore) Delete(ctx context.Context, id uuid.UUID) error {
	uid, err := s.userID(ctx)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, nil, uid, id)
}
