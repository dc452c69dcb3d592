package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/arteva/arteva-backend/internal/logger"
	"github.com/arteva/arteva-backend/internal/types"
)

type LocalProjectRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, project *types.LocalProject) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.LocalProject, error)
	ListAll(ctx context.Context, tx *gorm.DB) ([]*types.LocalProject, error)
	ListByProduct(ctx context.Context, tx *gorm.DB, productID string) ([]*types.LocalProject, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type localProjectRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLocalProjectRepo(db *gorm.DB, baseLog *logger.Logger) LocalProjectRepo {
	return &localProjectRepo{db: db, log: baseLog.With("repo", "LocalProjectRepo")}
}

func (r *localProjectRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *localProjectRepo) Upsert(ctx context.Context, tx *gorm.DB, project *types.LocalProject) error {
	return r.conn(tx).WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "canvas", "preview_data_url", "updated_at"}),
		}).
		Create(project).Error
}

func (r *localProjectRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.LocalProject, error) {
	var result types.LocalProject
	err := r.conn(tx).WithContext(ctx).Where("id = ?", id).First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *localProjectRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.LocalProject, error) {
	var results []*types.LocalProject
	if err := r.conn(tx).WithContext(ctx).
		Order("updated_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *localProjectRepo) ListByProduct(ctx context.Context, tx *gorm.DB, productID string) ([]*types.LocalProject, error) {
	var results []*types.LocalProject
	if err := r.conn(tx).WithContext(ctx).
		Where("product_id = ?", productID).
		Order("updated_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *localProjectRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return r.conn(tx).WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.LocalProject{}).Error
}
