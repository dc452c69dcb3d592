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

// ErrNotOwner is returned by Upsert when the project id already belongs
// to a different user.
var ErrNotOwner = errors.New("project belongs to another user")

type ProjectRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, project *types.Project) error
	GetByID(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) (*types.Project, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Project, error)
	ListByProduct(ctx context.Context, tx *gorm.DB, userID uuid.UUID, productID string) ([]*types.Project, error)
	ListPublic(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Project, error)
	Delete(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) error
}

type projectRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProjectRepo(db *gorm.DB, baseLog *logger.Logger) ProjectRepo {
	return &projectRepo{db: db, log: baseLog.With("repo", "ProjectRepo")}
}

func (r *projectRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

// Upsert inserts or overwrites a project row. The conflict update only
// fires when the existing row belongs to the same user, so a save carrying
// a foreign id cannot clobber another user's project. Sharing state
// (is_public, tags) is deliberately absent from the update list; an
// ordinary re-save must not unshare a project.
func (r *projectRepo) Upsert(ctx context.Context, tx *gorm.DB, project *types.Project) error {
	res := r.conn(tx).WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "canvas", "preview_url", "updated_at"}),
			Where: clause.Where{Exprs: []clause.Expression{
				clause.Eq{
					Column: clause.Column{Table: types.Project{}.TableName(), Name: "user_id"},
					Value:  project.UserID,
				},
			}},
		}).
		Create(project)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotOwner
	}
	return nil
}

func (r *projectRepo) GetByID(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) (*types.Project, error) {
	var result types.Project
	err := r.conn(tx).WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *projectRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Project, error) {
	var results []*types.Project
	if err := r.conn(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *projectRepo) ListByProduct(ctx context.Context, tx *gorm.DB, userID uuid.UUID, productID string) ([]*types.Project, error) {
	var results []*types.Project
	if err := r.conn(tx).WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Order("updated_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *projectRepo) ListPublic(ctx context.Context, tx *gorm.DB, limit int) ([]*types.Project, error) {
	if limit <= 0 {
		limit = 50
	}
	var results []*types.Project
	if err := r.conn(tx).WithContext(ctx).
		Where("is_public = ?", true).
		Order("updated_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *projectRepo) Delete(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) error {
	return r.conn(tx).WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&types.Project{}).Error
}
