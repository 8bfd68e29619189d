package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/void-labs/showcase/internal/modules/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepo interface {
	Upsert(ctx context.Context, rt *model.Rating) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Rating, error)
	GetByProjectUser(ctx context.Context, projectID, userID uuid.UUID) (*model.Rating, error)
	List(ctx context.Context, projectID *uuid.UUID) ([]model.Rating, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ratingRepo struct{ db *gorm.DB }

func NewRatingRepo(db *gorm.DB) RatingRepo {
	return &ratingRepo{db: db}
}

// Upsert relies on the (project_id, user_id) unique index: a second rating by
// the same user overwrites the first, race-free under concurrent submissions.
func (r *ratingRepo) Upsert(ctx context.Context, rt *model.Rating) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating"}),
	}).Create(rt).Error
}

func (r *ratingRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Rating, error) {
	var rt model.Rating
	return &rt, r.db.WithContext(ctx).Where("id = ?", id).First(&rt).Error
}

func (r *ratingRepo) GetByProjectUser(ctx context.Context, projectID, userID uuid.UUID) (*model.Rating, error) {
	var rt model.Rating
	return &rt, r.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		First(&rt).Error
}

func (r *ratingRepo) List(ctx context.Context, projectID *uuid.UUID) ([]model.Rating, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if projectID != nil {
		q = q.Where("project_id = ?", *projectID)
	}
	var items []model.Rating
	return items, q.Find(&items).Error
}

func (r *ratingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Rating{}, "id = ?", id).Error
}
