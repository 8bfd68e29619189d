package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/void-labs/showcase/internal/modules/model"
	"gorm.io/gorm"
)

type FeedbackRepo interface {
	Create(ctx context.Context, f *model.Feedback) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Feedback, error)
	List(ctx context.Context, projectID *uuid.UUID) ([]model.Feedback, error)
	Update(ctx context.Context, id uuid.UUID, comment string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type feedbackRepo struct{ db *gorm.DB }

func NewFeedbackRepo(db *gorm.DB) FeedbackRepo {
	return &feedbackRepo{db: db}
}

func (r *feedbackRepo) Create(ctx context.Context, f *model.Feedback) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *feedbackRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Feedback, error) {
	var f model.Feedback
	return &f, r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&f).Error
}

func (r *feedbackRepo) List(ctx context.Context, projectID *uuid.UUID) ([]model.Feedback, error) {
	q := r.db.WithContext(ctx).Preload("User").Order("created_at DESC")
	if projectID != nil {
		q = q.Where("project_id = ?", *projectID)
	}
	var items []model.Feedback
	return items, q.Find(&items).Error
}

func (r *feedbackRepo) Update(ctx context.Context, id uuid.UUID, comment string) error {
	return r.db.WithContext(ctx).Model(&model.Feedback{}).Where("id = ?", id).Update("comment", comment).Error
}

func (r *feedbackRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Feedback{}, "id = ?", id).Error
}
