package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/void-labs/showcase/internal/modules/model"
	"gorm.io/gorm"
)

type ReactionRepo interface {
	Create(ctx context.Context, re *model.Reaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Reaction, error)
	List(ctx context.Context, projectID *uuid.UUID) ([]model.Reaction, error)
	Update(ctx context.Context, id uuid.UUID, reactionType string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type reactionRepo struct{ db *gorm.DB }

func NewReactionRepo(db *gorm.DB) ReactionRepo {
	return &reactionRepo{db: db}
}

func (r *reactionRepo) Create(ctx context.Context, re *model.Reaction) error {
	return r.db.WithContext(ctx).Create(re).Error
}

func (r *reactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Reaction, error) {
	var re model.Reaction
	return &re, r.db.WithContext(ctx).Where("id = ?", id).First(&re).Error
}

func (r *reactionRepo) List(ctx context.Context, projectID *uuid.UUID) ([]model.Reaction, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if projectID != nil {
		q = q.Where("project_id = ?", *projectID)
	}
	var items []model.Reaction
	return items, q.Find(&items).Error
}

func (r *reactionRepo) Update(ctx context.Context, id uuid.UUID, reactionType string) error {
	return r.db.WithContext(ctx).Model(&model.Reaction{}).Where("id = ?", id).Update("reaction_type", reactionType).Error
}

func (r *reactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Reaction{}, "id = ?", id).Error
}

type CollaborationRepo interface {
	Create(ctx context.Context, co *model.Collaboration) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Collaboration, error)
	List(ctx context.Context, projectID *uuid.UUID) ([]model.Collaboration, error)
	Update(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type collaborationRepo struct{ db *gorm.DB }

func NewCollaborationRepo(db *gorm.DB) CollaborationRepo {
	return &collaborationRepo{db: db}
}

func (r *collaborationRepo) Create(ctx context.Context, co *model.Collaboration) error {
	return r.db.WithContext(ctx).Create(co).Error
}

func (r *collaborationRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Collaboration, error) {
	var co model.Collaboration
	return &co, r.db.WithContext(ctx).Where("id = ?", id).First(&co).Error
}

func (r *collaborationRepo) List(ctx context.Context, projectID *uuid.UUID) ([]model.Collaboration, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if projectID != nil {
		q = q.Where("project_id = ?", *projectID)
	}
	var items []model.Collaboration
	return items, q.Find(&items).Error
}

func (r *collaborationRepo) Update(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).Model(&model.Collaboration{}).Where("id = ?", id).Update("status", status).Error
}

func (r *collaborationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Collaboration{}, "id = ?", id).Error
}
