package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/void-labs/showcase/internal/modules/model"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *model.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	List(ctx context.Context) ([]model.Project, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Project, error)
	Search(ctx context.Context, query string) ([]model.Project, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	AggregateRatings(ctx context.Context, projectID uuid.UUID) (avg float64, count int64, err error)
}

type projectRepo struct{ db *gorm.DB }

func NewProjectRepo(db *gorm.DB) ProjectRepo {
	return &projectRepo{db: db}
}

func (r *projectRepo) withAssociations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("User").
		Preload("Ratings").
		Preload("Feedbacks").
		Preload("Feedbacks.User")
}

func (r *projectRepo) Create(ctx context.Context, p *model.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *projectRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var p model.Project
	return &p, r.withAssociations(ctx).Where("id = ?", id).First(&p).Error
}

func (r *projectRepo) List(ctx context.Context) ([]model.Project, error) {
	var items []model.Project
	return items, r.withAssociations(ctx).Order("created_at DESC").Find(&items).Error
}

func (r *projectRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Project, error) {
	var items []model.Project
	return items, r.withAssociations(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&items).Error
}

// Search is a case-insensitive substring match on title or description.
// All matches are returned, unranked.
func (r *projectRepo) Search(ctx context.Context, query string) ([]model.Project, error) {
	var items []model.Project
	pattern := "%" + query + "%"
	return items, r.withAssociations(ctx).
		Where("title ILIKE ? OR description ILIKE ?", pattern, pattern).
		Order("created_at DESC").
		Find(&items).Error
}

// Update applies a column map so zero values ("clear the thumbnail") stick.
// user_id is never part of the map: the owner is immutable after creation.
func (r *projectRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Project{}).Where("id = ?", id).Updates(fields).Error
}

func (r *projectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Project{}, "id = ?", id).Error
}

func (r *projectRepo) AggregateRatings(ctx context.Context, projectID uuid.UUID) (float64, int64, error) {
	var out struct {
		Avg   *float64
		Count int64
	}
	err := r.db.WithContext(ctx).Model(&model.Rating{}).
		Select("AVG(rating) AS avg, COUNT(*) AS count").
		Where("project_id = ?", projectID).
		Scan(&out).Error
	if err != nil {
		return 0, 0, err
	}
	avg := 0.0
	if out.Avg != nil {
		avg = *out.Avg
	}
	return avg, out.Count, nil
}
