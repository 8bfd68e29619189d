package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/void-labs/showcase/internal/modules/model"
	"gorm.io/gorm"
)

type ReportedFeedbackRepo interface {
	Create(ctx context.Context, rf *model.ReportedFeedback) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.ReportedFeedback, error)
	List(ctx context.Context) ([]model.ReportedFeedback, error)
	Resolve(ctx context.Context, id, resolvedBy uuid.UUID, at time.Time) error
	ResolveAndDeleteFeedback(ctx context.Context, id, resolvedBy uuid.UUID, at time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type reportedFeedbackRepo struct{ db *gorm.DB }

func NewReportedFeedbackRepo(db *gorm.DB) ReportedFeedbackRepo {
	return &reportedFeedbackRepo{db: db}
}

func (r *reportedFeedbackRepo) Create(ctx context.Context, rf *model.ReportedFeedback) error {
	return r.db.WithContext(ctx).Create(rf).Error
}

func (r *reportedFeedbackRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.ReportedFeedback, error) {
	var rf model.ReportedFeedback
	return &rf, r.db.WithContext(ctx).Preload("Feedback").Where("id = ?", id).First(&rf).Error
}

func (r *reportedFeedbackRepo) List(ctx context.Context) ([]model.ReportedFeedback, error) {
	var items []model.ReportedFeedback
	return items, r.db.WithContext(ctx).Preload("Feedback").Order("created_at DESC").Find(&items).Error
}

// Resolve stamps the resolution fields exactly once. The is_resolved guard in
// the WHERE clause makes a second resolve a no-op at the storage level.
func (r *reportedFeedbackRepo) Resolve(ctx context.Context, id, resolvedBy uuid.UUID, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&model.ReportedFeedback{}).
		Where("id = ? AND is_resolved = false", id).
		Updates(map[string]interface{}{
			"is_resolved":    true,
			"resolved_by_id": resolvedBy,
			"resolved_at":    at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ResolveAndDeleteFeedback marks the report resolved and removes the offending
// feedback in one transaction; the feedback FK cascade then sweeps the report
// row itself along with any sibling reports on the same feedback.
func (r *reportedFeedbackRepo) ResolveAndDeleteFeedback(ctx context.Context, id, resolvedBy uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rf model.ReportedFeedback
		if err := tx.Where("id = ?", id).First(&rf).Error; err != nil {
			return err
		}
		res := tx.Model(&model.ReportedFeedback{}).
			Where("id = ? AND is_resolved = false", id).
			Updates(map[string]interface{}{
				"is_resolved":    true,
				"resolved_by_id": resolvedBy,
				"resolved_at":    at,
			})
		if res.Error != nil {
			return res.Error
		}
		return tx.Delete(&model.Feedback{}, "id = ?", rf.FeedbackID).Error
	})
}

func (r *reportedFeedbackRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ReportedFeedback{}, "id = ?", id).Error
}

type ReportRepo interface {
	Create(ctx context.Context, rp *model.Report) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Report, error)
	List(ctx context.Context) ([]model.Report, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type reportRepo struct{ db *gorm.DB }

func NewReportRepo(db *gorm.DB) ReportRepo {
	return &reportRepo{db: db}
}

func (r *reportRepo) Create(ctx context.Context, rp *model.Report) error {
	return r.db.WithContext(ctx).Create(rp).Error
}

func (r *reportRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	var rp model.Report
	return &rp, r.db.WithContext(ctx).Where("id = ?", id).First(&rp).Error
}

func (r *reportRepo) List(ctx context.Context) ([]model.Report, error) {
	var items []model.Report
	return items, r.db.WithContext(ctx).Order("created_at DESC").Find(&items).Error
}

func (r *reportRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).Model(&model.Report{}).Where("id = ?", id).Update("status", status).Error
}

func (r *reportRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Report{}, "id = ?", id).Error
}
