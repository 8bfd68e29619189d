package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/void-labs/showcase/internal/modules/model"
	"gorm.io/gorm"
)

type NotificationRepo interface {
	Create(ctx context.Context, n *model.Notification) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Notification, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Notification, error)
	SetRead(ctx context.Context, id uuid.UUID, read bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type notificationRepo struct{ db *gorm.DB }

func NewNotificationRepo(db *gorm.DB) NotificationRepo {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(ctx context.Context, n *model.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *notificationRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Notification, error) {
	var n model.Notification
	return &n, r.db.WithContext(ctx).Where("id = ?", id).First(&n).Error
}

func (r *notificationRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Notification, error) {
	var items []model.Notification
	return items, r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&items).Error
}

func (r *notificationRepo) SetRead(ctx context.Context, id uuid.UUID, read bool) error {
	return r.db.WithContext(ctx).Model(&model.Notification{}).Where("id = ?", id).Update("is_read", read).Error
}

func (r *notificationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Notification{}, "id = ?", id).Error
}

// SearchLogRepo is append-only reads and writes; logs have no update path.
type SearchLogRepo interface {
	Create(ctx context.Context, sl *model.SearchLog) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.SearchLog, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.SearchLog, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type searchLogRepo struct{ db *gorm.DB }

func NewSearchLogRepo(db *gorm.DB) SearchLogRepo {
	return &searchLogRepo{db: db}
}

func (r *searchLogRepo) Create(ctx context.Context, sl *model.SearchLog) error {
	return r.db.WithContext(ctx).Create(sl).Error
}

func (r *searchLogRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.SearchLog, error) {
	var sl model.SearchLog
	return &sl, r.db.WithContext(ctx).Where("id = ?", id).First(&sl).Error
}

func (r *searchLogRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.SearchLog, error) {
	var items []model.SearchLog
	return items, r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&items).Error
}

func (r *searchLogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.SearchLog{}, "id = ?", id).Error
}
