package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/void-labs/showcase/internal/modules/model"
	"github.com/void-labs/showcase/internal/modules/repo"
	"gorm.io/datatypes"
)

type NotificationService interface {
	ListForUser(ctx context.Context, user *model.User) ([]model.Notification, error)
	Get(ctx context.Context, actor *model.User, id uuid.UUID) (*model.Notification, error)
	Create(ctx context.Context, actor *model.User, userID uuid.UUID, message string, data datatypes.JSONMap) (*model.Notification, error)
	SetRead(ctx context.Context, actor *model.User, id uuid.UUID, read bool) (*model.Notification, error)
	Delete(ctx context.Context, actor *model.User, id uuid.UUID) error

	// Deliver implements queue.NotificationSink; the queue consumer calls it
	// for every event drained from the notification queue.
	Deliver(ctx context.Context, userID uuid.UUID, message string, data datatypes.JSONMap) error
}

type notificationService struct {
	notifications repo.NotificationRepo
}

func NewNotificationService(notifications repo.NotificationRepo) NotificationService {
	return &notificationService{notifications: notifications}
}

func (s *notificationService) ListForUser(ctx context.Context, user *model.User) ([]model.Notification, error) {
	if user == nil {
		return nil, ErrForbidden
	}
	return s.notifications.ListByUser(ctx, user.ID)
}

func (s *notificationService) Get(ctx context.Context, actor *model.User, id uuid.UUID) (*model.Notification, error) {
	n, err := s.notifications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canMutate(actor, n.UserID) {
		return nil, ErrForbidden
	}
	return n, nil
}

// Create lets a user write a notification to their own feed; targeting another
// user requires the admin role. System-generated notifications arrive through
// Deliver instead.
func (s *notificationService) Create(ctx context.Context, actor *model.User, userID uuid.UUID, message string, data datatypes.JSONMap) (*model.Notification, error) {
	if actor == nil {
		return nil, ErrForbidden
	}
	if userID != actor.ID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	n := &model.Notification{UserID: userID, Message: message, Data: data}
	if err := s.notifications.Create(ctx, n); err != nil {
		return nil, err
	}
	return s.notifications.GetByID(ctx, n.ID)
}

func (s *notificationService) SetRead(ctx context.Context, actor *model.User, id uuid.UUID, read bool) (*model.Notification, error) {
	n, err := s.notifications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canMutate(actor, n.UserID) {
		return nil, ErrForbidden
	}
	if err := s.notifications.SetRead(ctx, id, read); err != nil {
		return nil, err
	}
	return s.notifications.GetByID(ctx, id)
}

func (s *notificationService) Delete(ctx context.Context, actor *model.User, id uuid.UUID) error {
	n, err := s.notifications.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !canMutate(actor, n.UserID) {
		return ErrForbidden
	}
	return s.notifications.Delete(ctx, id)
}

func (s *notificationService) Deliver(ctx context.Context, userID uuid.UUID, message string, data datatypes.JSONMap) error {
	return s.notifications.Create(ctx, &model.Notification{
		UserID:  userID,
		Message: message,
		Data:    data,
	})
}
