package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/void-labs/showcase/internal/modules/model"
	"github.com/void-labs/showcase/internal/modules/repo"
)

type SearchLogService interface {
	ListForUser(ctx context.Context, user *model.User) ([]model.SearchLog, error)
	Get(ctx context.Context, actor *model.User, id uuid.UUID) (*model.SearchLog, error)
	Create(ctx context.Context, actor *model.User, query string) (*model.SearchLog, error)
	Delete(ctx context.Context, actor *model.User, id uuid.UUID) error
}

type searchLogService struct {
	logs repo.SearchLogRepo
}

func NewSearchLogService(logs repo.SearchLogRepo) SearchLogService {
	return &searchLogService{logs: logs}
}

func (s *searchLogService) ListForUser(ctx context.Context, user *model.User) ([]model.SearchLog, error) {
	if user == nil {
		return nil, ErrForbidden
	}
	return s.logs.ListByUser(ctx, user.ID)
}

func (s *searchLogService) Get(ctx context.Context, actor *model.User, id uuid.UUID) (*model.SearchLog, error) {
	sl, err := s.logs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canMutate(actor, sl.UserID) {
		return nil, ErrForbidden
	}
	return sl, nil
}

func (s *searchLogService) Create(ctx context.Context, actor *model.User, query string) (*model.SearchLog, error) {
	if actor == nil {
		return nil, ErrForbidden
	}
	sl := &model.SearchLog{UserID: actor.ID, Query: query}
	if err := s.logs.Create(ctx, sl); err != nil {
		return nil, err
	}
	return sl, nil
}

func (s *searchLogService) Delete(ctx context.Context, actor *model.User, id uuid.UUID) error {
	sl, err := s.logs.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !canMutate(actor, sl.UserID) {
		return ErrForbidden
	}
	return s.logs.Delete(ctx, id)
}
