package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/void-labs/showcase/internal/infra/cache"
	"github.com/void-labs/showcase/internal/modules/model"
	"github.com/void-labs/showcase/internal/modules/repo"
)

// RatingService backs the generic /ratings/ group. Creation goes through the
// same bounded upsert as the project rate action, so both entry points share
// the one-rating-per-user invariant.
type RatingService interface {
	List(ctx context.Context, projectID *uuid.UUID) ([]model.Rating, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Rating, error)
	Create(ctx context.Context, actor *model.User, projectID uuid.UUID, value int) (*model.Rating, error)
	Update(ctx context.Context, actor *model.User, id uuid.UUID, value int) (*model.Rating, error)
	Delete(ctx context.Context, actor *model.User, id uuid.UUID) error
}

type ratingService struct {
	ratings  repo.RatingRepo
	projects repo.ProjectRepo
	agg      *cache.RatingCache
}

func NewRatingService(ratings repo.RatingRepo, projects repo.ProjectRepo, agg *cache.RatingCache) RatingService {
	return &ratingService{ratings: ratings, projects: projects, agg: agg}
}

func (s *ratingService) List(ctx context.Context, projectID *uuid.UUID) ([]model.Rating, error) {
	return s.ratings.List(ctx, projectID)
}

func (s *ratingService) Get(ctx context.Context, id uuid.UUID) (*model.Rating, error) {
	return s.ratings.GetByID(ctx, id)
}

func (s *ratingService) Create(ctx context.Context, actor *model.User, projectID uuid.UUID, value int) (*model.Rating, error) {
	if actor == nil {
		return nil, ErrForbidden
	}
	if value < model.RatingMin || value > model.RatingMax {
		return nil, ErrInvalidRating
	}
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	rt := &model.Rating{ProjectID: projectID, UserID: actor.ID, Rating: value}
	if err := s.ratings.Upsert(ctx, rt); err != nil {
		return nil, err
	}
	s.agg.Invalidate(ctx, projectID)
	return s.ratings.GetByProjectUser(ctx, projectID, actor.ID)
}

// Update rewrites an existing rating's value through the same upsert, keyed on
// the row's own project and user.
func (s *ratingService) Update(ctx context.Context, actor *model.User, id uuid.UUID, value int) (*model.Rating, error) {
	rt, err := s.ratings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canMutate(actor, rt.UserID) {
		return nil, ErrForbidden
	}
	if value < model.RatingMin || value > model.RatingMax {
		return nil, ErrInvalidRating
	}
	if err := s.ratings.Upsert(ctx, &model.Rating{ProjectID: rt.ProjectID, UserID: rt.UserID, Rating: value}); err != nil {
		return nil, err
	}
	s.agg.Invalidate(ctx, rt.ProjectID)
	return s.ratings.GetByProjectUser(ctx, rt.ProjectID, rt.UserID)
}

func (s *ratingService) Delete(ctx context.Context, actor *model.User, id uuid.UUID) error {
	rt, err := s.ratings.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !canMutate(actor, rt.UserID) {
		return ErrForbidden
	}
	if err := s.ratings.Delete(ctx, id); err != nil {
		return err
	}
	s.agg.Invalidate(ctx, rt.ProjectID)
	return nil
}
