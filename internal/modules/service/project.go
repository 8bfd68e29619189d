package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/void-labs/showcase/internal/infra/cache"
	"github.com/void-labs/showcase/internal/modules/model"
	"github.com/void-labs/showcase/internal/modules/repo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CreateProjectInput struct {
	Title       string
	Description string
	Category    string
	UploadPath  string
	VideoURL    string
	Thumbnail   string
}

type UpdateProjectInput struct {
	Title       *string
	Description *string
	Category    *string
	UploadPath  *string
	VideoURL    *string
	Thumbnail   *string
}

// ProjectDetail bundles a project with its cached rating aggregates and the
// requester's own rating (nil when anonymous or unrated).
type ProjectDetail struct {
	Project  *model.Project
	Average  float64
	Count    int64
	MyRating *int
}

type ProjectService interface {
	List(ctx context.Context) ([]model.Project, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Project, error)
	Get(ctx context.Context, id uuid.UUID, requester *model.User) (*ProjectDetail, error)
	Create(ctx context.Context, owner *model.User, in CreateProjectInput) (*model.Project, error)
	Update(ctx context.Context, actor *model.User, id uuid.UUID, in UpdateProjectInput) (*model.Project, error)
	Delete(ctx context.Context, actor *model.User, id uuid.UUID) error
	Search(ctx context.Context, query string, requester *model.User) ([]model.Project, error)
	Rate(ctx context.Context, actor *model.User, projectID uuid.UUID, value int) (*model.Rating, error)
	Ratings(ctx context.Context, projectID uuid.UUID) ([]model.Rating, error)
}

type projectService struct {
	projects   repo.ProjectRepo
	ratings    repo.RatingRepo
	searchLogs repo.SearchLogRepo
	agg        *cache.RatingCache
	log        *zap.Logger
}

func NewProjectService(projects repo.ProjectRepo, ratings repo.RatingRepo, searchLogs repo.SearchLogRepo, agg *cache.RatingCache, log *zap.Logger) ProjectService {
	return &projectService{projects: projects, ratings: ratings, searchLogs: searchLogs, agg: agg, log: log}
}

func (s *projectService) List(ctx context.Context) ([]model.Project, error) {
	return s.projects.List(ctx)
}

func (s *projectService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Project, error) {
	return s.projects.ListByUser(ctx, userID)
}

func (s *projectService) Get(ctx context.Context, id uuid.UUID, requester *model.User) (*ProjectDetail, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	d := &ProjectDetail{Project: p}

	if cached, ok := s.agg.Get(ctx, id); ok {
		d.Average, d.Count = cached.Average, cached.Count
	} else {
		avg, count, err := s.projects.AggregateRatings(ctx, id)
		if err != nil {
			return nil, err
		}
		d.Average, d.Count = avg, count
		s.agg.Set(ctx, id, cache.RatingAggregate{Average: avg, Count: count})
	}

	if requester != nil {
		if rt, err := s.ratings.GetByProjectUser(ctx, id, requester.ID); err == nil {
			v := rt.Rating
			d.MyRating = &v
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	return d, nil
}

// Create takes the owner from the authenticated session, never from input.
func (s *projectService) Create(ctx context.Context, owner *model.User, in CreateProjectInput) (*model.Project, error) {
	if owner == nil {
		return nil, ErrForbidden
	}
	if !model.ValidCategory(in.Category) {
		return nil, ErrInvalidCategory
	}
	p := &model.Project{
		UserID:      owner.ID,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		UploadPath:  in.UploadPath,
		VideoURL:    in.VideoURL,
		Thumbnail:   in.Thumbnail,
	}
	if err := s.projects.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *projectService) Update(ctx context.Context, actor *model.User, id uuid.UUID, in UpdateProjectInput) (*model.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canMutate(actor, p.UserID) {
		return nil, ErrForbidden
	}

	fields := map[string]interface{}{}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Category != nil {
		if !model.ValidCategory(*in.Category) {
			return nil, ErrInvalidCategory
		}
		fields["category"] = *in.Category
	}
	if in.UploadPath != nil {
		fields["upload_path"] = *in.UploadPath
	}
	if in.VideoURL != nil {
		fields["video_url"] = *in.VideoURL
	}
	if in.Thumbnail != nil {
		fields["thumbnail"] = *in.Thumbnail
	}
	if len(fields) > 0 {
		if err := s.projects.Update(ctx, id, fields); err != nil {
			return nil, err
		}
	}
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) Delete(ctx context.Context, actor *model.User, id uuid.UUID) error {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !canMutate(actor, p.UserID) {
		return ErrForbidden
	}
	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}
	s.agg.Invalidate(ctx, id)
	return nil
}

// Search matches the substring against title or description and, for
// authenticated callers, appends a search log row. Logging failures do not
// fail the search.
func (s *projectService) Search(ctx context.Context, query string, requester *model.User) ([]model.Project, error) {
	items, err := s.projects.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if requester != nil {
		if err := s.searchLogs.Create(ctx, &model.SearchLog{UserID: requester.ID, Query: query}); err != nil {
			s.log.Warn("search log write failed", zap.String("user_id", requester.ID.String()), zap.Error(err))
		}
	}
	return items, nil
}

// Rate validates the bounds and upserts: a second submission by the same user
// overwrites the first. The cached aggregate is invalidated on every write.
func (s *projectService) Rate(ctx context.Context, actor *model.User, projectID uuid.UUID, value int) (*model.Rating, error) {
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

func (s *projectService) Ratings(ctx context.Context, projectID uuid.UUID) ([]model.Rating, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.ratings.List(ctx, &projectID)
}
