package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/void-labs/showcase/internal/config"
	"github.com/void-labs/showcase/internal/infra/cache"
	"github.com/void-labs/showcase/internal/modules/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MockProjectRepo is a mock implementation of ProjectRepo
type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) Create(ctx context.Context, p *model.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) List(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Project, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepo) Search(ctx context.Context, query string) ([]model.Project, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjectRepo) AggregateRatings(ctx context.Context, projectID uuid.UUID) (float64, int64, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(float64), args.Get(1).(int64), args.Error(2)
}

// MockRatingRepo is a mock implementation of RatingRepo
type MockRatingRepo struct {
	mock.Mock
}

func (m *MockRatingRepo) Upsert(ctx context.Context, rt *model.Rating) error {
	args := m.Called(ctx, rt)
	return args.Error(0)
}

func (m *MockRatingRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Rating, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Rating), args.Error(1)
}

func (m *MockRatingRepo) GetByProjectUser(ctx context.Context, projectID, userID uuid.UUID) (*model.Rating, error) {
	args := m.Called(ctx, projectID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Rating), args.Error(1)
}

func (m *MockRatingRepo) List(ctx context.Context, projectID *uuid.UUID) ([]model.Rating, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Rating), args.Error(1)
}

func (m *MockRatingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSearchLogRepo is a mock implementation of SearchLogRepo
type MockSearchLogRepo struct {
	mock.Mock
}

func (m *MockSearchLogRepo) Create(ctx context.Context, sl *model.SearchLog) error {
	args := m.Called(ctx, sl)
	return args.Error(0)
}

func (m *MockSearchLogRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.SearchLog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SearchLog), args.Error(1)
}

func (m *MockSearchLogRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.SearchLog, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SearchLog), args.Error(1)
}

func (m *MockSearchLogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// testRatingCache points at an unreachable redis: every Get is a miss and
// Set/Invalidate are silent no-ops, so tests always exercise the SQL fallback.
func testRatingCache() *cache.RatingCache {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	return cache.NewRatingCache(rdb, &config.Config{Redis: config.RedisCfg{RatingTTLSec: 1}})
}

func TestProjectService_Rate(t *testing.T) {
	projectID := uuid.New()
	user := &model.User{ID: uuid.New(), Username: "bob", Role: model.RoleReviewer}

	tests := []struct {
		name        string
		actor       *model.User
		value       int
		setup       func(*MockProjectRepo, *MockRatingRepo)
		expectedErr error
	}{
		{
			name:  "first rating is created",
			actor: user,
			value: 4,
			setup: func(projects *MockProjectRepo, ratings *MockRatingRepo) {
				projects.On("GetByID", mock.Anything, projectID).Return(&model.Project{ID: projectID}, nil)
				ratings.On("Upsert", mock.Anything, mock.MatchedBy(func(rt *model.Rating) bool {
					return rt.ProjectID == projectID && rt.UserID == user.ID && rt.Rating == 4
				})).Return(nil)
				ratings.On("GetByProjectUser", mock.Anything, projectID, user.ID).
					Return(&model.Rating{ProjectID: projectID, UserID: user.ID, Rating: 4}, nil)
			},
		},
		{
			name:  "second rating overwrites",
			actor: user,
			value: 2,
			setup: func(projects *MockProjectRepo, ratings *MockRatingRepo) {
				projects.On("GetByID", mock.Anything, projectID).Return(&model.Project{ID: projectID}, nil)
				ratings.On("Upsert", mock.Anything, mock.Anything).Return(nil)
				ratings.On("GetByProjectUser", mock.Anything, projectID, user.ID).
					Return(&model.Rating{ProjectID: projectID, UserID: user.ID, Rating: 2}, nil)
			},
		},
		{
			name:        "anonymous is rejected",
			actor:       nil,
			value:       4,
			setup:       func(projects *MockProjectRepo, ratings *MockRatingRepo) {},
			expectedErr: ErrForbidden,
		},
		{
			name:        "zero is out of bounds",
			actor:       user,
			value:       0,
			setup:       func(projects *MockProjectRepo, ratings *MockRatingRepo) {},
			expectedErr: ErrInvalidRating,
		},
		{
			name:        "six is out of bounds",
			actor:       user,
			value:       6,
			setup:       func(projects *MockProjectRepo, ratings *MockRatingRepo) {},
			expectedErr: ErrInvalidRating,
		},
		{
			name:  "missing project",
			actor: user,
			value: 3,
			setup: func(projects *MockProjectRepo, ratings *MockRatingRepo) {
				projects.On("GetByID", mock.Anything, projectID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedErr: gorm.ErrRecordNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projects := &MockProjectRepo{}
			ratings := &MockRatingRepo{}
			searchLogs := &MockSearchLogRepo{}
			tt.setup(projects, ratings)

			svc := NewProjectService(projects, ratings, searchLogs, testRatingCache(), zap.NewNop())
			rt, err := svc.Rate(context.Background(), tt.actor, projectID, tt.value)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, rt)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.value, rt.Rating)
			}
			projects.AssertExpectations(t)
			ratings.AssertExpectations(t)
		})
	}
}

func TestProjectService_Get(t *testing.T) {
	projectID := uuid.New()
	requester := &model.User{ID: uuid.New(), Username: "bob", Role: model.RoleReviewer}

	t.Run("aggregates come from the SQL fallback on cache miss", func(t *testing.T) {
		projects := &MockProjectRepo{}
		ratings := &MockRatingRepo{}
		projects.On("GetByID", mock.Anything, projectID).Return(&model.Project{ID: projectID, Title: "Robot Arm"}, nil)
		projects.On("AggregateRatings", mock.Anything, projectID).Return(4.5, int64(2), nil)
		ratings.On("GetByProjectUser", mock.Anything, projectID, requester.ID).
			Return(&model.Rating{ProjectID: projectID, UserID: requester.ID, Rating: 5}, nil)

		svc := NewProjectService(projects, ratings, &MockSearchLogRepo{}, testRatingCache(), zap.NewNop())
		d, err := svc.Get(context.Background(), projectID, requester)

		assert.NoError(t, err)
		assert.Equal(t, 4.5, d.Average)
		assert.Equal(t, int64(2), d.Count)
		if assert.NotNil(t, d.MyRating) {
			assert.Equal(t, 5, *d.MyRating)
		}
		projects.AssertExpectations(t)
		ratings.AssertExpectations(t)
	})

	t.Run("anonymous requester gets no my_rating", func(t *testing.T) {
		projects := &MockProjectRepo{}
		projects.On("GetByID", mock.Anything, projectID).Return(&model.Project{ID: projectID}, nil)
		projects.On("AggregateRatings", mock.Anything, projectID).Return(0.0, int64(0), nil)

		svc := NewProjectService(projects, &MockRatingRepo{}, &MockSearchLogRepo{}, testRatingCache(), zap.NewNop())
		d, err := svc.Get(context.Background(), projectID, nil)

		assert.NoError(t, err)
		assert.Nil(t, d.MyRating)
		assert.Equal(t, 0.0, d.Average)
		projects.AssertExpectations(t)
	})

	t.Run("unrated requester gets no my_rating", func(t *testing.T) {
		projects := &MockProjectRepo{}
		ratings := &MockRatingRepo{}
		projects.On("GetByID", mock.Anything, projectID).Return(&model.Project{ID: projectID}, nil)
		projects.On("AggregateRatings", mock.Anything, projectID).Return(3.0, int64(1), nil)
		ratings.On("GetByProjectUser", mock.Anything, projectID, requester.ID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewProjectService(projects, ratings, &MockSearchLogRepo{}, testRatingCache(), zap.NewNop())
		d, err := svc.Get(context.Background(), projectID, requester)

		assert.NoError(t, err)
		assert.Nil(t, d.MyRating)
		projects.AssertExpectations(t)
		ratings.AssertExpectations(t)
	})
}

func TestProjectService_Search(t *testing.T) {
	requester := &model.User{ID: uuid.New(), Username: "bob", Role: model.RoleReviewer}
	matches := []model.Project{{ID: uuid.New(), Title: "Robot Arm"}}

	t.Run("authenticated search is logged", func(t *testing.T) {
		projects := &MockProjectRepo{}
		searchLogs := &MockSearchLogRepo{}
		projects.On("Search", mock.Anything, "robot").Return(matches, nil)
		searchLogs.On("Create", mock.Anything, mock.MatchedBy(func(sl *model.SearchLog) bool {
			return sl.UserID == requester.ID && sl.Query == "robot"
		})).Return(nil)

		svc := NewProjectService(projects, &MockRatingRepo{}, searchLogs, testRatingCache(), zap.NewNop())
		items, err := svc.Search(context.Background(), "robot", requester)

		assert.NoError(t, err)
		assert.Len(t, items, 1)
		projects.AssertExpectations(t)
		searchLogs.AssertExpectations(t)
	})

	t.Run("log write failure does not fail the search", func(t *testing.T) {
		projects := &MockProjectRepo{}
		searchLogs := &MockSearchLogRepo{}
		projects.On("Search", mock.Anything, "robot").Return(matches, nil)
		searchLogs.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)

		svc := NewProjectService(projects, &MockRatingRepo{}, searchLogs, testRatingCache(), zap.NewNop())
		items, err := svc.Search(context.Background(), "robot", requester)

		assert.NoError(t, err)
		assert.Len(t, items, 1)
		projects.AssertExpectations(t)
		searchLogs.AssertExpectations(t)
	})

	t.Run("anonymous search is not logged", func(t *testing.T) {
		projects := &MockProjectRepo{}
		searchLogs := &MockSearchLogRepo{}
		projects.On("Search", mock.Anything, "robot").Return(matches, nil)

		svc := NewProjectService(projects, &MockRatingRepo{}, searchLogs, testRatingCache(), zap.NewNop())
		items, err := svc.Search(context.Background(), "robot", nil)

		assert.NoError(t, err)
		assert.Len(t, items, 1)
		projects.AssertExpectations(t)
		searchLogs.AssertExpectations(t)
		searchLogs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestProjectService_Update(t *testing.T) {
	projectID := uuid.New()
	owner := &model.User{ID: uuid.New(), Username: "alice", Role: model.RolePresenter}
	stranger := &model.User{ID: uuid.New(), Username: "eve", Role: model.RolePresenter}
	admin := &model.User{ID: uuid.New(), Username: "root", Role: model.RoleAdmin}
	newTitle := "Renamed"

	tests := []struct {
		name        string
		actor       *model.User
		setup       func(*MockProjectRepo)
		expectedErr error
	}{
		{
			name:  "owner may update",
			actor: owner,
			setup: func(projects *MockProjectRepo) {
				projects.On("GetByID", mock.Anything, projectID).
					Return(&model.Project{ID: projectID, UserID: owner.ID}, nil).Twice()
				projects.On("Update", mock.Anything, projectID, map[string]interface{}{"title": newTitle}).Return(nil)
			},
		},
		{
			name:  "admin may update",
			actor: admin,
			setup: func(projects *MockProjectRepo) {
				projects.On("GetByID", mock.Anything, projectID).
					Return(&model.Project{ID: projectID, UserID: owner.ID}, nil).Twice()
				projects.On("Update", mock.Anything, projectID, mock.Anything).Return(nil)
			},
		},
		{
			name:  "stranger is rejected",
			actor: stranger,
			setup: func(projects *MockProjectRepo) {
				projects.On("GetByID", mock.Anything, projectID).
					Return(&model.Project{ID: projectID, UserID: owner.ID}, nil)
			},
			expectedErr: ErrForbidden,
		},
		{
			name:  "anonymous is rejected",
			actor: nil,
			setup: func(projects *MockProjectRepo) {
				projects.On("GetByID", mock.Anything, projectID).
					Return(&model.Project{ID: projectID, UserID: owner.ID}, nil)
			},
			expectedErr: ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projects := &MockProjectRepo{}
			tt.setup(projects)

			svc := NewProjectService(projects, &MockRatingRepo{}, &MockSearchLogRepo{}, testRatingCache(), zap.NewNop())
			p, err := svc.Update(context.Background(), tt.actor, projectID, UpdateProjectInput{Title: &newTitle})

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, p)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, p)
			}
			projects.AssertExpectations(t)
		})
	}
}
