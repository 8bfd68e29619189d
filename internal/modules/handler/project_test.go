package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/void-labs/showcase/internal/modules/model"
	"github.com/void-labs/showcase/internal/modules/service"
	"gorm.io/gorm"
)

// MockProjectService is a mock implementation of ProjectService
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) List(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Project, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectService) Get(ctx context.Context, id uuid.UUID, requester *model.User) (*service.ProjectDetail, error) {
	args := m.Called(ctx, id, requester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProjectDetail), args.Error(1)
}

func (m *MockProjectService) Create(ctx context.Context, owner *model.User, in service.CreateProjectInput) (*model.Project, error) {
	args := m.Called(ctx, owner, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) Update(ctx context.Context, actor *model.User, id uuid.UUID, in service.UpdateProjectInput) (*model.Project, error) {
	args := m.Called(ctx, actor, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) Delete(ctx context.Context, actor *model.User, id uuid.UUID) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *MockProjectService) Search(ctx context.Context, query string, requester *model.User) ([]model.Project, error) {
	args := m.Called(ctx, query, requester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectService) Rate(ctx context.Context, actor *model.User, projectID uuid.UUID, value int) (*model.Rating, error) {
	args := m.Called(ctx, actor, projectID, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Rating), args.Error(1)
}

func (m *MockProjectService) Ratings(ctx context.Context, projectID uuid.UUID) ([]model.Rating, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Rating), args.Error(1)
}

// MockFeedbackService is a mock implementation of FeedbackService
type MockFeedbackService struct {
	mock.Mock
}

func (m *MockFeedbackService) List(ctx context.Context, projectID *uuid.UUID) ([]model.Feedback, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Feedback), args.Error(1)
}

func (m *MockFeedbackService) Get(ctx context.Context, id uuid.UUID) (*model.Feedback, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Feedback), args.Error(1)
}

func (m *MockFeedbackService) Create(ctx context.Context, author *model.User, projectID uuid.UUID, comment string) (*model.Feedback, error) {
	args := m.Called(ctx, author, projectID, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Feedback), args.Error(1)
}

func (m *MockFeedbackService) Update(ctx context.Context, actor *model.User, id uuid.UUID, comment string) (*model.Feedback, error) {
	args := m.Called(ctx, actor, id, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Feedback), args.Error(1)
}

func (m *MockFeedbackService) Delete(ctx context.Context, actor *model.User, id uuid.UUID) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func setupProjectRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// asUser simulates the auth middleware attaching the user to the context.
func asUser(user *model.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user != nil {
			c.Set("user", user)
		}
		c.Next()
	}
}

func TestProjectHandler_GetProject(t *testing.T) {
	projectID := uuid.New()
	ownerID := uuid.New()

	tests := []struct {
		name           string
		projectIDParam string
		setup          func(*MockProjectService)
		expectedStatus int
	}{
		{
			name:           "successful retrieval with aggregates",
			projectIDParam: projectID.String(),
			setup: func(svc *MockProjectService) {
				svc.On("Get", mock.Anything, projectID, mock.Anything).Return(&service.ProjectDetail{
					Project: &model.Project{ID: projectID, UserID: ownerID, Title: "Robot Arm"},
					Average: 4.5,
					Count:   2,
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid project ID",
			projectIDParam: "not-a-uuid",
			setup:          func(svc *MockProjectService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "project not found",
			projectIDParam: projectID.String(),
			setup: func(svc *MockProjectService) {
				svc.On("Get", mock.Anything, projectID, mock.Anything).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockProjectService{}
			tt.setup(mockService)

			handler := NewProjectHandler(mockService, &MockFeedbackService{})
			router := setupProjectRouter()
			router.GET("/projects/:project_id", handler.GetProject)

			req := httptest.NewRequest("GET", "/projects/"+tt.projectIDParam, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestProjectHandler_RateProject(t *testing.T) {
	projectID := uuid.New()
	user := &model.User{ID: uuid.New(), Username: "bob", Role: model.RoleReviewer}

	tests := []struct {
		name           string
		requestBody    RateReq
		setup          func(*MockProjectService)
		expectedStatus int
	}{
		{
			name:        "successful rating",
			requestBody: RateReq{Rating: 4},
			setup: func(svc *MockProjectService) {
				svc.On("Rate", mock.Anything, user, projectID, 4).
					Return(&model.Rating{ID: uuid.New(), ProjectID: projectID, UserID: user.ID, Rating: 4}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "rating above bounds",
			requestBody: RateReq{Rating: 6},
			setup: func(svc *MockProjectService) {
				svc.On("Rate", mock.Anything, user, projectID, 6).Return(nil, service.ErrInvalidRating)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing rating value",
			requestBody:    RateReq{},
			setup:          func(svc *MockProjectService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "project not found",
			requestBody: RateReq{Rating: 3},
			setup: func(svc *MockProjectService) {
				svc.On("Rate", mock.Anything, user, projectID, 3).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockProjectService{}
			tt.setup(mockService)

			handler := NewProjectHandler(mockService, &MockFeedbackService{})
			router := setupProjectRouter()
			router.POST("/projects/:project_id/rate", asUser(user), handler.RateProject)

			body, _ := sonic.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/projects/"+projectID.String()+"/rate", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestProjectHandler_SearchProjects(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setup          func(*MockProjectService)
		expectedStatus int
	}{
		{
			name:  "successful search",
			query: "robot",
			setup: func(svc *MockProjectService) {
				svc.On("Search", mock.Anything, "robot", mock.Anything).Return([]model.Project{
					{ID: uuid.New(), Title: "Robot Arm"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "no matches",
			query: "nothing-here",
			setup: func(svc *MockProjectService) {
				svc.On("Search", mock.Anything, "nothing-here", mock.Anything).Return([]model.Project{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing query",
			query:          "",
			setup:          func(svc *MockProjectService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "service layer error",
			query: "robot",
			setup: func(svc *MockProjectService) {
				svc.On("Search", mock.Anything, "robot", mock.Anything).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockProjectService{}
			tt.setup(mockService)

			handler := NewProjectHandler(mockService, &MockFeedbackService{})
			router := setupProjectRouter()
			router.GET("/projects/search", handler.SearchProjects)

			req := httptest.NewRequest("GET", "/projects/search?q="+url.QueryEscape(tt.query), nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestProjectHandler_UpdateProject(t *testing.T) {
	projectID := uuid.New()
	user := &model.User{ID: uuid.New(), Username: "bob", Role: model.RolePresenter}
	newTitle := "Renamed"

	tests := []struct {
		name           string
		requestBody    UpdateProjectReq
		setup          func(*MockProjectService)
		expectedStatus int
	}{
		{
			name:        "owner updates title",
			requestBody: UpdateProjectReq{Title: &newTitle},
			setup: func(svc *MockProjectService) {
				svc.On("Update", mock.Anything, user, projectID, mock.MatchedBy(func(in service.UpdateProjectInput) bool {
					return in.Title != nil && *in.Title == newTitle && in.Category == nil
				})).Return(&model.Project{ID: projectID, UserID: user.ID, Title: newTitle}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "non-owner is rejected",
			requestBody: UpdateProjectReq{Title: &newTitle},
			setup: func(svc *MockProjectService) {
				svc.On("Update", mock.Anything, user, projectID, mock.Anything).Return(nil, service.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockProjectService{}
			tt.setup(mockService)

			handler := NewProjectHandler(mockService, &MockFeedbackService{})
			router := setupProjectRouter()
			router.PUT("/projects/:project_id", asUser(user), handler.UpdateProject)

			body, _ := sonic.Marshal(tt.requestBody)
			req := httptest.NewRequest("PUT", "/projects/"+projectID.String(), bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestProjectHandler_CreateProjectFeedback(t *testing.T) {
	projectID := uuid.New()
	user := &model.User{ID: uuid.New(), Username: "carol", Role: model.RoleReviewer}

	tests := []struct {
		name           string
		requestBody    ProjectFeedbackReq
		setup          func(*MockFeedbackService)
		expectedStatus int
	}{
		{
			name:        "successful feedback",
			requestBody: ProjectFeedbackReq{Comment: "Great demo"},
			setup: func(svc *MockFeedbackService) {
				svc.On("Create", mock.Anything, user, projectID, "Great demo").
					Return(&model.Feedback{ID: uuid.New(), ProjectID: projectID, UserID: user.ID, Comment: "Great demo"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "empty comment",
			requestBody:    ProjectFeedbackReq{},
			setup:          func(svc *MockFeedbackService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "project not found",
			requestBody: ProjectFeedbackReq{Comment: "Great demo"},
			setup: func(svc *MockFeedbackService) {
				svc.On("Create", mock.Anything, user, projectID, "Great demo").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockFeedback := &MockFeedbackService{}
			tt.setup(mockFeedback)

			handler := NewProjectHandler(&MockProjectService{}, mockFeedback)
			router := setupProjectRouter()
			router.POST("/projects/:project_id/feedback", asUser(user), handler.CreateProjectFeedback)

			body, _ := sonic.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/projects/"+projectID.String()+"/feedback", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockFeedback.AssertExpectations(t)
		})
	}
}
