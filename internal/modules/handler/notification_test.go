package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/void-labs/showcase/internal/modules/model"
	"github.com/void-labs/showcase/internal/modules/service"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MockNotificationService is a mock implementation of NotificationService
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) ListForUser(ctx context.Context, user *model.User) ([]model.Notification, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Notification), args.Error(1)
}

func (m *MockNotificationService) Get(ctx context.Context, actor *model.User, id uuid.UUID) (*model.Notification, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Notification), args.Error(1)
}

func (m *MockNotificationService) Create(ctx context.Context, actor *model.User, userID uuid.UUID, message string, data datatypes.JSONMap) (*model.Notification, error) {
	args := m.Called(ctx, actor, userID, message, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Notification), args.Error(1)
}

func (m *MockNotificationService) SetRead(ctx context.Context, actor *model.User, id uuid.UUID, read bool) (*model.Notification, error) {
	args := m.Called(ctx, actor, id, read)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Notification), args.Error(1)
}

func (m *MockNotificationService) Delete(ctx context.Context, actor *model.User, id uuid.UUID) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *MockNotificationService) Deliver(ctx context.Context, userID uuid.UUID, message string, data datatypes.JSONMap) error {
	args := m.Called(ctx, userID, message, data)
	return args.Error(0)
}

// MockSearchLogService is a mock implementation of SearchLogService
type MockSearchLogService struct {
	mock.Mock
}

func (m *MockSearchLogService) ListForUser(ctx context.Context, user *model.User) ([]model.SearchLog, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SearchLog), args.Error(1)
}

func (m *MockSearchLogService) Get(ctx context.Context, actor *model.User, id uuid.UUID) (*model.SearchLog, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SearchLog), args.Error(1)
}

func (m *MockSearchLogService) Create(ctx context.Context, actor *model.User, query string) (*model.SearchLog, error) {
	args := m.Called(ctx, actor, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SearchLog), args.Error(1)
}

func (m *MockSearchLogService) Delete(ctx context.Context, actor *model.User, id uuid.UUID) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func setupNotificationRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestNotificationHandler_CreateNotification(t *testing.T) {
	caller := &model.User{ID: uuid.New(), Username: "alice", Role: model.RolePresenter}
	admin := &model.User{ID: uuid.New(), Username: "root", Role: model.RoleAdmin}
	otherID := uuid.New()

	tests := []struct {
		name           string
		actor          *model.User
		requestBody    CreateNotificationReq
		setup          func(*MockNotificationService)
		expectedStatus int
	}{
		{
			name:        "omitted user_id targets the caller",
			actor:       caller,
			requestBody: CreateNotificationReq{Message: "hello"},
			setup: func(svc *MockNotificationService) {
				svc.On("Create", mock.Anything, caller, caller.ID, "hello", mock.Anything).
					Return(&model.Notification{ID: uuid.New(), UserID: caller.ID, Message: "hello"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:        "admin targets another user",
			actor:       admin,
			requestBody: CreateNotificationReq{UserID: otherID.String(), Message: "policy update"},
			setup: func(svc *MockNotificationService) {
				svc.On("Create", mock.Anything, admin, otherID, "policy update", mock.Anything).
					Return(&model.Notification{ID: uuid.New(), UserID: otherID, Message: "policy update"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:        "non-admin targeting another user is rejected",
			actor:       caller,
			requestBody: CreateNotificationReq{UserID: otherID.String(), Message: "spam"},
			setup: func(svc *MockNotificationService) {
				svc.On("Create", mock.Anything, caller, otherID, "spam", mock.Anything).
					Return(nil, service.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "missing message",
			actor:          caller,
			requestBody:    CreateNotificationReq{},
			setup:          func(svc *MockNotificationService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid user_id",
			actor:          caller,
			requestBody:    CreateNotificationReq{UserID: "not-a-uuid", Message: "hello"},
			setup:          func(svc *MockNotificationService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockNotificationService{}
			tt.setup(mockService)

			handler := NewNotificationHandler(mockService, &MockSearchLogService{})
			router := setupNotificationRouter()
			router.POST("/notifications", asUser(tt.actor), handler.CreateNotification)

			body, _ := sonic.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/notifications", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestNotificationHandler_GetSearchLog(t *testing.T) {
	logID := uuid.New()
	owner := &model.User{ID: uuid.New(), Username: "alice", Role: model.RolePresenter}
	stranger := &model.User{ID: uuid.New(), Username: "eve", Role: model.RolePresenter}

	tests := []struct {
		name           string
		logIDParam     string
		actor          *model.User
		setup          func(*MockSearchLogService)
		expectedStatus int
	}{
		{
			name:       "owner reads their log",
			logIDParam: logID.String(),
			actor:      owner,
			setup: func(svc *MockSearchLogService) {
				svc.On("Get", mock.Anything, owner, logID).
					Return(&model.SearchLog{ID: logID, UserID: owner.ID, Query: "robot"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:       "stranger is rejected",
			logIDParam: logID.String(),
			actor:      stranger,
			setup: func(svc *MockSearchLogService) {
				svc.On("Get", mock.Anything, stranger, logID).Return(nil, service.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:       "unknown log",
			logIDParam: logID.String(),
			actor:      owner,
			setup: func(svc *MockSearchLogService) {
				svc.On("Get", mock.Anything, owner, logID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid log ID",
			logIDParam:     "not-a-uuid",
			actor:          owner,
			setup:          func(svc *MockSearchLogService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockSearchLogService{}
			tt.setup(mockService)

			handler := NewNotificationHandler(&MockNotificationService{}, mockService)
			router := setupNotificationRouter()
			router.GET("/searchlogs/:searchlog_id", asUser(tt.actor), handler.GetSearchLog)

			req := httptest.NewRequest("GET", "/searchlogs/"+tt.logIDParam, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}
