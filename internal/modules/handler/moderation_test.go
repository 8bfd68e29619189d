package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/void-labs/showcase/internal/modules/model"
	"github.com/void-labs/showcase/internal/modules/service"
	"gorm.io/gorm"
)

// MockModerationService is a mock implementation of ModerationService
type MockModerationService struct {
	mock.Mock
}

func (m *MockModerationService) ListReportedFeedback(ctx context.Context) ([]model.ReportedFeedback, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ReportedFeedback), args.Error(1)
}

func (m *MockModerationService) GetReportedFeedback(ctx context.Context, id uuid.UUID) (*model.ReportedFeedback, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ReportedFeedback), args.Error(1)
}

func (m *MockModerationService) ReportFeedback(ctx context.Context, reporter *model.User, feedbackID uuid.UUID, reason string) (*model.ReportedFeedback, error) {
	args := m.Called(ctx, reporter, feedbackID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ReportedFeedback), args.Error(1)
}

func (m *MockModerationService) Resolve(ctx context.Context, actor *model.User, id uuid.UUID) (*model.ReportedFeedback, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ReportedFeedback), args.Error(1)
}

func (m *MockModerationService) DeleteFeedback(ctx context.Context, actor *model.User, id uuid.UUID) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *MockModerationService) DeleteReportedFeedback(ctx context.Context, actor *model.User, id uuid.UUID) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *MockModerationService) ListReports(ctx context.Context) ([]model.Report, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Report), args.Error(1)
}

func (m *MockModerationService) GetReport(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Report), args.Error(1)
}

func (m *MockModerationService) CreateReport(ctx context.Context, reporter *model.User, projectID uuid.UUID, feedbackID *uuid.UUID, reason string) (*model.Report, error) {
	args := m.Called(ctx, reporter, projectID, feedbackID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Report), args.Error(1)
}

func (m *MockModerationService) UpdateReportStatus(ctx context.Context, actor *model.User, id uuid.UUID, status string) (*model.Report, error) {
	args := m.Called(ctx, actor, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Report), args.Error(1)
}

func (m *MockModerationService) DeleteReport(ctx context.Context, actor *model.User, id uuid.UUID) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func setupModerationRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestModerationHandler_ResolveReportedFeedback(t *testing.T) {
	reportID := uuid.New()
	admin := &model.User{ID: uuid.New(), Username: "admin", Role: model.RoleAdmin}
	now := time.Now().UTC()

	tests := []struct {
		name           string
		reportIDParam  string
		actor          *model.User
		setup          func(*MockModerationService)
		expectedStatus int
	}{
		{
			name:          "successful resolution",
			reportIDParam: reportID.String(),
			actor:         admin,
			setup: func(svc *MockModerationService) {
				svc.On("Resolve", mock.Anything, admin, reportID).Return(&model.ReportedFeedback{
					ID:           reportID,
					IsResolved:   true,
					ResolvedByID: &admin.ID,
					ResolvedAt:   &now,
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:          "already resolved",
			reportIDParam: reportID.String(),
			actor:         admin,
			setup: func(svc *MockModerationService) {
				svc.On("Resolve", mock.Anything, admin, reportID).Return(nil, service.ErrAlreadyResolved)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:          "report not found",
			reportIDParam: reportID.String(),
			actor:         admin,
			setup: func(svc *MockModerationService) {
				svc.On("Resolve", mock.Anything, admin, reportID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid report ID",
			reportIDParam:  "not-a-uuid",
			actor:          admin,
			setup:          func(svc *MockModerationService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockModerationService{}
			tt.setup(mockService)

			handler := NewModerationHandler(mockService)
			router := setupModerationRouter()
			router.POST("/reported-feedback/:report_id/resolve", asUser(tt.actor), handler.ResolveReportedFeedback)

			req := httptest.NewRequest("POST", "/reported-feedback/"+tt.reportIDParam+"/resolve", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestModerationHandler_DeleteReportedFeedbackFeedback(t *testing.T) {
	reportID := uuid.New()
	admin := &model.User{ID: uuid.New(), Username: "admin", Role: model.RoleAdmin}
	reviewer := &model.User{ID: uuid.New(), Username: "bob", Role: model.RoleReviewer}

	tests := []struct {
		name           string
		actor          *model.User
		setup          func(*MockModerationService)
		expectedStatus int
	}{
		{
			name:  "admin resolves and deletes",
			actor: admin,
			setup: func(svc *MockModerationService) {
				svc.On("DeleteFeedback", mock.Anything, admin, reportID).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "non-admin is rejected",
			actor: reviewer,
			setup: func(svc *MockModerationService) {
				svc.On("DeleteFeedback", mock.Anything, reviewer, reportID).Return(service.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:  "already resolved",
			actor: admin,
			setup: func(svc *MockModerationService) {
				svc.On("DeleteFeedback", mock.Anything, admin, reportID).Return(service.ErrAlreadyResolved)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockModerationService{}
			tt.setup(mockService)

			handler := NewModerationHandler(mockService)
			router := setupModerationRouter()
			router.POST("/reported-feedback/:report_id/delete_feedback", asUser(tt.actor), handler.DeleteReportedFeedbackFeedback)

			req := httptest.NewRequest("POST", "/reported-feedback/"+reportID.String()+"/delete_feedback", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}
