package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/void-labs/showcase/internal/infra/queue"
	"github.com/void-labs/showcase/internal/modules/model"
	"github.com/void-labs/showcase/internal/modules/repo"
)

type ModerationService interface {
	ListReportedFeedback(ctx context.Context) ([]model.ReportedFeedback, error)
	GetReportedFeedback(ctx context.Context, id uuid.UUID) (*model.ReportedFeedback, error)
	ReportFeedback(ctx context.Context, reporter *model.User, feedbackID uuid.UUID, reason string) (*model.ReportedFeedback, error)
	Resolve(ctx context.Context, actor *model.User, id uuid.UUID) (*model.ReportedFeedback, error)
	DeleteFeedback(ctx context.Context, actor *model.User, id uuid.UUID) error
	DeleteReportedFeedback(ctx context.Context, actor *model.User, id uuid.UUID) error

	ListReports(ctx context.Context) ([]model.Report, error)
	GetReport(ctx context.Context, id uuid.UUID) (*model.Report, error)
	CreateReport(ctx context.Context, reporter *model.User, projectID uuid.UUID, feedbackID *uuid.UUID, reason string) (*model.Report, error)
	UpdateReportStatus(ctx context.Context, actor *model.User, id uuid.UUID, status string) (*model.Report, error)
	DeleteReport(ctx context.Context, actor *model.User, id uuid.UUID) error
}

type moderationService struct {
	reported  repo.ReportedFeedbackRepo
	reports   repo.ReportRepo
	feedbacks repo.FeedbackRepo
	projects  repo.ProjectRepo
	events    *queue.Publisher
}

func NewModerationService(
	reported repo.ReportedFeedbackRepo,
	reports repo.ReportRepo,
	feedbacks repo.FeedbackRepo,
	projects repo.ProjectRepo,
	events *queue.Publisher,
) ModerationService {
	return &moderationService{
		reported:  reported,
		reports:   reports,
		feedbacks: feedbacks,
		projects:  projects,
		events:    events,
	}
}

func (s *moderationService) ListReportedFeedback(ctx context.Context) ([]model.ReportedFeedback, error) {
	return s.reported.List(ctx)
}

func (s *moderationService) GetReportedFeedback(ctx context.Context, id uuid.UUID) (*model.ReportedFeedback, error) {
	return s.reported.GetByID(ctx, id)
}

func (s *moderationService) ReportFeedback(ctx context.Context, reporter *model.User, feedbackID uuid.UUID, reason string) (*model.ReportedFeedback, error) {
	if reporter == nil {
		return nil, ErrForbidden
	}
	if _, err := s.feedbacks.GetByID(ctx, feedbackID); err != nil {
		return nil, err
	}
	rf := &model.ReportedFeedback{FeedbackID: feedbackID, ReporterID: reporter.ID, Reason: reason}
	if err := s.reported.Create(ctx, rf); err != nil {
		return nil, err
	}
	return rf, nil
}

// Resolve is the single open -> resolved transition. Admin only, irreversible,
// resolution fields stamped once. The reporter is notified.
func (s *moderationService) Resolve(ctx context.Context, actor *model.User, id uuid.UUID) (*model.ReportedFeedback, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	rf, err := s.reported.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rf.IsResolved {
		return nil, ErrAlreadyResolved
	}
	if err := s.reported.Resolve(ctx, id, actor.ID, time.Now().UTC()); err != nil {
		return nil, err
	}

	s.events.Publish(ctx, queue.NotificationEvent{
		UserID:  rf.ReporterID,
		Message: "Your feedback report has been resolved.",
		Data: map[string]interface{}{
			"type":      "report_resolved",
			"report_id": rf.ID.String(),
		},
	})
	return s.reported.GetByID(ctx, id)
}

// DeleteFeedback resolves the report and deletes the offending feedback in one
// transaction. The feedback FK cascade removes the report row itself, so there
// is nothing left to return.
func (s *moderationService) DeleteFeedback(ctx context.Context, actor *model.User, id uuid.UUID) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	rf, err := s.reported.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rf.IsResolved {
		return ErrAlreadyResolved
	}
	if err := s.reported.ResolveAndDeleteFeedback(ctx, id, actor.ID, time.Now().UTC()); err != nil {
		return err
	}

	s.events.Publish(ctx, queue.NotificationEvent{
		UserID:  rf.ReporterID,
		Message: "Your feedback report has been resolved and the feedback removed.",
		Data: map[string]interface{}{
			"type":      "report_resolved",
			"report_id": rf.ID.String(),
		},
	})
	return nil
}

func (s *moderationService) DeleteReportedFeedback(ctx context.Context, actor *model.User, id uuid.UUID) error {
	rf, err := s.reported.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !canMutate(actor, rf.ReporterID) {
		return ErrForbidden
	}
	return s.reported.Delete(ctx, id)
}

func (s *moderationService) ListReports(ctx context.Context) ([]model.Report, error) {
	return s.reports.List(ctx)
}

func (s *moderationService) GetReport(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	return s.reports.GetByID(ctx, id)
}

func (s *moderationService) CreateReport(ctx context.Context, reporter *model.User, projectID uuid.UUID, feedbackID *uuid.UUID, reason string) (*model.Report, error) {
	if reporter == nil {
		return nil, ErrForbidden
	}
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	if feedbackID != nil {
		if _, err := s.feedbacks.GetByID(ctx, *feedbackID); err != nil {
			return nil, err
		}
	}
	rp := &model.Report{
		ReportedByID: reporter.ID,
		ProjectID:    projectID,
		FeedbackID:   feedbackID,
		Reason:       reason,
		Status:       model.ReportPending,
	}
	if err := s.reports.Create(ctx, rp); err != nil {
		return nil, err
	}
	return rp, nil
}

func (s *moderationService) UpdateReportStatus(ctx context.Context, actor *model.User, id uuid.UUID, status string) (*model.Report, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if !model.ValidReportStatus(status) {
		return nil, ErrInvalidStatus
	}
	if _, err := s.reports.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.reports.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.reports.GetByID(ctx, id)
}

func (s *moderationService) DeleteReport(ctx context.Context, actor *model.User, id uuid.UUID) error {
	rp, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !canMutate(actor, rp.ReportedByID) {
		return ErrForbidden
	}
	return s.reports.Delete(ctx, id)
}
