package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/void-labs/showcase/internal/infra/queue"
	"github.com/void-labs/showcase/internal/modules/model"
	"github.com/void-labs/showcase/internal/modules/repo"
)

type FeedbackService interface {
	List(ctx context.Context, projectID *uuid.UUID) ([]model.Feedback, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Feedback, error)
	Create(ctx context.Context, author *model.User, projectID uuid.UUID, comment string) (*model.Feedback, error)
	Update(ctx context.Context, actor *model.User, id uuid.UUID, comment string) (*model.Feedback, error)
	Delete(ctx context.Context, actor *model.User, id uuid.UUID) error
}

type feedbackService struct {
	feedbacks repo.FeedbackRepo
	projects  repo.ProjectRepo
	events    *queue.Publisher
}

func NewFeedbackService(feedbacks repo.FeedbackRepo, projects repo.ProjectRepo, events *queue.Publisher) FeedbackService {
	return &feedbackService{feedbacks: feedbacks, projects: projects, events: events}
}

func (s *feedbackService) List(ctx context.Context, projectID *uuid.UUID) ([]model.Feedback, error) {
	return s.feedbacks.List(ctx, projectID)
}

func (s *feedbackService) Get(ctx context.Context, id uuid.UUID) (*model.Feedback, error) {
	return s.feedbacks.GetByID(ctx, id)
}

// Create assigns user and project server-side and notifies the project owner.
func (s *feedbackService) Create(ctx context.Context, author *model.User, projectID uuid.UUID, comment string) (*model.Feedback, error) {
	if author == nil {
		return nil, ErrForbidden
	}
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	f := &model.Feedback{ProjectID: projectID, UserID: author.ID, Comment: comment}
	if err := s.feedbacks.Create(ctx, f); err != nil {
		return nil, err
	}

	if p.UserID != author.ID {
		s.events.Publish(ctx, queue.NotificationEvent{
			UserID:  p.UserID,
			Message: fmt.Sprintf("%s left feedback on %q", author.Username, p.Title),
			Data: map[string]interface{}{
				"type":        "feedback",
				"project_id":  p.ID.String(),
				"feedback_id": f.ID.String(),
			},
		})
	}
	return s.feedbacks.GetByID(ctx, f.ID)
}

func (s *feedbackService) Update(ctx context.Context, actor *model.User, id uuid.UUID, comment string) (*model.Feedback, error) {
	f, err := s.feedbacks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canMutate(actor, f.UserID) {
		return nil, ErrForbidden
	}
	if err := s.feedbacks.Update(ctx, id, comment); err != nil {
		return nil, err
	}
	return s.feedbacks.GetByID(ctx, id)
}

func (s *feedbackService) Delete(ctx context.Context, actor *model.User, id uuid.UUID) error {
	f, err := s.feedbacks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !canMutate(actor, f.UserID) {
		return ErrForbidden
	}
	return s.feedbacks.Delete(ctx, id)
}
