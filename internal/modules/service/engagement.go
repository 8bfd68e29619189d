package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/void-labs/showcase/internal/infra/queue"
	"github.com/void-labs/showcase/internal/modules/model"
	"github.com/void-labs/showcase/internal/modules/repo"
)

// ReactionService and CollaborationService carry the generic CRUD groups.
// Writes require ownership or admin, same rule as everywhere else; the
// permissive endpoints of the first iteration are deliberately gone.

type ReactionService interface {
	List(ctx context.Context, projectID *uuid.UUID) ([]model.Reaction, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Reaction, error)
	Create(ctx context.Context, actor *model.User, projectID uuid.UUID, reactionType string) (*model.Reaction, error)
	Update(ctx context.Context, actor *model.User, id uuid.UUID, reactionType string) (*model.Reaction, error)
	Delete(ctx context.Context, actor *model.User, id uuid.UUID) error
}

type reactionService struct {
	reactions repo.ReactionRepo
	projects  repo.ProjectRepo
}

func NewReactionService(reactions repo.ReactionRepo, projects repo.ProjectRepo) ReactionService {
	return &reactionService{reactions: reactions, projects: projects}
}

func (s *reactionService) List(ctx context.Context, projectID *uuid.UUID) ([]model.Reaction, error) {
	return s.reactions.List(ctx, projectID)
}

func (s *reactionService) Get(ctx context.Context, id uuid.UUID) (*model.Reaction, error) {
	return s.reactions.GetByID(ctx, id)
}

func (s *reactionService) Create(ctx context.Context, actor *model.User, projectID uuid.UUID, reactionType string) (*model.Reaction, error) {
	if actor == nil {
		return nil, ErrForbidden
	}
	if !model.ValidReaction(reactionType) {
		return nil, ErrInvalidReaction
	}
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	re := &model.Reaction{ProjectID: projectID, UserID: actor.ID, ReactionType: reactionType}
	if err := s.reactions.Create(ctx, re); err != nil {
		return nil, err
	}
	return re, nil
}

func (s *reactionService) Update(ctx context.Context, actor *model.User, id uuid.UUID, reactionType string) (*model.Reaction, error) {
	re, err := s.reactions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canMutate(actor, re.UserID) {
		return nil, ErrForbidden
	}
	if !model.ValidReaction(reactionType) {
		return nil, ErrInvalidReaction
	}
	if err := s.reactions.Update(ctx, id, reactionType); err != nil {
		return nil, err
	}
	return s.reactions.GetByID(ctx, id)
}

func (s *reactionService) Delete(ctx context.Context, actor *model.User, id uuid.UUID) error {
	re, err := s.reactions.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !canMutate(actor, re.UserID) {
		return ErrForbidden
	}
	return s.reactions.Delete(ctx, id)
}

type CollaborationService interface {
	List(ctx context.Context, projectID *uuid.UUID) ([]model.Collaboration, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Collaboration, error)
	Create(ctx context.Context, actor *model.User, projectID uuid.UUID) (*model.Collaboration, error)
	UpdateStatus(ctx context.Context, actor *model.User, id uuid.UUID, status string) (*model.Collaboration, error)
	Delete(ctx context.Context, actor *model.User, id uuid.UUID) error
}

type collaborationService struct {
	collaborations repo.CollaborationRepo
	projects       repo.ProjectRepo
	events         *queue.Publisher
}

func NewCollaborationService(collaborations repo.CollaborationRepo, projects repo.ProjectRepo, events *queue.Publisher) CollaborationService {
	return &collaborationService{collaborations: collaborations, projects: projects, events: events}
}

func (s *collaborationService) List(ctx context.Context, projectID *uuid.UUID) ([]model.Collaboration, error) {
	return s.collaborations.List(ctx, projectID)
}

func (s *collaborationService) Get(ctx context.Context, id uuid.UUID) (*model.Collaboration, error) {
	return s.collaborations.GetByID(ctx, id)
}

// Create opens a pending request and notifies the project owner.
func (s *collaborationService) Create(ctx context.Context, actor *model.User, projectID uuid.UUID) (*model.Collaboration, error) {
	if actor == nil {
		return nil, ErrForbidden
	}
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	co := &model.Collaboration{ProjectID: projectID, UserID: actor.ID, Status: model.CollaborationPending}
	if err := s.collaborations.Create(ctx, co); err != nil {
		return nil, err
	}
	if p.UserID != actor.ID {
		s.events.Publish(ctx, queue.NotificationEvent{
			UserID:  p.UserID,
			Message: fmt.Sprintf("%s wants to collaborate on %q", actor.Username, p.Title),
			Data: map[string]interface{}{
				"type":             "collaboration",
				"project_id":       p.ID.String(),
				"collaboration_id": co.ID.String(),
			},
		})
	}
	return co, nil
}

// UpdateStatus is the project owner's accept/reject; the requesting user may
// not flip their own request.
func (s *collaborationService) UpdateStatus(ctx context.Context, actor *model.User, id uuid.UUID, status string) (*model.Collaboration, error) {
	co, err := s.collaborations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p, err := s.projects.GetByID(ctx, co.ProjectID)
	if err != nil {
		return nil, err
	}
	if !canMutate(actor, p.UserID) {
		return nil, ErrForbidden
	}
	if !model.ValidCollaborationStatus(status) {
		return nil, ErrInvalidStatus
	}
	if err := s.collaborations.Update(ctx, id, status); err != nil {
		return nil, err
	}
	return s.collaborations.GetByID(ctx, id)
}

func (s *collaborationService) Delete(ctx context.Context, actor *model.User, id uuid.UUID) error {
	co, err := s.collaborations.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !canMutate(actor, co.UserID) {
		return ErrForbidden
	}
	return s.collaborations.Delete(ctx, id)
}
