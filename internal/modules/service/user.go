package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/void-labs/showcase/internal/modules/model"
	"github.com/void-labs/showcase/internal/modules/repo"
)

type UpdateUserInput struct {
	Email          *string
	ProfilePicture *string
	Institution    *string
}

type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	Update(ctx context.Context, actor *model.User, id uuid.UUID, in UpdateUserInput) (*model.User, error)
	Delete(ctx context.Context, actor *model.User, id uuid.UUID) error
}

type userService struct {
	users repo.UserRepo
}

func NewUserService(users repo.UserRepo) UserService {
	return &userService{users: users}
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

func (s *userService) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *userService) Update(ctx context.Context, actor *model.User, id uuid.UUID, in UpdateUserInput) (*model.User, error) {
	if !canMutate(actor, id) {
		return nil, ErrForbidden
	}
	if _, err := s.users.GetByID(ctx, id); err != nil {
		return nil, err
	}
	fields := map[string]interface{}{}
	if in.Email != nil {
		fields["email"] = *in.Email
	}
	if in.ProfilePicture != nil {
		fields["profile_picture"] = *in.ProfilePicture
	}
	if in.Institution != nil {
		fields["institution"] = *in.Institution
	}
	if len(fields) > 0 {
		if err := s.users.Update(ctx, id, fields); err != nil {
			return nil, err
		}
	}
	return s.users.GetByID(ctx, id)
}

// Delete cascades to every row the user owns via the FK constraints.
func (s *userService) Delete(ctx context.Context, actor *model.User, id uuid.UUID) error {
	if !canMutate(actor, id) {
		return ErrForbidden
	}
	if _, err := s.users.GetByID(ctx, id); err != nil {
		return err
	}
	return s.users.Delete(ctx, id)
}

// canMutate is the single write-authorization rule: the caller owns the row or
// holds the admin role.
func canMutate(actor *model.User, ownerID uuid.UUID) bool {
	if actor == nil {
		return false
	}
	return actor.ID == ownerID || actor.IsAdmin()
}
