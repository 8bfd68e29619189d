package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/void-labs/showcase/internal/modules/model"
)

func TestUserService_Update(t *testing.T) {
	userID := uuid.New()
	owner := &model.User{ID: userID, Username: "alice", Role: model.RolePresenter}
	stranger := &model.User{ID: uuid.New(), Username: "eve", Role: model.RolePresenter}
	empty := ""
	institution := "MIT"

	tests := []struct {
		name        string
		actor       *model.User
		input       UpdateUserInput
		setup       func(*MockUserRepo)
		expectedErr error
	}{
		{
			name:  "cleared institution reaches storage as an explicit column",
			actor: owner,
			input: UpdateUserInput{Institution: &empty},
			setup: func(users *MockUserRepo) {
				users.On("GetByID", mock.Anything, userID).Return(owner, nil).Twice()
				users.On("Update", mock.Anything, userID, map[string]interface{}{"institution": ""}).Return(nil)
			},
		},
		{
			name:  "set institution",
			actor: owner,
			input: UpdateUserInput{Institution: &institution},
			setup: func(users *MockUserRepo) {
				users.On("GetByID", mock.Anything, userID).Return(owner, nil).Twice()
				users.On("Update", mock.Anything, userID, map[string]interface{}{"institution": institution}).Return(nil)
			},
		},
		{
			name:  "no fields means no write",
			actor: owner,
			input: UpdateUserInput{},
			setup: func(users *MockUserRepo) {
				users.On("GetByID", mock.Anything, userID).Return(owner, nil).Twice()
			},
		},
		{
			name:        "stranger is rejected",
			actor:       stranger,
			input:       UpdateUserInput{Institution: &institution},
			setup:       func(users *MockUserRepo) {},
			expectedErr: ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &MockUserRepo{}
			tt.setup(users)

			svc := NewUserService(users)
			u, err := svc.Update(context.Background(), tt.actor, userID, tt.input)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, u)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, u)
			}
			users.AssertExpectations(t)
		})
	}
}
