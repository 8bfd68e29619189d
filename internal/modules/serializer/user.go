package serializer

import (
	"time"

	"github.com/google/uuid"
	"github.com/void-labs/showcase/internal/modules/model"
)

// UserView is the wire form of a user. The password hash never leaves the
// model layer; json:"-" on the model is the backstop, this view is the norm.
type UserView struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	ProfilePicture string    `json:"profile_picture"`
	Institution    string    `json:"institution"`
	CreatedAt      time.Time `json:"created_at"`
}

func BuildUser(u *model.User) UserView {
	return UserView{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		Role:           u.Role,
		ProfilePicture: u.ProfilePicture,
		Institution:    u.Institution,
		CreatedAt:      u.CreatedAt,
	}
}

func BuildUsers(users []model.User) []UserView {
	views := make([]UserView, 0, len(users))
	for i := range users {
		views = append(views, BuildUser(&users[i]))
	}
	return views
}
