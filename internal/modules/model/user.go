package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RolePresenter = "Presenter"
	RoleReviewer  = "Reviewer"
	RoleAdmin     = "Admin"
)

func ValidRole(r string) bool {
	return r == RolePresenter || r == RoleReviewer || r == RoleAdmin
}

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username       string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	Email          string    `gorm:"type:varchar(254);uniqueIndex;not null" json:"email"`
	PasswordHash   string    `gorm:"type:varchar(100);not null" json:"-"`
	Role           string    `gorm:"type:varchar(10);not null;default:'Presenter'" json:"role"`
	ProfilePicture string    `gorm:"type:text" json:"profile_picture"`
	Institution    string    `gorm:"type:varchar(255)" json:"institution"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Deleting a user removes everything they own.
	Projects       []Project       `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	Feedbacks      []Feedback      `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	Ratings        []Rating        `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	Reactions      []Reaction      `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	Collaborations []Collaboration `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	Notifications  []Notification  `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	SearchLogs     []SearchLog     `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (User) TableName() string { return "users" }

// IsAdmin reports whether the user may bypass ownership checks.
func (u *User) IsAdmin() bool { return u != nil && u.Role == RoleAdmin }
