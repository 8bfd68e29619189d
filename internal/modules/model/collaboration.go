package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	CollaborationPending  = "Pending"
	CollaborationAccepted = "Accepted"
	CollaborationRejected = "Rejected"
)

func ValidCollaborationStatus(s string) bool {
	return s == CollaborationPending || s == CollaborationAccepted || s == CollaborationRejected
}

type Collaboration struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Status    string    `gorm:"type:varchar(10);not null;default:'Pending'" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	User    *User    `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (Collaboration) TableName() string { return "collaborations" }
