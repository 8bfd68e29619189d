package model

import (
	"time"

	"github.com/google/uuid"
)

// SearchLog rows are append-only; there is no update path.
type SearchLog struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Query  string    `gorm:"type:varchar(255);not null" json:"query"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (SearchLog) TableName() string { return "search_logs" }
