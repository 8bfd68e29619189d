package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Notification struct {
	ID      uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID  uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	Message string            `gorm:"type:text;not null" json:"message"`
	IsRead  bool              `gorm:"not null;default:false" json:"is_read"`
	Data    datatypes.JSONMap `gorm:"type:jsonb" swaggertype:"object" json:"data"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (Notification) TableName() string { return "notifications" }
