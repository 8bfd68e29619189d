package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReactionLike     = "Like"
	ReactionLove     = "Love"
	ReactionClap     = "Clap"
	ReactionThumbsUp = "ThumbsUp"
	ReactionStar     = "Star"
)

func ValidReaction(t string) bool {
	switch t {
	case ReactionLike, ReactionLove, ReactionClap, ReactionThumbsUp, ReactionStar:
		return true
	}
	return false
}

type Reaction struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID    uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	ReactionType string    `gorm:"type:varchar(10);not null" json:"reaction_type"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	User    *User    `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (Reaction) TableName() string { return "reactions" }
