package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	CategoryHackathon    = "Hackathon"
	CategoryClassProject = "Class Project"
	CategoryResearch     = "Research"
)

func ValidCategory(c string) bool {
	return c == CategoryHackathon || c == CategoryClassProject || c == CategoryResearch
}

type Project struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Category    string    `gorm:"type:varchar(20);not null" json:"category"`
	UploadPath  string    `gorm:"type:text" json:"upload_path"`
	VideoURL    string    `gorm:"type:text" json:"video_url"`
	Thumbnail   string    `gorm:"type:text" json:"thumbnail"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	Feedbacks      []Feedback      `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	Ratings        []Rating        `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	Reactions      []Reaction      `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	Collaborations []Collaboration `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (Project) TableName() string { return "projects" }
