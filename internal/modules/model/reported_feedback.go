package model

import (
	"time"

	"github.com/google/uuid"
)

// ReportedFeedback flags a feedback comment for moderation. The only
// transition is open -> resolved, performed once by an admin; the resolver
// identity and timestamp are stamped at that point and never changed.
type ReportedFeedback struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FeedbackID uuid.UUID `gorm:"type:uuid;not null;index" json:"feedback_id"`
	ReporterID uuid.UUID `gorm:"type:uuid;not null;index" json:"reporter_id"`
	Reason     string    `gorm:"type:text;not null" json:"reason"`

	IsResolved   bool       `gorm:"not null;default:false" json:"is_resolved"`
	ResolvedByID *uuid.UUID `gorm:"type:uuid" json:"resolved_by"`
	ResolvedAt   *time.Time `json:"resolved_at"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Feedback   *Feedback `gorm:"foreignKey:FeedbackID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"feedback,omitempty"`
	Reporter   *User     `gorm:"foreignKey:ReporterID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	ResolvedBy *User     `gorm:"foreignKey:ResolvedByID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"-"`
}

func (ReportedFeedback) TableName() string { return "reported_feedbacks" }
