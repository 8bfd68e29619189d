package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReportPending  = "Pending"
	ReportReviewed = "Reviewed"
	ReportResolved = "Resolved"
)

func ValidReportStatus(s string) bool {
	return s == ReportPending || s == ReportReviewed || s == ReportResolved
}

// Report targets a project, optionally pointing at a specific feedback.
type Report struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ReportedByID uuid.UUID  `gorm:"type:uuid;not null;index" json:"reported_by"`
	ProjectID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"project_id"`
	FeedbackID   *uuid.UUID `gorm:"type:uuid;index" json:"feedback_id"`
	Reason       string     `gorm:"type:text;not null" json:"reason"`
	Status       string     `gorm:"type:varchar(10);not null;default:'Pending'" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	ReportedBy *User     `gorm:"foreignKey:ReportedByID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	Project    *Project  `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	Feedback   *Feedback `gorm:"foreignKey:FeedbackID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (Report) TableName() string { return "reports" }
