package domain

import (
	"time"

	"jobtracker-backend/pkg/dbtypes"
)

// JobApplication is a tracked application record. Every record has exactly one
// owner, set at creation and never reassigned.
type JobApplication struct {
	ID                 uint               `json:"id" gorm:"primaryKey"`
	UserID             uint               `json:"user_id" gorm:"index;not null"`
	Company            string             `json:"company" gorm:"not null"`
	JobTitle           string             `json:"job_title" gorm:"not null"`
	DateApplied        time.Time          `json:"date_applied" gorm:"type:date;not null"`
	Status             Status             `json:"status" gorm:"not null"`
	LastResponseDate   *time.Time         `json:"last_response_date,omitempty" gorm:"type:date"`
	TechnologyStack    dbtypes.StringList `json:"technology_stack,omitempty" gorm:"type:jsonb"`
	RequiredExperience *int               `json:"required_experience,omitempty"`
	Notes              string             `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt          time.Time          `json:"created_at" gorm:"not null"`
	UpdatedAt          time.Time          `json:"updated_at" gorm:"not null"`
}

func (JobApplication) TableName() string {
	return "job_applications"
}
