package domain

import (
	"time"

	"jobtracker-backend/pkg/dbtypes"
)

// Role distinguishes regular accounts from administrators.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID              uint               `json:"id" gorm:"primaryKey"`
	Name            string             `json:"name" gorm:"not null"`
	Email           string             `json:"email" gorm:"uniqueIndex;not null"`
	Password        string             `json:"-" gorm:"not null"` // bcrypt digest, never serialized
	Role            Role               `json:"role" gorm:"not null;default:USER"`
	ExperienceYears *int               `json:"experience_years,omitempty"`
	TechnologyStack dbtypes.StringList `json:"technology_stack,omitempty" gorm:"type:jsonb"`
	JobTitle        string             `json:"job_title,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
