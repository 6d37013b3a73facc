package repository

import (
	"time"

	"jobtracker-backend/internal/application/domain"
)

// Filter narrows a user-scoped listing. Zero values mean "no constraint".
// DateFrom/DateTo are forwarded as given; a reversed range simply matches
// nothing.
type Filter struct {
	Status   *domain.Status
	Company  string // substring match, case-insensitive
	DateFrom *time.Time
	DateTo   *time.Time
}

// ApplicationRepository defines data access for job applications. Every query
// method takes the owning user id; rows belonging to other users are invisible.
type ApplicationRepository interface {
	Create(app *domain.JobApplication) error
	// FindByIDAndUser returns (nil, nil) when no row matches the id for that
	// owner, whether the id is free or taken by someone else.
	FindByIDAndUser(id, userID uint) (*domain.JobApplication, error)
	FindByUser(userID uint, filter Filter, limit, offset int, sort string) ([]*domain.JobApplication, int64, error)
	Save(app *domain.JobApplication) error
	Delete(app *domain.JobApplication) error
	CountByStatus(userID uint) (map[domain.Status]int64, error)
}
