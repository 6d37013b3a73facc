package repository

import (
	authdomain "jobtracker-backend/internal/auth/domain"
)

// UserRepository defines data access for user accounts. Implementations return
// (nil, nil) when no row matches.
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByEmail(email string) (*authdomain.User, error)
	FindByID(id uint) (*authdomain.User, error)
	ExistsByEmail(email string) (bool, error)
	Update(user *authdomain.User) error
}
