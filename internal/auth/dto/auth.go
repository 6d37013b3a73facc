package dto

// LoginRequest is the credentials payload for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the payload for POST /api/auth/register.
type RegisterRequest struct {
	Name            string   `json:"name" binding:"required"`
	Email           string   `json:"email" binding:"required,email"`
	Password        string   `json:"password" binding:"required,min=8"`
	ExperienceYears *int     `json:"experienceYears" binding:"omitempty,gte=0"`
	TechnologyStack []string `json:"technologyStack"`
	JobTitle        string   `json:"jobTitle"`
}

// AuthResponse carries the issued token plus an identity summary.
type AuthResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"type"`
	UserID    uint   `json:"userId"`
	Email     string `json:"email"`
	Name      string `json:"name"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// UserProfile is the outward shape of an account; the password digest never
// appears here.
type UserProfile struct {
	ID              uint     `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	ExperienceYears *int     `json:"experienceYears"`
	TechnologyStack []string `json:"technologyStack"`
	JobTitle        string   `json:"jobTitle"`
}

type UpdateProfileRequest struct {
	Name            string   `json:"name" binding:"required"`
	Email           string   `json:"email" binding:"required,email"`
	ExperienceYears *int     `json:"experienceYears" binding:"omitempty,gte=0"`
	TechnologyStack []string `json:"technologyStack"`
	JobTitle        string   `json:"jobTitle"`
}
