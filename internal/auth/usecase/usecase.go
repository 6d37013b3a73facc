package usecase

import (
	authdomain "jobtracker-backend/internal/auth/domain"
	authdto "jobtracker-backend/internal/auth/dto"
)

// AuthUsecase covers credential verification, token issuance and per-request
// identity resolution.
type AuthUsecase interface {
	Register(req *authdto.RegisterRequest) (*authdto.AuthResponse, error)
	Login(req *authdto.LoginRequest) (*authdto.AuthResponse, error)
	// Refresh issues the longer-lived token for an already authenticated caller.
	Refresh(user *authdomain.User) (*authdto.AuthResponse, error)
	// ResolveToken recovers the caller identity for the current request. It is
	// re-executed on every request; there is no cross-request caching.
	ResolveToken(tokenString string) (*authdomain.User, error)
}

// UserUsecase covers profile reads and mutations for the resolved caller.
type UserUsecase interface {
	GetProfile(user *authdomain.User) *authdto.UserProfile
	UpdateProfile(user *authdomain.User, req *authdto.UpdateProfileRequest) (*authdto.UserProfile, error)
	ChangePassword(user *authdomain.User, req *authdto.ChangePasswordRequest) error
}
