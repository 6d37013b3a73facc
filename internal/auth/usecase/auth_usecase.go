package usecase

import (
	"fmt"

	"go.uber.org/zap"

	"jobtracker-backend/internal/apperr"
	authdomain "jobtracker-backend/internal/auth/domain"
	authdto "jobtracker-backend/internal/auth/dto"
	"jobtracker-backend/internal/auth/repository"
	"jobtracker-backend/internal/auth/token"
)

type authUsecase struct {
	userRepo repository.UserRepository
	codec    *token.Codec
	logger   *zap.Logger
}

func NewAuthUsecase(userRepo repository.UserRepository, codec *token.Codec, logger *zap.Logger) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		codec:    codec,
		logger:   logger,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdto.AuthResponse, error) {
	exists, err := u.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("checking email: %w", err)
	}
	if exists {
		return nil, apperr.ErrEmailTaken
	}

	hashed, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &authdomain.User{
		Name:            req.Name,
		Email:           req.Email,
		Password:        hashed,
		Role:            authdomain.RoleUser,
		ExperienceYears: req.ExperienceYears,
		TechnologyStack: req.TechnologyStack,
		JobTitle:        req.JobTitle,
	}

	if err := u.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	u.logger.Info("user registered", zap.Uint("user_id", user.ID))

	return u.tokenResponse(user)
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.AuthResponse, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	// Unknown email and wrong password collapse into one error so callers
	// cannot probe which one it was.
	if user == nil {
		return nil, apperr.ErrInvalidCredentials
	}
	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, apperr.ErrInvalidCredentials
	}

	u.logger.Info("user logged in", zap.Uint("user_id", user.ID))

	return u.tokenResponse(user)
}

func (u *authUsecase) Refresh(user *authdomain.User) (*authdto.AuthResponse, error) {
	tok, err := u.codec.IssueRefresh(user.Email)
	if err != nil {
		return nil, fmt.Errorf("issuing refresh token: %w", err)
	}
	return authResponse(tok, user), nil
}

// ResolveToken validates an inbound token and loads the account it names.
// Signature failure, expiry and a vanished account produce distinct errors;
// the delivery layer collapses them all to 401.
func (u *authUsecase) ResolveToken(tokenString string) (*authdomain.User, error) {
	claims, err := u.codec.Parse(tokenString)
	if err != nil {
		return nil, err
	}

	if u.codec.IsExpired(claims) {
		return nil, apperr.ErrTokenExpired
	}

	email, err := u.codec.Subject(claims)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("looking up subject: %w", err)
	}
	if user == nil {
		return nil, apperr.ErrUserNotFound
	}

	return user, nil
}

func (u *authUsecase) tokenResponse(user *authdomain.User) (*authdto.AuthResponse, error) {
	tok, err := u.codec.IssueAccess(user.Email)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}
	return authResponse(tok, user), nil
}

func authResponse(tok string, user *authdomain.User) *authdto.AuthResponse {
	return &authdto.AuthResponse{
		Token:     tok,
		TokenType: "Bearer",
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
	}
}
