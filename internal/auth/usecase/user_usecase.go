package usecase

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"jobtracker-backend/internal/apperr"
	authdomain "jobtracker-backend/internal/auth/domain"
	authdto "jobtracker-backend/internal/auth/dto"
	"jobtracker-backend/internal/auth/repository"
)

type userUsecase struct {
	userRepo repository.UserRepository
	logger   *zap.Logger
}

func NewUserUsecase(userRepo repository.UserRepository, logger *zap.Logger) UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (u *userUsecase) GetProfile(user *authdomain.User) *authdto.UserProfile {
	return toProfile(user)
}

func (u *userUsecase) UpdateProfile(user *authdomain.User, req *authdto.UpdateProfileRequest) (*authdto.UserProfile, error) {
	// Changing the email re-runs the uniqueness check against other accounts.
	if !strings.EqualFold(user.Email, req.Email) {
		exists, err := u.userRepo.ExistsByEmail(req.Email)
		if err != nil {
			return nil, fmt.Errorf("checking email: %w", err)
		}
		if exists {
			return nil, apperr.ErrEmailTaken
		}
	}

	user.Name = req.Name
	user.Email = req.Email
	user.ExperienceYears = req.ExperienceYears
	user.TechnologyStack = req.TechnologyStack
	user.JobTitle = req.JobTitle

	if err := u.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}

	u.logger.Info("profile updated", zap.Uint("user_id", user.ID))

	return toProfile(user), nil
}

func (u *userUsecase) ChangePassword(user *authdomain.User, req *authdto.ChangePasswordRequest) error {
	if !repository.CheckPasswordHash(req.CurrentPassword, user.Password) {
		return apperr.ErrInvalidCredentials
	}

	hashed, err := repository.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	user.Password = hashed
	if err := u.userRepo.Update(user); err != nil {
		return fmt.Errorf("storing password: %w", err)
	}

	u.logger.Info("password changed", zap.Uint("user_id", user.ID))

	return nil
}

func toProfile(user *authdomain.User) *authdto.UserProfile {
	return &authdto.UserProfile{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		ExperienceYears: user.ExperienceYears,
		TechnologyStack: user.TechnologyStack,
		JobTitle:        user.JobTitle,
	}
}
