package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobtracker-backend/internal/apperr"
	authdomain "jobtracker-backend/internal/auth/domain"
	authdto "jobtracker-backend/internal/auth/dto"
)

func setupUser(t *testing.T) (AuthUsecase, UserUsecase, *fakeUserRepo, *authdomain.User) {
	t.Helper()
	auth, repo, _ := newTestAuth(t)
	users := NewUserUsecase(repo, zap.NewNop())

	_, err := auth.Register(registerRequest("alice@example.com"))
	require.NoError(t, err)

	user, err := repo.FindByEmail("alice@example.com")
	require.NoError(t, err)
	return auth, users, repo, user
}

func TestGetProfile_NeverExposesDigest(t *testing.T) {
	_, users, _, user := setupUser(t)

	profile := users.GetProfile(user)
	assert.Equal(t, user.ID, profile.ID)
	assert.Equal(t, "alice@example.com", profile.Email)
	assert.Equal(t, "Alice", profile.Name)
	require.NotNil(t, profile.ExperienceYears)
	assert.Equal(t, 3, *profile.ExperienceYears)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, profile.TechnologyStack)
}

func TestUpdateProfile_Success(t *testing.T) {
	_, users, repo, user := setupUser(t)

	years := 5
	profile, err := users.UpdateProfile(user, &authdto.UpdateProfileRequest{
		Name:            "Alice B",
		Email:           "alice@example.com",
		ExperienceYears: &years,
		TechnologyStack: []string{"Go", "Kubernetes"},
		JobTitle:        "Senior Backend Engineer",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice B", profile.Name)
	assert.Equal(t, "Senior Backend Engineer", profile.JobTitle)

	stored, err := repo.FindByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice B", stored.Name)
}

func TestUpdateProfile_EmailCollision(t *testing.T) {
	auth, users, _, user := setupUser(t)

	_, err := auth.Register(registerRequest("bob@example.com"))
	require.NoError(t, err)

	_, err = users.UpdateProfile(user, &authdto.UpdateProfileRequest{
		Name:  "Alice",
		Email: "bob@example.com",
	})
	require.ErrorIs(t, err, apperr.ErrEmailTaken)
}

func TestUpdateProfile_SameEmailDifferentCase(t *testing.T) {
	_, users, _, user := setupUser(t)

	// Changing only the casing of your own email is not a collision.
	_, err := users.UpdateProfile(user, &authdto.UpdateProfileRequest{
		Name:  "Alice",
		Email: "Alice@Example.com",
	})
	require.NoError(t, err)
}

func TestChangePassword(t *testing.T) {
	auth, users, repo, user := setupUser(t)

	// Wrong current password is the same error as bad login credentials.
	err := users.ChangePassword(user, &authdto.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "NewPassw0rd!",
	})
	require.ErrorIs(t, err, apperr.ErrInvalidCredentials)

	err = users.ChangePassword(user, &authdto.ChangePasswordRequest{
		CurrentPassword: "Passw0rd!",
		NewPassword:     "NewPassw0rd!",
	})
	require.NoError(t, err)

	// Old password no longer works, new one does.
	_, err = auth.Login(&authdto.LoginRequest{Email: "alice@example.com", Password: "Passw0rd!"})
	require.ErrorIs(t, err, apperr.ErrInvalidCredentials)

	_, err = auth.Login(&authdto.LoginRequest{Email: "alice@example.com", Password: "NewPassw0rd!"})
	require.NoError(t, err)

	stored, err := repo.FindByEmail("alice@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "NewPassw0rd!", stored.Password, "password must be stored as a digest")
}
