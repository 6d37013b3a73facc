package usecase

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobtracker-backend/internal/apperr"
	authdomain "jobtracker-backend/internal/auth/domain"
	authdto "jobtracker-backend/internal/auth/dto"
	"jobtracker-backend/internal/auth/token"
)

// fakeUserRepo is an in-memory UserRepository keyed by lowercased email.
type fakeUserRepo struct {
	users  map[string]*authdomain.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*authdomain.User), nextID: 1}
}

func (f *fakeUserRepo) Create(user *authdomain.User) error {
	user.ID = f.nextID
	f.nextID++
	cp := *user
	f.users[strings.ToLower(user.Email)] = &cp
	return nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*authdomain.User, error) {
	if u, ok := f.users[strings.ToLower(email)]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(id uint) (*authdomain.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ExistsByEmail(email string) (bool, error) {
	_, ok := f.users[strings.ToLower(email)]
	return ok, nil
}

func (f *fakeUserRepo) Update(user *authdomain.User) error {
	for key, u := range f.users {
		if u.ID == user.ID {
			delete(f.users, key)
			break
		}
	}
	cp := *user
	f.users[strings.ToLower(user.Email)] = &cp
	return nil
}

func newTestAuth(t *testing.T) (AuthUsecase, *fakeUserRepo, *token.Codec) {
	t.Helper()
	repo := newFakeUserRepo()
	codec := token.NewCodec([]byte("test-signing-key"), time.Hour)
	return NewAuthUsecase(repo, codec, zap.NewNop()), repo, codec
}

func registerRequest(email string) *authdto.RegisterRequest {
	years := 3
	return &authdto.RegisterRequest{
		Name:            "Alice",
		Email:           email,
		Password:        "Passw0rd!",
		ExperienceYears: &years,
		TechnologyStack: []string{"Go", "PostgreSQL"},
		JobTitle:        "Backend Engineer",
	}
}

func TestRegister_IssuesResolvableToken(t *testing.T) {
	uc, _, _ := newTestAuth(t)

	resp, err := uc.Register(registerRequest("alice@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, "alice@example.com", resp.Email)
	assert.Equal(t, "Alice", resp.Name)
	assert.NotZero(t, resp.UserID)

	// The issued token resolves back to the stored account.
	user, err := uc.ResolveToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, authdomain.RoleUser, user.Role)

	// And the same credentials log in afterwards.
	_, err = uc.Login(&authdto.LoginRequest{Email: "alice@example.com", Password: "Passw0rd!"})
	require.NoError(t, err)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, repo, _ := newTestAuth(t)

	_, err := uc.Register(registerRequest("alice@example.com"))
	require.NoError(t, err)

	second := registerRequest("alice@example.com")
	second.Name = "Impostor"
	_, err = uc.Register(second)
	require.ErrorIs(t, err, apperr.ErrEmailTaken)

	// The original record is untouched.
	stored, err := repo.FindByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", stored.Name)
}

func TestRegister_DuplicateEmailCaseInsensitive(t *testing.T) {
	uc, _, _ := newTestAuth(t)

	_, err := uc.Register(registerRequest("alice@example.com"))
	require.NoError(t, err)

	_, err = uc.Register(registerRequest("ALICE@Example.COM"))
	require.ErrorIs(t, err, apperr.ErrEmailTaken)
}

func TestLogin_FailureIndistinguishable(t *testing.T) {
	uc, _, _ := newTestAuth(t)

	_, err := uc.Register(registerRequest("alice@example.com"))
	require.NoError(t, err)

	// Wrong password and unknown email surface the identical error.
	_, wrongPw := uc.Login(&authdto.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	_, unknown := uc.Login(&authdto.LoginRequest{Email: "nobody@example.com", Password: "Passw0rd!"})

	require.ErrorIs(t, wrongPw, apperr.ErrInvalidCredentials)
	require.ErrorIs(t, unknown, apperr.ErrInvalidCredentials)
	assert.Equal(t, wrongPw.Error(), unknown.Error())
}

func TestResolveToken_Expired(t *testing.T) {
	uc, _, codec := newTestAuth(t)

	_, err := uc.Register(registerRequest("alice@example.com"))
	require.NoError(t, err)

	for _, age := range []time.Duration{time.Second, 240 * time.Hour} {
		expired, err := codec.Issue("alice@example.com", nil, -age)
		require.NoError(t, err)

		_, err = uc.ResolveToken(expired)
		require.ErrorIs(t, err, apperr.ErrTokenExpired)
	}
}

func TestResolveToken_Invalid(t *testing.T) {
	uc, _, _ := newTestAuth(t)

	_, err := uc.ResolveToken("not.a.token")
	require.ErrorIs(t, err, apperr.ErrInvalidToken)
}

func TestResolveToken_WrongKey(t *testing.T) {
	uc, _, _ := newTestAuth(t)

	forged, err := token.NewCodec([]byte("attacker-key"), time.Hour).IssueAccess("alice@example.com")
	require.NoError(t, err)

	_, err = uc.ResolveToken(forged)
	require.ErrorIs(t, err, apperr.ErrInvalidToken)
}

func TestResolveToken_UnknownSubject(t *testing.T) {
	uc, _, codec := newTestAuth(t)

	// Valid token for an account that no longer exists.
	tok, err := codec.IssueAccess("ghost@example.com")
	require.NoError(t, err)

	_, err = uc.ResolveToken(tok)
	require.ErrorIs(t, err, apperr.ErrUserNotFound)
}

func TestRefresh_ResolvesToSameUser(t *testing.T) {
	uc, repo, _ := newTestAuth(t)

	_, err := uc.Register(registerRequest("alice@example.com"))
	require.NoError(t, err)

	user, err := repo.FindByEmail("alice@example.com")
	require.NoError(t, err)

	resp, err := uc.Refresh(user)
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)

	resolved, err := uc.ResolveToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
}
