package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradpath/intake/internal/app/models"
	"github.com/gradpath/intake/internal/app/models/dto"
	"github.com/gradpath/intake/internal/pkg/apperrors"
	"github.com/gradpath/intake/internal/pkg/auth"
)

// fakeUserStore is an in-memory UserStore keyed by email.
type fakeUserStore struct {
	users  map[string]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*models.User), nextID: 1}
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserStore) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := f.users[email]
	return ok, nil
}

func (f *fakeUserStore) AdminEmailExists(_ context.Context, email string) (bool, error) {
	user, ok := f.users[email]
	return ok && user.Role == models.RoleAdmin, nil
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) (int64, error) {
	if _, ok := f.users[user.Email]; ok {
		return 0, apperrors.ErrEmailAlreadyExists
	}
	user.ID = f.nextID
	f.nextID++
	copied := *user
	f.users[user.Email] = &copied
	return user.ID, nil
}

// fakeSessionStore is an in-memory auth.SessionStore.
type fakeSessionStore struct {
	sessions map[string]*auth.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*auth.Session)}
}

func (f *fakeSessionStore) Create(_ context.Context, session *auth.Session) error {
	copied := *session
	f.sessions[session.Token] = &copied
	return nil
}

func (f *fakeSessionStore) Get(_ context.Context, token string) (*auth.Session, error) {
	session, ok := f.sessions[token]
	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

func (f *fakeSessionStore) Delete(_ context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

func newTestAuthService() (AuthService, *fakeUserStore, *fakeSessionStore) {
	users := newFakeUserStore()
	sessions := newFakeSessionStore()
	svc := NewAuthService(users, auth.NewSessionService(sessions, auth.SessionConfig{}))
	return svc, users, sessions
}

func TestSignupAndLogin(t *testing.T) {
	svc, users, _ := newTestAuthService()
	ctx := context.Background()

	err := svc.Signup(ctx, dto.SignupRequest{
		Name:     "Ada Lovelace",
		Email:    "Ada@Example.COM",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	// Email was normalized before storage
	stored, ok := users.users["ada@example.com"]
	require.True(t, ok)
	assert.Equal(t, models.RoleStudent, stored.Role)
	require.NotNil(t, stored.PasswordHash)
	assert.NotEqual(t, "hunter2hunter2", *stored.PasswordHash)

	user, session, err := svc.Login(ctx, dto.LoginRequest{
		Email:    "ada@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, stored.ID, user.ID)
	assert.NotEmpty(t, session.Token)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	req := dto.SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "pw-pw-pw"}
	require.NoError(t, svc.Signup(ctx, req))

	err := svc.Signup(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	// Same address with different casing is still a duplicate
	req.Email = "ADA@EXAMPLE.COM"
	err = svc.Signup(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestSignupValidation(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	err := svc.Signup(ctx, dto.SignupRequest{Name: "", Email: "a@b.com", Password: "pw"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	err = svc.Signup(ctx, dto.SignupRequest{Name: "Ada", Email: "not-an-email", Password: "pw"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidEmail)

	err = svc.Signup(ctx, dto.SignupRequest{Name: "Ada", Email: "a@b.com", Password: ""})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	err = svc.Signup(ctx, dto.SignupRequest{Name: "Ada", Email: "a@b.com", Password: "pw", Role: "superuser"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, users, _ := newTestAuthService()
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, dto.SignupRequest{
		Name: "Ada", Email: "ada@example.com", Password: "right-password",
	}))

	// Admin-added student without credentials
	users.users["nopw@example.com"] = &models.User{
		ID: 99, Name: "No Password", Email: "nopw@example.com", Role: models.RoleStudent,
	}

	for _, req := range []dto.LoginRequest{
		{Email: "unknown@example.com", Password: "whatever"},
		{Email: "ada@example.com", Password: "wrong-password"},
		{Email: "nopw@example.com", Password: "whatever"},
	} {
		_, _, err := svc.Login(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials, req.Email)
		assert.EqualError(t, err, "Invalid email or password", req.Email)
	}
}

func TestLogout(t *testing.T) {
	svc, _, sessions := newTestAuthService()
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, dto.SignupRequest{
		Name: "Ada", Email: "ada@example.com", Password: "pw-pw-pw",
	}))
	_, session, err := svc.Login(ctx, dto.LoginRequest{
		Email: "ada@example.com", Password: "pw-pw-pw",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, session.Token))
	_, ok := sessions.sessions[session.Token]
	assert.False(t, ok)

	// Logging out twice still succeeds
	assert.NoError(t, svc.Logout(ctx, session.Token))
}

func TestCreateAdmin(t *testing.T) {
	svc, users, _ := newTestAuthService()
	ctx := context.Background()

	err := svc.CreateAdmin(ctx, dto.CreateAdminRequest{
		Name: "Root", Email: "root@example.com", Password: "a-long-admin-password",
	})
	require.NoError(t, err)

	stored, ok := users.users["root@example.com"]
	require.True(t, ok)
	assert.Equal(t, models.RoleAdmin, stored.Role)
}

func TestCreateAdminShortPassword(t *testing.T) {
	svc, _, _ := newTestAuthService()

	err := svc.CreateAdmin(context.Background(), dto.CreateAdminRequest{
		Name: "Root", Email: "root@example.com", Password: "elevenchars",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
	assert.EqualError(t, err, "Admin password must be at least 12 characters")
}

func TestCreateAdminAlreadyExists(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	req := dto.CreateAdminRequest{
		Name: "Root", Email: "root@example.com", Password: "a-long-admin-password",
	}
	require.NoError(t, svc.CreateAdmin(ctx, req))

	err := svc.CreateAdmin(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrAdminAlreadyExists)
}
