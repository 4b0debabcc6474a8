package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/activity"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/auth"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/user"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/jwt"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-for-jwt"

type fakeUserRepo struct {
	user.UserRepository
	users  map[string]user.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]user.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	if _, ok := f.users[u.Email]; ok {
		return user.User{}, user.ErrEmailAlreadyExists
	}
	f.nextID++
	u.ID = f.nextID
	f.users[u.Email] = u
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	u, ok := f.users[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

type recorded struct {
	userID int64
	action activity.Action
	meta   activity.Metadata
}

type fakeRecorder struct {
	mu      sync.Mutex
	entries []recorded
}

func (f *fakeRecorder) Record(ctx context.Context, userID int64, action activity.Action, metadata activity.Metadata) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, recorded{userID, action, metadata})
}

func newTestService(t *testing.T) (auth.AuthService, *fakeUserRepo, *fakeRecorder, jwt.Service) {
	t.Helper()
	repo := newFakeUserRepo()
	rec := &fakeRecorder{}
	jwtService := jwt.NewJWTService(testSecret, "1h")
	return NewAuthService(repo, jwtService, rec), repo, rec, jwtService
}

func TestAuthService_Register(t *testing.T) {
	svc, repo, _, _ := newTestService(t)

	resp, err := svc.Register(context.Background(), auth.RegisterRequest{
		Name:     "Siti",
		Email:    " Siti@Unand.ac.id ",
		Password: "rahasia1",
	})
	require.NoError(t, err)

	assert.Equal(t, "TENAGA", resp.Role)
	assert.Equal(t, "siti@unand.ac.id", resp.Email)
	stored := repo.users["siti@unand.ac.id"]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("rahasia1")))
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	req := auth.RegisterRequest{Name: "A", Email: "a@unand.ac.id", Password: "secret1"}

	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, user.ErrEmailAlreadyExists)
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.Register(context.Background(), auth.RegisterRequest{Email: "bad"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "name")
	assert.Contains(t, verrs.ToMap(), "email")
	assert.Contains(t, verrs.ToMap(), "password")
}

func TestAuthService_Login(t *testing.T) {
	svc, _, rec, _ := newTestService(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, auth.RegisterRequest{Name: "A", Email: "a@unand.ac.id", Password: "secret1"})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, auth.LoginRequest{Email: "a@unand.ac.id", Password: "secret1"}, auth.SessionInfo{IPAddress: "10.0.0.1"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Greater(t, resp.ExpiresAt, int64(0))
	assert.Equal(t, "a@unand.ac.id", resp.User.Email)
	require.Len(t, rec.entries, 1)
	assert.Equal(t, activity.ActionLogin, rec.entries[0].action)
	assert.Equal(t, "10.0.0.1", rec.entries[0].meta["ip"])
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc, _, rec, _ := newTestService(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, auth.RegisterRequest{Name: "A", Email: "a@unand.ac.id", Password: "secret1"})
	require.NoError(t, err)

	tests := []struct {
		name string
		req  auth.LoginRequest
	}{
		{"wrong password", auth.LoginRequest{Email: "a@unand.ac.id", Password: "nope"}},
		{"unknown email", auth.LoginRequest{Email: "b@unand.ac.id", Password: "secret1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.req, auth.SessionInfo{})
			assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		})
	}
	assert.Empty(t, rec.entries)
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	boom := errors.New("connection refused")
	repo := &erroringUserRepo{err: boom}
	svc := NewAuthService(repo, jwt.NewJWTService(testSecret, "1h"), &fakeRecorder{})

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "a@unand.ac.id", Password: "x"}, auth.SessionInfo{})
	assert.ErrorIs(t, err, boom)
}

type erroringUserRepo struct {
	user.UserRepository
	err error
}

func (e *erroringUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, e.err
}

func TestAuthService_LoginWithGoogle(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, auth.RegisterRequest{Name: "A", Email: "a@unand.ac.id", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.LoginWithGoogle(ctx, "a@unand.ac.id", false, auth.SessionInfo{})
	assert.ErrorIs(t, err, auth.ErrGoogleEmailNotVerified)

	_, err = svc.LoginWithGoogle(ctx, "other@gmail.com", true, auth.SessionInfo{})
	assert.ErrorIs(t, err, auth.ErrGoogleAccountNotLinked)

	resp, err := svc.LoginWithGoogle(ctx, "a@unand.ac.id", true, auth.SessionInfo{})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestAuthService_Logout(t *testing.T) {
	svc, _, _, jwtService := newTestService(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, auth.RegisterRequest{Name: "A", Email: "a@unand.ac.id", Password: "secret1"})
	require.NoError(t, err)
	resp, err := svc.Login(ctx, auth.LoginRequest{Email: "a@unand.ac.id", Password: "secret1"}, auth.SessionInfo{})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, resp.Token))
	assert.True(t, jwtService.IsTokenRevoked(resp.Token))

	assert.ErrorIs(t, svc.Logout(ctx, ""), auth.ErrInvalidToken)
	assert.ErrorIs(t, svc.Logout(ctx, strings.Repeat("x", 20)), auth.ErrInvalidToken)
}
