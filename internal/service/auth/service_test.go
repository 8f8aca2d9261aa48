package auth

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/pim-intern/attendance-backend/internal/domain/activitylog"
	"github.com/pim-intern/attendance-backend/internal/domain/auth"
	"github.com/pim-intern/attendance-backend/internal/domain/user"
	"github.com/pim-intern/attendance-backend/internal/pkg/jwt"
	"github.com/pim-intern/attendance-backend/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAccessExp = "1h"
	testSecret    = "test-secret-key-for-jwt"
	testPassword  = "password123"
)

type memoryUserRepository struct {
	users  []user.User
	getErr error
}

func (m *memoryUserRepository) GetByLogin(ctx context.Context, login string) (user.User, error) {
	if m.getErr != nil {
		return user.User{}, m.getErr
	}
	for _, u := range m.users {
		if u.Email == login || u.Badge == login {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (m *memoryUserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (m *memoryUserRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	m.users = append(m.users, newUser)
	return newUser, nil
}

func (m *memoryUserRepository) ExistsByRole(ctx context.Context, role user.Role) (bool, error) {
	for _, u := range m.users {
		if u.Role == role {
			return true, nil
		}
	}
	return false, nil
}

type fakeRecorder struct {
	mu      sync.Mutex
	actions []activitylog.Action
}

func (f *fakeRecorder) Record(ctx context.Context, userID string, action activitylog.Action, description string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.actions = append(f.actions, action)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	// MinCost keeps the suite fast
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newTestAuthService(t *testing.T, status user.Status) (auth.AuthService, *fakeRecorder) {
	repo := &memoryUserRepository{users: []user.User{{
		ID:           "ms0001",
		Badge:        "MHS001",
		Name:         "Ahmad Fauzi",
		Email:        "ahmad.fauzi@email.com",
		PasswordHash: hashPassword(t, testPassword),
		Role:         user.RoleIntern,
		Status:       status,
	}}}
	recorder := &fakeRecorder{}
	return NewAuthService(repo, jwt.NewJWTService(testSecret, testAccessExp), recorder), recorder
}

// Test Login with valid credentials
func TestAuthService_Login_Success(t *testing.T) {
	svc, recorder := newTestAuthService(t, user.StatusActive)

	response, err := svc.Login(context.Background(), auth.LoginRequest{Email: "ahmad.fauzi@email.com", Password: testPassword})

	require.NoError(t, err)
	assert.NotEmpty(t, response.AccessToken)
	assert.Greater(t, response.AccessTokenExpiresIn, int64(0))
	assert.Equal(t, "ms0001", response.User.ID)
	assert.Equal(t, "MAHASISWA", response.User.Role)
	assert.Equal(t, []activitylog.Action{activitylog.ActionLogin}, recorder.actions)
}

// Test Login with badge number instead of email
func TestAuthService_Login_WithBadge(t *testing.T) {
	svc, _ := newTestAuthService(t, user.StatusActive)

	response, err := svc.Login(context.Background(), auth.LoginRequest{Email: "MHS001", Password: testPassword})

	require.NoError(t, err)
	assert.Equal(t, "ms0001", response.User.ID)
}

// Test Login with invalid password
func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc, recorder := newTestAuthService(t, user.StatusActive)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "ahmad.fauzi@email.com", Password: "wrongpassword"})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	assert.Empty(t, recorder.actions)
}

// Test Login with unknown user
func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, _ := newTestAuthService(t, user.StatusActive)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "nobody@email.com", Password: testPassword})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

// Test Login with inactive account
func TestAuthService_Login_Inactive(t *testing.T) {
	svc, _ := newTestAuthService(t, user.StatusInactive)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "ahmad.fauzi@email.com", Password: testPassword})

	assert.ErrorIs(t, err, auth.ErrAccountInactive)
}

// Test Login with missing fields
func TestAuthService_Login_Validation(t *testing.T) {
	svc, _ := newTestAuthService(t, user.StatusActive)

	_, err := svc.Login(context.Background(), auth.LoginRequest{})

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 2)
}

// Test Login when the store is unavailable
func TestAuthService_Login_StoreFailure(t *testing.T) {
	repo := &memoryUserRepository{getErr: errors.New("connection refused")}
	svc := NewAuthService(repo, jwt.NewJWTService(testSecret, testAccessExp), &fakeRecorder{})

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "a@b.co", Password: testPassword})

	require.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}
