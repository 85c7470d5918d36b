package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"viciolinks/internal/auth"
	"viciolinks/internal/core/domain"
	"viciolinks/internal/core/port"
	"viciolinks/internal/core/port/mocks"
)

func newAuthUseCase(t *testing.T) (*AuthUseCase, *mocks.MockUserRepository) {
	repo := mocks.NewMockUserRepository(t)
	return NewAuthUseCase(repo, auth.NewIssuer("secret", time.Hour)), repo
}

func storedUser(t *testing.T, username, password string, role domain.Role) *domain.User {
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return &domain.User{Username: username, Role: role, HashedPassword: hash}
}

func TestLogin(t *testing.T) {
	svc, repo := newAuthUseCase(t)
	repo.On("GetUser", mock.Anything, "ana").Return(storedUser(t, "ana", "pw", domain.RoleUser), nil)

	token, err := svc.Login(context.Background(), "ana", "pw")
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)
	assert.Equal(t, domain.RoleUser, token.Role)

	claims, err := svc.ParseToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, &port.Claims{Username: "ana", Role: domain.RoleUser}, claims)
}

func TestLoginFailures(t *testing.T) {
	svc, repo := newAuthUseCase(t)
	disabled := storedUser(t, "off", "pw", domain.RoleUser)
	disabled.Disabled = true

	repo.On("GetUser", mock.Anything, "ana").Return(storedUser(t, "ana", "pw", domain.RoleUser), nil)
	repo.On("GetUser", mock.Anything, "ghost").Return(nil, port.ErrNotFound)
	repo.On("GetUser", mock.Anything, "off").Return(disabled, nil)

	for _, tc := range []struct{ user, pass string }{{"ana", "wrong"}, {"ghost", "pw"}, {"off", "pw"}} {
		_, err := svc.Login(context.Background(), tc.user, tc.pass)
		assert.ErrorIs(t, err, port.ErrInvalidCredentials, tc.user)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	svc, _ := newAuthUseCase(t)
	_, err := svc.ParseToken("not-a-token")
	assert.ErrorIs(t, err, port.ErrInvalidToken)
}

func TestCreateUser(t *testing.T) {
	svc, repo := newAuthUseCase(t)
	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "bia" && u.Role == domain.RoleUser && auth.CheckPassword(u.HashedPassword, "pw")
	})).Return(nil)

	user, err := svc.CreateUser(context.Background(), domain.UserInput{Username: "bia", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, user.Role)

	_, err = svc.CreateUser(context.Background(), domain.UserInput{Username: "bia"})
	assert.ErrorIs(t, err, port.ErrInvalidInput)
	_, err = svc.CreateUser(context.Background(), domain.UserInput{Username: "bia", Password: "pw", Role: "root"})
	assert.ErrorIs(t, err, port.ErrInvalidInput)
}

func TestUpdateUserKeepsPassword(t *testing.T) {
	svc, repo := newAuthUseCase(t)
	existing := storedUser(t, "bia", "old", domain.RoleUser)
	hash := existing.HashedPassword

	repo.On("GetUser", mock.Anything, "bia").Return(existing, nil)
	repo.On("UpdateUser", mock.Anything, domain.User{Username: "bia", Role: domain.RoleViewer, Disabled: true, HashedPassword: hash}).Return(nil)

	user, err := svc.UpdateUser(context.Background(), "bia", domain.UserInput{Username: "bia", Role: domain.RoleViewer, Disabled: true})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleViewer, user.Role)

	_, err = svc.UpdateUser(context.Background(), "bia", domain.UserInput{Username: "carla"})
	assert.ErrorIs(t, err, port.ErrInvalidInput)
}

func TestEnsureAdmin(t *testing.T) {
	svc, repo := newAuthUseCase(t)
	repo.On("CountUsers", mock.Anything).Return(int64(0), nil).Once()
	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "admin" && u.Role == domain.RoleAdmin
	})).Return(nil).Once()

	created, err := svc.EnsureAdmin(context.Background(), "admin", "pw")
	require.NoError(t, err)
	assert.True(t, created)

	repo.On("CountUsers", mock.Anything).Return(int64(1), nil).Once()
	created, err = svc.EnsureAdmin(context.Background(), "admin", "pw")
	require.NoError(t, err)
	assert.False(t, created)
}
