package usecase

import (
	"context"
	"errors"
	"fmt"

	"viciolinks/internal/auth"
	"viciolinks/internal/core/domain"
	"viciolinks/internal/core/port"
)

const tokenTypeBearer = "bearer"

// AuthUseCase authenticates operators and manages their accounts.
type AuthUseCase struct {
	repo   port.UserRepository
	issuer *auth.Issuer
}

// NewAuthUseCase creates a new usecase with the provided repository and
// token issuer.
func NewAuthUseCase(repo port.UserRepository, issuer *auth.Issuer) *AuthUseCase {
	return &AuthUseCase{repo: repo, issuer: issuer}
}

// Login checks the credentials and returns a signed access token. Unknown
// users, wrong passwords and disabled accounts are indistinguishable.
func (u *AuthUseCase) Login(ctx context.Context, username, password string) (*port.Token, error) {
	user, err := u.repo.GetUser(ctx, username)
	if errors.Is(err, port.ErrNotFound) {
		return nil, port.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user.Disabled || !auth.CheckPassword(user.HashedPassword, password) {
		return nil, port.ErrInvalidCredentials
	}

	token, err := u.issuer.Issue(user.Username, user.Role)
	if err != nil {
		return nil, err
	}
	return &port.Token{AccessToken: token, TokenType: tokenTypeBearer, Role: user.Role}, nil
}

// ParseToken validates an access token.
func (u *AuthUseCase) ParseToken(token string) (*port.Claims, error) {
	claims, err := u.issuer.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrInvalidToken, err)
	}
	return &port.Claims{Username: claims.Subject, Role: claims.Role}, nil
}

func (u *AuthUseCase) Me(ctx context.Context, username string) (*domain.User, error) {
	return u.repo.GetUser(ctx, username)
}

func (u *AuthUseCase) ListUsers(ctx context.Context) ([]domain.User, error) {
	return u.repo.ListUsers(ctx)
}

// CreateUser stores a new account. The role defaults to user.
func (u *AuthUseCase) CreateUser(ctx context.Context, in domain.UserInput) (*domain.User, error) {
	if in.Password == "" {
		return nil, fmt.Errorf("%w: password is required", port.ErrInvalidInput)
	}
	role, err := resolveRole(in.Role, domain.RoleUser)
	if err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user := domain.User{Username: in.Username, Role: role, Disabled: in.Disabled, HashedPassword: hash}
	if err = u.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser replaces role and disabled flag of an account. The password
// is only changed when a new one is given.
func (u *AuthUseCase) UpdateUser(ctx context.Context, username string, in domain.UserInput) (*domain.User, error) {
	user, err := u.repo.GetUser(ctx, username)
	if err != nil {
		return nil, err
	}
	if in.Username != "" && in.Username != username {
		return nil, fmt.Errorf("%w: usernames cannot be changed", port.ErrInvalidInput)
	}
	if user.Role, err = resolveRole(in.Role, user.Role); err != nil {
		return nil, err
	}
	user.Disabled = in.Disabled
	if in.Password != "" {
		if user.HashedPassword, err = auth.HashPassword(in.Password); err != nil {
			return nil, err
		}
	}
	if err = u.repo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *AuthUseCase) DeleteUser(ctx context.Context, username string) error {
	return u.repo.DeleteUser(ctx, username)
}

// EnsureAdmin creates the first administrator when no account exists.
func (u *AuthUseCase) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	n, err := u.repo.CountUsers(ctx)
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	if n > 0 {
		return false, nil
	}
	if password == "" {
		return false, errors.New("no users exist and no bootstrap admin password is configured")
	}
	if _, err = u.CreateUser(ctx, domain.UserInput{Username: username, Password: password, Role: domain.RoleAdmin}); err != nil {
		return false, err
	}
	return true, nil
}

func resolveRole(role, fallback domain.Role) (domain.Role, error) {
	if role == "" {
		return fallback, nil
	}
	if !role.Valid() {
		return "", fmt.Errorf("%w: unknown role %q", port.ErrInvalidInput, role)
	}
	return role, nil
}
