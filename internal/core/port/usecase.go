package port

import (
	"context"

	"viciolinks/internal/core/domain"
)

// TaxonomyUseCase manages the catalogue. It is the primary port used by
// the admin endpoints.
type TaxonomyUseCase interface {
	ListItems(ctx context.Context, kind domain.TaxonomyKind) ([]domain.TaxonomyItem, error)
	SaveItem(ctx context.Context, kind domain.TaxonomyKind, item domain.TaxonomyItem) (domain.TaxonomyItem, error)
	DeleteItem(ctx context.Context, kind domain.TaxonomyKind, slug string) error

	ListSourceConfigs(ctx context.Context) ([]domain.SourceConfig, error)
	// SaveSourceConfig replaces the stored document. Concurrent editors
	// overwrite each other; the last write wins.
	SaveSourceConfig(ctx context.Context, src domain.SourceConfig) (domain.SourceConfig, error)
	DeleteSourceConfig(ctx context.Context, slug string) error

	ListLaunches(ctx context.Context) ([]domain.Launch, error)
	// SaveLaunch normalises the slug (_MMYY becomes _MM-YY) and defaults
	// the status before storing.
	SaveLaunch(ctx context.Context, launch domain.Launch) (domain.Launch, error)
	DeleteLaunch(ctx context.Context, slug string) error
}

// LinkUseCase generates and lists tracking links.
type LinkUseCase interface {
	// Generate normalises the request, allocates the next link id, builds
	// the full URL and stores the link on behalf of actor.
	Generate(ctx context.Context, actor string, req domain.LinkRequest) (*domain.Link, error)
	List(ctx context.Context, q LinkQuery) ([]domain.Link, error)
	Delete(ctx context.Context, id string) error
}

// Claims is the identity carried by an access token.
type Claims struct {
	Username string
	Role     domain.Role
}

// Token is the answer to a successful login.
type Token struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	Role        domain.Role `json:"role"`
}

// AuthUseCase authenticates operators and manages their accounts.
type AuthUseCase interface {
	Login(ctx context.Context, username, password string) (*Token, error)
	// ParseToken validates an access token and returns its claims.
	ParseToken(token string) (*Claims, error)

	Me(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, in domain.UserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, username string, in domain.UserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, username string) error
	// EnsureAdmin creates the bootstrap administrator when no account
	// exists. It reports whether an account was created.
	EnsureAdmin(ctx context.Context, username, password string) (bool, error)
}
