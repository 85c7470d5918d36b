package port

import (
	"context"

	"viciolinks/internal/core/domain"
)

// TaxonomyRepository persists the catalogue: flat taxonomy items, source
// documents and launches. Every write is a full upsert keyed by slug.
type TaxonomyRepository interface {
	// ListItems returns every item of a kind ordered by slug.
	ListItems(ctx context.Context, kind domain.TaxonomyKind) ([]domain.TaxonomyItem, error)
	// UpsertItem creates or replaces an item.
	UpsertItem(ctx context.Context, kind domain.TaxonomyKind, item domain.TaxonomyItem) error
	// DeleteItem removes an item. Missing items are not an error.
	DeleteItem(ctx context.Context, kind domain.TaxonomyKind, slug string) error

	ListSourceConfigs(ctx context.Context) ([]domain.SourceConfig, error)
	// UpsertSourceConfig replaces the whole source document.
	UpsertSourceConfig(ctx context.Context, src domain.SourceConfig) error
	DeleteSourceConfig(ctx context.Context, slug string) error

	ListLaunches(ctx context.Context) ([]domain.Launch, error)
	UpsertLaunch(ctx context.Context, launch domain.Launch) error
	DeleteLaunch(ctx context.Context, slug string) error
}

// LinkQuery narrows a link listing. Zero values match everything.
type LinkQuery struct {
	Campaign string
	Source   string
	Medium   string
	LinkType domain.LinkType
	Limit    int
}

// LinkRepository persists generated links.
type LinkRepository interface {
	// NextLinkNumber atomically increments and returns the link counter.
	NextLinkNumber(ctx context.Context) (int64, error)
	// CreateLink stores the link together with its audit record in one
	// transaction.
	CreateLink(ctx context.Context, link domain.Link, audit domain.Audit) error
	// ListLinks returns links newest first.
	ListLinks(ctx context.Context, q LinkQuery) ([]domain.Link, error)
	// DeleteLink removes a link. It returns ErrNotFound for unknown ids.
	DeleteLink(ctx context.Context, id string) error
}

// UserRepository persists operator accounts.
type UserRepository interface {
	// GetUser returns ErrNotFound for unknown usernames.
	GetUser(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	// CreateUser returns ErrUserExists when the username is taken.
	CreateUser(ctx context.Context, user domain.User) error
	// UpdateUser returns ErrNotFound for unknown usernames.
	UpdateUser(ctx context.Context, user domain.User) error
	DeleteUser(ctx context.Context, username string) error
	CountUsers(ctx context.Context) (int64, error)
}
