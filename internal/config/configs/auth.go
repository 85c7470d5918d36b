package configs

import "time"

// Auth configures bearer token issuing and the bootstrap administrator. The
// administrator account is only created when the users table is empty.
type Auth struct {
	// Secret signs HS256 access tokens. It must be overridden in production.
	Secret string `env:"SECRET" envDefault:"change-me"`
	// TokenTTL is the lifetime of issued access tokens. Defaults to 8 hours.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"8h"`

	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}
