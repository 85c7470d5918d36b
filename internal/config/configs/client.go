package configs

import (
	"net/url"
	"time"
)

// Client configures the linkctl console. Fields are read from variables
// prefixed with VICIOLINKS_.
type Client struct {
	// APIURL is the base URL of the viciolinks backend.
	APIURL url.URL `env:"API_URL" envDefault:"http://localhost:8080"`
	// TokenFile stores the bearer token between invocations. Empty means
	// $HOME/.viciolinks/token.
	TokenFile string `env:"TOKEN_FILE"`
	// Timeout bounds a single request. Zero disables the limit.
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"30s"`
	LogLevel string        `env:"LOG_LEVEL" envDefault:"warn"`
}
