package domain

// Role grants access levels.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleUser   Role = "user"
	RoleViewer Role = "viewer"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleViewer:
		return true
	}
	return false
}

// IsAdmin reports whether r may manage taxonomy and users.
func (r Role) IsAdmin() bool { return r == RoleAdmin }

// CanEdit reports whether r may generate links and create launches.
func (r Role) CanEdit() bool { return r == RoleAdmin || r == RoleUser }

// User is an operator account.
type User struct {
	Username       string `json:"username"`
	Role           Role   `json:"role"`
	Disabled       bool   `json:"disabled"`
	HashedPassword string `json:"-"`
}

// UserInput creates or replaces an account. An empty password on update
// keeps the stored hash.
type UserInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
	Disabled bool   `json:"disabled"`
}
