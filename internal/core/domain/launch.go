package domain

import "time"

// LaunchActive is the status given to launches created without one.
const LaunchActive = "active"

// Launch is a marketing campaign. Its slug is the utm_campaign value of
// every link generated for it.
type Launch struct {
	Slug     string     `json:"slug" validate:"required"`
	Name     string     `json:"name" validate:"required"`
	Owner    string     `json:"owner" validate:"required"`
	Status   string     `json:"status"`
	StartsAt *time.Time `json:"starts_at,omitempty"`
	EndsAt   *time.Time `json:"ends_at,omitempty"`
}
