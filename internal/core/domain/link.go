package domain

import "time"

// LinkType separates capture links from sales links.
type LinkType string

const (
	LinkCaptacao LinkType = "captacao"
	LinkVendas   LinkType = "vendas"
)

// Valid reports whether t is a known link type.
func (t LinkType) Valid() bool {
	return t == LinkCaptacao || t == LinkVendas
}

// Link is a generated tracking link. It is created by the backend and
// read-only for the console.
type Link struct {
	ID           string            `json:"id"`
	LinkType     LinkType          `json:"link_type"`
	BaseURL      string            `json:"base_url"`
	Path         string            `json:"path"`
	FullURL      string            `json:"full_url"`
	UTMSource    string            `json:"utm_source"`
	UTMMedium    string            `json:"utm_medium"`
	UTMCampaign  string            `json:"utm_campaign"`
	UTMContent   string            `json:"utm_content"`
	UTMTerm      string            `json:"utm_term"`
	Src          *string           `json:"src"`
	Sck          *string           `json:"sck"`
	Xcode        *string           `json:"xcode"`
	CustomParams map[string]string `json:"custom_params"`
	Notes        *string           `json:"notes"`
	CreatedBy    string            `json:"created_by"`
	CreatedAt    time.Time         `json:"created_at"`
	Status       string            `json:"status"`
}

// LinkRequest is the payload accepted by the link generator.
type LinkRequest struct {
	LinkType      LinkType          `json:"link_type"`
	BaseURL       string            `json:"base_url" validate:"required"`
	Path          string            `json:"path"`
	UTMSource     string            `json:"utm_source" validate:"required"`
	UTMMedium     string            `json:"utm_medium" validate:"required"`
	UTMCampaign   string            `json:"utm_campaign" validate:"required"`
	UTMContent    string            `json:"utm_content"`
	UTMTerm       string            `json:"utm_term"`
	CustomParams  map[string]string `json:"custom_params,omitempty"`
	Notes         *string           `json:"notes,omitempty"`
	DynamicFields map[string]string `json:"dynamic_fields,omitempty"`
}

// Audit records who did what to a link.
type Audit struct {
	EventID   string    `json:"event_id"`
	LinkID    string    `json:"link_id"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"created_at"`
}
