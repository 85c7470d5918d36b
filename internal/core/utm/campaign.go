package utm

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCampaignNotReady is returned while any part of a campaign slug is
// still missing. A partially filled slug is never produced.
var ErrCampaignNotReady = errors.New("campaign not ready: product, turma, type, month and year are required")

// NotReadyPreview is shown in place of a campaign slug that cannot be built yet.
const NotReadyPreview = "..."

// CampaignParts are the taxonomy selections a launch slug is built from.
type CampaignParts struct {
	Product    string
	Cohort     string
	LaunchType string
	// Month is the two-digit month, e.g. "03".
	Month string
	// Year is the four-digit year; only its last two digits are used.
	Year string
}

// CampaignSlug builds {product}_{cohort}_{type}_{MM}-{YY}.
func CampaignSlug(p CampaignParts) (string, error) {
	product := strings.TrimSpace(p.Product)
	cohort := strings.TrimSpace(p.Cohort)
	kind := strings.TrimSpace(p.LaunchType)
	month := strings.TrimSpace(p.Month)
	year := strings.TrimSpace(p.Year)

	if product == "" || cohort == "" || kind == "" || month == "" || len(year) < 2 {
		return "", ErrCampaignNotReady
	}
	if len(month) == 1 {
		month = "0" + month
	}
	return fmt.Sprintf("%s_%s_%s_%s-%s", product, cohort, kind, month, year[len(year)-2:]), nil
}

// CampaignPreview is CampaignSlug for display: it yields NotReadyPreview
// instead of an error.
func CampaignPreview(p CampaignParts) string {
	slug, err := CampaignSlug(p)
	if err != nil {
		return NotReadyPreview
	}
	return slug
}
