package domain

import "strings"

// LinkFilter selects links in the console listing. Empty criteria match
// everything; set criteria are combined with AND.
type LinkFilter struct {
	// Search is matched case-insensitively against the id and the full URL.
	Search   string
	Campaign string
	Source   string
	Medium   string
	Content  string
	// Term is matched case-insensitively as a substring of utm_term.
	Term string
}

// Matches reports whether l satisfies every set criterion.
func (f LinkFilter) Matches(l Link) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(l.ID), q) && !strings.Contains(strings.ToLower(l.FullURL), q) {
			return false
		}
	}
	if f.Campaign != "" && l.UTMCampaign != f.Campaign {
		return false
	}
	if f.Source != "" && l.UTMSource != f.Source {
		return false
	}
	if f.Medium != "" && l.UTMMedium != f.Medium {
		return false
	}
	if f.Content != "" && l.UTMContent != f.Content {
		return false
	}
	if f.Term != "" && !strings.Contains(strings.ToLower(l.UTMTerm), strings.ToLower(f.Term)) {
		return false
	}
	return true
}

// Apply returns the links matching f, preserving order.
func (f LinkFilter) Apply(links []Link) []Link {
	out := make([]Link, 0, len(links))
	for _, l := range links {
		if f.Matches(l) {
			out = append(out, l)
		}
	}
	return out
}
