package utm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	invalidSlugChars   = regexp.MustCompile(`[^a-z0-9_\-]`)
	repeatedUnderscore = regexp.MustCompile(`_+`)

	// _MMYY at the end of a campaign slug, month restricted to 01-12 so
	// that years such as black_friday_2025 are left alone.
	compactCampaignDate = regexp.MustCompile(`_(0[1-9]|1[0-2])(\d{2})$`)
	// DDMMYYYY as the last underscore-separated segment of a term.
	compactTermDate = regexp.MustCompile(`(^|_)(0[1-9]|[12]\d|3[01])(0[1-9]|1[0-2])(\d{4})$`)
)

// Slugify lowercases s, strips accents, turns spaces into underscores and
// drops everything outside [a-z0-9_-]. Runs of underscores collapse into
// one and leading or trailing underscores are trimmed.
func Slugify(s string) string {
	if s == "" {
		return ""
	}
	s = stripAccents(strings.ToLower(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = invalidSlugChars.ReplaceAllString(s, "")
	s = repeatedUnderscore.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

func stripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// NormalizeCampaign rewrites a trailing _MMYY into _MM-YY. Already
// normalised slugs are returned unchanged.
func NormalizeCampaign(slug string) string {
	return compactCampaignDate.ReplaceAllString(slug, "_${1}-${2}")
}

// NormalizeTerm rewrites a trailing DDMMYYYY segment into DD-MM-YYYY.
// Already normalised terms are returned unchanged.
func NormalizeTerm(term string) string {
	return compactTermDate.ReplaceAllString(term, "${1}${2}-${3}-${4}")
}
