package utm

import (
	"regexp"
	"strings"
	"time"

	"viciolinks/internal/core/domain"
)

// TermDateLayout is the DD-MM-YYYY layout of dates inside terms.
const TermDateLayout = "02-01-2006"

// Missing renders an absent term detail or date.
const Missing = "-"

var termDatePattern = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)

// FormatTermDate renders the calendar day of t as DD-MM-YYYY.
func FormatTermDate(t time.Time) string {
	return t.Format(TermDateLayout)
}

// TermDate returns the explicitly chosen day, or the calendar day of now.
func TermDate(explicit *time.Time, now time.Time) time.Time {
	if explicit != nil {
		return *explicit
	}
	return now
}

// ComposeTerm builds the utm_term for a source. Standard sources get
// detail_DD-MM-YYYY, or the bare date when detail is empty. Any other term
// mode returns detail untouched.
func ComposeTerm(mode domain.TermConfig, detail string, date time.Time) string {
	if mode != domain.TermStandard {
		return detail
	}
	d := FormatTermDate(date)
	if detail == "" {
		return d
	}
	return detail + "_" + d
}

// TermParts is a term split back into its detail and date.
type TermParts struct {
	Detail string
	Date   string
}

// HasDate reports whether a date suffix was found.
func (p TermParts) HasDate() bool {
	return p.Date != Missing
}

// SplitTerm separates a trailing DD-MM-YYYY segment from the detail. Without
// such a segment the whole term is the detail and the date is Missing. A
// detail that itself ends in a date-shaped segment cannot be told apart.
func SplitTerm(term string) TermParts {
	if term == "" {
		return TermParts{Detail: Missing, Date: Missing}
	}
	parts := strings.Split(term, "_")
	last := parts[len(parts)-1]
	if !termDatePattern.MatchString(last) {
		return TermParts{Detail: term, Date: Missing}
	}
	detail := strings.Join(parts[:len(parts)-1], "_")
	if detail == "" {
		detail = Missing
	}
	return TermParts{Detail: detail, Date: last}
}
