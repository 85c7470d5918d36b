package utm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"viciolinks/internal/core/domain"
)

var nov5 = time.Date(2024, time.November, 5, 15, 30, 0, 0, time.Local)

func TestComposeTermStandard(t *testing.T) {
	assert.Equal(t, "webinar_05-11-2024", ComposeTerm(domain.TermStandard, "webinar", nov5))
	assert.Equal(t, "05-11-2024", ComposeTerm(domain.TermStandard, "", nov5))
}

func TestComposeTermPassThrough(t *testing.T) {
	assert.Equal(t, "webinar", ComposeTerm(domain.TermCustom, "webinar", nov5))
	assert.Equal(t, "", ComposeTerm(domain.TermCustom, "", nov5))
	assert.Equal(t, "raw_term", ComposeTerm("no_date", "raw_term", nov5))
}

func TestTermDateDefaultsToNow(t *testing.T) {
	now := time.Date(2026, time.October, 19, 9, 0, 0, 0, time.Local)
	assert.Equal(t, now, TermDate(nil, now))
	assert.Equal(t, nov5, TermDate(&nov5, now))
	assert.Equal(t, "19-10-2026", FormatTermDate(TermDate(nil, now)))
}

func TestSplitTerm(t *testing.T) {
	cases := []struct {
		term string
		want TermParts
	}{
		{"webinar_05-11-2024", TermParts{Detail: "webinar", Date: "05-11-2024"}},
		{"05-11-2024", TermParts{Detail: "-", Date: "05-11-2024"}},
		{"live_aula_1_05-11-2024", TermParts{Detail: "live_aula_1", Date: "05-11-2024"}},
		{"cta", TermParts{Detail: "cta", Date: "-"}},
		{"cta_05112024", TermParts{Detail: "cta_05112024", Date: "-"}},
		{"", TermParts{Detail: "-", Date: "-"}},
	}
	for _, tc := range cases {
		got := SplitTerm(tc.term)
		assert.Equal(t, tc.want, got, "SplitTerm(%q)", tc.term)
		assert.Equal(t, tc.want.Date != "-", got.HasDate())
	}
}

func TestComposeSplitRoundTrip(t *testing.T) {
	for _, detail := range []string{"webinar", "aula_01", "x"} {
		got := SplitTerm(ComposeTerm(domain.TermStandard, detail, nov5))
		assert.Equal(t, TermParts{Detail: detail, Date: "05-11-2024"}, got)
	}
}
