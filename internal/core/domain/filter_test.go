package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkFilterMatches(t *testing.T) {
	link := Link{
		ID:          "LNK1",
		FullURL:     "https://lp.example.com/?utm_source=instagram",
		UTMCampaign: "vde1f_120d_evento_11-24",
		UTMSource:   "instagram",
		UTMMedium:   "stories",
		UTMContent:  "bio",
		UTMTerm:     "Webinar_05-11-2024",
	}

	cases := []struct {
		name   string
		filter LinkFilter
		want   bool
	}{
		{"empty filter matches all", LinkFilter{}, true},
		{"different source excludes", LinkFilter{Source: "facebook", Medium: "stories"}, false},
		{"all equal", LinkFilter{Campaign: "vde1f_120d_evento_11-24", Source: "instagram", Medium: "stories", Content: "bio"}, true},
		{"search id case-insensitive", LinkFilter{Search: "lnk1"}, true},
		{"search url", LinkFilter{Search: "LP.EXAMPLE"}, true},
		{"search miss", LinkFilter{Search: "nowhere"}, false},
		{"medium exact only", LinkFilter{Medium: "Stories"}, false},
		{"content mismatch", LinkFilter{Content: "feed"}, false},
		{"term substring case-insensitive", LinkFilter{Term: "webinar"}, true},
		{"term miss", LinkFilter{Term: "live"}, false},
		{"campaign mismatch", LinkFilter{Campaign: "other"}, false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.filter.Matches(link))
		})
	}
}

func TestLinkFilterTermRequiresTerm(t *testing.T) {
	assert.False(t, LinkFilter{Term: "x"}.Matches(Link{ID: "a"}))
}

func TestLinkFilterApplyKeepsOrder(t *testing.T) {
	links := []Link{
		{ID: "a", UTMSource: "email"},
		{ID: "b", UTMSource: "instagram"},
		{ID: "c", UTMSource: "email"},
	}
	got := LinkFilter{Source: "email"}.Apply(links)
	assert.Equal(t, []Link{links[0], links[2]}, got)
	assert.Empty(t, LinkFilter{Source: "site"}.Apply(links))
}
