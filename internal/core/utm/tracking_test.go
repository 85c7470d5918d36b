package utm

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viciolinks/internal/core/domain"
)

func TestFormatLinkID(t *testing.T) {
	assert.Equal(t, "lnk_000001", FormatLinkID(1))
	assert.Equal(t, "lnk_000123", FormatLinkID(123))
	assert.Equal(t, "lnk_1234567", FormatLinkID(1234567))
}

func TestBuildTrackingParamsCaptacao(t *testing.T) {
	params, vendas := BuildTrackingParams(TrackingInput{
		LinkType: domain.LinkCaptacao,
		Source:   "instagram", Medium: "feed", Campaign: "campanha_2026",
		Content: "bio", Term: "cta_12-02-2026", ID: "lnk_000123",
	})

	id, ok := params.Get(ParamID)
	assert.True(t, ok)
	assert.Equal(t, "lnk_000123", id)
	for _, k := range []string{ParamXcode, ParamSrc, ParamSck} {
		_, ok = params.Get(k)
		assert.False(t, ok, k)
	}
	assert.Nil(t, vendas.Src)
	assert.Nil(t, vendas.Sck)
	assert.Nil(t, vendas.Xcode)
}

func TestBuildTrackingParamsVendas(t *testing.T) {
	params, vendas := BuildTrackingParams(TrackingInput{
		LinkType: domain.LinkVendas,
		Source:   "instagram", Medium: "feed", Campaign: "campanha_2026",
		Content: "bio", Term: "cta_12-02-2026", ID: "lnk_000123",
	})

	_, ok := params.Get(ParamID)
	assert.False(t, ok)
	xcode, _ := params.Get(ParamXcode)
	src, _ := params.Get(ParamSrc)
	sck, _ := params.Get(ParamSck)
	assert.Equal(t, "lnk_000123", xcode)
	assert.Equal(t, "instagram_bio", src)
	assert.Equal(t, "feed", sck)

	require.NotNil(t, vendas.Src)
	assert.Equal(t, "instagram_bio", *vendas.Src)
	assert.Equal(t, "feed", *vendas.Sck)
	assert.Equal(t, "lnk_000123", *vendas.Xcode)
}

func TestBuildTrackingParamsVendasWithoutContent(t *testing.T) {
	_, vendas := BuildTrackingParams(TrackingInput{LinkType: domain.LinkVendas, Source: "site", Medium: "banner", ID: "lnk_000001"})
	assert.Equal(t, "site", *vendas.Src)
}

func TestBuildFullURLVendas(t *testing.T) {
	params, _ := BuildTrackingParams(TrackingInput{
		LinkType: domain.LinkVendas,
		Source:   "email", Medium: "newsletter", Campaign: "lanc_0226",
		Content: "lista_atual", Term: "sequencia_12-02-2026", ID: "lnk_000999",
	})
	full := BuildFullURL("https://lp.exemplo.com", "/checkout", params, nil)

	u, err := url.Parse(full)
	require.NoError(t, err)
	assert.Equal(t, "/checkout", u.Path)
	q := u.Query()
	assert.Equal(t, "email", q.Get("utm_source"))
	assert.Equal(t, "newsletter", q.Get("utm_medium"))
	assert.Equal(t, "lanc_0226", q.Get("utm_campaign"))
	assert.Equal(t, "lista_atual", q.Get("utm_content"))
	assert.Equal(t, "sequencia_12-02-2026", q.Get("utm_term"))
	assert.Equal(t, "lnk_000999", q.Get("xcode"))
	assert.Equal(t, "email_lista_atual", q.Get("src"))
	assert.Equal(t, "newsletter", q.Get("sck"))
	assert.False(t, q.Has("utm_id"))
}

func TestBuildFullURLCustomParams(t *testing.T) {
	params := Params{{ParamSource, "whatsapp"}, {ParamContent, ""}, {ParamID, "lnk_000002"}}
	full := BuildFullURL("https://lp.exemplo.com/", "oferta", params, map[string]string{
		"coupon": "ABC",
		"utm_id": "should_not_win",
		"aff":    "",
		"b":      "2",
	})
	assert.Equal(t, "https://lp.exemplo.com/oferta?utm_source=whatsapp&utm_id=lnk_000002&b=2&coupon=ABC", full)
}

func TestBuildFullURLExistingQuery(t *testing.T) {
	full := BuildFullURL("https://lp.exemplo.com/?ref=1", "", Params{{ParamSource, "site"}}, nil)
	assert.Equal(t, "https://lp.exemplo.com/?ref=1&utm_source=site", full)
	assert.Equal(t, "https://lp.exemplo.com", BuildFullURL("https://lp.exemplo.com/", "/", nil, nil))
}
