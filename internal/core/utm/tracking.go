package utm

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"viciolinks/internal/core/domain"
)

// Tracking parameter names.
const (
	ParamSource   = "utm_source"
	ParamMedium   = "utm_medium"
	ParamCampaign = "utm_campaign"
	ParamContent  = "utm_content"
	ParamTerm     = "utm_term"
	ParamID       = "utm_id"
	ParamXcode    = "xcode"
	ParamSrc      = "src"
	ParamSck      = "sck"
)

var reservedParams = map[string]struct{}{
	ParamSource: {}, ParamMedium: {}, ParamCampaign: {}, ParamContent: {}, ParamTerm: {},
	ParamID: {}, ParamXcode: {}, ParamSrc: {}, ParamSck: {},
}

// FormatLinkID renders the n-th link id, e.g. lnk_000042.
func FormatLinkID(n int64) string {
	return fmt.Sprintf("lnk_%06d", n)
}

// Param is one query parameter. Params keep insertion order.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered parameter list.
type Params []Param

// Get returns the value of key.
func (p Params) Get(key string) (string, bool) {
	for _, kv := range p {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// TrackingInput holds normalised UTM values and the link id.
type TrackingInput struct {
	LinkType domain.LinkType
	Source   string
	Medium   string
	Campaign string
	Content  string
	Term     string
	ID       string
}

// VendasFields are the checkout parameters of a sales link. All nil for
// capture links.
type VendasFields struct {
	Src   *string
	Sck   *string
	Xcode *string
}

// BuildTrackingParams returns the query parameters of a link. Capture links
// carry utm_id. Sales links drop utm_id and carry xcode (the link id),
// src (source_content) and sck (medium) for the checkout.
func BuildTrackingParams(in TrackingInput) (Params, VendasFields) {
	params := Params{
		{ParamSource, in.Source},
		{ParamMedium, in.Medium},
		{ParamCampaign, in.Campaign},
		{ParamContent, in.Content},
		{ParamTerm, in.Term},
	}
	if in.LinkType != domain.LinkVendas {
		return append(params, Param{ParamID, in.ID}), VendasFields{}
	}

	src := strings.Trim(in.Source+"_"+in.Content, "_")
	sck := in.Medium
	xcode := in.ID
	params = append(params,
		Param{ParamXcode, xcode},
		Param{ParamSrc, src},
		Param{ParamSck, sck},
	)
	return params, VendasFields{Src: &src, Sck: &sck, Xcode: &xcode}
}

// BuildFullURL joins base and path with a single slash and appends the
// non-empty params followed by the custom params sorted by key. Custom
// params never override tracking parameters.
func BuildFullURL(base, path string, params Params, custom map[string]string) string {
	full := strings.TrimRight(base, "/")
	if p := strings.TrimLeft(path, "/"); p != "" {
		full += "/" + p
	}

	pairs := make([]string, 0, len(params)+len(custom))
	for _, kv := range params {
		if kv.Value != "" {
			pairs = append(pairs, url.QueryEscape(kv.Key)+"="+url.QueryEscape(kv.Value))
		}
	}

	keys := make([]string, 0, len(custom))
	for k := range custom {
		if _, reserved := reservedParams[k]; !reserved {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		if v := custom[k]; v != "" {
			pairs = append(pairs, url.QueryEscape(k)+"="+url.QueryEscape(v))
		}
	}

	if len(pairs) == 0 {
		return full
	}
	sep := "?"
	if strings.Contains(full, "?") {
		sep = "&"
	}
	return full + sep + strings.Join(pairs, "&")
}
