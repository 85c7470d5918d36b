package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	m := New()
	m.LinkGenerated("vendas")
	m.LinkGenerated("vendas")
	m.ObserveRequest("/links", http.MethodGet, http.StatusOK)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.linksGenerated.WithLabelValues("vendas")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/links", "GET", "200")))
}

func TestHandlerExposesCounters(t *testing.T) {
	m := New()
	m.LinkGenerated("captacao")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `viciolinks_links_generated_total{link_type="captacao"} 1`))
}
