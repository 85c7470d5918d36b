package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"viciolinks/internal/config/configs"
	"viciolinks/internal/console"
	"viciolinks/internal/core/domain"
)

type backend struct {
	mu        sync.Mutex
	users     map[string]domain.User
	links     []domain.Link
	generated []domain.LinkRequest
}

func (b *backend) router() http.Handler {
	r := chi.NewRouter()
	r.Get("/source-configs", func(w http.ResponseWriter, _ *http.Request) {
		email := domain.NewSourceConfig("email", "Email", domain.TermStandard)
		email.Config.Mediums = []domain.Option{{Slug: "newsletter", Name: "Newsletter"}}
		email.Config.Contents = []domain.Option{{Slug: "lista_atual", Name: "Lista Atual"}}
		writeTestJSON(w, http.StatusOK, []domain.SourceConfig{email})
	})
	r.Post("/links/generate", func(w http.ResponseWriter, r *http.Request) {
		var req domain.LinkRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		b.mu.Lock()
		defer b.mu.Unlock()
		b.generated = append(b.generated, req)
		link := domain.Link{
			ID:          "lnk_000001",
			UTMSource:   req.UTMSource,
			UTMMedium:   req.UTMMedium,
			UTMCampaign: req.UTMCampaign,
			UTMContent:  req.UTMContent,
			UTMTerm:     req.UTMTerm,
			FullURL:     req.BaseURL + "?utm_source=" + req.UTMSource,
		}
		b.links = append(b.links, link)
		writeTestJSON(w, http.StatusOK, link)
	})
	r.Get("/links", func(w http.ResponseWriter, _ *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeTestJSON(w, http.StatusOK, b.links)
	})
	r.Put("/users/{username}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.users[chi.URLParam(r, "username")]; !ok {
			writeTestJSON(w, http.StatusNotFound, map[string]string{"detail": "not found"})
			return
		}
		writeTestJSON(w, http.StatusOK, b.users[chi.URLParam(r, "username")])
	})
	r.Post("/users", func(w http.ResponseWriter, r *http.Request) {
		var in domain.UserInput
		_ = json.NewDecoder(r.Body).Decode(&in)
		b.mu.Lock()
		defer b.mu.Unlock()
		u := domain.User{Username: in.Username, Role: in.Role}
		b.users[in.Username] = u
		writeTestJSON(w, http.StatusOK, u)
	})
	return r
}

func writeTestJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newTestApp(t *testing.T) (*backend, *app) {
	b := &backend{users: map[string]domain.User{}}
	srv := httptest.NewServer(b.router())
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	tokens := &console.MemoryTokenStore{}
	require.NoError(t, tokens.SetToken("token"))
	client := console.NewClient(configs.Client{APIURL: *u, Timeout: 5 * time.Second}, tokens, zap.NewNop())
	return b, &app{
		logger: zap.NewNop(),
		client: client,
		store:  console.NewStore(client),
		now:    func() time.Time { return time.Date(2026, 2, 12, 9, 0, 0, 0, time.UTC) },
	}
}

func execute(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(a)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCampaignPreview(t *testing.T) {
	_, a := newTestApp(t)

	out, err := execute(t, a, "campaign", "preview", "--product", "vde1f", "--turma", "120d", "--type", "passariano", "--month", "3", "--year", "2026")
	require.NoError(t, err)
	assert.Equal(t, "vde1f_120d_passariano_03-26\n", out)

	out, err = execute(t, a, "campaign", "preview", "--product", "vde1f")
	require.NoError(t, err)
	assert.Equal(t, "...\n", out)
}

func TestGenerateLink(t *testing.T) {
	b, a := newTestApp(t)

	out, err := execute(t, a, "links", "generate",
		"--base-url", "https://example.com", "--source", "email", "--medium", "newsletter",
		"--content", "lista_atual", "--campaign", "vde1f_120d_evento_02-26", "--term", "abertura",
		"--param", "ref=promo")
	require.NoError(t, err)
	assert.Contains(t, out, "lnk_000001")

	b.mu.Lock()
	defer b.mu.Unlock()
	require.Len(t, b.generated, 1)
	req := b.generated[0]
	assert.Equal(t, domain.LinkCaptacao, req.LinkType)
	assert.Equal(t, "abertura_12-02-2026", req.UTMTerm)
	assert.Equal(t, "12-02-2026", req.DynamicFields[domain.FieldDate])
	assert.Equal(t, map[string]string{"ref": "promo"}, req.CustomParams)
}

func TestGenerateLinkRejectsUnknownMedium(t *testing.T) {
	b, a := newTestApp(t)

	_, err := execute(t, a, "links", "generate",
		"--base-url", "https://example.com", "--source", "email", "--medium", "whatsapp",
		"--campaign", "vde1f_120d_evento_02-26")
	require.ErrorIs(t, err, console.ErrUnknownOption)

	_, err = execute(t, a, "links", "generate",
		"--base-url", "https://example.com", "--source", "sms", "--medium", "newsletter",
		"--campaign", "vde1f_120d_evento_02-26")
	require.ErrorIs(t, err, console.ErrUnknownSource)

	b.mu.Lock()
	defer b.mu.Unlock()
	assert.Empty(t, b.generated)
}

func TestGenerateLinkBadDate(t *testing.T) {
	_, a := newTestApp(t)

	_, err := execute(t, a, "links", "generate",
		"--base-url", "https://example.com", "--source", "email", "--medium", "newsletter",
		"--campaign", "c", "--date", "2026-02-12")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DD-MM-YYYY")
}

func TestListAndExportLinks(t *testing.T) {
	b, a := newTestApp(t)
	b.links = []domain.Link{
		{ID: "lnk_000002", UTMCampaign: "a", UTMSource: "email", UTMMedium: "newsletter", FullURL: "https://x/?a"},
		{ID: "lnk_000001", UTMCampaign: "b", UTMSource: "whatsapp", UTMMedium: "grupo", FullURL: "https://x/?b"},
	}

	out, err := execute(t, a, "links", "list", "--source", "email")
	require.NoError(t, err)
	assert.Contains(t, out, "lnk_000002")
	assert.NotContains(t, out, "lnk_000001")

	dir := t.TempDir()
	out, err = execute(t, a, "links", "export", "--dir", dir, "--campaign", "b")
	require.NoError(t, err)
	path := strings.TrimSpace(out)
	assert.Equal(t, filepath.Join(dir, "viciolinks_export_2026-02-12.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"lnk_000001"`)
	assert.NotContains(t, string(data), "lnk_000002")

	_, err = execute(t, a, "links", "export", "--dir", dir, "--campaign", "none")
	require.ErrorIs(t, err, console.ErrNothingToExport)
}

func TestUsersSaveCreatesMissingAccount(t *testing.T) {
	b, a := newTestApp(t)

	out, err := execute(t, a, "users", "save", "bia", "--password", "pw", "--role", "viewer")
	require.NoError(t, err)
	assert.Equal(t, "saved bia (viewer)\n", out)

	b.mu.Lock()
	defer b.mu.Unlock()
	assert.Equal(t, domain.RoleViewer, b.users["bia"].Role)
}

func TestTaxonomyRejectsUnknownKind(t *testing.T) {
	_, a := newTestApp(t)

	_, err := execute(t, a, "taxonomy", "list", "colors")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown taxonomy")
}
