package console

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"viciolinks/internal/config/configs"
	"viciolinks/internal/core/domain"
)

const testToken = "tok"

// fakeBackend is an in-memory stand-in for the REST API.
type fakeBackend struct {
	mu sync.Mutex

	items    map[domain.TaxonomyKind][]domain.TaxonomyItem
	sources  []domain.SourceConfig
	launches []domain.Launch
	links    []domain.Link

	failSave  bool
	requests  []string
	queries   []url.Values
	generated []domain.LinkRequest
}

func newFakeBackend(t *testing.T) (*fakeBackend, *Client, *MemoryTokenStore) {
	f := &fakeBackend{
		items: map[domain.TaxonomyKind][]domain.TaxonomyItem{
			domain.KindProducts:    {{Slug: "vde1f", Name: "VDE1F"}},
			domain.KindTurmas:      {{Slug: "120d", Name: "120d"}},
			domain.KindLaunchTypes: {{Slug: "evento", Name: "Evento"}},
		},
	}
	email := domain.NewSourceConfig("email", "Email", domain.TermStandard)
	email.Config.Mediums = []domain.Option{{Slug: "newsletter", Name: "Newsletter"}}
	email.Config.Contents = []domain.Option{{Slug: "lista_atual", Name: "Lista Atual"}}
	site := domain.NewSourceConfig("site", "Site", domain.TermCustom)
	f.sources = []domain.SourceConfig{email, site, {Slug: "bare", Name: "Bare"}}

	srv := httptest.NewServer(f.router())
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	tokens := &MemoryTokenStore{}
	_ = tokens.SetToken(testToken)
	client := NewClient(configs.Client{APIURL: *u, Timeout: 5 * time.Second}, tokens, zap.NewNop())
	return f, client, tokens
}

func (f *fakeBackend) router() http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			f.requests = append(f.requests, r.Method+" "+r.URL.Path)
			f.queries = append(f.queries, r.URL.Query())
			f.mu.Unlock()
			next.ServeHTTP(w, r)
		})
	})

	r.Post("/token", func(w http.ResponseWriter, r *http.Request) {
		if r.FormValue("username") != "ana" || r.FormValue("password") != "pw" {
			reply(w, http.StatusUnauthorized, map[string]string{"detail": "incorrect username or password"})
			return
		}
		reply(w, http.StatusOK, map[string]string{"access_token": testToken, "token_type": "bearer", "role": "admin"})
	})

	r.Group(func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Header.Get("Authorization") != "Bearer "+testToken {
					reply(w, http.StatusUnauthorized, map[string]string{"detail": "not authenticated"})
					return
				}
				next.ServeHTTP(w, r)
			})
		})

		r.Get("/users/me", func(w http.ResponseWriter, r *http.Request) {
			reply(w, http.StatusOK, domain.User{Username: "ana", Role: domain.RoleAdmin})
		})

		for _, kind := range domain.TaxonomyKinds {
			kind := kind
			r.Get("/"+kind.String(), func(w http.ResponseWriter, r *http.Request) {
				f.mu.Lock()
				defer f.mu.Unlock()
				reply(w, http.StatusOK, f.items[kind])
			})
			r.Post("/"+kind.String(), func(w http.ResponseWriter, r *http.Request) {
				var item domain.TaxonomyItem
				_ = json.NewDecoder(r.Body).Decode(&item)
				f.mu.Lock()
				defer f.mu.Unlock()
				f.items[kind] = upsert(f.items[kind], item, func(a domain.TaxonomyItem) string { return a.Slug })
				reply(w, http.StatusOK, item)
			})
			r.Delete("/"+kind.String()+"/{slug}", func(w http.ResponseWriter, r *http.Request) {
				f.mu.Lock()
				defer f.mu.Unlock()
				slug := chi.URLParam(r, "slug")
				f.items[kind] = slices.DeleteFunc(f.items[kind], func(a domain.TaxonomyItem) bool { return a.Slug == slug })
				reply(w, http.StatusOK, map[string]string{"status": "deleted"})
			})
		}

		r.Get("/source-configs", func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			defer f.mu.Unlock()
			reply(w, http.StatusOK, f.sources)
		})
		r.Post("/source-configs", func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if f.failSave {
				reply(w, http.StatusInternalServerError, map[string]string{"detail": "boom"})
				return
			}
			var src domain.SourceConfig
			_ = json.NewDecoder(r.Body).Decode(&src)
			f.sources = upsert(f.sources, src, func(a domain.SourceConfig) string { return a.Slug })
			reply(w, http.StatusOK, src)
		})
		r.Delete("/source-configs/{slug}", func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			defer f.mu.Unlock()
			slug := chi.URLParam(r, "slug")
			f.sources = slices.DeleteFunc(f.sources, func(a domain.SourceConfig) bool { return a.Slug == slug })
			reply(w, http.StatusOK, map[string]string{"status": "deleted"})
		})

		r.Get("/launches", func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			defer f.mu.Unlock()
			reply(w, http.StatusOK, f.launches)
		})
		r.Post("/launches", func(w http.ResponseWriter, r *http.Request) {
			var l domain.Launch
			_ = json.NewDecoder(r.Body).Decode(&l)
			f.mu.Lock()
			defer f.mu.Unlock()
			f.launches = upsert(f.launches, l, func(a domain.Launch) string { return a.Slug })
			reply(w, http.StatusOK, l)
		})

		r.Get("/links", func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			defer f.mu.Unlock()
			reply(w, http.StatusOK, f.links)
		})
		r.Post("/links/generate", func(w http.ResponseWriter, r *http.Request) {
			var req domain.LinkRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			f.mu.Lock()
			defer f.mu.Unlock()
			f.generated = append(f.generated, req)
			link := domain.Link{
				ID:          fmt.Sprintf("lnk_%06d", len(f.generated)),
				UTMSource:   req.UTMSource,
				UTMMedium:   req.UTMMedium,
				UTMCampaign: req.UTMCampaign,
				UTMContent:  req.UTMContent,
				UTMTerm:     req.UTMTerm,
				FullURL:     req.BaseURL + "?utm_source=" + req.UTMSource,
			}
			f.links = append([]domain.Link{link}, f.links...)
			reply(w, http.StatusOK, link)
		})
		r.Delete("/links/{id}", func(w http.ResponseWriter, r *http.Request) {
			reply(w, http.StatusNotFound, map[string]string{"detail": "not found"})
		})
	})
	return r
}

func (f *fakeBackend) source(slug string) (domain.SourceConfig, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.sources {
		if s.Slug == slug {
			return s, true
		}
	}
	return domain.SourceConfig{}, false
}

func (f *fakeBackend) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func upsert[T any](list []T, v T, key func(T) string) []T {
	for i := range list {
		if key(list[i]) == key(v) {
			list[i] = v
			return list
		}
	}
	return append(list, v)
}

func reply(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (f *fakeBackend) setFailSave(fail bool) {
	f.mu.Lock()
	f.failSave = fail
	f.mu.Unlock()
}

func (f *fakeBackend) lastQuery() url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queries[len(f.queries)-1]
}

func (f *fakeBackend) lastGenerated() domain.LinkRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.generated[len(f.generated)-1]
}
