package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"viciolinks/internal/core/domain"
	"viciolinks/internal/core/port"
	"viciolinks/internal/metrics"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. Routes are registered on a chi.Router; every route except /token,
// /healthz and /metrics requires a bearer token.
type Handler struct {
	taxonomy port.TaxonomyUseCase
	links    port.LinkUseCase
	auth     port.AuthUseCase
	logger   *zap.Logger
	metrics  *metrics.Metrics
	validate *validator.Validate
	router   chi.Router
}

// Services groups the use cases served by the handler.
type Services struct {
	Taxonomy port.TaxonomyUseCase
	Links    port.LinkUseCase
	Auth     port.AuthUseCase
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc Services, logger *zap.Logger, m *metrics.Metrics) *Handler {
	h := &Handler{
		taxonomy: svc.Taxonomy,
		links:    svc.Links,
		auth:     svc.Auth,
		logger:   logger,
		metrics:  m,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, h.accessLog, middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Post("/token", h.handleToken)

	r.Group(func(r chi.Router) {
		r.Use(h.authenticate)

		r.Get("/users/me", h.handleMe)
		r.Group(func(r chi.Router) {
			r.Use(requireRole(domain.Role.IsAdmin))
			r.Get("/users", h.handleListUsers)
			r.Post("/users", h.handleCreateUser)
			r.Put("/users/{username}", h.handleUpdateUser)
			r.Delete("/users/{username}", h.handleDeleteUser)
		})

		for _, kind := range domain.TaxonomyKinds {
			r.Get("/"+kind.String(), h.handleListItems(kind))
			r.With(requireRole(domain.Role.IsAdmin)).Post("/"+kind.String(), h.handleSaveItem(kind))
			r.With(requireRole(domain.Role.IsAdmin)).Delete("/"+kind.String()+"/{slug}", h.handleDeleteItem(kind))
		}

		r.Get("/source-configs", h.handleListSourceConfigs)
		r.With(requireRole(domain.Role.IsAdmin)).Post("/source-configs", h.handleSaveSourceConfig)
		r.With(requireRole(domain.Role.IsAdmin)).Delete("/source-configs/{slug}", h.handleDeleteSourceConfig)

		r.Get("/launches", h.handleListLaunches)
		r.With(requireRole(domain.Role.CanEdit)).Post("/launches", h.handleSaveLaunch)
		r.With(requireRole(domain.Role.CanEdit)).Delete("/launches/{slug}", h.handleDeleteLaunch)

		r.Get("/links", h.handleListLinks)
		r.With(requireRole(domain.Role.CanEdit)).Post("/links/generate", h.handleGenerateLink)
		r.With(requireRole(domain.Role.CanEdit)).Delete("/links/{id}", h.handleDeleteLink)
	})

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// unmatchedRoute labels requests no route matched. Raw paths are never
// used as labels.
const unmatchedRoute = "unmatched"

// accessLog logs every request and counts it by route pattern.
func (h *Handler) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			route := unmatchedRoute
			if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
				route = rc.RoutePattern()
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			h.metrics.ObserveRequest(route, r.Method, status)
			h.logger.Debug("request",
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("route", route),
				zap.Int("status", status),
				zap.Duration("duration", time.Since(start)),
			)
		}()
		next.ServeHTTP(ww, r)
	})
}
