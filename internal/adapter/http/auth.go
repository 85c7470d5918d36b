package httpadapter

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"viciolinks/internal/core/domain"
	"viciolinks/internal/core/port"
)

type claimsKey struct{}

func claimsFrom(ctx context.Context) *port.Claims {
	c, _ := ctx.Value(claimsKey{}).(*port.Claims)
	return c
}

// authenticate validates the bearer token and stores its claims in the
// request context.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
		if !ok || !strings.EqualFold(scheme, "bearer") || token == "" {
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeDetail(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		claims, err := h.auth.ParseToken(token)
		if err != nil {
			h.writeError(w, "parse token", err)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey{}, claims)))
	})
}

// requireRole rejects callers whose role does not satisfy allowed.
func requireRole(allowed func(domain.Role) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c := claimsFrom(r.Context())
			if c == nil || !allowed(c.Role) {
				writeDetail(w, http.StatusForbidden, "insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// handleToken exchanges form-encoded credentials for an access token.
func (h *Handler) handleToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid form")
		return
	}
	username, password := r.PostForm.Get("username"), r.PostForm.Get("password")
	if username == "" || password == "" {
		writeDetail(w, http.StatusBadRequest, "username and password are required")
		return
	}
	token, err := h.auth.Login(r.Context(), username, password)
	if err != nil {
		h.writeError(w, "login", err)
		return
	}
	writeJSON(w, http.StatusOK, token)
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.Me(r.Context(), claimsFrom(r.Context()).Username)
	if err != nil {
		h.writeError(w, "me", err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.auth.ListUsers(r.Context())
	if err != nil {
		h.writeError(w, "list users", err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(users))
}

func (h *Handler) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var in domain.UserInput
	if !h.decode(w, r, &in) {
		return
	}
	user, err := h.auth.CreateUser(r.Context(), in)
	if err != nil {
		h.writeError(w, "create user", err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	var in domain.UserInput
	if !h.decode(w, r, &in) {
		return
	}
	user, err := h.auth.UpdateUser(r.Context(), username, in)
	if err != nil {
		h.writeError(w, "update user", err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == claimsFrom(r.Context()).Username {
		writeDetail(w, http.StatusBadRequest, "cannot delete your own account")
		return
	}
	if err := h.auth.DeleteUser(r.Context(), username); err != nil {
		h.writeError(w, "delete user", err)
		return
	}
	writeJSON(w, http.StatusOK, deleted)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
