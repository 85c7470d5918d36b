package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"viciolinks/internal/core/domain"
	"viciolinks/internal/core/port"
)

// handleGenerateLink creates a link on behalf of the authenticated user.
func (h *Handler) handleGenerateLink(w http.ResponseWriter, r *http.Request) {
	var req domain.LinkRequest
	if !h.decode(w, r, &req) {
		return
	}
	link, err := h.links.Generate(r.Context(), claimsFrom(r.Context()).Username, req)
	if err != nil {
		h.writeError(w, "generate link", err)
		return
	}
	writeJSON(w, http.StatusOK, link)
}

// handleListLinks lists links newest first. Supported query parameters are
// launch_id (the campaign slug), utm_source, utm_medium, link_type and
// limit.
func (h *Handler) handleListLinks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := port.LinkQuery{
		Campaign: q.Get("launch_id"),
		Source:   q.Get("utm_source"),
		Medium:   q.Get("utm_medium"),
		LinkType: domain.LinkType(q.Get("link_type")),
	}
	if query.LinkType != "" && !query.LinkType.Valid() {
		writeDetail(w, http.StatusBadRequest, "invalid link_type")
		return
	}
	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			writeDetail(w, http.StatusBadRequest, "invalid limit")
			return
		}
		query.Limit = n
	}

	links, err := h.links.List(r.Context(), query)
	if err != nil {
		h.writeError(w, "list links", err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(links))
}

func (h *Handler) handleDeleteLink(w http.ResponseWriter, r *http.Request) {
	if err := h.links.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, "delete link", err)
		return
	}
	writeJSON(w, http.StatusOK, deleted)
}
