package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"viciolinks/internal/core/domain"
)

func (h *Handler) handleListItems(kind domain.TaxonomyKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.taxonomy.ListItems(r.Context(), kind)
		if err != nil {
			h.writeError(w, "list "+kind.String(), err)
			return
		}
		writeJSON(w, http.StatusOK, nonNil(items))
	}
}

func (h *Handler) handleSaveItem(kind domain.TaxonomyKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item domain.TaxonomyItem
		if !h.decode(w, r, &item) {
			return
		}
		saved, err := h.taxonomy.SaveItem(r.Context(), kind, item)
		if err != nil {
			h.writeError(w, "save "+kind.String(), err)
			return
		}
		writeJSON(w, http.StatusOK, saved)
	}
}

func (h *Handler) handleDeleteItem(kind domain.TaxonomyKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.taxonomy.DeleteItem(r.Context(), kind, chi.URLParam(r, "slug")); err != nil {
			h.writeError(w, "delete "+kind.String(), err)
			return
		}
		writeJSON(w, http.StatusOK, deleted)
	}
}

func (h *Handler) handleListSourceConfigs(w http.ResponseWriter, r *http.Request) {
	sources, err := h.taxonomy.ListSourceConfigs(r.Context())
	if err != nil {
		h.writeError(w, "list source configs", err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(sources))
}

// handleSaveSourceConfig replaces the whole source document.
func (h *Handler) handleSaveSourceConfig(w http.ResponseWriter, r *http.Request) {
	var src domain.SourceConfig
	if !h.decode(w, r, &src) {
		return
	}
	saved, err := h.taxonomy.SaveSourceConfig(r.Context(), src)
	if err != nil {
		h.writeError(w, "save source config", err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (h *Handler) handleDeleteSourceConfig(w http.ResponseWriter, r *http.Request) {
	if err := h.taxonomy.DeleteSourceConfig(r.Context(), chi.URLParam(r, "slug")); err != nil {
		h.writeError(w, "delete source config", err)
		return
	}
	writeJSON(w, http.StatusOK, deleted)
}

func (h *Handler) handleListLaunches(w http.ResponseWriter, r *http.Request) {
	launches, err := h.taxonomy.ListLaunches(r.Context())
	if err != nil {
		h.writeError(w, "list launches", err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(launches))
}

func (h *Handler) handleSaveLaunch(w http.ResponseWriter, r *http.Request) {
	var launch domain.Launch
	if !h.decode(w, r, &launch) {
		return
	}
	saved, err := h.taxonomy.SaveLaunch(r.Context(), launch)
	if err != nil {
		h.writeError(w, "save launch", err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (h *Handler) handleDeleteLaunch(w http.ResponseWriter, r *http.Request) {
	if err := h.taxonomy.DeleteLaunch(r.Context(), chi.URLParam(r, "slug")); err != nil {
		h.writeError(w, "delete launch", err)
		return
	}
	writeJSON(w, http.StatusOK, deleted)
}
