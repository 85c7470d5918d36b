package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"viciolinks/internal/core/port"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

var deleted = map[string]string{"status": "deleted"}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// writeError maps use case errors onto status codes. Unexpected errors are
// logged and reported without detail.
func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, port.ErrNotFound):
		writeDetail(w, http.StatusNotFound, "not found")
	case errors.Is(err, port.ErrInvalidCredentials):
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeDetail(w, http.StatusUnauthorized, "incorrect username or password")
	case errors.Is(err, port.ErrInvalidToken):
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeDetail(w, http.StatusUnauthorized, "could not validate credentials")
	case errors.Is(err, port.ErrUserExists):
		writeDetail(w, http.StatusConflict, "username already registered")
	case errors.Is(err, port.ErrInvalidInput):
		writeDetail(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error(op+" failed", zap.Error(err))
		writeDetail(w, http.StatusInternalServerError, "internal error")
	}
}

// decode reads a JSON body into v and validates its struct tags. It writes
// a 400 and returns false on failure.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid JSON")
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		writeDetail(w, http.StatusBadRequest, validationDetail(err))
		return false
	}
	return true
}

func validationDetail(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fmt.Sprintf("field '%s' failed on '%s'", e.Namespace(), e.Tag()))
	}
	return strings.Join(msgs, "; ")
}
