package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/lifelog/internal/common"
	"github.com/dmitrijs2005/lifelog/internal/models"
)

// maxJSONBody caps every JSON request body.
const maxJSONBody = 1 << 20

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, models.ErrorResponse{Message: message})
}

// statusFor maps service errors onto HTTP statuses. Messages of 5xx errors
// are never shown to clients.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrValidation), errors.Is(err, common.ErrUnsupportedMedia):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, common.ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge, err.Error()
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrRefreshTokenExpired):
		return http.StatusUnauthorized, unwrapMessage(err)
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, common.ErrorNotFound.Error()
	case errors.Is(err, common.ErrAlreadyExists):
		return http.StatusConflict, err.Error()
	default:
		return http.StatusInternalServerError, common.ErrorInternal.Error()
	}
}

// unwrapMessage hides token parser details behind the sentinel's text.
func unwrapMessage(err error) string {
	for _, s := range []error{common.ErrTokenExpired, common.ErrRefreshTokenExpired, common.ErrInvalidToken} {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return common.ErrorUnauthorized.Error()
}

func (s *HTTPServer) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	respondError(w, status, msg)
}

// decodeJSON reads the body into v and answers 400 itself on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			respondError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return false
	}
	return true
}
