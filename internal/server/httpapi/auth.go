package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/lifelog/internal/models"
)

func (s *HTTPServer) health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *HTTPServer) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.svc.Users.Register(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, resp)
}

func (s *HTTPServer) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := s.svc.Users.Login(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

func (s *HTTPServer) refresh(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.RefreshToken == "" {
		respondError(w, http.StatusBadRequest, "refreshToken is required")
		return
	}
	resp, err := s.svc.Users.RefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// logout revokes a refresh token. Unknown tokens are not an error.
func (s *HTTPServer) logout(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := s.svc.Users.Logout(r.Context(), req.RefreshToken); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) me(w http.ResponseWriter, r *http.Request) {
	p, err := s.svc.Users.Profile(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}
