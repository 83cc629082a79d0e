package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/lifelog/internal/models"
	"github.com/gorilla/mux"
)

func (s *HTTPServer) createPhase(w http.ResponseWriter, r *http.Request) {
	var p models.LifePhase
	if !decodeJSON(w, r, &p) {
		return
	}
	created, err := s.svc.Phases.Create(r.Context(), UserIDFromContext(r.Context()), &p)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *HTTPServer) updatePhase(w http.ResponseWriter, r *http.Request) {
	var p models.LifePhase
	if !decodeJSON(w, r, &p) {
		return
	}
	updated, err := s.svc.Phases.Update(r.Context(), UserIDFromContext(r.Context()), mux.Vars(r)["id"], &p)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (s *HTTPServer) deletePhase(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Phases.Delete(r.Context(), UserIDFromContext(r.Context()), mux.Vars(r)["id"]); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) getPhase(w http.ResponseWriter, r *http.Request) {
	p, err := s.svc.Phases.Get(r.Context(), UserIDFromContext(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (s *HTTPServer) listPhases(w http.ResponseWriter, r *http.Request) {
	list, err := s.svc.Phases.List(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}
