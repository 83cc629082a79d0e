package httpapi

import (
	"net/http"
	"strings"

	"github.com/dmitrijs2005/lifelog/internal/models"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/tastes"
	"github.com/gorilla/mux"
)

func (s *HTTPServer) createTaste(w http.ResponseWriter, r *http.Request) {
	var t models.Taste
	if !decodeJSON(w, r, &t) {
		return
	}
	created, err := s.svc.Tastes.Create(r.Context(), UserIDFromContext(r.Context()), &t)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *HTTPServer) updateTaste(w http.ResponseWriter, r *http.Request) {
	var t models.Taste
	if !decodeJSON(w, r, &t) {
		return
	}
	updated, err := s.svc.Tastes.Update(r.Context(), UserIDFromContext(r.Context()), mux.Vars(r)["id"], &t)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (s *HTTPServer) deleteTaste(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Tastes.Delete(r.Context(), UserIDFromContext(r.Context()), mux.Vars(r)["id"]); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) getTaste(w http.ResponseWriter, r *http.Request) {
	t, err := s.svc.Tastes.Get(r.Context(), UserIDFromContext(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, t)
}

func (s *HTTPServer) listTastes(w http.ResponseWriter, r *http.Request) {
	s.respondTastes(w, r, tastes.Filter{})
}

func (s *HTTPServer) tastesByRating(w http.ResponseWriter, r *http.Request) {
	s.respondTastes(w, r, tastes.Filter{SortByRating: true})
}

func (s *HTTPServer) searchTastes(w http.ResponseWriter, r *http.Request) {
	s.respondTastes(w, r, tastes.Filter{Query: strings.TrimSpace(r.URL.Query().Get("q"))})
}

func (s *HTTPServer) filterTastes(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var f tastes.Filter
	switch vars["field"] {
	case "type":
		t, err := models.ParseTasteType(vars["value"])
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		f.Type = t
	case "tag":
		f.Tag = vars["value"]
	case "phase":
		f.Phase = vars["value"]
	}
	s.respondTastes(w, r, f)
}

func (s *HTTPServer) respondTastes(w http.ResponseWriter, r *http.Request, f tastes.Filter) {
	list, err := s.svc.Tastes.List(r.Context(), UserIDFromContext(r.Context()), f)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}
