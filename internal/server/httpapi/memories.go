package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/lifelog/internal/models"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/memories"
	"github.com/gorilla/mux"
)

func (s *HTTPServer) createMemory(w http.ResponseWriter, r *http.Request) {
	var m models.Memory
	if !decodeJSON(w, r, &m) {
		return
	}
	created, err := s.svc.Memories.Create(r.Context(), UserIDFromContext(r.Context()), &m)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *HTTPServer) deleteMemory(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Memories.Delete(r.Context(), UserIDFromContext(r.Context()), mux.Vars(r)["id"]); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) getMemory(w http.ResponseWriter, r *http.Request) {
	m, err := s.svc.Memories.Get(r.Context(), UserIDFromContext(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, m)
}

func (s *HTTPServer) listMemories(w http.ResponseWriter, r *http.Request) {
	s.respondMemories(w, r, memories.Filter{})
}

func (s *HTTPServer) filterMemories(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var f memories.Filter
	switch vars["field"] {
	case "mood":
		m, err := models.ParseMood(vars["value"])
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		f.Mood = m
	case "tag":
		f.Tag = vars["value"]
	case "phase":
		f.Phase = vars["value"]
	}
	s.respondMemories(w, r, f)
}

func (s *HTTPServer) respondMemories(w http.ResponseWriter, r *http.Request, f memories.Filter) {
	list, err := s.svc.Memories.List(r.Context(), UserIDFromContext(r.Context()), f)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}
