package httpapi

import (
	"net/http"
	"strings"

	"github.com/dmitrijs2005/lifelog/internal/models"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/journals"
	"github.com/gorilla/mux"
)

func (s *HTTPServer) createJournal(w http.ResponseWriter, r *http.Request) {
	var e models.JournalEntry
	if !decodeJSON(w, r, &e) {
		return
	}
	created, err := s.svc.Journals.Create(r.Context(), UserIDFromContext(r.Context()), &e)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *HTTPServer) updateJournal(w http.ResponseWriter, r *http.Request) {
	var e models.JournalEntry
	if !decodeJSON(w, r, &e) {
		return
	}
	updated, err := s.svc.Journals.Update(r.Context(), UserIDFromContext(r.Context()), mux.Vars(r)["id"], &e)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (s *HTTPServer) deleteJournal(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Journals.Delete(r.Context(), UserIDFromContext(r.Context()), mux.Vars(r)["id"]); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) getJournal(w http.ResponseWriter, r *http.Request) {
	e, err := s.svc.Journals.Get(r.Context(), UserIDFromContext(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, e)
}

func (s *HTTPServer) listJournals(w http.ResponseWriter, r *http.Request) {
	s.respondJournals(w, r, journals.Filter{})
}

func (s *HTTPServer) searchJournals(w http.ResponseWriter, r *http.Request) {
	s.respondJournals(w, r, journals.Filter{Query: strings.TrimSpace(r.URL.Query().Get("q"))})
}

func (s *HTTPServer) journalsByDate(w http.ResponseWriter, r *http.Request) {
	d, err := models.ParseDate(mux.Vars(r)["date"])
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.respondJournals(w, r, journals.Filter{Date: d})
}

func (s *HTTPServer) filterJournals(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var f journals.Filter
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
	case "context":
		f.Context = vars["value"]
	case "phase":
		f.Phase = vars["value"]
	}
	s.respondJournals(w, r, f)
}

func (s *HTTPServer) respondJournals(w http.ResponseWriter, r *http.Request, f journals.Filter) {
	list, err := s.svc.Journals.List(r.Context(), UserIDFromContext(r.Context()), f)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}
