package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/lifelog/internal/models"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/places"
	"github.com/gorilla/mux"
)

func (s *HTTPServer) createPlace(w http.ResponseWriter, r *http.Request) {
	var p models.Place
	if !decodeJSON(w, r, &p) {
		return
	}
	created, err := s.svc.Places.Create(r.Context(), UserIDFromContext(r.Context()), &p)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *HTTPServer) updatePlace(w http.ResponseWriter, r *http.Request) {
	var p models.Place
	if !decodeJSON(w, r, &p) {
		return
	}
	updated, err := s.svc.Places.Update(r.Context(), UserIDFromContext(r.Context()), mux.Vars(r)["id"], &p)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (s *HTTPServer) deletePlace(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Places.Delete(r.Context(), UserIDFromContext(r.Context()), mux.Vars(r)["id"]); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) getPlace(w http.ResponseWriter, r *http.Request) {
	p, err := s.svc.Places.Get(r.Context(), UserIDFromContext(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (s *HTTPServer) listPlaces(w http.ResponseWriter, r *http.Request) {
	s.respondPlaces(w, r, places.Filter{})
}

func (s *HTTPServer) filterPlaces(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var f places.Filter
	switch vars["field"] {
	case "status":
		st, err := models.ParsePlaceStatus(vars["value"])
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		f.Status = st
	case "type":
		t, err := models.ParsePlaceType(vars["value"])
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
	s.respondPlaces(w, r, f)
}

func (s *HTTPServer) respondPlaces(w http.ResponseWriter, r *http.Request, f places.Filter) {
	list, err := s.svc.Places.List(r.Context(), UserIDFromContext(r.Context()), f)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}
