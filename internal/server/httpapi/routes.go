package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (s *HTTPServer) routes() http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.HandleFunc("/uploads/photos/{key}", s.servePhoto).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.health).Methods(http.MethodGet)
	api.HandleFunc("/auth/register", s.register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", s.login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", s.refresh).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", s.logout).Methods(http.MethodPost)

	protected := api.NewRoute().Subrouter()
	protected.Use(s.authenticate, s.requireValidID)
	protected.HandleFunc("/auth/me", s.me).Methods(http.MethodGet)

	// Fixed paths go before /{id} so they are not captured as ids.
	j := protected.PathPrefix("/journals").Subrouter()
	j.HandleFunc("", s.createJournal).Methods(http.MethodPost)
	j.HandleFunc("", s.listJournals).Methods(http.MethodGet)
	j.HandleFunc("/search", s.searchJournals).Methods(http.MethodGet)
	j.HandleFunc("/date/{date}", s.journalsByDate).Methods(http.MethodGet)
	j.HandleFunc("/filter/{field:mood|tag|context|phase}/{value}", s.filterJournals).Methods(http.MethodGet)
	j.HandleFunc("/{id}", s.getJournal).Methods(http.MethodGet)
	j.HandleFunc("/{id}", s.updateJournal).Methods(http.MethodPut)
	j.HandleFunc("/{id}", s.deleteJournal).Methods(http.MethodDelete)

	m := protected.PathPrefix("/memories").Subrouter()
	m.HandleFunc("", s.createMemory).Methods(http.MethodPost)
	m.HandleFunc("", s.listMemories).Methods(http.MethodGet)
	m.HandleFunc("/filter/{field:mood|tag|phase}/{value}", s.filterMemories).Methods(http.MethodGet)
	m.HandleFunc("/{id}", s.getMemory).Methods(http.MethodGet)
	m.HandleFunc("/{id}", s.deleteMemory).Methods(http.MethodDelete)

	t := protected.PathPrefix("/tastes").Subrouter()
	t.HandleFunc("", s.createTaste).Methods(http.MethodPost)
	t.HandleFunc("", s.listTastes).Methods(http.MethodGet)
	t.HandleFunc("/sort/rating", s.tastesByRating).Methods(http.MethodGet)
	t.HandleFunc("/search", s.searchTastes).Methods(http.MethodGet)
	t.HandleFunc("/filter/{field:type|tag|phase}/{value}", s.filterTastes).Methods(http.MethodGet)
	t.HandleFunc("/{id}", s.getTaste).Methods(http.MethodGet)
	t.HandleFunc("/{id}", s.updateTaste).Methods(http.MethodPut)
	t.HandleFunc("/{id}", s.deleteTaste).Methods(http.MethodDelete)

	p := protected.PathPrefix("/places").Subrouter()
	p.HandleFunc("", s.createPlace).Methods(http.MethodPost)
	p.HandleFunc("", s.listPlaces).Methods(http.MethodGet)
	p.HandleFunc("/filter/{field:status|type|tag|phase}/{value}", s.filterPlaces).Methods(http.MethodGet)
	p.HandleFunc("/{id}", s.getPlace).Methods(http.MethodGet)
	p.HandleFunc("/{id}", s.updatePlace).Methods(http.MethodPut)
	p.HandleFunc("/{id}", s.deletePlace).Methods(http.MethodDelete)

	ph := protected.PathPrefix("/photos").Subrouter()
	ph.HandleFunc("", s.uploadPhoto).Methods(http.MethodPost)
	ph.HandleFunc("", s.listPhotos).Methods(http.MethodGet)
	ph.HandleFunc("/filter/{field:mood|tag|phase}/{value}", s.filterPhotos).Methods(http.MethodGet)
	ph.HandleFunc("/{id}", s.getPhoto).Methods(http.MethodGet)
	ph.HandleFunc("/{id}", s.deletePhoto).Methods(http.MethodDelete)

	lp := protected.PathPrefix("/phases").Subrouter()
	lp.HandleFunc("", s.createPhase).Methods(http.MethodPost)
	lp.HandleFunc("", s.listPhases).Methods(http.MethodGet)
	lp.HandleFunc("/{id}", s.getPhase).Methods(http.MethodGet)
	lp.HandleFunc("/{id}", s.updatePhase).Methods(http.MethodPut)
	lp.HandleFunc("/{id}", s.deletePhase).Methods(http.MethodDelete)

	return s.recoverPanics(s.logRequests(s.cors(r)))
}
