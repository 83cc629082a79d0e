package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/lifelog/internal/models"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/photos"
	"github.com/dmitrijs2005/lifelog/internal/server/services"
	"github.com/gorilla/mux"
)

// multipartOverhead leaves room for the metadata field and part headers on
// top of the file itself.
const multipartOverhead = 1 << 20

func (s *HTTPServer) uploadPhoto(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.opts.MaxUploadBytes+multipartOverhead)
	if err := r.ParseMultipartForm(s.opts.MaxUploadBytes + multipartOverhead); err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			respondError(w, http.StatusRequestEntityTooLarge, "file too large")
			return
		}
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	var meta models.PhotoMetadata
	if raw := r.FormValue("metadata"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &meta); err != nil {
			respondError(w, http.StatusBadRequest, "invalid metadata")
			return
		}
	}

	p, err := s.svc.Photos.Upload(r.Context(), UserIDFromContext(r.Context()), services.PhotoUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
		Metadata:    meta,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, p)
}

func (s *HTTPServer) deletePhoto(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Photos.Delete(r.Context(), UserIDFromContext(r.Context()), mux.Vars(r)["id"]); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) getPhoto(w http.ResponseWriter, r *http.Request) {
	p, err := s.svc.Photos.Get(r.Context(), UserIDFromContext(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (s *HTTPServer) listPhotos(w http.ResponseWriter, r *http.Request) {
	s.respondPhotos(w, r, photos.Filter{})
}

func (s *HTTPServer) filterPhotos(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var f photos.Filter
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
	s.respondPhotos(w, r, f)
}

func (s *HTTPServer) respondPhotos(w http.ResponseWriter, r *http.Request, f photos.Filter) {
	list, err := s.svc.Photos.List(r.Context(), UserIDFromContext(r.Context()), f)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

// servePhoto redirects to a presigned URL when the store offers one and
// streams the object otherwise.
func (s *HTTPServer) servePhoto(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	url, ok, err := s.svc.Photos.DirectURL(r.Context(), key)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if ok {
		http.Redirect(w, r, url, http.StatusFound)
		return
	}

	body, info, err := s.svc.Photos.Open(r.Context(), key)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	defer body.Close()

	if info.ContentType != "" {
		w.Header().Set("Content-Type", info.ContentType)
	}
	if info.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))
	}
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, body); err != nil {
		s.logger.Warn(r.Context(), "photo stream interrupted", "key", key, "error", err)
	}
}
