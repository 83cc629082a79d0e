package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/lifelog/internal/common"
	"github.com/dmitrijs2005/lifelog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo_SendsJSONAndBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/journals", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in models.JournalEntry
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		in.ID = "j1"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(in)
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", time.Second)
	c.SetToken("tok")

	var out models.JournalEntry
	err := c.Do(context.Background(), http.MethodPost, "/journals", models.JournalEntry{Content: "hi", Mood: models.MoodCalm}, &out)
	require.NoError(t, err)
	assert.Equal(t, "j1", out.ID)
	assert.Equal(t, "hi", out.Content)
}

func TestDo_NoTokenNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	require.NoError(t, c.Do(context.Background(), http.MethodDelete, "/journals/1", nil, nil))
}

func TestDo_ErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantMsg  string
		sentinel error
	}{
		{"server message verbatim", http.StatusConflict, `{"message":"username or email already taken"}`, "username or email already taken", common.ErrAlreadyExists},
		{"status text fallback", http.StatusNotFound, `oops`, "Not Found", common.ErrorNotFound},
		{"unauthorized", http.StatusUnauthorized, `{"message":"token expired"}`, "token expired", common.ErrorUnauthorized},
		{"server error", http.StatusInternalServerError, `{"message":"internal error"}`, "internal error", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			err := NewClient(srv.URL, time.Second).Do(context.Background(), http.MethodGet, "/x", nil, nil)
			var ae *APIError
			require.True(t, errors.As(err, &ae))
			assert.Equal(t, tt.status, ae.Status)
			assert.Equal(t, tt.wantMsg, err.Error())
			if tt.sentinel != nil {
				assert.ErrorIs(t, err, tt.sentinel)
			}
			assert.Equal(t, tt.status == http.StatusUnauthorized, IsUnauthorized(err))
		})
	}
}

func TestDo_SingleShot(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, time.Second).Do(context.Background(), http.MethodGet, "/journals", nil, nil)
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestUpload_Multipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.JSONEq(t, `{"mood":"CALM","tags":["sea"]}`, r.FormValue("metadata"))

		f, h, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		b, _ := io.ReadAll(f)
		assert.Equal(t, "pic.png", h.Filename)
		assert.Equal(t, "image/png", h.Header.Get("Content-Type"))
		assert.Equal(t, "bytes", string(b))

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":"p1","imageUrl":"/uploads/photos/k.png","tags":["sea"]}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	var out models.Photo
	err := c.Upload(context.Background(), "/photos", FilePart{
		Field:       "file",
		Filename:    "pic.png",
		ContentType: "image/png",
		Body:        strings.NewReader("bytes"),
	}, "metadata", models.PhotoMetadata{Mood: models.MoodCalm, Tags: models.Tags{"sea"}}, &out)

	require.NoError(t, err)
	assert.Equal(t, "p1", out.ID)
	assert.Equal(t, "/uploads/photos/k.png", out.ImageURL)
}

func TestDo_TransportError(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", 200*time.Millisecond)
	err := c.Do(context.Background(), http.MethodGet, "/health", nil, nil)
	require.Error(t, err)
	var ae *APIError
	assert.False(t, errors.As(err, &ae))
}
