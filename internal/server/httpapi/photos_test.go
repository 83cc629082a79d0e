package httpapi

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/dmitrijs2005/lifelog/internal/common"
	"github.com/dmitrijs2005/lifelog/internal/models"
	"github.com/dmitrijs2005/lifelog/internal/server/repositories/photos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartRequest(t *testing.T, contentType string, data []byte, metadata string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if metadata != "" {
		require.NoError(t, mw.WriteField("metadata", metadata))
	}
	if data != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="file"; filename="pic.png"`)
		h.Set("Content-Type", contentType)
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/photos", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+validToken)
	return req
}

func TestUploadPhoto(t *testing.T) {
	f, s := newFixture()

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, multipartRequest(t, "image/png", []byte("png-bytes"), `{"mood":"CALM","tags":["sea"],"story":"dusk"}`))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "pic.png", f.photos.upload.Filename)
	assert.Equal(t, "image/png", f.photos.upload.ContentType)
	assert.Equal(t, int64(len("png-bytes")), f.photos.upload.Size)
	assert.Equal(t, "png-bytes", string(f.photos.body))
	assert.Equal(t, models.MoodCalm, f.photos.upload.Metadata.Mood)
	assert.Equal(t, models.Tags{"sea"}, f.photos.upload.Metadata.Tags)
	assert.Contains(t, rec.Body.String(), `"imageUrl":"/uploads/photos/k.png"`)
}

func TestUploadPhoto_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		req      func(t *testing.T) *http.Request
		wantCode int
	}{
		{
			name:     "not an image",
			req:      func(t *testing.T) *http.Request { return multipartRequest(t, "application/pdf", []byte("%PDF"), "") },
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "missing file",
			req:      func(t *testing.T) *http.Request { return multipartRequest(t, "", nil, `{}`) },
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "broken metadata",
			req:      func(t *testing.T) *http.Request { return multipartRequest(t, "image/png", []byte("x"), `{"mood":`) },
			wantCode: http.StatusBadRequest,
		},
		{
			name: "too large",
			req: func(t *testing.T) *http.Request {
				return multipartRequest(t, "image/jpeg", bytes.Repeat([]byte{1}, common.MaxPhotoSize+1), "")
			},
			wantCode: http.StatusRequestEntityTooLarge,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, s := newFixture()
			rec := httptest.NewRecorder()
			s.Handler().ServeHTTP(rec, tt.req(t))
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
		})
	}
}

func TestFilterPhotos(t *testing.T) {
	f, s := newFixture()
	rec := do(t, s.Handler(), http.MethodGet, "/api/photos/filter/tag/sea", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, photos.Filter{Tag: "sea"}, f.photos.lastFilter)
}

func TestServePhoto(t *testing.T) {
	f, s := newFixture()
	f.photos.objects["k.png"] = []byte("png")

	rec := do(t, s.Handler(), http.MethodGet, "/uploads/photos/k.png", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "png", rec.Body.String())

	rec = do(t, s.Handler(), http.MethodGet, "/uploads/photos/missing.png", "", false)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	f.photos.directURL = "https://s3.example/photos/k.png?sig=1"
	rec = do(t, s.Handler(), http.MethodGet, "/uploads/photos/k.png", "", false)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, f.photos.directURL, rec.Header().Get("Location"))
}
