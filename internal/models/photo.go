package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/lifelog/internal/common"
)

// Photo is an uploaded image plus its metadata. ImageURL and DateUploaded
// are assigned by the server.
type Photo struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId,omitempty"`
	ImageURL       string    `json:"imageUrl"`
	StorageKey     string    `json:"-"`
	Location       string    `json:"location,omitempty"`
	Mood           Mood      `json:"mood,omitempty"`
	Tags           Tags      `json:"tags"`
	Story          string    `json:"story,omitempty"`
	TechnicalNotes string    `json:"technicalNotes,omitempty"`
	LifePhaseName  string    `json:"lifePhaseName,omitempty"`
	DateUploaded   time.Time `json:"dateUploaded"`
}

// PhotoMetadata is the JSON document sent next to the file on upload.
type PhotoMetadata struct {
	Location       string `json:"location,omitempty"`
	Mood           Mood   `json:"mood,omitempty"`
	Tags           Tags   `json:"tags"`
	Story          string `json:"story,omitempty"`
	TechnicalNotes string `json:"technicalNotes,omitempty"`
	LifePhaseName  string `json:"lifePhaseName,omitempty"`
}

func (m *PhotoMetadata) Validate() error {
	if m.Mood != "" && !m.Mood.Valid() {
		return invalid("mood", "must be one of the known moods")
	}
	if m.Tags == nil {
		m.Tags = Tags{}
	}
	return nil
}

// ValidatePhotoFile checks the declared content type and size of an upload.
// A size over max yields common.ErrPayloadTooLarge, a non-image type
// common.ErrUnsupportedMedia.
func ValidatePhotoFile(contentType string, size, max int64) error {
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "image/") {
		return fmt.Errorf("only image files are allowed, got %q: %w", contentType, common.ErrUnsupportedMedia)
	}
	if size > max {
		return fmt.Errorf("file must be at most %d MB: %w", max>>20, common.ErrPayloadTooLarge)
	}
	return nil
}
