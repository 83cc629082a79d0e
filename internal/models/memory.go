package models

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MaxMemoryLength bounds Memory.ShortText, counted in characters.
const MaxMemoryLength = 200

// Memory is a short, immutable note stamped by the server.
type Memory struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId,omitempty"`
	ShortText     string    `json:"shortText"`
	Mood          Mood      `json:"mood"`
	Tags          Tags      `json:"tags"`
	LifePhaseName string    `json:"lifePhaseName,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

func (m *Memory) Validate() error {
	if strings.TrimSpace(m.ShortText) == "" {
		return invalid("shortText", "is required")
	}
	if utf8.RuneCountInString(m.ShortText) > MaxMemoryLength {
		return invalid("shortText", "must be at most 200 characters")
	}
	if !m.Mood.Valid() {
		return invalid("mood", "must be one of the known moods")
	}
	if m.Tags == nil {
		m.Tags = Tags{}
	}
	return nil
}
