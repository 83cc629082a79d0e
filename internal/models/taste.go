package models

import (
	"strings"
)

// Taste is a rated record of something consumed. Rating 0 means unrated.
type Taste struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId,omitempty"`
	Type          TasteType `json:"type"`
	Title         string    `json:"title"`
	Rating        int       `json:"rating,omitempty"`
	DateConsumed  Date      `json:"dateConsumed"`
	PersonalNote  string    `json:"personalNote,omitempty"`
	Mood          Mood      `json:"mood,omitempty"`
	Tags          Tags      `json:"tags"`
	LifePhaseName string    `json:"lifePhaseName,omitempty"`
}

func (t *Taste) Validate() error {
	if !t.Type.Valid() {
		return invalid("type", "must be one of the known taste types")
	}
	if strings.TrimSpace(t.Title) == "" {
		return invalid("title", "is required")
	}
	if t.Rating != 0 && (t.Rating < 1 || t.Rating > 5) {
		return invalid("rating", "must be between 1 and 5")
	}
	if t.Mood != "" && !t.Mood.Valid() {
		return invalid("mood", "must be one of the known moods")
	}
	if t.Tags == nil {
		t.Tags = Tags{}
	}
	return nil
}
