package models

import (
	"strings"
	"time"
)

// JournalEntry is a dated free-text entry. Deleting an entry only flags it.
type JournalEntry struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId,omitempty"`
	Date          Date      `json:"date"`
	Time          string    `json:"time,omitempty"`
	Content       string    `json:"content"`
	Mood          Mood      `json:"mood"`
	Tags          Tags      `json:"tags"`
	Context       string    `json:"context,omitempty"`
	LifePhaseName string    `json:"lifePhaseName,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	Deleted       bool      `json:"-"`
}

// Validate checks required fields and normalizes the clock value.
func (j *JournalEntry) Validate() error {
	if strings.TrimSpace(j.Content) == "" {
		return invalid("content", "is required")
	}
	if !j.Mood.Valid() {
		return invalid("mood", "must be one of the known moods")
	}
	clock, err := NormalizeClock(j.Time)
	if err != nil {
		return invalid("time", err.Error())
	}
	j.Time = clock
	if j.Tags == nil {
		j.Tags = Tags{}
	}
	return nil
}
