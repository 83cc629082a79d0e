// Package views defines, per entity, the filters and the sort order the CLI
// applies to loaded lists.
package views

import (
	"cmp"
	"strings"

	"github.com/dmitrijs2005/lifelog/internal/client/listview"
	"github.com/dmitrijs2005/lifelog/internal/models"
)

type JournalFilter struct {
	Query   string
	Mood    models.Mood
	Context string
}

func (f JournalFilter) Criteria() []listview.Criterion[*models.JournalEntry] {
	return []listview.Criterion[*models.JournalEntry]{
		listview.Text(f.Query, func(j *models.JournalEntry) string { return j.Content }),
		listview.Equal(f.Mood, func(j *models.JournalEntry) models.Mood { return j.Mood }),
		listview.Equal(strings.TrimSpace(f.Context), func(j *models.JournalEntry) string { return j.Context }),
	}
}

// CompareJournals orders by date, then time, newest first.
func CompareJournals(a, b *models.JournalEntry) int {
	if c := b.Date.Compare(a.Date); c != 0 {
		return c
	}
	return cmp.Compare(b.Time, a.Time)
}

type MemoryFilter struct {
	Query string
	Mood  models.Mood
}

func (f MemoryFilter) Criteria() []listview.Criterion[*models.Memory] {
	return []listview.Criterion[*models.Memory]{
		listview.Text(f.Query, func(m *models.Memory) string { return m.ShortText }),
		listview.Equal(f.Mood, func(m *models.Memory) models.Mood { return m.Mood }),
	}
}

func CompareMemories(a, b *models.Memory) int {
	return b.Timestamp.Compare(a.Timestamp)
}

type TasteFilter struct {
	Query  string
	Type   models.TasteType
	Rating int
}

func (f TasteFilter) Criteria() []listview.Criterion[*models.Taste] {
	return []listview.Criterion[*models.Taste]{
		listview.Text(f.Query,
			func(t *models.Taste) string { return t.Title },
			func(t *models.Taste) string { return t.PersonalNote },
		),
		listview.Equal(f.Type, func(t *models.Taste) models.TasteType { return t.Type }),
		listview.Equal(f.Rating, func(t *models.Taste) int { return t.Rating }),
	}
}

// CompareTastes orders by rating, then date consumed, both descending.
func CompareTastes(a, b *models.Taste) int {
	if c := cmp.Compare(b.Rating, a.Rating); c != 0 {
		return c
	}
	return b.DateConsumed.Compare(a.DateConsumed)
}

type PlaceFilter struct {
	Query  string
	Status models.PlaceStatus
	Type   models.PlaceType
}

func (f PlaceFilter) Criteria() []listview.Criterion[*models.Place] {
	return []listview.Criterion[*models.Place]{
		listview.Text(f.Query,
			func(p *models.Place) string { return p.Name },
			func(p *models.Place) string { return p.ExperienceNote },
		),
		listview.Equal(f.Status, func(p *models.Place) models.PlaceStatus { return p.Status }),
		listview.Equal(f.Type, func(p *models.Place) models.PlaceType { return p.Type }),
	}
}

// ComparePlaces orders by visit date descending. Places never visited go
// last.
func ComparePlaces(a, b *models.Place) int {
	switch av, bv := !a.DateVisited.IsZero(), !b.DateVisited.IsZero(); {
	case av && !bv:
		return -1
	case !av && bv:
		return 1
	}
	return b.DateVisited.Compare(a.DateVisited)
}

type PhotoFilter struct {
	Query string
	Mood  models.Mood
}

func (f PhotoFilter) Criteria() []listview.Criterion[*models.Photo] {
	return []listview.Criterion[*models.Photo]{
		listview.Text(f.Query,
			func(p *models.Photo) string { return p.Location },
			func(p *models.Photo) string { return p.Story },
		),
		listview.Equal(f.Mood, func(p *models.Photo) models.Mood { return p.Mood }),
	}
}

func ComparePhotos(a, b *models.Photo) int {
	return b.DateUploaded.Compare(a.DateUploaded)
}

func ComparePhases(a, b *models.LifePhase) int {
	return b.StartDate.Compare(a.StartDate)
}
