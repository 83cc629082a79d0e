package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/lifelog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoriesAdd(t *testing.T) {
	f := newFixture("")
	require.NoError(t, f.run(t, "memories", "add", "first snow", "-m", "calm", "-t", "winter"))
	require.NotNil(t, f.memories.created)
	assert.Equal(t, "first snow", f.memories.created.ShortText)
	assert.Equal(t, models.MoodCalm, f.memories.created.Mood)
	assert.Equal(t, models.Tags{"winter"}, f.memories.created.Tags)
}

func TestMemoriesAdd_TooLong(t *testing.T) {
	f := newFixture("")
	err := f.run(t, "memories", "add", strings.Repeat("a", models.MaxMemoryLength+1))
	assert.ErrorContains(t, err, "at most 200")
	assert.Nil(t, f.memories.created)
}

func TestMemoriesAdd_Prompt(t *testing.T) {
	f := newFixture("smell of rain\n")
	require.NoError(t, f.run(t, "m", "add"))
	assert.Equal(t, "smell of rain", f.memories.created.ShortText)
}

func TestMemoriesList(t *testing.T) {
	f := newFixture("")
	f.memories.items = []*models.Memory{
		{ID: "m1", ShortText: "old", Mood: models.MoodSad, Timestamp: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "m2", ShortText: "new", Mood: models.MoodHappy, Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	require.NoError(t, f.run(t, "memories", "list"))
	out := f.out.String()
	assert.Less(t, indexOf(out, "m2"), indexOf(out, "m1"))

	f.out.Reset()
	require.NoError(t, f.run(t, "memories", "list", "--mood", "sad"))
	assert.Contains(t, f.out.String(), "m1")
	assert.NotContains(t, f.out.String(), "m2")
}

func TestTastesList_RatingAndType(t *testing.T) {
	f := newFixture("")
	f.tastes.items = []*models.Taste{
		{ID: "t1", Type: models.TasteBook, Title: "Dune", Rating: 4},
		{ID: "t2", Type: models.TasteMovie, Title: "Arrival", Rating: 5},
		{ID: "t3", Type: models.TasteMovie, Title: "Cats", Rating: 1},
	}
	require.NoError(t, f.run(t, "tastes", "list"))
	out := f.out.String()
	assert.True(t, indexOf(out, "t2") < indexOf(out, "t1") && indexOf(out, "t1") < indexOf(out, "t3"))
	assert.Contains(t, out, "★★★★★")

	f.out.Reset()
	require.NoError(t, f.run(t, "tastes", "list", "--type", "movie", "-r", "5"))
	assert.Contains(t, f.out.String(), "Arrival")
	assert.NotContains(t, f.out.String(), "Cats")
	assert.NotContains(t, f.out.String(), "Dune")
}

func TestTastesAdd_RatingOutOfRange(t *testing.T) {
	f := newFixture("")
	err := f.run(t, "tastes", "add", "--type", "book", "--title", "Dune", "-r", "6")
	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "rating", ve.Field)
}

func TestPlacesList_VisitedFirst(t *testing.T) {
	f := newFixture("")
	f.places.items = []*models.Place{
		{ID: "p1", Name: "Kyoto", Status: models.PlaceWantToVisit},
		{ID: "p2", Name: "Riga", Status: models.PlaceVisited, DateVisited: models.NewDate(2022, time.May, 1)},
		{ID: "p3", Name: "Tallinn", Status: models.PlaceFavorite, DateVisited: models.NewDate(2024, time.June, 1)},
	}
	require.NoError(t, f.run(t, "places", "list"))
	out := f.out.String()
	assert.True(t, indexOf(out, "p3") < indexOf(out, "p2") && indexOf(out, "p2") < indexOf(out, "p1"), out)

	f.out.Reset()
	require.NoError(t, f.run(t, "places", "list", "-s", "want_to_visit"))
	assert.Contains(t, f.out.String(), "Kyoto")
	assert.NotContains(t, f.out.String(), "Riga")
}

func TestPlacesEdit(t *testing.T) {
	f := newFixture("")
	f.places.items = []*models.Place{{ID: "p1", Name: "Kyoto", Status: models.PlaceWantToVisit, Latitude: 35.01, Longitude: 135.76}}

	require.NoError(t, f.run(t, "places", "edit", "p1", "-s", "visited", "-d", "2024-04-02"))
	p := f.places.updated
	require.NotNil(t, p)
	assert.Equal(t, models.PlaceVisited, p.Status)
	assert.Equal(t, models.NewDate(2024, time.April, 2), p.DateVisited)
	assert.Equal(t, 35.01, p.Latitude)
	assert.Equal(t, "Kyoto", p.Name)
}

func TestPlacesEdit_LatitudeOutOfRange(t *testing.T) {
	f := newFixture("")
	f.places.items = []*models.Place{{ID: "p1", Name: "Kyoto", Status: models.PlaceVisited}}
	err := f.run(t, "places", "edit", "p1", "--lat", "91")
	assert.ErrorContains(t, err, "latitude")
	assert.Nil(t, f.places.updated)
}

func TestDashboard(t *testing.T) {
	f := journalFixture("")
	f.memories.items = []*models.Memory{{ID: "m1"}}
	f.tastes.items = []*models.Taste{{ID: "t1"}, {ID: "t2"}}

	require.NoError(t, f.run(t, "dashboard"))
	out := f.out.String()
	assert.Contains(t, out, "Hello, alice")
	assert.Contains(t, out, "Journals  3")
	assert.Contains(t, out, "Memories  1")
	assert.Contains(t, out, "Tastes    2")
	assert.Contains(t, out, "Places    0")
	assert.Contains(t, out, "Recent journal entries")
}
