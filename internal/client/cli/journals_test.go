package cli

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/lifelog/internal/client/session"
	"github.com/dmitrijs2005/lifelog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func journalFixture(input string) *fixture {
	f := newFixture(input)
	f.journals.items = []*models.JournalEntry{
		{ID: "j1", Date: models.NewDate(2024, time.March, 1), Time: "08:00:00", Content: "coffee with Sam", Mood: models.MoodHappy, Tags: models.Tags{"friends"}},
		{ID: "j2", Date: models.NewDate(2024, time.March, 3), Time: "21:30:00", Content: "long day at work", Mood: models.MoodStressed, Context: "office"},
		{ID: "j3", Date: models.NewDate(2024, time.March, 3), Time: "07:15:00", Content: "morning coffee alone", Mood: models.MoodCalm},
	}
	return f
}

func TestJournalsList_SortedNewestFirst(t *testing.T) {
	f := journalFixture("")
	require.NoError(t, f.run(t, "journals", "list"))

	out := f.out.String()
	i2, i3, i1 := indexOf(out, "j2"), indexOf(out, "j3"), indexOf(out, "j1")
	assert.True(t, i2 < i3 && i3 < i1, "want j2, j3, j1 in:\n%s", out)
	assert.Contains(t, out, "#friends")
}

func TestJournalsList_ClientFilters(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
		not  []string
	}{
		{"query", []string{"-q", "COFFEE"}, []string{"j1", "j3"}, []string{"j2"}},
		{"mood", []string{"--mood", "calm"}, []string{"j3"}, []string{"j1", "j2"}},
		{"context", []string{"--context", "office"}, []string{"j2"}, []string{"j1", "j3"}},
		{"combined", []string{"-q", "coffee", "--mood", "happy"}, []string{"j1"}, []string{"j2", "j3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := journalFixture("")
			require.NoError(t, f.run(t, append([]string{"journals", "list"}, tt.args...)...))
			for _, id := range tt.want {
				assert.Contains(t, f.out.String(), id)
			}
			for _, id := range tt.not {
				assert.NotContains(t, f.out.String(), id)
			}
		})
	}
}

func TestJournalsList_ServerFilters(t *testing.T) {
	f := journalFixture("")
	require.NoError(t, f.run(t, "journals", "list", "--date", "2024-03-03"))
	assert.Equal(t, models.NewDate(2024, time.March, 3), f.journals.byDate)

	f = journalFixture("")
	require.NoError(t, f.run(t, "journals", "list", "--tag", "friends"))
	assert.Equal(t, "friends", f.journals.tag)
}

func TestJournalsList_BadMood(t *testing.T) {
	f := journalFixture("")
	err := f.run(t, "journals", "list", "--mood", "grumpy")
	assert.ErrorContains(t, err, "unknown mood")
}

func TestJournalsList_Empty(t *testing.T) {
	f := newFixture("")
	require.NoError(t, f.run(t, "journals", "list"))
	assert.Contains(t, f.out.String(), "Nothing found")
}

func TestJournalsList_RequiresLogin(t *testing.T) {
	f := journalFixture("")
	f.session.user = nil
	err := f.run(t, "journals", "list")
	assert.ErrorIs(t, err, session.ErrNotLoggedIn)
}

func TestJournalsAdd_FromFlags(t *testing.T) {
	f := newFixture("")
	err := f.run(t, "journals", "add", "--content", "walked the dog", "--mood", "happy", "--tags", "dog, walk ,", "--time", "18:05", "--context", "park")
	require.NoError(t, err)

	e := f.journals.created
	require.NotNil(t, e)
	assert.Equal(t, "walked the dog", e.Content)
	assert.Equal(t, models.MoodHappy, e.Mood)
	assert.Equal(t, models.Tags{"dog", "walk"}, e.Tags)
	assert.Equal(t, "18:05:00", e.Time)
	assert.Equal(t, "park", e.Context)
	assert.Equal(t, models.Today(), e.Date)
	assert.Contains(t, f.out.String(), "Saved journal entry j-new")
}

func TestJournalsAdd_PromptsForContent(t *testing.T) {
	f := newFixture("first line\nsecond line\n\n")
	require.NoError(t, f.run(t, "journals", "add"))
	require.NotNil(t, f.journals.created)
	assert.Equal(t, "first line\nsecond line", f.journals.created.Content)
	assert.Equal(t, models.MoodNeutral, f.journals.created.Mood)
}

func TestJournalsAdd_InvalidIsNotSent(t *testing.T) {
	f := newFixture("")
	err := f.run(t, "journals", "add", "--content", "x", "--time", "25:00")
	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "time", ve.Field)
	assert.Nil(t, f.journals.created)
}

func TestJournalsEdit_ChangesOnlyGivenFlags(t *testing.T) {
	f := journalFixture("")
	require.NoError(t, f.run(t, "journals", "edit", "j1", "--mood", "sad"))

	e := f.journals.updated
	require.NotNil(t, e)
	assert.Equal(t, "j1", e.ID)
	assert.Equal(t, models.MoodSad, e.Mood)
	assert.Equal(t, "coffee with Sam", e.Content)
	assert.Equal(t, models.Tags{"friends"}, e.Tags)
}

func TestJournalsDelete(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		f := journalFixture("y\n")
		require.NoError(t, f.run(t, "journals", "delete", "j2"))
		assert.Equal(t, []string{"j2"}, f.journals.deleted)
		assert.Contains(t, f.out.String(), "Delete journal entry j2? [y/N]")
		assert.Contains(t, f.out.String(), "(2 left)")
	})
	t.Run("declined", func(t *testing.T) {
		f := journalFixture("n\n")
		require.NoError(t, f.run(t, "journals", "delete", "j2"))
		assert.Empty(t, f.journals.deleted)
		assert.Contains(t, f.out.String(), "Cancelled")
	})
	t.Run("yes flag", func(t *testing.T) {
		f := journalFixture("")
		require.NoError(t, f.run(t, "journals", "delete", "j2", "--yes"))
		assert.Equal(t, []string{"j2"}, f.journals.deleted)
		assert.NotContains(t, f.out.String(), "[y/N]")
	})
}

func TestJournalsGet(t *testing.T) {
	f := journalFixture("")
	require.NoError(t, f.run(t, "j", "get", "j2"))
	out := f.out.String()
	assert.Contains(t, out, "2024-03-03")
	assert.Contains(t, out, "office")
	assert.Contains(t, out, "long day at work")
}
