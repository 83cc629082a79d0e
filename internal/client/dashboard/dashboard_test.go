package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/lifelog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func journals(n int) []*models.JournalEntry {
	out := make([]*models.JournalEntry, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &models.JournalEntry{ID: fmt.Sprint(i), Date: models.NewDate(2024, time.January, i+1)})
	}
	return out
}

func okSource() Source {
	return Source{
		Journals: func(context.Context) ([]*models.JournalEntry, error) { return journals(7), nil },
		Memories: func(context.Context) ([]*models.Memory, error) { return []*models.Memory{{}, {}}, nil },
		Tastes:   func(context.Context) ([]*models.Taste, error) { return []*models.Taste{{}}, nil },
		Places:   func(context.Context) ([]*models.Place, error) { return nil, nil },
		Photos:   func(context.Context) ([]*models.Photo, error) { return []*models.Photo{{}, {}, {}}, nil },
	}
}

func TestLoad_CountsAndRecent(t *testing.T) {
	s, err := Load(context.Background(), okSource())
	require.NoError(t, err)

	assert.Equal(t, 7, s.Journals)
	assert.Equal(t, 2, s.Memories)
	assert.Equal(t, 1, s.Tastes)
	assert.Equal(t, 0, s.Places)
	assert.Equal(t, 3, s.Photos)

	require.Len(t, s.RecentJournals, RecentJournals)
	assert.Equal(t, "6", s.RecentJournals[0].ID)
	assert.Equal(t, "2", s.RecentJournals[4].ID)
}

func TestLoad_AnyFailureFailsAll(t *testing.T) {
	src := okSource()
	boom := errors.New("503")
	src.Places = func(context.Context) ([]*models.Place, error) { return nil, boom }

	s, err := Load(context.Background(), src)
	assert.Nil(t, s)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "load places")
}

func TestLoad_FetchesRunConcurrently(t *testing.T) {
	var inFlight, peak atomic.Int32
	var wg sync.WaitGroup
	wg.Add(5)

	track := func() {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		wg.Done()
		wg.Wait() // every fetch waits until all five have started
		inFlight.Add(-1)
	}

	src := Source{
		Journals: func(context.Context) ([]*models.JournalEntry, error) { track(); return nil, nil },
		Memories: func(context.Context) ([]*models.Memory, error) { track(); return nil, nil },
		Tastes:   func(context.Context) ([]*models.Taste, error) { track(); return nil, nil },
		Places:   func(context.Context) ([]*models.Place, error) { track(); return nil, nil },
		Photos:   func(context.Context) ([]*models.Photo, error) { track(); return nil, nil },
	}

	done := make(chan struct{})
	go func() {
		_, err := Load(context.Background(), src)
		assert.NoError(t, err)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("fetches did not run concurrently")
	}
	assert.Equal(t, int32(5), peak.Load())
}

func TestLoad_MissingSource(t *testing.T) {
	src := okSource()
	src.Photos = nil
	_, err := Load(context.Background(), src)
	assert.Error(t, err)
}
