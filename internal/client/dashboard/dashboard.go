// Package dashboard builds the overview shown by `lifelog dashboard`.
package dashboard

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/lifelog/internal/client/views"
	"github.com/dmitrijs2005/lifelog/internal/models"
	"golang.org/x/sync/errgroup"
)

// RecentJournals is how many journal entries the summary keeps.
const RecentJournals = 5

type Summary struct {
	Journals       int
	Memories       int
	Tastes         int
	Places         int
	Photos         int
	RecentJournals []*models.JournalEntry
}

// Source is the subset of the client services the dashboard reads.
type Source struct {
	Journals func(ctx context.Context) ([]*models.JournalEntry, error)
	Memories func(ctx context.Context) ([]*models.Memory, error)
	Tastes   func(ctx context.Context) ([]*models.Taste, error)
	Places   func(ctx context.Context) ([]*models.Place, error)
	Photos   func(ctx context.Context) ([]*models.Photo, error)
}

// Load issues the five list fetches concurrently and waits for all of them.
// If any fetch fails the whole load fails and no summary is returned.
func Load(ctx context.Context, src Source) (*Summary, error) {
	var (
		journals []*models.JournalEntry
		memories []*models.Memory
		tastes   []*models.Taste
		places   []*models.Place
		photos   []*models.Photo
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(fetch(gctx, "journals", src.Journals, &journals))
	g.Go(fetch(gctx, "memories", src.Memories, &memories))
	g.Go(fetch(gctx, "tastes", src.Tastes, &tastes))
	g.Go(fetch(gctx, "places", src.Places, &places))
	g.Go(fetch(gctx, "photos", src.Photos, &photos))
	if err := g.Wait(); err != nil {
		return nil, err
	}

	recent := slices.Clone(journals)
	slices.SortStableFunc(recent, views.CompareJournals)
	if len(recent) > RecentJournals {
		recent = recent[:RecentJournals]
	}

	return &Summary{
		Journals:       len(journals),
		Memories:       len(memories),
		Tastes:         len(tastes),
		Places:         len(places),
		Photos:         len(photos),
		RecentJournals: recent,
	}, nil
}

func fetch[T any](ctx context.Context, name string, f func(context.Context) ([]T, error), dst *[]T) func() error {
	return func() error {
		if f == nil {
			return fmt.Errorf("dashboard: no source for %s", name)
		}
		items, err := f(ctx)
		if err != nil {
			return fmt.Errorf("load %s: %w", name, err)
		}
		*dst = items
		return nil
	}
}
