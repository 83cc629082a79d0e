package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lifelog/internal/client/dashboard"
	"github.com/dmitrijs2005/lifelog/internal/models"
	"github.com/spf13/cobra"
)

func newDashboardCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash"},
		Short:   "Counts per section and the latest journal entries",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.session.Do(cmd.Context(), func(ctx context.Context) error {
				sum, err := dashboard.Load(ctx, dashboard.Source{
					Journals: func(ctx context.Context) ([]*models.JournalEntry, error) { return a.journals.GetAll(ctx) },
					Memories: func(ctx context.Context) ([]*models.Memory, error) { return a.memories.GetAll(ctx) },
					Tastes:   func(ctx context.Context) ([]*models.Taste, error) { return a.tastes.GetAll(ctx) },
					Places:   func(ctx context.Context) ([]*models.Place, error) { return a.places.GetAll(ctx) },
					Photos:   func(ctx context.Context) ([]*models.Photo, error) { return a.photos.GetAll(ctx) },
				})
				if err != nil {
					return err
				}

				if u := a.session.User(); u != nil {
					fmt.Fprintf(a.out, "Hello, %s\n\n", u.Username)
				}
				fmt.Fprintf(a.out, "📔 Journals  %d\n", sum.Journals)
				fmt.Fprintf(a.out, "💭 Memories  %d\n", sum.Memories)
				fmt.Fprintf(a.out, "🎬 Tastes    %d\n", sum.Tastes)
				fmt.Fprintf(a.out, "📍 Places    %d\n", sum.Places)
				fmt.Fprintf(a.out, "📷 Photos    %d\n", sum.Photos)

				if len(sum.RecentJournals) == 0 {
					return nil
				}
				fmt.Fprintln(a.out, "\nRecent journal entries")
				return printJournals(a.out, sum.RecentJournals)
			})
		},
	}
}
