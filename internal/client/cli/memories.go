package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/lifelog/internal/client/listview"
	"github.com/dmitrijs2005/lifelog/internal/client/views"
	"github.com/dmitrijs2005/lifelog/internal/models"
	"github.com/spf13/cobra"
)

func newMemoriesCommand(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "memories",
		Aliases: []string{"memory", "m"},
		Short:   "Short memories",
	}
	cmd.AddCommand(
		newMemoryListCommand(a),
		newGetCommand(a, "memory",
			func(ctx context.Context, id string) (*models.Memory, error) { return a.memories.GetByID(ctx, id) },
			func(m *models.Memory) { printMemory(a.out, m) }),
		newMemoryAddCommand(a),
		newDeleteCommand(a, "memory",
			func(ctx context.Context) ([]*models.Memory, error) { return a.memories.GetAll(ctx) },
			func(m *models.Memory) string { return m.ID },
			func(ctx context.Context, id string) error { return a.memories.Delete(ctx, id) }),
	)
	return cmd
}

func newMemoryListCommand(a *App) *cobra.Command {
	var (
		filter               views.MemoryFilter
		moodFlag, tag, phase string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List memories, newest first",
		Args:  cobra.NoArgs,
		PreRunE: func(*cobra.Command, []string) (err error) {
			filter.Mood, err = parseOptionalMood(moodFlag)
			return err
		},
	}

	load := func(ctx context.Context) ([]*models.Memory, error) {
		switch {
		case tag != "":
			return a.memories.FilterByTag(ctx, tag)
		case phase != "":
			return a.memories.FilterByPhase(ctx, phase)
		}
		return a.memories.GetAll(ctx)
	}
	cmd.RunE = listCommand(a, "memory", load, views.CompareMemories, func() []listview.Criterion[*models.Memory] {
		return filter.Criteria()
	}, func(items []*models.Memory) error {
		return table(a.out, "ID\tWHEN\tMOOD\tMEMORY\tTAGS", func(tw io.Writer) {
			for _, m := range items {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", m.ID, m.Timestamp.Local().Format(time.DateTime), mood(m.Mood), excerpt(m.ShortText), tags(m.Tags))
			}
		})
	})

	f := cmd.Flags()
	f.StringVarP(&filter.Query, "query", "q", "", "show memories containing text")
	f.StringVarP(&moodFlag, "mood", "m", "", "show memories with this mood")
	f.StringVarP(&tag, "tag", "t", "", "memories with this tag")
	f.StringVarP(&phase, "phase", "p", "", "memories of this life phase")
	return cmd
}

func newMemoryAddCommand(a *App) *cobra.Command {
	var moodFlag, tagList, phase string
	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Capture a memory (at most 200 characters)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.session.Do(cmd.Context(), func(ctx context.Context) error {
				m := &models.Memory{Mood: models.MoodNeutral, Tags: models.ParseTags(tagList), LifePhaseName: phase}
				if len(args) == 1 {
					m.ShortText = args[0]
				} else {
					text, err := GetSimpleText(a.in, "What do you want to remember?", a.out)
					if err != nil {
						return err
					}
					m.ShortText = text
				}
				if moodFlag != "" {
					var err error
					if m.Mood, err = models.ParseMood(moodFlag); err != nil {
						return err
					}
				}
				if err := m.Validate(); err != nil {
					return err
				}

				saved, err := a.memories.Create(ctx, m)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Saved memory %s\n", saved.ID)
				return nil
			})
		},
	}
	f := cmd.Flags()
	f.StringVarP(&moodFlag, "mood", "m", "", "mood (default NEUTRAL)")
	f.StringVarP(&tagList, "tags", "t", "", "comma-separated tags")
	f.StringVarP(&phase, "phase", "p", "", "life phase name")
	return cmd
}

func printMemory(w io.Writer, m *models.Memory) {
	field(w, "ID", m.ID)
	field(w, "When", m.Timestamp.Local().Format(time.DateTime))
	field(w, "Mood", mood(m.Mood))
	field(w, "Phase", m.LifePhaseName)
	field(w, "Tags", tags(m.Tags))
	fmt.Fprintf(w, "\n%s\n", m.ShortText)
}
