package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/lifelog/internal/client/listview"
	"github.com/dmitrijs2005/lifelog/internal/client/views"
	"github.com/dmitrijs2005/lifelog/internal/models"
	"github.com/spf13/cobra"
)

func newJournalsCommand(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "journals",
		Aliases: []string{"journal", "j"},
		Short:   "Daily journal entries",
	}
	cmd.AddCommand(
		newJournalListCommand(a),
		newJournalSearchCommand(a),
		newGetCommand(a, "journal entry",
			func(ctx context.Context, id string) (*models.JournalEntry, error) { return a.journals.GetByID(ctx, id) },
			func(e *models.JournalEntry) { printJournal(a.out, e) }),
		newJournalSaveCommand(a, false),
		newJournalSaveCommand(a, true),
		newDeleteCommand(a, "journal entry",
			func(ctx context.Context) ([]*models.JournalEntry, error) { return a.journals.GetAll(ctx) },
			func(e *models.JournalEntry) string { return e.ID },
			func(ctx context.Context, id string) error { return a.journals.Delete(ctx, id) }),
	)
	return cmd
}

func newJournalListCommand(a *App) *cobra.Command {
	var (
		filter         views.JournalFilter
		moodFlag, date string
		tag, phase     string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries, newest first",
		Args:  cobra.NoArgs,
		PreRunE: func(*cobra.Command, []string) (err error) {
			filter.Mood, err = parseOptionalMood(moodFlag)
			return err
		},
	}

	load := func(ctx context.Context) ([]*models.JournalEntry, error) {
		switch {
		case date != "":
			d, err := models.ParseDate(date)
			if err != nil {
				return nil, err
			}
			return a.journals.GetByDate(ctx, d)
		case tag != "":
			return a.journals.FilterByTag(ctx, tag)
		case phase != "":
			return a.journals.FilterByPhase(ctx, phase)
		}
		return a.journals.GetAll(ctx)
	}
	cmd.RunE = listCommand(a, "journal", load, views.CompareJournals, func() []listview.Criterion[*models.JournalEntry] {
		return filter.Criteria()
	}, func(items []*models.JournalEntry) error {
		return printJournals(a.out, items)
	})

	f := cmd.Flags()
	f.StringVarP(&filter.Query, "query", "q", "", "show entries whose content contains text")
	f.StringVarP(&moodFlag, "mood", "m", "", "show entries with this mood")
	f.StringVar(&filter.Context, "context", "", "show entries with this context")
	f.StringVarP(&date, "date", "d", "", "entries of one day (YYYY-MM-DD)")
	f.StringVarP(&tag, "tag", "t", "", "entries with this tag")
	f.StringVarP(&phase, "phase", "p", "", "entries of this life phase")
	return cmd
}

func newJournalSearchCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search <text>",
		Short: "Search journal entries on the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.session.Do(cmd.Context(), func(ctx context.Context) error {
				items, err := a.journals.Search(ctx, args[0])
				if err != nil {
					return err
				}
				if len(items) == 0 {
					fmt.Fprintln(a.out, "Nothing found")
					return nil
				}
				return printJournals(a.out, items)
			})
		},
	}
}

// newJournalSaveCommand builds `add` or, with edit set, `edit <id>`. On
// edit only the given flags change the stored entry.
func newJournalSaveCommand(a *App, edit bool) *cobra.Command {
	var (
		content, date, clock string
		moodFlag, tagList    string
		journalCtx, phase    string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Write a journal entry",
		Args:  cobra.NoArgs,
	}
	if edit {
		cmd.Use, cmd.Short, cmd.Args = "edit <id>", "Change a journal entry", cobra.ExactArgs(1)
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return a.session.Do(cmd.Context(), func(ctx context.Context) error {
			e := &models.JournalEntry{Date: models.Today(), Mood: models.MoodNeutral}
			if edit {
				current, err := a.journals.GetByID(ctx, args[0])
				if err != nil {
					return err
				}
				e = current
			}

			f := cmd.Flags()
			var err error
			if f.Changed("date") {
				if e.Date, err = models.ParseDate(date); err != nil {
					return err
				}
			}
			if f.Changed("time") {
				e.Time = clock
			}
			if f.Changed("mood") {
				if e.Mood, err = models.ParseMood(moodFlag); err != nil {
					return err
				}
			}
			if f.Changed("tags") {
				e.Tags = models.ParseTags(tagList)
			}
			if f.Changed("context") {
				e.Context = journalCtx
			}
			if f.Changed("phase") {
				e.LifePhaseName = phase
			}
			switch {
			case f.Changed("content"):
				e.Content = content
			case !edit:
				if e.Content, err = GetMultiline(a.in, "What happened today?", a.out); err != nil {
					return err
				}
			}
			if err := e.Validate(); err != nil {
				return err
			}

			var saved *models.JournalEntry
			if edit {
				saved, err = a.journals.Update(ctx, e.ID, e)
			} else {
				saved, err = a.journals.Create(ctx, e)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Saved journal entry %s\n", saved.ID)
			return nil
		})
	}

	f := cmd.Flags()
	f.StringVar(&content, "content", "", "entry text (prompted when omitted)")
	f.StringVarP(&date, "date", "d", "", "date, YYYY-MM-DD (default today)")
	f.StringVar(&clock, "time", "", "time of day, HH:MM")
	f.StringVarP(&moodFlag, "mood", "m", "", "mood (default NEUTRAL)")
	f.StringVarP(&tagList, "tags", "t", "", "comma-separated tags")
	f.StringVar(&journalCtx, "context", "", "where or with whom")
	f.StringVarP(&phase, "phase", "p", "", "life phase name")
	return cmd
}

func printJournals(w io.Writer, items []*models.JournalEntry) error {
	return table(w, "ID\tDATE\tTIME\tMOOD\tENTRY\tTAGS", func(tw io.Writer) {
		for _, e := range items {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", e.ID, e.Date, e.Time, mood(e.Mood), excerpt(e.Content), tags(e.Tags))
		}
	})
}

func printJournal(w io.Writer, e *models.JournalEntry) {
	field(w, "ID", e.ID)
	field(w, "Date", e.Date.String())
	field(w, "Time", e.Time)
	field(w, "Mood", mood(e.Mood))
	field(w, "Context", e.Context)
	field(w, "Phase", e.LifePhaseName)
	field(w, "Tags", tags(e.Tags))
	fmt.Fprintf(w, "\n%s\n", e.Content)
}

func parseOptionalMood(s string) (models.Mood, error) {
	if s == "" {
		return "", nil
	}
	return models.ParseMood(s)
}
