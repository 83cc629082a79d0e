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

func newTastesCommand(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tastes",
		Aliases: []string{"taste", "t"},
		Short:   "Songs, movies, books and other things you consumed",
	}
	cmd.AddCommand(
		newTasteListCommand(a),
		newTasteSearchCommand(a),
		newGetCommand(a, "taste",
			func(ctx context.Context, id string) (*models.Taste, error) { return a.tastes.GetByID(ctx, id) },
			func(t *models.Taste) { printTaste(a.out, t) }),
		newTasteSaveCommand(a, false),
		newTasteSaveCommand(a, true),
		newDeleteCommand(a, "taste",
			func(ctx context.Context) ([]*models.Taste, error) { return a.tastes.GetAll(ctx) },
			func(t *models.Taste) string { return t.ID },
			func(ctx context.Context, id string) error { return a.tastes.Delete(ctx, id) }),
	)
	return cmd
}

func newTasteListCommand(a *App) *cobra.Command {
	var (
		filter               views.TasteFilter
		typeFlag, tag, phase string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tastes, best rated first",
		Args:  cobra.NoArgs,
		PreRunE: func(*cobra.Command, []string) (err error) {
			if typeFlag != "" {
				filter.Type, err = models.ParseTasteType(typeFlag)
			}
			return err
		},
	}

	load := func(ctx context.Context) ([]*models.Taste, error) {
		switch {
		case tag != "":
			return a.tastes.FilterByTag(ctx, tag)
		case phase != "":
			return a.tastes.FilterByPhase(ctx, phase)
		}
		return a.tastes.SortByRating(ctx)
	}
	cmd.RunE = listCommand(a, "taste", load, views.CompareTastes, func() []listview.Criterion[*models.Taste] {
		return filter.Criteria()
	}, func(items []*models.Taste) error {
		return printTastes(a.out, items)
	})

	f := cmd.Flags()
	f.StringVarP(&filter.Query, "query", "q", "", "show tastes whose title or note contains text")
	f.StringVar(&typeFlag, "type", "", "show one type (SONG, MOVIE, SERIES, BOOK, GAME, FOOD, OTHER)")
	f.IntVarP(&filter.Rating, "rating", "r", 0, "show tastes with this rating")
	f.StringVarP(&tag, "tag", "t", "", "tastes with this tag")
	f.StringVarP(&phase, "phase", "p", "", "tastes of this life phase")
	return cmd
}

func newTasteSearchCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search <text>",
		Short: "Search tastes on the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.session.Do(cmd.Context(), func(ctx context.Context) error {
				items, err := a.tastes.Search(ctx, args[0])
				if err != nil {
					return err
				}
				if len(items) == 0 {
					fmt.Fprintln(a.out, "Nothing found")
					return nil
				}
				return printTastes(a.out, items)
			})
		},
	}
}

func newTasteSaveCommand(a *App, edit bool) *cobra.Command {
	var (
		typeFlag, title, note   string
		date, moodFlag, tagList string
		phase                   string
		stars                   int
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a taste",
		Args:  cobra.NoArgs,
	}
	if edit {
		cmd.Use, cmd.Short, cmd.Args = "edit <id>", "Change a taste", cobra.ExactArgs(1)
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return a.session.Do(cmd.Context(), func(ctx context.Context) error {
			t := &models.Taste{DateConsumed: models.Today()}
			if edit {
				current, err := a.tastes.GetByID(ctx, args[0])
				if err != nil {
					return err
				}
				t = current
			}

			f := cmd.Flags()
			var err error
			if f.Changed("type") {
				if t.Type, err = models.ParseTasteType(typeFlag); err != nil {
					return err
				}
			}
			if f.Changed("title") {
				t.Title = title
			}
			if f.Changed("rating") {
				t.Rating = stars
			}
			if f.Changed("date") {
				if t.DateConsumed, err = models.ParseDate(date); err != nil {
					return err
				}
			}
			if f.Changed("note") {
				t.PersonalNote = note
			}
			if f.Changed("mood") {
				if t.Mood, err = parseOptionalMood(moodFlag); err != nil {
					return err
				}
			}
			if f.Changed("tags") {
				t.Tags = models.ParseTags(tagList)
			}
			if f.Changed("phase") {
				t.LifePhaseName = phase
			}
			if err := t.Validate(); err != nil {
				return err
			}

			var saved *models.Taste
			if edit {
				saved, err = a.tastes.Update(ctx, t.ID, t)
			} else {
				saved, err = a.tastes.Create(ctx, t)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Saved taste %s\n", saved.ID)
			return nil
		})
	}

	f := cmd.Flags()
	f.StringVar(&typeFlag, "type", "", "SONG, MOVIE, SERIES, BOOK, GAME, FOOD or OTHER")
	f.StringVar(&title, "title", "", "title")
	f.IntVarP(&stars, "rating", "r", 0, "rating from 1 to 5")
	f.StringVarP(&date, "date", "d", "", "date consumed, YYYY-MM-DD (default today)")
	f.StringVarP(&note, "note", "n", "", "personal note")
	f.StringVarP(&moodFlag, "mood", "m", "", "mood")
	f.StringVarP(&tagList, "tags", "t", "", "comma-separated tags")
	f.StringVarP(&phase, "phase", "p", "", "life phase name")
	return cmd
}

func printTastes(w io.Writer, items []*models.Taste) error {
	return table(w, "ID\tTYPE\tTITLE\tRATING\tDATE\tTAGS", func(tw io.Writer) {
		for _, t := range items {
			fmt.Fprintf(tw, "%s\t%s %s\t%s\t%s\t%s\t%s\n", t.ID, t.Type.Icon(), t.Type.Label(), t.Title, rating(t.Rating), t.DateConsumed, tags(t.Tags))
		}
	})
}

func printTaste(w io.Writer, t *models.Taste) {
	field(w, "ID", t.ID)
	field(w, "Type", t.Type.Icon()+" "+t.Type.Label())
	field(w, "Title", t.Title)
	field(w, "Rating", rating(t.Rating))
	field(w, "Consumed", t.DateConsumed.String())
	field(w, "Mood", mood(t.Mood))
	field(w, "Phase", t.LifePhaseName)
	field(w, "Tags", tags(t.Tags))
	if t.PersonalNote != "" {
		fmt.Fprintf(w, "\n%s\n", t.PersonalNote)
	}
}
