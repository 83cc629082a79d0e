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

func newPlacesCommand(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "places",
		Aliases: []string{"place", "p"},
		Short:   "Places visited or wished for",
	}
	cmd.AddCommand(
		newPlaceListCommand(a),
		newGetCommand(a, "place",
			func(ctx context.Context, id string) (*models.Place, error) { return a.places.GetByID(ctx, id) },
			func(p *models.Place) { printPlace(a.out, p) }),
		newPlaceSaveCommand(a, false),
		newPlaceSaveCommand(a, true),
		newDeleteCommand(a, "place",
			func(ctx context.Context) ([]*models.Place, error) { return a.places.GetAll(ctx) },
			func(p *models.Place) string { return p.ID },
			func(ctx context.Context, id string) error { return a.places.Delete(ctx, id) }),
	)
	return cmd
}

func newPlaceListCommand(a *App) *cobra.Command {
	var (
		filter                           views.PlaceFilter
		statusFlag, typeFlag, tag, phase string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List places, most recently visited first",
		Args:  cobra.NoArgs,
		PreRunE: func(*cobra.Command, []string) (err error) {
			if statusFlag != "" {
				if filter.Status, err = models.ParsePlaceStatus(statusFlag); err != nil {
					return err
				}
			}
			if typeFlag != "" {
				filter.Type, err = models.ParsePlaceType(typeFlag)
			}
			return err
		},
	}

	load := func(ctx context.Context) ([]*models.Place, error) {
		switch {
		case tag != "":
			return a.places.FilterByTag(ctx, tag)
		case phase != "":
			return a.places.FilterByPhase(ctx, phase)
		}
		return a.places.GetAll(ctx)
	}
	cmd.RunE = listCommand(a, "place", load, views.ComparePlaces, func() []listview.Criterion[*models.Place] {
		return filter.Criteria()
	}, func(items []*models.Place) error {
		return table(a.out, "ID\tNAME\tTYPE\tSTATUS\tVISITED\tTAGS", func(tw io.Writer) {
			for _, p := range items {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s %s\t%s\t%s\n", p.ID, p.Name, placeType(p.Type), p.Status.Icon(), p.Status.Label(), p.DateVisited, tags(p.Tags))
			}
		})
	})

	f := cmd.Flags()
	f.StringVarP(&filter.Query, "query", "q", "", "show places whose name or note contains text")
	f.StringVarP(&statusFlag, "status", "s", "", "VISITED, WANT_TO_VISIT or FAVORITE")
	f.StringVar(&typeFlag, "type", "", "show one place type")
	f.StringVarP(&tag, "tag", "t", "", "places with this tag")
	f.StringVarP(&phase, "phase", "p", "", "places of this life phase")
	return cmd
}

func newPlaceSaveCommand(a *App, edit bool) *cobra.Command {
	var (
		name, typeFlag, statusFlag string
		date, note, moodFlag       string
		tagList, phase             string
		lat, long                  float64
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a place",
		Args:  cobra.NoArgs,
	}
	if edit {
		cmd.Use, cmd.Short, cmd.Args = "edit <id>", "Change a place", cobra.ExactArgs(1)
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return a.session.Do(cmd.Context(), func(ctx context.Context) error {
			p := &models.Place{Status: models.PlaceVisited}
			if edit {
				current, err := a.places.GetByID(ctx, args[0])
				if err != nil {
					return err
				}
				p = current
			}

			f := cmd.Flags()
			var err error
			if f.Changed("name") {
				p.Name = name
			}
			if f.Changed("type") {
				if p.Type, err = parseOptionalPlaceType(typeFlag); err != nil {
					return err
				}
			}
			if f.Changed("status") {
				if p.Status, err = models.ParsePlaceStatus(statusFlag); err != nil {
					return err
				}
			}
			if f.Changed("lat") {
				p.Latitude = lat
			}
			if f.Changed("long") {
				p.Longitude = long
			}
			if f.Changed("date") {
				if p.DateVisited, err = models.ParseDate(date); err != nil {
					return err
				}
			}
			if f.Changed("note") {
				p.ExperienceNote = note
			}
			if f.Changed("mood") {
				if p.Mood, err = parseOptionalMood(moodFlag); err != nil {
					return err
				}
			}
			if f.Changed("tags") {
				p.Tags = models.ParseTags(tagList)
			}
			if f.Changed("phase") {
				p.LifePhaseName = phase
			}
			if err := p.Validate(); err != nil {
				return err
			}

			var saved *models.Place
			if edit {
				saved, err = a.places.Update(ctx, p.ID, p)
			} else {
				saved, err = a.places.Create(ctx, p)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Saved place %s\n", saved.ID)
			return nil
		})
	}

	f := cmd.Flags()
	f.StringVar(&name, "name", "", "place name")
	f.StringVar(&typeFlag, "type", "", "CAFE, RESTAURANT, PARK, MUSEUM, CITY, BEACH, MOUNTAIN, HOTEL or OTHER")
	f.StringVarP(&statusFlag, "status", "s", "", "VISITED (default), WANT_TO_VISIT or FAVORITE")
	f.Float64Var(&lat, "lat", 0, "latitude")
	f.Float64Var(&long, "long", 0, "longitude")
	f.StringVarP(&date, "date", "d", "", "date visited, YYYY-MM-DD")
	f.StringVarP(&note, "note", "n", "", "experience note")
	f.StringVarP(&moodFlag, "mood", "m", "", "mood")
	f.StringVarP(&tagList, "tags", "t", "", "comma-separated tags")
	f.StringVarP(&phase, "phase", "p", "", "life phase name")
	return cmd
}

func printPlace(w io.Writer, p *models.Place) {
	field(w, "ID", p.ID)
	field(w, "Name", p.Name)
	field(w, "Type", placeType(p.Type))
	field(w, "Status", p.Status.Icon()+" "+p.Status.Label())
	field(w, "Location", fmt.Sprintf("%.5f, %.5f", p.Latitude, p.Longitude))
	field(w, "Visited", p.DateVisited.String())
	field(w, "Mood", mood(p.Mood))
	field(w, "Phase", p.LifePhaseName)
	field(w, "Tags", tags(p.Tags))
	if p.ExperienceNote != "" {
		fmt.Fprintf(w, "\n%s\n", p.ExperienceNote)
	}
}

func placeType(t models.PlaceType) string {
	if t == "" {
		return ""
	}
	return t.Icon() + " " + t.Label()
}

func parseOptionalPlaceType(s string) (models.PlaceType, error) {
	if s == "" {
		return "", nil
	}
	return models.ParsePlaceType(s)
}
