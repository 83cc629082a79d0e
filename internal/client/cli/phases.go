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

func newPhasesCommand(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "phases",
		Aliases: []string{"phase"},
		Short:   "Named periods of life that entries can be grouped by",
	}
	cmd.AddCommand(
		newPhaseListCommand(a),
		newGetCommand(a, "life phase",
			func(ctx context.Context, id string) (*models.LifePhase, error) { return a.phases.GetByID(ctx, id) },
			func(p *models.LifePhase) { printPhase(a.out, p) }),
		newPhaseSaveCommand(a, false),
		newPhaseSaveCommand(a, true),
		newDeleteCommand(a, "life phase",
			func(ctx context.Context) ([]*models.LifePhase, error) { return a.phases.GetAll(ctx) },
			func(p *models.LifePhase) string { return p.ID },
			func(ctx context.Context, id string) error { return a.phases.Delete(ctx, id) }),
	)
	return cmd
}

func newPhaseListCommand(a *App) *cobra.Command {
	var query string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List life phases, latest first",
		Args:  cobra.NoArgs,
	}
	load := func(ctx context.Context) ([]*models.LifePhase, error) { return a.phases.GetAll(ctx) }
	cmd.RunE = listCommand(a, "life phase", load, views.ComparePhases, func() []listview.Criterion[*models.LifePhase] {
		return []listview.Criterion[*models.LifePhase]{
			listview.Text(query,
				func(p *models.LifePhase) string { return p.Name },
				func(p *models.LifePhase) string { return p.Description },
			),
		}
	}, func(items []*models.LifePhase) error {
		return table(a.out, "ID\tNAME\tFROM\tTO", func(tw io.Writer) {
			for _, p := range items {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.StartDate, phaseEnd(p))
			}
		})
	})
	cmd.Flags().StringVarP(&query, "query", "q", "", "show phases whose name or description contains text")
	return cmd
}

func newPhaseSaveCommand(a *App, edit bool) *cobra.Command {
	var name, start, end, description string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Start a life phase",
		Args:  cobra.NoArgs,
	}
	if edit {
		cmd.Use, cmd.Short, cmd.Args = "edit <id>", "Change a life phase", cobra.ExactArgs(1)
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return a.session.Do(cmd.Context(), func(ctx context.Context) error {
			p := &models.LifePhase{StartDate: models.Today()}
			if edit {
				current, err := a.phases.GetByID(ctx, args[0])
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
			if f.Changed("start") {
				if p.StartDate, err = models.ParseDate(start); err != nil {
					return err
				}
			}
			if f.Changed("end") {
				if p.EndDate, err = models.ParseDate(end); err != nil {
					return err
				}
			}
			if f.Changed("description") {
				p.Description = description
			}
			if err := p.Validate(); err != nil {
				return err
			}

			var saved *models.LifePhase
			if edit {
				saved, err = a.phases.Update(ctx, p.ID, p)
			} else {
				saved, err = a.phases.Create(ctx, p)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Saved life phase %s\n", saved.ID)
			return nil
		})
	}

	f := cmd.Flags()
	f.StringVar(&name, "name", "", "phase name")
	f.StringVar(&start, "start", "", "start date, YYYY-MM-DD (default today)")
	f.StringVar(&end, "end", "", "end date, YYYY-MM-DD (empty while ongoing)")
	f.StringVar(&description, "description", "", "what this phase was about")
	return cmd
}

func phaseEnd(p *models.LifePhase) string {
	if p.EndDate.IsZero() {
		return "ongoing"
	}
	return p.EndDate.String()
}

func printPhase(w io.Writer, p *models.LifePhase) {
	field(w, "ID", p.ID)
	field(w, "Name", p.Name)
	field(w, "From", p.StartDate.String())
	field(w, "To", phaseEnd(p))
	if p.Description != "" {
		fmt.Fprintf(w, "\n%s\n", p.Description)
	}
}
