package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lifelog/internal/client/listview"
	"github.com/spf13/cobra"
)

// listCommand loads a sorted list, applies the client-side filters and
// prints what is left.
func listCommand[T any](a *App, name string, load listview.Loader[T], compare func(x, y T) int, criteria func() []listview.Criterion[T], print func(items []T) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		return a.session.Do(cmd.Context(), func(ctx context.Context) error {
			res, err := listview.NewBuilder(name, load).SortBy(compare).Build()
			if err != nil {
				return err
			}
			if err := res.Load(ctx); err != nil {
				return err
			}
			items := res.View(criteria()...)
			if len(items) == 0 {
				fmt.Fprintln(a.out, "Nothing found")
				return nil
			}
			return print(items)
		})
	}
}

// newDeleteCommand builds `<entity> delete <id>`. Without --yes the user
// is asked first.
func newDeleteCommand[T any](a *App, name string, load listview.Loader[T], id func(T) string, remove listview.Deleter) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a " + name,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.session.Do(cmd.Context(), func(ctx context.Context) error {
				res, err := listview.NewBuilder(name, load).
					DeleteWith(id, remove).
					ConfirmWith(a.confirmer(yes)).
					Build()
				if err != nil {
					return err
				}
				deleted, err := res.Delete(ctx, args[0])
				if err != nil {
					return err
				}
				if !deleted {
					fmt.Fprintln(a.out, "Cancelled")
					return nil
				}
				fmt.Fprintf(a.out, "Deleted %s %s (%d left)\n", name, args[0], len(res.Items()))
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

// newGetCommand builds `<entity> get <id>`.
func newGetCommand[T any](a *App, name string, get func(ctx context.Context, id string) (T, error), print func(T)) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one " + name,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.session.Do(cmd.Context(), func(ctx context.Context) error {
				item, err := get(ctx, args[0])
				if err != nil {
					return err
				}
				print(item)
				return nil
			})
		},
	}
}
