package cli

import (
	"fmt"

	"github.com/dmitrijs2005/lifelog/internal/models"
	"github.com/spf13/cobra"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

func newLoginCommand(a *App) *cobra.Command {
	var username string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if username == "" {
				if username, err = getSimpleText(a.in, "Username", a.out); err != nil {
					return err
				}
			}
			password, err := getPassword("Password", a.out)
			if err != nil {
				return err
			}

			u, err := a.session.Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Signed in as %s\n", u.Username)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "username")
	return cmd
}

func newRegisterCommand(a *App) *cobra.Command {
	var req models.RegisterRequest
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if req.Username == "" {
				if req.Username, err = getSimpleText(a.in, "Username", a.out); err != nil {
					return err
				}
			}
			if req.Email == "" {
				if req.Email, err = getSimpleText(a.in, "Email", a.out); err != nil {
					return err
				}
			}
			if req.Password, err = getPassword("Password", a.out); err != nil {
				return err
			}

			u, err := a.session.Register(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Welcome, %s!\n", u.Username)
			return nil
		},
	}
	cmd.Flags().StringVarP(&req.Username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&req.Email, "email", "e", "", "email address")
	return cmd
}

func newLogoutCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.session.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Signed out")
			return nil
		},
	}
}

func newWhoamiCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			u := a.session.User()
			if u == nil {
				fmt.Fprintln(a.out, "Not signed in")
				return nil
			}
			fmt.Fprintf(a.out, "%s (%s)\n", u.Username, u.ID)
			return nil
		},
	}
}
