package cli

import (
	"context"
	"fmt"

	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/cli/formatter"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/domain"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/repository"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect and control the session, demo mode, and role",
	}

	cmd.AddCommand(
		newSessionStatusCmd(app),
		newSessionLoginCmd(app),
		newSessionLogoutCmd(app),
		newSessionDemoCmd(app),
		newSessionRoleCmd(app),
	)

	return cmd
}

func newSessionStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current session state",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Session.RefreshUser(context.Background()); err != nil {
				fmt.Println(formatter.Dim("backend unreachable; showing local state"))
			}
			fmt.Println(formatter.FormatSession(app.Session.Snapshot()))
			return nil
		},
	}
}

func newSessionLoginCmd(app *App) *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a backend API token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				if !app.interactive() {
					return fmt.Errorf("no terminal; pass --token")
				}
				if err := loginForm(&token).Run(); err != nil {
					return err
				}
			}

			ctx := context.Background()
			if err := app.Settings.Set(ctx, repository.SettingAPIToken, token); err != nil {
				return err
			}

			fmt.Println("Token saved. It takes effect on the next run.")
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Backend API token")

	return cmd
}

func newSessionLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear local session state",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Best-effort remote logout; local teardown happens regardless.
			if err := app.Session.SignOut(context.Background()); err != nil {
				fmt.Println(formatter.Dim("backend unreachable; local session cleared"))
			}
			fmt.Println(formatter.FormatSession(app.Session.Snapshot()))
			return nil
		},
	}
}

func newSessionDemoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "demo <on|off>",
		Short: "Enter or leave demo mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "on":
				app.Session.EnterDemo()
			case "off":
				app.Session.ExitDemo()
			default:
				return fmt.Errorf("expected on or off, got %q", args[0])
			}
			fmt.Println(formatter.FormatSession(app.Session.Snapshot()))
			return nil
		},
	}
}

func newSessionRoleCmd(app *App) *cobra.Command {
	var role roleValue

	cmd := &cobra.Command{
		Use:   "role",
		Short: "Switch the active role",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("set") {
				fmt.Println(formatter.RoleBadge(app.Session.Role()))
				return nil
			}
			if err := app.Session.SetRole(domain.Role(role)); err != nil {
				return err
			}
			fmt.Println(formatter.RoleBadge(app.Session.Role()))
			return nil
		},
	}

	cmd.Flags().Var(&role, "set", "Role to activate (agent, client_buyer, client_seller)")

	return cmd
}
