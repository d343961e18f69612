package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSafetyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "safety",
		Short: "Control safety mode and location tracking",
	}

	cmd.AddCommand(
		newSafetyOnCmd(app),
		newSafetyOffCmd(app),
		newSafetyToggleCmd(app),
		newSafetyStatusCmd(app),
		newSafetyLocateCmd(app),
		newSafetyWatchCmd(app),
	)

	return cmd
}

func safetyStatus(app *App) formatter.SafetyStatus {
	return formatter.SafetyStatus{
		Active:        app.Safety.Active(),
		Reason:        app.Safety.Reason(),
		HasPermission: app.Safety.HasPermission(),
		Location:      app.Safety.CurrentLocation(),
	}
}

func newSafetyOnCmd(app *App) *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "on",
		Short: "Arm safety mode and start location tracking",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Safety.Start(context.Background(), reason); err != nil {
				return err
			}
			fmt.Println(formatter.FormatSafety(safetyStatus(app)))
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "Why safety mode is being armed (e.g. a showing)")

	return cmd
}

func newSafetyOffCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "off",
		Short: "Disarm safety mode and stop tracking",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Safety.Stop(context.Background()); err != nil {
				return err
			}
			fmt.Println(formatter.FormatSafety(safetyStatus(app)))
			return nil
		},
	}
}

func newSafetyToggleCmd(app *App) *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "toggle",
		Short: "Flip safety mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Safety.Toggle(context.Background(), reason); err != nil {
				return err
			}
			fmt.Println(formatter.FormatSafety(safetyStatus(app)))
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "Reason recorded when arming")

	return cmd
}

func newSafetyStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show safety mode state and the last location fix",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(formatter.FormatSafety(safetyStatus(app)))
			return nil
		},
	}
}

func newSafetyLocateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "locate",
		Short: "Take a one-shot location fix",
		RunE: func(cmd *cobra.Command, args []string) error {
			pos := app.Safety.RefreshLocation(context.Background())
			if pos == nil {
				fmt.Println(formatter.Dim("no fix available (permission denied or provider failure)"))
				return nil
			}
			fmt.Println(formatter.Coords(pos.Lat, pos.Lng, pos.AccuracyM))
			return nil
		},
	}
}

func newSafetyWatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Follow location updates live while safety mode is armed",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Safety.Active() {
				return fmt.Errorf("safety mode is off; run 'trusthome safety on' first")
			}
			if !app.interactive() {
				return fmt.Errorf("watch needs a terminal")
			}

			_, err := tea.NewProgram(newWatchModel(app.Safety)).Run()
			return err
		},
	}
}
