package cli

import (
	"context"
	"fmt"

	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/cli/formatter"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/contract"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the lead pipeline dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if err := maybeShowGuide(ctx, app); err != nil {
				return err
			}

			resp, err := app.Dashboard.Build(ctx, contract.NewDashboardRequest())
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatDashboard(resp))
			return nil
		},
	}
}

// maybeShowGuide prints the first-run welcome once, then persists the flag.
func maybeShowGuide(ctx context.Context, app *App) error {
	show, err := app.Session.ShouldShowGuide(ctx)
	if err != nil || !show {
		return err
	}

	fmt.Println(formatter.RenderBox("Welcome",
		formatter.Bold("TrustHome")+"\n\n"+
			formatter.Dim("Run 'trusthome sync' to pull your leads and vendors.\n"+
				"Until then, every view renders bundled sample data.")))

	return app.Session.MarkGuideSeen(ctx)
}
