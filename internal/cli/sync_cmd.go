package cli

import (
	"context"
	"fmt"

	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSyncCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Fetch leads and vendors from the backend into the local cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			var stop func()
			if app.interactive() {
				stop = formatter.StartSpinner("Syncing with backend...")
			}

			result, err := app.Syncer.Sync(context.Background())

			if stop != nil {
				stop()
			}
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatSync(result))
			return nil
		},
	}
}
