package cli

import (
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/repository"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/safety"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/service"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/session"
	"github.com/spf13/cobra"
)

// App holds references to all services and state machines used by CLI
// commands.
type App struct {
	Leads     service.LeadService
	Vendors   service.VendorService
	Dashboard service.DashboardService
	Syncer    service.SyncService
	Import    service.ImportService

	Session  *session.Manager
	Safety   *safety.Tracker
	Settings repository.SettingsRepo

	// IsInteractive reports whether stdin is a terminal; forms are offered
	// only when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "trusthome" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "trusthome",
		Short: "Real-estate lead pipeline, vendor directory, and safety companion",
	}

	root.AddCommand(
		newDashboardCmd(app),
		newLeadCmd(app),
		newVendorCmd(app),
		newSessionCmd(app),
		newSafetyCmd(app),
		newSyncCmd(app),
	)

	return root
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
