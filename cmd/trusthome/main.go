package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/cli"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/db"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/remote"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/repository"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/safety"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/service"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/session"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local development; env vars already set win.
	_ = godotenv.Load()

	// Determine DB path: env var or default ~/.trusthome/trusthome.db
	dbPath := os.Getenv("TRUSTHOME_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".trusthome", "trusthome.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	leadRepo := repository.NewSQLiteLeadRepo(database)
	vendorRepo := repository.NewSQLiteVendorRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)

	// Wire unit of work for transactional cache swaps
	uow := db.NewSQLiteUnitOfWork(database)

	// Backend client: env config, with the token stored by "session login"
	// as a fallback when the env leaves it unset.
	apiCfg := remote.LoadConfig()
	if apiCfg.Token == "" {
		if token, err := settingsRepo.Get(context.Background(), repository.SettingAPIToken); err == nil {
			apiCfg.Token = token
		} else if !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("reading stored token: %w", err)
		}
	}

	var observer remote.Observer = remote.NoopObserver{}
	if apiCfg.LogCalls {
		observer = remote.NewLogObserver(os.Stderr)
	}
	apiClient := remote.NewHTTPClient(apiCfg, observer)

	// Safety tracker resumes a previously armed session on startup.
	tracker := safety.NewTracker(safety.NewStaticGeolocator(), settingsRepo)
	if err := tracker.Resume(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: resuming safety mode: %v\n", err)
	}
	defer tracker.Close()

	app := &cli.App{
		Leads:     service.NewLeadService(leadRepo),
		Vendors:   service.NewVendorService(vendorRepo),
		Dashboard: service.NewDashboardService(leadRepo),
		Syncer:    service.NewSyncService(apiClient, uow),
		Import:    service.NewImportService(uow),

		Session:  session.NewManager(apiClient, settingsRepo),
		Safety:   tracker,
		Settings: settingsRepo,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
