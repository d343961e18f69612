package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/app"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/db"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/remote"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/repository"
)

type syncService struct {
	client remote.Client
	uow    db.UnitOfWork
}

func NewSyncService(client remote.Client, uow db.UnitOfWork) SyncService {
	return &syncService{client: client, uow: uow}
}

// Sync pulls leads and vendors from the backend and swaps the local cache in
// one transaction. A failed fetch or write leaves the previous cache intact.
func (s *syncService) Sync(ctx context.Context) (*app.SyncResult, error) {
	start := time.Now().UTC()

	leads, err := s.client.FetchLeads(ctx)
	if err != nil {
		return nil, syncError("fetching leads", err)
	}
	vendors, err := s.client.FetchVendors(ctx)
	if err != nil {
		return nil, syncError("fetching vendors", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteLeadRepo(tx).ReplaceAll(ctx, leads); err != nil {
			return fmt.Errorf("replacing lead cache: %w", err)
		}
		if err := repository.NewSQLiteVendorRepo(tx).ReplaceAll(ctx, vendors); err != nil {
			return fmt.Errorf("replacing vendor cache: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &app.SyncResult{
		StartedAt:   start,
		LeadCount:   len(leads),
		VendorCount: len(vendors),
		DurationMs:  time.Since(start).Milliseconds(),
	}, nil
}

func syncError(op string, err error) error {
	switch {
	case errors.Is(err, remote.ErrNotConfigured):
		return &app.SyncError{Code: app.SyncErrNotConfigured, Message: "no backend configured; set TRUSTHOME_API_URL"}
	case errors.Is(err, remote.ErrUnavailable):
		return &app.SyncError{Code: app.SyncErrUnavailable, Message: op + ": " + err.Error()}
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
