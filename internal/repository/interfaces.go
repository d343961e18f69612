package repository

import (
	"context"
	"errors"

	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// LeadRepo stores raw lead records in the local cache. Normalization happens
// on read in the service layer, never at rest.
type LeadRepo interface {
	Create(ctx context.Context, l *domain.RawLead) error
	GetByID(ctx context.Context, id string) (*domain.RawLead, error)
	List(ctx context.Context) ([]domain.RawLead, error)
	// ReplaceAll swaps the entire cached list; run inside a UnitOfWork so a
	// failed sync never leaves a half-empty cache.
	ReplaceAll(ctx context.Context, leads []domain.RawLead) error
}

// VendorRepo stores vendor records in the local cache.
type VendorRepo interface {
	List(ctx context.Context) ([]domain.Vendor, error)
	ReplaceAll(ctx context.Context, vendors []domain.Vendor) error
}

// SettingsRepo is the durable key-value store behind the persisted flags
// (safety_mode, guide_seen). Last write wins; no transactional guarantees.
type SettingsRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
