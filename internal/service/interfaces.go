package service

import (
	"context"

	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/contract"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/domain"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/importer"
)

type LeadService interface {
	List(ctx context.Context, req contract.LeadListRequest) (*contract.LeadListResponse, error)
	GetByID(ctx context.Context, id string) (*domain.Lead, error)
	Create(ctx context.Context, req contract.LeadCreateRequest) (*domain.Lead, error)
}

type VendorService interface {
	List(ctx context.Context, req contract.VendorListRequest) (*contract.VendorListResponse, error)
	TopByTrust(ctx context.Context, n int) (*contract.VendorListResponse, error)
	Groups(ctx context.Context) (*contract.VendorGroupsResponse, error)
}

type DashboardService interface {
	Build(ctx context.Context, req contract.DashboardRequest) (*contract.DashboardResponse, error)
}

type SyncService interface {
	Sync(ctx context.Context) (*contract.SyncResult, error)
}

// ImportResult holds the outcome of a lead import.
type ImportResult struct {
	LeadCount int
}

type ImportService interface {
	ImportLeads(ctx context.Context, filePath string) (*ImportResult, error)
	ImportLeadsFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}
