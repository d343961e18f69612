package service

import (
	"context"
	"fmt"
	"time"

	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/app"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/domain"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/fallback"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/insights"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/repository"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/sample"
)

type vendorService struct {
	vendors repository.VendorRepo
}

func NewVendorService(vendors repository.VendorRepo) VendorService {
	return &vendorService{vendors: vendors}
}

func (s *vendorService) List(ctx context.Context, req app.VendorListRequest) (*app.VendorListResponse, error) {
	resolved, err := s.resolve(ctx)
	if err != nil {
		return nil, err
	}

	vendors := resolved.Data
	total := len(vendors)
	if req.Category != nil {
		filtered := make([]domain.Vendor, 0, len(vendors))
		for _, v := range vendors {
			if v.Category == *req.Category {
				filtered = append(filtered, v)
			}
		}
		vendors = filtered
	}
	if req.TopN > 0 {
		vendors = insights.TopVendorsByTrust(vendors, req.TopN)
	}

	return &app.VendorListResponse{
		Vendors: vendors,
		Live:    resolved.IsLive,
		Total:   total,
	}, nil
}

func (s *vendorService) TopByTrust(ctx context.Context, n int) (*app.VendorListResponse, error) {
	resolved, err := s.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return &app.VendorListResponse{
		Vendors: insights.TopVendorsByTrust(resolved.Data, n),
		Live:    resolved.IsLive,
		Total:   len(resolved.Data),
	}, nil
}

func (s *vendorService) Groups(ctx context.Context) (*app.VendorGroupsResponse, error) {
	resolved, err := s.resolve(ctx)
	if err != nil {
		return nil, err
	}

	grouped := insights.GroupByCategory(resolved.Data)
	views := make([]app.VendorGroupView, 0, len(grouped))
	for _, g := range grouped {
		views = append(views, app.VendorGroupView{Category: g.Category, Vendors: g.Vendors})
	}

	return &app.VendorGroupsResponse{Groups: views, Live: resolved.IsLive}, nil
}

func (s *vendorService) resolve(ctx context.Context) (fallback.Result[domain.Vendor], error) {
	cached, err := s.vendors.List(ctx)
	if err != nil {
		return fallback.Result[domain.Vendor]{}, fmt.Errorf("loading vendors: %w", err)
	}
	resolved := fallback.Resolve(cached, sample.Vendors(time.Now().UTC()))
	resolved.Data = normalizeVendors(resolved.Data)
	return resolved, nil
}
