package app

import "github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/domain"

type VendorListRequest struct {
	Category *domain.VendorCategory
	TopN     int
}

func NewVendorListRequest() VendorListRequest {
	return VendorListRequest{}
}

type VendorListResponse struct {
	Vendors []domain.Vendor
	Live    bool
	Total   int
}

type VendorGroupView struct {
	Category domain.VendorCategory
	Vendors  []domain.Vendor
}

type VendorGroupsResponse struct {
	Groups []VendorGroupView
	Live   bool
}
