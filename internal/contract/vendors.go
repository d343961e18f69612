package contract

import "github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/app"

type VendorListRequest = app.VendorListRequest

func NewVendorListRequest() VendorListRequest {
	return app.NewVendorListRequest()
}

type VendorListResponse = app.VendorListResponse

type VendorGroupView = app.VendorGroupView

type VendorGroupsResponse = app.VendorGroupsResponse
