package contract

import "github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/app"

type LeadListRequest = app.LeadListRequest

func NewLeadListRequest() LeadListRequest {
	return app.NewLeadListRequest()
}

type LeadListResponse = app.LeadListResponse

type LeadCreateRequest = app.LeadCreateRequest
