package app

import (
	"time"

	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/domain"
)

type LeadListRequest struct {
	Now         *time.Time
	Temperature *domain.Temperature
	Stage       *domain.Stage
	Source      string
}

func NewLeadListRequest() LeadListRequest {
	return LeadListRequest{}
}

type LeadListResponse struct {
	Leads []domain.Lead
	Live  bool
	Total int
}

type LeadCreateRequest struct {
	Now             *time.Time
	FirstName       string
	LastName        string
	Phone           string
	Email           string
	Source          string
	Budget          string
	UrgencyScore    *int
	Status          string
	PropertyAddress string
	Description     string
	Timeline        string
}
