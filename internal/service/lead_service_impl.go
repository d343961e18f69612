package service

import (
	"context"
	"fmt"
	"time"

	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/app"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/domain"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/fallback"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/repository"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/sample"
	"github.com/google/uuid"
)

type leadService struct {
	leads repository.LeadRepo
}

func NewLeadService(leads repository.LeadRepo) LeadService {
	return &leadService{leads: leads}
}

func (s *leadService) List(ctx context.Context, req app.LeadListRequest) (*app.LeadListResponse, error) {
	now := resolveNow(req.Now)

	cached, err := s.leads.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading leads: %w", err)
	}

	resolved := fallback.Resolve(cached, sample.Leads(now))
	leads := normalizeLeads(resolved.Data, now)
	total := len(leads)
	leads = filterLeads(leads, req)

	return &app.LeadListResponse{
		Leads: leads,
		Live:  resolved.IsLive,
		Total: total,
	}, nil
}

func (s *leadService) GetByID(ctx context.Context, id string) (*domain.Lead, error) {
	raw, err := s.leads.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading lead %s: %w", id, err)
	}
	lead := domain.NormalizeLead(*raw, time.Now().UTC())
	return &lead, nil
}

func (s *leadService) Create(ctx context.Context, req app.LeadCreateRequest) (*domain.Lead, error) {
	if req.FirstName == "" && req.LastName == "" && req.Phone == "" && req.Email == "" {
		return nil, &app.InputError{
			Code:    app.InputErrMissingField,
			Field:   "name",
			Message: "a name, phone, or email is required",
		}
	}
	if req.UrgencyScore != nil && (*req.UrgencyScore < 0 || *req.UrgencyScore > 100) {
		return nil, &app.InputError{
			Code:    app.InputErrInvalidValue,
			Field:   "urgency_score",
			Message: fmt.Sprintf("%d out of range [0,100]", *req.UrgencyScore),
		}
	}

	now := resolveNow(req.Now)
	raw := &domain.RawLead{
		ID:              uuid.New().String(),
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Phone:           req.Phone,
		Email:           req.Email,
		Source:          req.Source,
		Budget:          req.Budget,
		UrgencyScore:    req.UrgencyScore,
		Status:          domain.CoalesceStr(req.Status, "new"),
		PropertyAddress: req.PropertyAddress,
		Description:     req.Description,
		Timeline:        req.Timeline,
		CreatedAt:       now,
	}

	if err := s.leads.Create(ctx, raw); err != nil {
		return nil, fmt.Errorf("creating lead: %w", err)
	}

	lead := domain.NormalizeLead(*raw, now)
	return &lead, nil
}

func filterLeads(leads []domain.Lead, req app.LeadListRequest) []domain.Lead {
	if req.Temperature == nil && req.Stage == nil && req.Source == "" {
		return leads
	}
	filtered := make([]domain.Lead, 0, len(leads))
	for _, l := range leads {
		if req.Temperature != nil && l.Temperature != *req.Temperature {
			continue
		}
		if req.Stage != nil && l.Stage != *req.Stage {
			continue
		}
		if req.Source != "" && l.Source != domain.NormalizeSource(req.Source) {
			continue
		}
		filtered = append(filtered, l)
	}
	return filtered
}
