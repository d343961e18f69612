package testutil

import (
	"time"

	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/domain"
	"github.com/google/uuid"
)

// TestNow is a fixed reference time for deterministic activity labels.
var TestNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

// Lead options
type LeadOption func(*domain.RawLead)

func WithStatus(status string) LeadOption {
	return func(l *domain.RawLead) {
		l.Status = status
	}
}

func WithScore(score int) LeadOption {
	return func(l *domain.RawLead) {
		l.UrgencyScore = &score
	}
}

func WithSource(source string) LeadOption {
	return func(l *domain.RawLead) {
		l.Source = source
	}
}

func WithPhone(phone string) LeadOption {
	return func(l *domain.RawLead) {
		l.Phone = phone
	}
}

func WithCreatedAt(t time.Time) LeadOption {
	return func(l *domain.RawLead) {
		l.CreatedAt = t
	}
}

// NewTestLead builds a raw lead with sane defaults. The name is split on the
// first space into first/last.
func NewTestLead(name string, opts ...LeadOption) *domain.RawLead {
	first, last := name, ""
	for i := 0; i < len(name); i++ {
		if name[i] == ' ' {
			first, last = name[:i], name[i+1:]
			break
		}
	}
	l := &domain.RawLead{
		ID:        uuid.New().String(),
		FirstName: first,
		LastName:  last,
		Phone:     "5125550100",
		Email:     "test@example.com",
		Source:    "Referral",
		Status:    "new",
		CreatedAt: TestNow.AddDate(0, 0, -1),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Vendor options
type VendorOption func(*domain.Vendor)

func WithTrustScore(score int) VendorOption {
	return func(v *domain.Vendor) {
		v.TrustScore = score
	}
}

func WithActiveTransactions(n int) VendorOption {
	return func(v *domain.Vendor) {
		v.ActiveTransactions = n
	}
}

// NewTestVendor builds a vendor with sane defaults.
func NewTestVendor(name string, category domain.VendorCategory, opts ...VendorOption) *domain.Vendor {
	v := &domain.Vendor{
		ID:                 uuid.New().String(),
		Name:               name,
		Company:            name + " LLC",
		Category:           category,
		TrustScore:         75,
		ActiveTransactions: 1,
		Phone:              "5125550200",
		LastUsed:           TestNow.AddDate(0, 0, -5),
		Specialties:        []string{"Residential"},
		RecentTransactions: []string{},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}
