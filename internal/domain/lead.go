package domain

import "time"

// RawLead is a lead record as it arrives from the backend or an import file.
// Optional fields may be empty or nil; NormalizeLead fills every gap.
type RawLead struct {
	ID              string
	FirstName       string
	LastName        string
	Phone           string
	Email           string
	Source          string
	Budget          string
	UrgencyScore    *int // nil means "derive from status"
	Status          string
	PropertyAddress string
	Description     string
	Timeline        string
	CreatedAt       time.Time
}

// Lead is the presentation-ready view model. Every field is populated; the
// normalizer never leaves a zero-value string where a fallback is defined.
type Lead struct {
	ID              string
	Name            string
	Phone           string
	Email           string
	Source          string
	Budget          string
	Score           int
	Temperature     Temperature
	Stage           Stage
	PropertyAddress string
	LastActivity    string
	Notes           string
	CreatedAt       time.Time
}
