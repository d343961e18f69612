// Package sample holds the static fallback data sets shown when a live list
// is empty or a fetch has failed. Screens degrade to these independently.
package sample

import (
	"time"

	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/domain"
)

func intPtr(v int) *int { return &v }

// Leads returns the fixed sample lead set. Timestamps are relative to now so
// the activity labels look current regardless of when the app runs.
func Leads(now time.Time) []domain.RawLead {
	return []domain.RawLead{
		{
			ID:              "sample-lead-1",
			FirstName:       "Jordan",
			LastName:        "Blake",
			Phone:           "5125550142",
			Email:           "jordan.blake@example.com",
			Source:          "website",
			Budget:          "$450,000",
			UrgencyScore:    intPtr(82),
			Status:          "qualified",
			PropertyAddress: "1208 Barton Hills Dr",
			Description:     "Pre-approved, relocating for work in August",
			CreatedAt:       now,
		},
		{
			ID:              "sample-lead-2",
			FirstName:       "Priya",
			LastName:        "Natarajan",
			Phone:           "5125550177",
			Email:           "priya.n@example.com",
			Source:          "Referral",
			Budget:          "$620,000",
			UrgencyScore:    intPtr(65),
			Status:          "contacted",
			PropertyAddress: "77 Rainey St #1804",
			Timeline:        "Wants to close before school year",
			CreatedAt:       now.AddDate(0, 0, -1),
		},
		{
			ID:        "sample-lead-3",
			FirstName: "Marcus",
			LastName:  "Webb",
			Phone:     "5125550163",
			Email:     "mwebb@example.com",
			Source:    "Zillow",
			Status:    "new",
			CreatedAt: now.AddDate(0, 0, -3),
		},
		{
			ID:              "sample-lead-4",
			Phone:           "5125550190",
			Email:           "",
			Source:          "popup_modal",
			Status:          "new",
			PropertyAddress: "",
			CreatedAt:       now.AddDate(0, 0, -6),
		},
		{
			ID:              "sample-lead-5",
			FirstName:       "Elena",
			LastName:        "Ruiz",
			Phone:           "5125550118",
			Email:           "elena.ruiz@example.com",
			Source:          "Open House",
			Budget:          "$380,000",
			UrgencyScore:    intPtr(91),
			Status:          "proposal",
			PropertyAddress: "4501 Avenue G",
			Description:     "Second offer in review",
			CreatedAt:       now.AddDate(0, 0, -2),
		},
		{
			ID:              "sample-lead-6",
			FirstName:       "Tom",
			LastName:        "Keller",
			Phone:           "5125550155",
			Email:           "tkeller@example.com",
			Source:          "Referral",
			Budget:          "$710,000",
			UrgencyScore:    intPtr(45),
			Status:          "won",
			PropertyAddress: "902 Travis Heights Blvd",
			CreatedAt:       now.AddDate(0, 0, -14),
		},
	}
}
