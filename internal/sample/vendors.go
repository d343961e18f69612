package sample

import (
	"time"

	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/domain"
)

// Vendors returns the fixed sample vendor set covering all five categories.
func Vendors(now time.Time) []domain.Vendor {
	return []domain.Vendor{
		{
			ID:                 "sample-vendor-1",
			Name:               "Rachel Kim",
			Company:            "Lone Star Inspections",
			Category:           domain.CategoryInspector,
			TrustScore:         96,
			ActiveTransactions: 3,
			Phone:              "5125550201",
			LastUsed:           now.AddDate(0, 0, -4),
			Specialties:        []string{"Foundation", "HVAC", "Pre-listing"},
			RecentTransactions: []string{"1208 Barton Hills Dr", "77 Rainey St #1804"},
		},
		{
			ID:                 "sample-vendor-2",
			Name:               "Devin Okafor",
			Company:            "Hill Country Lending",
			Category:           domain.CategoryLender,
			TrustScore:         91,
			ActiveTransactions: 5,
			Phone:              "5125550212",
			LastUsed:           now.AddDate(0, 0, -2),
			Specialties:        []string{"Jumbo", "FHA", "First-time buyers"},
			RecentTransactions: []string{"4501 Avenue G"},
		},
		{
			ID:                 "sample-vendor-3",
			Name:               "Alamo Title Group",
			Company:            "Alamo Title Group",
			Category:           domain.CategoryTitle,
			TrustScore:         88,
			ActiveTransactions: 2,
			Phone:              "5125550223",
			LastUsed:           now.AddDate(0, 0, -9),
			Specialties:        []string{"Residential", "New construction"},
			RecentTransactions: []string{"902 Travis Heights Blvd"},
		},
		{
			ID:                 "sample-vendor-4",
			Name:               "Sofia Mendez",
			Company:            "Mendez Appraisal Co",
			Category:           domain.CategoryAppraiser,
			TrustScore:         84,
			ActiveTransactions: 1,
			Phone:              "5125550234",
			LastUsed:           now.AddDate(0, 0, -12),
			Specialties:        []string{"Single family", "Condo"},
			RecentTransactions: []string{},
		},
		{
			ID:                 "sample-vendor-5",
			Name:               "Grant Liu",
			Company:            "Blue Cedar Builders",
			Category:           domain.CategoryContractor,
			TrustScore:         79,
			ActiveTransactions: 4,
			Phone:              "5125550245",
			LastUsed:           now.AddDate(0, 0, -1),
			Specialties:        []string{"Kitchen remodel", "Roofing"},
			RecentTransactions: []string{"1208 Barton Hills Dr"},
		},
	}
}
