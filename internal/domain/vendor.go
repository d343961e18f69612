package domain

import "time"

// Vendor is a third-party service provider referenced by transactions.
// Unlike leads, vendor records pass through largely unchanged; NormalizeVendor
// only fills fallbacks and clamps the trust score.
type Vendor struct {
	ID                 string
	Name               string
	Company            string
	Category           VendorCategory
	TrustScore         int
	ActiveTransactions int
	Phone              string
	LastUsed           time.Time
	Specialties        []string
	RecentTransactions []string
}
