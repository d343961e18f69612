package domain

// Temperature is the three-level urgency bucket derived from a lead's score.
type Temperature string

const (
	TempHot  Temperature = "hot"
	TempWarm Temperature = "warm"
	TempCold Temperature = "cold"
)

// HeatRank returns a comparable rank for a temperature (higher = hotter).
func HeatRank(t Temperature) int {
	switch t {
	case TempHot:
		return 2
	case TempWarm:
		return 1
	default:
		return 0
	}
}

// Stage is a lead's position in the sales pipeline.
type Stage string

const (
	StageNew       Stage = "New"
	StageContacted Stage = "Contacted"
	StageQualified Stage = "Qualified"
	StageProposal  Stage = "Proposal"
	StageWon       Stage = "Won"
)

// PipelineStages is the canonical pipeline order. Grouped views always emit
// every stage in this order, including empty ones.
var PipelineStages = []Stage{StageNew, StageContacted, StageQualified, StageProposal, StageWon}

// stageForStatus maps raw backend status strings to canonical stages.
var stageForStatus = map[string]Stage{
	"new":       StageNew,
	"contacted": StageContacted,
	"qualified": StageQualified,
	"proposal":  StageProposal,
	"won":       StageWon,
}

// StageForStatus maps a raw status to its canonical stage, defaulting to New.
func StageForStatus(status string) Stage {
	if s, ok := stageForStatus[status]; ok {
		return s
	}
	return StageNew
}

// Role is the active persona driving which views the app shows.
type Role string

const (
	RoleAgent        Role = "agent"
	RoleClientBuyer  Role = "client_buyer"
	RoleClientSeller Role = "client_seller"
)

// ValidRoles is the canonical set of accepted role strings.
var ValidRoles = map[string]bool{
	"agent": true, "client_buyer": true, "client_seller": true,
}

// VendorCategory classifies a service provider.
type VendorCategory string

const (
	CategoryInspector  VendorCategory = "inspector"
	CategoryLender     VendorCategory = "lender"
	CategoryTitle      VendorCategory = "title"
	CategoryAppraiser  VendorCategory = "appraiser"
	CategoryContractor VendorCategory = "contractor"

	// CategoryOther collects vendors whose category is not one of the five
	// known values so they stay visible in grouped views.
	CategoryOther VendorCategory = "other"
)

// KnownVendorCategories is the canonical grouping order for vendor views.
// CategoryOther is appended by grouping code only when it is non-empty.
var KnownVendorCategories = []VendorCategory{
	CategoryInspector, CategoryLender, CategoryTitle, CategoryAppraiser, CategoryContractor,
}

// IsKnownVendorCategory reports whether c is one of the five known categories.
func IsKnownVendorCategory(c VendorCategory) bool {
	switch c {
	case CategoryInspector, CategoryLender, CategoryTitle, CategoryAppraiser, CategoryContractor:
		return true
	}
	return false
}
