package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var tenDigitPhone = regexp.MustCompile(`^(\d{3})(\d{3})(\d{4})$`)

// sourceAliases folds known backend source spellings into display labels.
var sourceAliases = map[string]string{
	"popup_modal": "Website",
	"website":     "Website",
}

// NormalizeLead maps a raw backend record into a fully-populated view model.
// Pure: all time-relative fields are computed against the supplied now.
// Every output field has a defined fallback; it never returns an error.
func NormalizeLead(raw RawLead, now time.Time) Lead {
	score := deriveScore(raw)
	return Lead{
		ID:              raw.ID,
		Name:            displayName(raw),
		Phone:           FormatPhone(raw.Phone),
		Email:           raw.Email,
		Source:          NormalizeSource(raw.Source),
		Budget:          CoalesceStr(raw.Budget, "TBD"),
		Score:           score,
		Temperature:     TemperatureForScore(score),
		Stage:           StageForStatus(raw.Status),
		PropertyAddress: CoalesceStr(raw.PropertyAddress, "TBD"),
		LastActivity:    LastActivityLabel(raw.CreatedAt, now),
		Notes:           CoalesceStr(raw.Description, raw.Timeline),
		CreatedAt:       raw.CreatedAt,
	}
}

// NormalizeVendor fills fallbacks on a vendor record and clamps the trust
// score. Slice fields come back non-nil so callers can range without checks.
func NormalizeVendor(v Vendor) Vendor {
	v.Name = CoalesceStr(v.Name, v.Company, "Unknown")
	v.Phone = FormatPhone(v.Phone)
	v.TrustScore = ClampInt(v.TrustScore, 0, 100)
	v.Category = VendorCategory(strings.ToLower(string(v.Category)))
	if v.Specialties == nil {
		v.Specialties = []string{}
	}
	if v.RecentTransactions == nil {
		v.RecentTransactions = []string{}
	}
	return v
}

// displayName builds "First Last" trimmed of missing parts, falling back to
// the raw phone, then to the literal "Unknown".
func displayName(raw RawLead) string {
	full := strings.TrimSpace(strings.TrimSpace(raw.FirstName) + " " + strings.TrimSpace(raw.LastName))
	return CoalesceStr(full, raw.Phone, "Unknown")
}

// FormatPhone reformats an exactly-10-digit phone as (XXX) XXX-XXXX.
// Anything else, including empty strings and punctuated numbers, passes
// through unchanged.
func FormatPhone(phone string) string {
	m := tenDigitPhone.FindStringSubmatch(phone)
	if m == nil {
		return phone
	}
	return fmt.Sprintf("(%s) %s-%s", m[1], m[2], m[3])
}

// deriveScore prefers the provided urgency score, including an explicit 0,
// and otherwise derives one from the raw status. The result is clamped so a
// garbage server value cannot escape the 0-100 range.
func deriveScore(raw RawLead) int {
	if raw.UrgencyScore != nil {
		return ClampInt(*raw.UrgencyScore, 0, 100)
	}
	switch raw.Status {
	case "new":
		return 40
	case "contacted":
		return 60
	default:
		return 50
	}
}

// TemperatureForScore buckets a score: >=75 hot, >=50 warm, else cold.
func TemperatureForScore(score int) Temperature {
	switch {
	case score >= 75:
		return TempHot
	case score >= 50:
		return TempWarm
	default:
		return TempCold
	}
}

// NormalizeSource folds known source aliases into display labels.
// Unrecognized sources pass through as-is; empty becomes "Unknown".
func NormalizeSource(source string) string {
	if label, ok := sourceAliases[strings.ToLower(source)]; ok {
		return label
	}
	return CoalesceStr(source, "Unknown")
}

// LastActivityLabel renders the whole-day distance between createdAt and now.
// A zero or future createdAt counts as 0 days, so malformed timestamps read
// as "Today" instead of producing garbage.
func LastActivityLabel(createdAt, now time.Time) string {
	days := 0
	if !createdAt.IsZero() && createdAt.Before(now) {
		days = int(now.Sub(createdAt).Hours() / 24)
	}
	switch days {
	case 0:
		return "Today"
	case 1:
		return "1 day ago"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}
