package service

import (
	"time"

	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/domain"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/insights"
)

// resolveNow returns the injected clock when a request carries one, otherwise
// the wall clock. Derived labels like "2 days ago" depend on it.
func resolveNow(reqNow *time.Time) time.Time {
	if reqNow != nil {
		return *reqNow
	}
	return time.Now().UTC()
}

// normalizeLeads maps raw cache/sample records into view models.
func normalizeLeads(raws []domain.RawLead, now time.Time) []domain.Lead {
	leads := make([]domain.Lead, 0, len(raws))
	for _, raw := range raws {
		leads = append(leads, domain.NormalizeLead(raw, now))
	}
	return leads
}

// normalizeVendors applies vendor fallbacks in place of missing fields.
func normalizeVendors(vendors []domain.Vendor) []domain.Vendor {
	out := make([]domain.Vendor, 0, len(vendors))
	for _, v := range vendors {
		out = append(out, domain.NormalizeVendor(v))
	}
	return out
}

// funnelCountsFromStages derives conversion-funnel volumes from the pipeline.
// Each step counts leads at or past the matching stage: a won lead was
// necessarily shown, offered, and closed.
func funnelCountsFromStages(groups []insights.StageGroup) insights.FunnelCounts {
	var counts insights.FunnelCounts
	for _, g := range groups {
		n := len(g.Leads)
		counts.Leads += n
		switch g.Stage {
		case domain.StageQualified:
			counts.Showings += n
		case domain.StageProposal:
			counts.Showings += n
			counts.Offers += n
		case domain.StageWon:
			counts.Showings += n
			counts.Offers += n
			counts.Closings += n
		}
	}
	return counts
}
