package insights

import (
	"sort"

	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/domain"
)

// TopN returns the n items with the highest key value, descending. Ties keep
// original order (stable sort). The input slice is not modified.
func TopN[T any](items []T, n int, key func(T) float64) []T {
	if n < 0 {
		n = 0
	}
	ranked := make([]T, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		return key(ranked[i]) > key(ranked[j])
	})
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// TopVendorsByTrust ranks vendors by trust score.
func TopVendorsByTrust(vendors []domain.Vendor, n int) []domain.Vendor {
	return TopN(vendors, n, func(v domain.Vendor) float64 {
		return float64(v.TrustScore)
	})
}

// CategoryGroup holds the vendors in one category bucket.
type CategoryGroup struct {
	Category domain.VendorCategory
	Vendors  []domain.Vendor
}

// GroupByCategory buckets vendors in canonical category order. Vendors with
// an unrecognized category land in a trailing "other" bucket rather than
// silently disappearing; the bucket is omitted when empty.
func GroupByCategory(vendors []domain.Vendor) []CategoryGroup {
	byCat := make(map[domain.VendorCategory][]domain.Vendor)
	for _, v := range vendors {
		cat := v.Category
		if !domain.IsKnownVendorCategory(cat) {
			cat = domain.CategoryOther
		}
		byCat[cat] = append(byCat[cat], v)
	}

	groups := make([]CategoryGroup, 0, len(domain.KnownVendorCategories)+1)
	for _, cat := range domain.KnownVendorCategories {
		groups = append(groups, CategoryGroup{Category: cat, Vendors: byCat[cat]})
	}
	if others := byCat[domain.CategoryOther]; len(others) > 0 {
		groups = append(groups, CategoryGroup{Category: domain.CategoryOther, Vendors: others})
	}
	return groups
}
