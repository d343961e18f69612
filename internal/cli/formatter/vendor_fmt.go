package formatter

import (
	"fmt"
	"strings"

	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/contract"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/domain"
)

// FormatVendorList renders the vendor table.
func FormatVendorList(resp *contract.VendorListResponse) string {
	var b strings.Builder

	headers := []string{"NAME", "COMPANY", "CATEGORY", "TRUST", "ACTIVE"}
	rows := make([][]string, 0, len(resp.Vendors))
	for _, v := range resp.Vendors {
		rows = append(rows, []string{
			Bold(v.Name),
			StyleFg.Render(v.Company),
			categoryLabel(v.Category),
			TrustScore(v.TrustScore),
			fmt.Sprintf("%d", v.ActiveTransactions),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n" + LiveBadge(resp.Live) + "\n")

	return b.String()
}

// FormatVendorGroups renders vendors bucketed by category.
func FormatVendorGroups(resp *contract.VendorGroupsResponse) string {
	var b strings.Builder

	for _, g := range resp.Groups {
		b.WriteString(Header(string(g.Category)) + "\n")
		if len(g.Vendors) == 0 {
			b.WriteString(Dim("  none on file") + "\n\n")
			continue
		}
		for _, v := range g.Vendors {
			specialties := ""
			if len(v.Specialties) > 0 {
				specialties = Dim(" — " + strings.Join(v.Specialties, ", "))
			}
			b.WriteString(fmt.Sprintf("  %s %s (%s)%s\n",
				TrustScore(v.TrustScore), Bold(v.Name), StyleFg.Render(v.Company), specialties))
		}
		b.WriteString("\n")
	}
	b.WriteString(LiveBadge(resp.Live) + "\n")

	return b.String()
}

func categoryLabel(c domain.VendorCategory) string {
	label := string(c)
	if label == "" {
		return StyleDim.Render("--")
	}
	return StylePurple.Render(strings.ToUpper(label[:1]) + label[1:])
}
