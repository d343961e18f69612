package formatter

import (
	"fmt"
	"strings"

	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/contract"
)

// FormatSync renders the outcome of a cache sync.
func FormatSync(result *contract.SyncResult) string {
	var b strings.Builder

	b.WriteString(StyleGreen.Render("✔ Sync complete") + "\n")
	b.WriteString(fmt.Sprintf("%s %d\n", Dim(fmt.Sprintf("%-8s", "Leads")), result.LeadCount))
	b.WriteString(fmt.Sprintf("%s %d\n", Dim(fmt.Sprintf("%-8s", "Vendors")), result.VendorCount))
	b.WriteString(Dim(fmt.Sprintf("%dms", result.DurationMs)) + "\n")

	return b.String()
}
