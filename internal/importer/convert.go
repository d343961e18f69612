package importer

import (
	"time"

	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/domain"
	"github.com/google/uuid"
)

// Convert transforms a validated ImportSchema into raw leads ready for
// persistence. Call ValidateImportSchema first; Convert assumes the schema
// is valid.
func Convert(schema *ImportSchema, now time.Time) []*domain.RawLead {
	leads := make([]*domain.RawLead, 0, len(schema.Leads))
	for _, l := range schema.Leads {
		id := l.ID
		if id == "" {
			id = uuid.New().String()
		}

		createdAt := now
		if l.CreatedAt != "" {
			if t, err := time.Parse(time.RFC3339, l.CreatedAt); err == nil {
				createdAt = t
			}
		}

		leads = append(leads, &domain.RawLead{
			ID:              id,
			FirstName:       l.FirstName,
			LastName:        l.LastName,
			Phone:           l.Phone,
			Email:           l.Email,
			Source:          domain.CoalesceStr(l.Source, schema.Source),
			Budget:          l.Budget,
			UrgencyScore:    l.UrgencyScore,
			Status:          domain.CoalesceStr(l.Status, "new"),
			PropertyAddress: l.PropertyAddress,
			Description:     l.Description,
			Timeline:        l.Timeline,
			CreatedAt:       createdAt,
		})
	}
	return leads
}
