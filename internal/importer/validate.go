package importer

import (
	"fmt"
	"time"
)

var validLeadStatuses = map[string]bool{
	"new": true, "contacted": true, "qualified": true, "proposal": true, "won": true,
}

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	if len(schema.Leads) == 0 {
		errs = append(errs, fmt.Errorf("leads: at least one lead is required"))
	}

	ids := make(map[string]bool)
	for i, l := range schema.Leads {
		prefix := fmt.Sprintf("leads[%d]", i)

		if l.ID != "" {
			if ids[l.ID] {
				errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, l.ID))
			}
			ids[l.ID] = true
		}

		if l.FirstName == "" && l.LastName == "" && l.Phone == "" && l.Email == "" {
			errs = append(errs, fmt.Errorf("%s: at least one of first_name, last_name, phone, email is required", prefix))
		}

		if l.UrgencyScore != nil && (*l.UrgencyScore < 0 || *l.UrgencyScore > 100) {
			errs = append(errs, fmt.Errorf("%s.urgency_score: %d out of range [0,100]", prefix, *l.UrgencyScore))
		}

		if l.Status != "" && !validLeadStatuses[l.Status] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, l.Status))
		}

		if l.CreatedAt != "" {
			if _, err := time.Parse(time.RFC3339, l.CreatedAt); err != nil {
				errs = append(errs, fmt.Errorf("%s.created_at: invalid timestamp %q (expected RFC3339)", prefix, l.CreatedAt))
			}
		}
	}

	return errs
}
