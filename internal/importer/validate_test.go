package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func validSchema() *ImportSchema {
	return &ImportSchema{
		Source: "Open House",
		Leads: []LeadImport{
			{ID: "l-1", FirstName: "Dana", LastName: "Whitfield", Phone: "5125550100", Status: "contacted", UrgencyScore: intPtr(80), CreatedAt: "2025-06-10T09:00:00Z"},
			{FirstName: "Marcus", Email: "marcus@example.com"},
		},
	}
}

func TestValidate_ValidSchema(t *testing.T) {
	errs := ValidateImportSchema(validSchema())
	assert.Empty(t, errs)
}

func TestValidate_EmptyLeads(t *testing.T) {
	errs := ValidateImportSchema(&ImportSchema{})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "at least one lead")
}

func TestValidate_DuplicateIDs(t *testing.T) {
	schema := validSchema()
	schema.Leads = append(schema.Leads, LeadImport{ID: "l-1", FirstName: "Copy"})

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), `duplicate id "l-1"`)
}

func TestValidate_NoIdentity(t *testing.T) {
	schema := &ImportSchema{Leads: []LeadImport{{Budget: "$500k"}}}
	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "leads[0]")
	assert.Contains(t, errs[0].Error(), "first_name, last_name, phone, email")
}

func TestValidate_ScoreOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		score int
		valid bool
	}{
		{"negative", -1, false},
		{"zero is valid", 0, true},
		{"upper bound", 100, true},
		{"above range", 101, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := &ImportSchema{Leads: []LeadImport{{FirstName: "A", UrgencyScore: intPtr(tt.score)}}}
			errs := ValidateImportSchema(schema)
			if tt.valid {
				assert.Empty(t, errs)
			} else {
				require.Len(t, errs, 1)
				assert.Contains(t, errs[0].Error(), "urgency_score")
			}
		})
	}
}

func TestValidate_BadStatusAndTimestamp(t *testing.T) {
	schema := &ImportSchema{Leads: []LeadImport{
		{FirstName: "A", Status: "closed_lost"},
		{FirstName: "B", CreatedAt: "June 10th"},
	}}
	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), `status: invalid value "closed_lost"`)
	assert.Contains(t, errs[1].Error(), "created_at")
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	schema := &ImportSchema{Leads: []LeadImport{
		{UrgencyScore: intPtr(200), Status: "bogus", CreatedAt: "nope"},
	}}
	errs := ValidateImportSchema(schema)
	assert.Len(t, errs, 4, "identity, score, status, and timestamp errors all reported")
}
