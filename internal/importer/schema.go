package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for lead import.
type ImportSchema struct {
	// Source is applied to every lead that does not carry its own.
	Source string       `json:"source,omitempty"`
	Leads  []LeadImport `json:"leads"`
}

// LeadImport defines one lead in the import file.
type LeadImport struct {
	ID              string `json:"id,omitempty"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Email           string `json:"email,omitempty"`
	Source          string `json:"source,omitempty"`
	Budget          string `json:"budget,omitempty"`
	UrgencyScore    *int   `json:"urgency_score,omitempty"`
	Status          string `json:"status,omitempty"`
	PropertyAddress string `json:"property_address,omitempty"`
	Description     string `json:"description,omitempty"`
	Timeline        string `json:"timeline,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
}

// LoadImportSchema reads and parses a lead import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
