package importer

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func TestConvert_FillsDefaults(t *testing.T) {
	schema := &ImportSchema{
		Source: "Open House",
		Leads: []LeadImport{
			{FirstName: "Dana", LastName: "Whitfield"},
		},
	}

	leads := Convert(schema, testNow)
	require.Len(t, leads, 1)

	lead := leads[0]
	_, err := uuid.Parse(lead.ID)
	require.NoError(t, err, "missing id is minted")
	assert.Equal(t, "Open House", lead.Source, "schema-level source cascades")
	assert.Equal(t, "new", lead.Status)
	assert.Equal(t, testNow, lead.CreatedAt)
	assert.Nil(t, lead.UrgencyScore)
}

func TestConvert_LeadFieldsWinOverDefaults(t *testing.T) {
	schema := &ImportSchema{
		Source: "Open House",
		Leads: []LeadImport{
			{
				ID:           "l-7",
				FirstName:    "Marcus",
				Source:       "Referral",
				Status:       "qualified",
				UrgencyScore: intPtr(0),
				CreatedAt:    "2025-06-10T09:00:00Z",
			},
		},
	}

	leads := Convert(schema, testNow)
	require.Len(t, leads, 1)

	lead := leads[0]
	assert.Equal(t, "l-7", lead.ID)
	assert.Equal(t, "Referral", lead.Source)
	assert.Equal(t, "qualified", lead.Status)
	require.NotNil(t, lead.UrgencyScore)
	assert.Equal(t, 0, *lead.UrgencyScore, "explicit zero survives conversion")
	assert.Equal(t, time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC), lead.CreatedAt)
}

func TestConvert_PreservesOrder(t *testing.T) {
	schema := &ImportSchema{Leads: []LeadImport{
		{FirstName: "A"}, {FirstName: "B"}, {FirstName: "C"},
	}}

	leads := Convert(schema, testNow)
	require.Len(t, leads, 3)
	assert.Equal(t, "A", leads[0].FirstName)
	assert.Equal(t, "B", leads[1].FirstName)
	assert.Equal(t, "C", leads[2].FirstName)
}
