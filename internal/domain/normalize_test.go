package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func TestNormalizeLead_NameFallbacks(t *testing.T) {
	cases := []struct {
		name  string
		raw   RawLead
		want  string
	}{
		{"first and last", RawLead{FirstName: "Dana", LastName: "Reyes"}, "Dana Reyes"},
		{"first only", RawLead{FirstName: "Dana"}, "Dana"},
		{"last only", RawLead{LastName: "Reyes"}, "Reyes"},
		{"phone fallback", RawLead{Phone: "5551234567"}, "5551234567"},
		{"unknown fallback", RawLead{}, "Unknown"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lead := NormalizeLead(tc.raw, testNow)
			assert.Equal(t, tc.want, lead.Name)
		})
	}
}

func TestFormatPhone_TenDigits(t *testing.T) {
	assert.Equal(t, "(555) 123-4567", FormatPhone("5551234567"))
}

func TestFormatPhone_NonMatchingPassesThrough(t *testing.T) {
	cases := []string{"", "555-123-4567", "(555) 123-4567", "55512345", "15551234567", "555123456a"}
	for _, phone := range cases {
		lead := NormalizeLead(RawLead{Phone: phone, FirstName: "A"}, testNow)
		assert.Equal(t, phone, lead.Phone, "phone=%q", phone)
	}
}

func TestNormalizeLead_ScoreFromStatus(t *testing.T) {
	cases := []struct {
		status string
		score  int
		temp   Temperature
	}{
		{"new", 40, TempCold},
		{"contacted", 60, TempWarm},
		{"qualified", 50, TempWarm},
		{"", 50, TempWarm},
	}
	for _, tc := range cases {
		lead := NormalizeLead(RawLead{Status: tc.status}, testNow)
		assert.Equal(t, tc.score, lead.Score, "status=%s", tc.status)
		assert.Equal(t, tc.temp, lead.Temperature, "status=%s", tc.status)
	}
}

func TestNormalizeLead_ExplicitZeroScoreIsTrusted(t *testing.T) {
	// A provided 0 is a real value, not "missing": it must map to cold,
	// not fall back to the status-derived default.
	lead := NormalizeLead(RawLead{UrgencyScore: intPtr(0), Status: "contacted"}, testNow)
	assert.Equal(t, 0, lead.Score)
	assert.Equal(t, TempCold, lead.Temperature)
}

func TestNormalizeLead_ScoreClamped(t *testing.T) {
	assert.Equal(t, 100, NormalizeLead(RawLead{UrgencyScore: intPtr(250)}, testNow).Score)
	assert.Equal(t, 0, NormalizeLead(RawLead{UrgencyScore: intPtr(-5)}, testNow).Score)
}

func TestTemperatureForScore_Thresholds(t *testing.T) {
	cases := []struct {
		score int
		want  Temperature
	}{
		{0, TempCold}, {49, TempCold}, {50, TempWarm}, {74, TempWarm}, {75, TempHot}, {100, TempHot},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TemperatureForScore(tc.score), "score=%d", tc.score)
	}
}

func TestTemperatureForScore_Monotonic(t *testing.T) {
	prev := HeatRank(TemperatureForScore(0))
	for score := 1; score <= 100; score++ {
		rank := HeatRank(TemperatureForScore(score))
		require.GreaterOrEqual(t, rank, prev, "score=%d", score)
		prev = rank
	}
}

func TestStageForStatus(t *testing.T) {
	cases := []struct {
		status string
		want   Stage
	}{
		{"new", StageNew},
		{"contacted", StageContacted},
		{"qualified", StageQualified},
		{"proposal", StageProposal},
		{"won", StageWon},
		{"lost", StageNew},
		{"", StageNew},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StageForStatus(tc.status), "status=%q", tc.status)
	}
}

func TestNormalizeSource_Aliases(t *testing.T) {
	assert.Equal(t, "Website", NormalizeSource("popup_modal"))
	assert.Equal(t, "Website", NormalizeSource("website"))
	assert.Equal(t, "Zillow", NormalizeSource("Zillow"))
	assert.Equal(t, "Unknown", NormalizeSource(""))
}

func TestLastActivityLabel(t *testing.T) {
	cases := []struct {
		name      string
		createdAt time.Time
		want      string
	}{
		{"same moment", testNow, "Today"},
		{"earlier today", testNow.Add(-5 * time.Hour), "Today"},
		{"one day", testNow.Add(-26 * time.Hour), "1 day ago"},
		{"nine days", testNow.AddDate(0, 0, -9), "9 days ago"},
		{"zero timestamp", time.Time{}, "Today"},
		{"future timestamp", testNow.Add(time.Hour), "Today"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, LastActivityLabel(tc.createdAt, testNow))
		})
	}
}

func TestNormalizeLead_NotesFallbackChain(t *testing.T) {
	assert.Equal(t, "desc", NormalizeLead(RawLead{Description: "desc", Timeline: "tl"}, testNow).Notes)
	assert.Equal(t, "tl", NormalizeLead(RawLead{Timeline: "tl"}, testNow).Notes)
	assert.Equal(t, "", NormalizeLead(RawLead{}, testNow).Notes)
}

func TestNormalizeLead_Totality(t *testing.T) {
	// Any subset of missing optional fields still yields defined values for
	// every presentation field and a canonical stage.
	raws := []RawLead{
		{},
		{ID: "l1", Status: "garbage"},
		{Phone: "123", Budget: "", PropertyAddress: ""},
		{UrgencyScore: intPtr(88), CreatedAt: testNow.AddDate(0, 0, -3)},
	}
	for i, raw := range raws {
		lead := NormalizeLead(raw, testNow)
		label := fmt.Sprintf("case %d", i)
		assert.NotEmpty(t, lead.Name, label)
		assert.NotEmpty(t, lead.Source, label)
		assert.NotEmpty(t, lead.Budget, label)
		assert.NotEmpty(t, lead.PropertyAddress, label)
		assert.NotEmpty(t, lead.LastActivity, label)
		assert.Contains(t, PipelineStages, lead.Stage, label)
		assert.GreaterOrEqual(t, lead.Score, 0, label)
		assert.LessOrEqual(t, lead.Score, 100, label)
	}
}

func TestNormalizeVendor_Fallbacks(t *testing.T) {
	v := NormalizeVendor(Vendor{Company: "Acme Title Co", Phone: "5559876543", TrustScore: 120, Category: "Title"})
	assert.Equal(t, "Acme Title Co", v.Name)
	assert.Equal(t, "(555) 987-6543", v.Phone)
	assert.Equal(t, 100, v.TrustScore)
	assert.Equal(t, CategoryTitle, v.Category)
	assert.NotNil(t, v.Specialties)
	assert.NotNil(t, v.RecentTransactions)
}

func TestNormalizeVendor_UnknownName(t *testing.T) {
	v := NormalizeVendor(Vendor{})
	assert.Equal(t, "Unknown", v.Name)
}
