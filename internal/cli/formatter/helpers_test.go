package formatter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences for stripping before structural
// assertions, so tests pass regardless of the terminal color profile.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRenderBar(t *testing.T) {
	tests := []struct {
		name       string
		value, max int
		wantFilled int
	}{
		{"full", 10, 10, 10},
		{"half", 5, 10, 5},
		{"empty", 0, 10, 0},
		{"tiny value still visible", 1, 1000, 1},
		{"value above max clamps", 20, 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := RenderBar(tt.value, tt.max, 10)
			assert.Equal(t, tt.wantFilled, strings.Count(bar, "█"))
			assert.Equal(t, 10-tt.wantFilled, strings.Count(bar, "░"))
		})
	}
}

func TestRenderBar_DegenerateInputs(t *testing.T) {
	assert.Empty(t, RenderBar(5, 0, 10))
	assert.Empty(t, RenderBar(5, 10, 0))
}

func TestPct(t *testing.T) {
	v := 42.9
	assert.Contains(t, Pct(&v), "42.9%")
	assert.Contains(t, Pct(nil), "—", "missing percentage renders as a dash, never 100%")
}

func TestTruncID(t *testing.T) {
	long := "0123456789abcdef"
	assert.Contains(t, TruncID(long), "01234567")
	assert.NotContains(t, TruncID(long), "89abcdef")

	short := "abc"
	assert.Contains(t, TruncID(short), "abc")
}

func TestRenderTable_Alignment(t *testing.T) {
	out := RenderTable(
		[]string{"NAME", "COUNT"},
		[][]string{
			{"Website", "12"},
			{"Referral long label", "3"},
		},
	)

	lines := strings.Split(strings.TrimRight(stripANSI(out), "\n"), "\n")
	assert.Len(t, lines, 4, "header, separator, two rows")

	// The count column starts at the same offset on every row.
	assert.Equal(t, strings.Index(lines[2], "12"), strings.Index(lines[3], "3"))
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}
