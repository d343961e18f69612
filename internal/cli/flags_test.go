package cli

import (
	"testing"

	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleValue(t *testing.T) {
	var r roleValue

	require.NoError(t, r.Set("AGENT"), "roles should be case-insensitive")
	assert.Equal(t, string(domain.RoleAgent), r.String())

	require.NoError(t, r.Set("client_seller"))
	assert.Equal(t, string(domain.RoleClientSeller), r.String())

	err := r.Set("landlord")
	require.Error(t, err, "unknown roles should be rejected")
	assert.Contains(t, err.Error(), "landlord")
}

func TestTemperatureValue(t *testing.T) {
	var v temperatureValue

	for _, s := range []string{"hot", "Warm", "COLD"} {
		assert.NoError(t, v.Set(s), "should accept %q", s)
	}

	assert.Error(t, v.Set("tepid"))
}

func TestStageValue(t *testing.T) {
	var v stageValue

	require.NoError(t, v.Set("qualified"), "stages should match case-insensitively")
	assert.Equal(t, string(domain.StageQualified), v.String(), "stored value should use canonical casing")

	require.NoError(t, v.Set("Won"))
	assert.Equal(t, string(domain.StageWon), v.String())

	assert.Error(t, v.Set("Lost"))
}
