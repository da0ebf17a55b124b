package sitedump

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlan(t *testing.T) {
	raw := []byte(`
type: cloudgenix template
sites v4.5:
  Chicago Branch:
    admin_state: active
    elements v2.3:
      Chicago ion 3000: {}
      Chicago ion 3000 spare: {}
  Seattle DC:
    elements v2.3:
      Seattle ion 9000: {}
  Empty Site: {}
`)

	plan, err := ParsePlan(raw)
	require.NoError(t, err)

	require.Len(t, plan, 3)

	// sites and elements must come out in file order
	assert.Equal(t, "Chicago Branch", plan[0].Name)
	assert.Equal(t, []string{"Chicago ion 3000", "Chicago ion 3000 spare"}, plan[0].Elements)

	assert.Equal(t, "Seattle DC", plan[1].Name)
	assert.Equal(t, []string{"Seattle ion 9000"}, plan[1].Elements)

	assert.Equal(t, "Empty Site", plan[2].Name)
	assert.Empty(t, plan[2].Elements)
}

func TestParsePlanUnversionedKeys(t *testing.T) {
	raw := []byte(`
sites:
  Perth Branch:
    elements:
      Perth ion 2000: {}
`)

	plan, err := ParsePlan(raw)
	require.NoError(t, err)

	require.Len(t, plan, 1)
	assert.Equal(t, []string{"Perth ion 2000"}, plan[0].Elements)
}

func TestParsePlanMissingSitesSection(t *testing.T) {
	_, err := ParsePlan([]byte("type: cloudgenix template\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no 'sites' section")
}

func TestParsePlanNotAMapping(t *testing.T) {
	_, err := ParsePlan([]byte("- just\n- a\n- list\n"))
	require.Error(t, err)
}

func TestLoadPlanMissingFile(t *testing.T) {
	_, err := LoadPlan("/nonexistent/sites.yml")
	require.Error(t, err)
}
