package cloudgenix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSiteLookup(t *testing.T) {
	sites := []Site{
		{ID: "1", Name: "Chicago Branch"},
		{ID: "2", Name: "Seattle DC"},
		{ID: "3", Name: ""},
	}

	n2id := SiteLookup(sites)
	assert.Len(t, n2id, 2)
	assert.Equal(t, "1", n2id["Chicago Branch"])
	assert.Equal(t, "2", n2id["Seattle DC"])
}

func TestElementLookupDuplicateNameLastWins(t *testing.T) {
	elements := []Element{
		{ID: "10", Name: "ion 3000"},
		{ID: "11", Name: "ion 3000"},
	}

	n2id := ElementLookup(elements)
	assert.Len(t, n2id, 1)
	assert.Equal(t, "11", n2id["ion 3000"])
}
