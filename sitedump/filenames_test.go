package sitedump

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Chicago Branch", "Chicago Branch"},
		{"keeps allowed punctuation", "ion 3000 (spare) v2.1_final-x", "ion 3000 (spare) v2.1_final-x"},
		{"strips slashes", "Sydney/AU site", "SydneyAU site"},
		{"strips everything else", "wan:1 #2 @hq!", "wan1 2 hq"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SanitizeFilename(tc.in))
		})
	}
}

func TestSanitizeFilenameIdempotent(t *testing.T) {
	inputs := []string{
		"Chicago Branch",
		"Sydney/AU site",
		"wan:1 #2 @hq!",
		"طوكيو office",
	}

	for _, in := range inputs {
		once := SanitizeFilename(in)
		assert.Equal(t, once, SanitizeFilename(once), "sanitizing %q twice changed the result", in)
	}
}
