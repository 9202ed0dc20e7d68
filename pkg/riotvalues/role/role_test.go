package role

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		expected string
	}{
		{name: "top", role: "TOP", expected: Top},
		{name: "mid shorthand", role: "MID", expected: Middle},
		{name: "adc shorthand", role: "ADC", expected: Bottom},
		{name: "bot shorthand", role: "bot", expected: Bottom},
		{name: "support shorthand", role: "Support", expected: Utility},
		{name: "lowercase jungle", role: "jungle", expected: Jungle},
		{name: "surrounding spaces", role: " middle ", expected: Middle},
		{name: "unknown passes through uppercased", role: "feeder", expected: "FEEDER"},
		{name: "empty stays empty", role: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.role))
		})
	}
}

// Every shorthand maps to a canonical token, and canonical tokens are fixed points.
func TestNormalizeIdempotent(t *testing.T) {
	for shorthand := range synonyms {
		canonical := Normalize(shorthand)
		assert.Equal(t, canonical, Normalize(canonical), "re-normalizing %q should be a no-op", shorthand)
	}
}
