package match

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"exact", "Sony", "Sony", true},
		{"needle in haystack", "Sony WH-1000XM5", "sony", true},
		{"haystack in needle", "boAt", "BOAT Rockerz 450 wireless", true},
		{"disjoint", "Samsung QLED 55", "LG", false},
		{"empty matches anything", "LG OLED evo 4K TV", "", true},
		{"whitespace is significant", "Sony", " Sony ", true},
		{"inner whitespace not collapsed", "Sony WH", "Sony  WH", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.a, tt.b))
		})
	}
}

func TestMatchesSymmetricAndCaseInsensitive(t *testing.T) {
	inputs := []string{"", "Sony", "sony wh", "boAt Rockerz 450", "TV", "tv", "LG OLED", "x"}
	for _, a := range inputs {
		for _, b := range inputs {
			assert.Equal(t, Matches(a, b), Matches(b, a), "symmetry %q %q", a, b)
			assert.Equal(t, Matches(a, b), Matches(strings.ToUpper(a), strings.ToLower(b)), "case %q %q", a, b)
		}
	}
}
