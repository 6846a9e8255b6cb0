package validate

import (
	"strings"
	"testing"

	"dealfinder/internal/domain"
	"dealfinder/internal/match"
)

func TestBudget(t *testing.T) {
	cases := map[string]struct {
		want int
		ok   bool
	}{
		"60000":  {60000, true},
		" 100 ":  {100, true},
		"":       {0, false},
		"abc":    {0, false},
		"0":      {0, false},
		"-5":     {0, false},
		"12.5":   {0, false},
		"123abc": {0, false},
	}
	for in, tc := range cases {
		got, ok := Budget(in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("Budget(%q) = %d,%v; want %d,%v", in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestQuery(t *testing.T) {
	if got := Query("   "); got != "" {
		t.Fatalf("blank query should be empty, got %q", got)
	}
	// the matcher sees exactly what was sent
	if got := Query("WH "); got != "WH " {
		t.Fatalf("want query untouched, got %q", got)
	}
	if match.Matches("Sony WH-1000XM5", Query("WH ")) {
		t.Fatal("trailing space must not be dropped before matching")
	}

	long := strings.Repeat("x", 100) + " Sony"
	if got := Query(long); got != long {
		t.Fatalf("long query was altered: %d runes", len([]rune(got)))
	}
	if !match.Matches("Sony", Query(long)) {
		t.Fatal("long query containing the brand should still match")
	}
}

func TestCategory(t *testing.T) {
	if c, ok := Category("TV"); !ok || c != domain.CategoryTV {
		t.Fatalf("want tv, got %q %v", c, ok)
	}
	if _, ok := Category(" tv"); ok {
		t.Fatal("padded category must not match")
	}
	if _, ok := Category("fridge"); ok {
		t.Fatal("fridge is not a category")
	}
	if _, ok := Category(""); ok {
		t.Fatal("empty is not a category")
	}
}
