package validate

import (
	"strconv"
	"strings"

	"dealfinder/internal/domain"
)

// Query returns the free-text search term as sent. A blank term becomes ""
// which means "no text filter"; anything else is passed through untouched.
func Query(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return s
}

// Budget parses a max budget. Anything that is not a positive integer
// reports ok=false, which callers treat as unbounded.
func Budget(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// Category validates a category filter against the known set. The value
// is compared as sent, ignoring case only.
func Category(s string) (domain.Category, bool) {
	if s == "" {
		return "", false
	}
	return domain.ParseCategory(s)
}
