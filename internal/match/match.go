// Package match holds the fuzzy text test shared by suggestion and comparison.
package match

import "strings"

// Matches reports whether either string contains the other, ignoring case.
// An empty string is contained in everything, so callers that treat empty
// input as "no filter" or "no match" must check for it first.
func Matches(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}
