package services

import (
	"fmt"
	"strings"

	"dealfinder/internal/domain"
)

// Reason writes the one-line justification shown next to a suggestion.
// At most the first two features are named.
func Reason(name string, best domain.Offer, features []string) string {
	s := fmt.Sprintf("Best deal for %s is at ₹%d on %s.", name, best.Price, best.StoreName)
	if len(features) > 2 {
		features = features[:2]
	}
	if len(features) == 0 {
		return s
	}
	return s + " Features: " + strings.Join(features, ", ")
}
