package services

import (
	"dealfinder/internal/catalog"
	"dealfinder/internal/domain"
	"dealfinder/internal/match"
)

// SuggestQuery filters a suggestion run. Zero values mean "no filter";
// a Budget of zero or less is unbounded.
type SuggestQuery struct {
	Text     string
	Category string
	Budget   int
}

type SuggestionService struct {
	Catalog *catalog.Catalog
}

func NewSuggestionService(c *catalog.Catalog) *SuggestionService {
	return &SuggestionService{Catalog: c}
}

// Suggest returns the matching products in catalog order, each priced at
// its cheapest offer. The result is never nil.
func (s *SuggestionService) Suggest(q SuggestQuery) []domain.SuggestionResult {
	out := []domain.SuggestionResult{}

	var cat domain.Category
	if q.Category != "" {
		c, ok := domain.ParseCategory(q.Category)
		if !ok {
			return out
		}
		cat = c
	}

	for _, p := range s.Catalog.Products() {
		if q.Text != "" && !match.Matches(p.Name, q.Text) && !match.Matches(p.Brand, q.Text) {
			continue
		}
		if cat != "" && p.Category != cat {
			continue
		}
		best := cheapest(p.Offers)
		if q.Budget > 0 && best.Price > q.Budget {
			continue
		}
		out = append(out, domain.SuggestionResult{
			Name:      p.Name,
			Brand:     p.Brand,
			Category:  p.Category,
			Features:  p.Features,
			ImageURL:  p.ImageURL,
			Price:     best.Price,
			BestStore: best.StoreName,
			Link:      best.Link,
			Reason:    Reason(p.Name, best, p.Features),
		})
	}
	return out
}
