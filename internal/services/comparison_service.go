package services

import (
	"errors"
	"fmt"
	"strings"

	"dealfinder/internal/catalog"
	"dealfinder/internal/domain"
	"dealfinder/internal/match"
)

var ErrNotFound = errors.New("one or both products not found")

type ComparisonService struct {
	Catalog *catalog.Catalog
}

func NewComparisonService(c *catalog.Catalog) *ComparisonService {
	return &ComparisonService{Catalog: c}
}

// Compare resolves both inputs and pairs their cheapest offers in input
// order. Blank input never resolves.
func (s *ComparisonService) Compare(input1, input2 string) (domain.ComparisonResult, error) {
	products := s.Catalog.Products()
	p1, ok1 := resolve(products, input1)
	p2, ok2 := resolve(products, input2)
	if !ok1 || !ok2 {
		return domain.ComparisonResult{}, fmt.Errorf("compare %q with %q: %w", input1, input2, ErrNotFound)
	}
	return domain.ComparisonResult{Product1: view(p1), Product2: view(p2)}, nil
}

func resolve(products []domain.Product, input string) (domain.Product, bool) {
	if strings.TrimSpace(input) == "" {
		return domain.Product{}, false
	}
	for _, p := range products {
		if match.Matches(p.Name, input) || match.Matches(p.Brand, input) {
			return p, true
		}
	}
	return domain.Product{}, false
}

func view(p domain.Product) domain.ComparisonView {
	best := cheapest(p.Offers)
	return domain.ComparisonView{
		Name:      p.Name,
		Brand:     p.Brand,
		Category:  p.Category,
		Features:  p.Features,
		ImageURL:  p.ImageURL,
		Price:     best.Price,
		BestStore: best.StoreName,
		Link:      best.Link,
	}
}
