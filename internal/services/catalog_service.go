package services

import (
	"dealfinder/internal/catalog"
	"dealfinder/internal/domain"
)

type CatalogService struct {
	Catalog *catalog.Catalog
}

func NewCatalogService(c *catalog.Catalog) *CatalogService {
	return &CatalogService{Catalog: c}
}

// ListNames returns every product name in catalog order.
func (s *CatalogService) ListNames() []string {
	return s.Catalog.Names()
}

func (s *CatalogService) ListCategories() []string {
	out := make([]string, len(domain.Categories))
	for i, c := range domain.Categories {
		out[i] = string(c)
	}
	return out
}

// cheapest returns the lowest-priced offer; on a tie the earlier offer wins.
func cheapest(offers []domain.Offer) domain.Offer {
	best := offers[0]
	for _, o := range offers[1:] {
		if o.Price < best.Price {
			best = o
		}
	}
	return best
}
