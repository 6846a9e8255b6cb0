package handlers

import (
	"dealfinder/internal/catalog"
	"dealfinder/internal/services"
)

type Deps struct {
	SuggestHandler *SuggestHandler
	CompareHandler *CompareHandler
	CatalogHandler *CatalogHandler
}

func NewDeps(cat *catalog.Catalog) *Deps {
	catalogSvc := services.NewCatalogService(cat)
	suggestSvc := services.NewSuggestionService(cat)
	compareSvc := services.NewComparisonService(cat)

	return &Deps{
		SuggestHandler: &SuggestHandler{Suggestions: suggestSvc},
		CompareHandler: &CompareHandler{Comparison: compareSvc},
		CatalogHandler: &CatalogHandler{Catalog: catalogSvc},
	}
}
