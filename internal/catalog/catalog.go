// Package catalog holds the immutable product list the engines read from.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"dealfinder/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Catalog is read-only after New returns, so it is safe for concurrent use.
type Catalog struct {
	products []domain.Product
}

// New validates products and takes a private copy of them.
func New(products []domain.Product) (*Catalog, error) {
	if len(products) == 0 {
		return nil, errors.New("catalog: no products")
	}
	seen := make(map[string]struct{}, len(products))
	out := make([]domain.Product, 0, len(products))
	for i, p := range products {
		if err := validate.Struct(p); err != nil {
			return nil, fmt.Errorf("catalog: product %d (%q): %w", i, p.Name, err)
		}
		cat, ok := domain.ParseCategory(string(p.Category))
		if !ok {
			return nil, fmt.Errorf("catalog: product %q: unknown category %q", p.Name, p.Category)
		}
		p.Category = cat
		key := strings.ToLower(p.Name)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("catalog: duplicate product name %q", p.Name)
		}
		seen[key] = struct{}{}
		out = append(out, clone(p))
	}
	return &Catalog{products: out}, nil
}

// Products returns a copy of every product in declaration order.
func (c *Catalog) Products() []domain.Product {
	out := make([]domain.Product, len(c.products))
	for i, p := range c.products {
		out[i] = clone(p)
	}
	return out
}

func (c *Catalog) Len() int { return len(c.products) }

// Names returns product names in declaration order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.products))
	for i, p := range c.products {
		out[i] = p.Name
	}
	return out
}

func clone(p domain.Product) domain.Product {
	// features stay non-nil so they encode as [] rather than null
	p.Features = append([]string{}, p.Features...)
	p.Offers = append([]domain.Offer(nil), p.Offers...)
	return p
}
