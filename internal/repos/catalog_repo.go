package repos

import (
	"fmt"

	"dealfinder/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CatalogRepo struct{ db *sqlx.DB }

func NewCatalogRepo(db *sqlx.DB) *CatalogRepo { return &CatalogRepo{db: db} }

type featureRow struct {
	ProductName string `db:"product_name"`
	Feature     string `db:"feature"`
}

type offerRow struct {
	ProductName string `db:"product_name"`
	domain.Offer
}

// LoadAll reads every product with its features and offers, in stored order.
func (r *CatalogRepo) LoadAll() ([]domain.Product, error) {
	var products []domain.Product
	if err := r.db.Select(&products, `
  SELECT name, brand, category, image_url
  FROM products
  ORDER BY position
`); err != nil {
		return nil, err
	}

	var features []featureRow
	if err := r.db.Select(&features, `
  SELECT p.name AS product_name, f.feature
  FROM product_features f
  JOIN products p ON p.id = f.product_id
  ORDER BY p.position, f.position
`); err != nil {
		return nil, err
	}

	var offers []offerRow
	if err := r.db.Select(&offers, `
  SELECT p.name AS product_name, o.store_name, o.price, o.link
  FROM offers o
  JOIN products p ON p.id = o.product_id
  ORDER BY p.position, o.position
`); err != nil {
		return nil, err
	}

	idx := make(map[string]int, len(products))
	for i, p := range products {
		idx[p.Name] = i
	}
	for _, f := range features {
		i := idx[f.ProductName]
		products[i].Features = append(products[i].Features, f.Feature)
	}
	for _, o := range offers {
		i := idx[o.ProductName]
		products[i].Offers = append(products[i].Offers, o.Offer)
	}
	return products, nil
}

// Replace swaps the stored catalog for products in a single transaction.
func (r *CatalogRepo) Replace(products []domain.Product) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range []string{`DELETE FROM offers`, `DELETE FROM product_features`, `DELETE FROM products`} {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}

	for pos, p := range products {
		res, err := tx.Exec(`
			INSERT INTO products(position, name, brand, category, image_url)
			VALUES(?,?,?,?,?)
		`, pos, p.Name, p.Brand, string(p.Category), p.ImageURL)
		if err != nil {
			return fmt.Errorf("insert product %q: %w", p.Name, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		for i, f := range p.Features {
			if _, err := tx.Exec(`
				INSERT INTO product_features(product_id, position, feature) VALUES(?,?,?)
			`, id, i, f); err != nil {
				return fmt.Errorf("insert feature for %q: %w", p.Name, err)
			}
		}
		for i, o := range p.Offers {
			if _, err := tx.Exec(`
				INSERT INTO offers(product_id, position, store_name, price, link) VALUES(?,?,?,?,?)
			`, id, i, o.StoreName, o.Price, o.Link); err != nil {
				return fmt.Errorf("insert offer for %q: %w", p.Name, err)
			}
		}
	}

	return tx.Commit()
}
