package repos

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// OpenDB opens a SQLite catalog store and makes sure the schema exists.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// one connection keeps ":memory:" stores on a single database
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Products, kept in catalog declaration order
CREATE TABLE IF NOT EXISTS products(
  id INTEGER PRIMARY KEY,
  position INTEGER NOT NULL,
  name TEXT NOT NULL,
  brand TEXT NOT NULL,
  category TEXT NOT NULL CHECK (category IN ('headphone','tv','speaker','laptop','mobile','projector','console')),
  image_url TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_products_name_nocase ON products(LOWER(name));
CREATE INDEX IF NOT EXISTS idx_products_position ON products(position);

CREATE TABLE IF NOT EXISTS product_features(
  product_id INTEGER NOT NULL REFERENCES products(id) ON DELETE CASCADE,
  position INTEGER NOT NULL,
  feature TEXT NOT NULL,
  PRIMARY KEY(product_id, position)
);

-- Offers, one row per store listing
CREATE TABLE IF NOT EXISTS offers(
  product_id INTEGER NOT NULL REFERENCES products(id) ON DELETE CASCADE,
  position INTEGER NOT NULL,
  store_name TEXT NOT NULL,
  price INTEGER NOT NULL CHECK (price > 0),
  link TEXT NOT NULL,
  PRIMARY KEY(product_id, position)
);
CREATE INDEX IF NOT EXISTS idx_offers_product ON offers(product_id);
`
	_, err := db.Exec(schema)
	return err
}
