// Package app resolves the catalog source chosen by configuration.
package app

import (
	"fmt"

	"dealfinder/internal/catalog"
	"dealfinder/internal/config"
	"dealfinder/internal/repos"
)

// LoadCatalog builds the catalog from CATALOG_DSN, then CATALOG_FILE, then
// the embedded default, whichever is set first. It also reports the source.
func LoadCatalog(cfg config.Config) (*catalog.Catalog, string, error) {
	switch {
	case cfg.CatalogDSN != "":
		cat, err := loadDSN(cfg.CatalogDSN)
		return cat, "sqlite:" + cfg.CatalogDSN, err
	case cfg.CatalogFile != "":
		cat, err := catalog.LoadFile(cfg.CatalogFile)
		return cat, "file:" + cfg.CatalogFile, err
	}
	cat, err := catalog.Default()
	return cat, "embedded", err
}

func loadDSN(dsn string) (*catalog.Catalog, error) {
	db, err := repos.OpenDB(dsn)
	if err != nil {
		return nil, fmt.Errorf("open catalog store: %w", err)
	}
	defer db.Close()

	products, err := repos.NewCatalogRepo(db).LoadAll()
	if err != nil {
		return nil, fmt.Errorf("load catalog store: %w", err)
	}
	return catalog.New(products)
}

// ExportCatalog writes cat into the SQLite store at dsn, replacing its contents.
func ExportCatalog(cat *catalog.Catalog, dsn string) error {
	db, err := repos.OpenDB(dsn)
	if err != nil {
		return fmt.Errorf("open catalog store: %w", err)
	}
	defer db.Close()
	return repos.NewCatalogRepo(db).Replace(cat.Products())
}
