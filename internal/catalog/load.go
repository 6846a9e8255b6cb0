package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"dealfinder/internal/domain"
)

//go:embed default.yaml
var defaultYAML []byte

type document struct {
	Products []domain.Product `yaml:"products"`
}

// Default builds the catalog bundled with the binary.
func Default() (*Catalog, error) {
	return Parse(defaultYAML)
}

// LoadFile reads a YAML catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file '%s': %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog YAML: %w", err)
	}
	return New(doc.Products)
}
