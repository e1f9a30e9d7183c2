package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"formgrid/internal/domain"
)

type fixtureFile struct {
	Products []fixtureProduct `yaml:"products"`
}

type fixtureProduct struct {
	Name     string           `yaml:"name"`
	SKU      string           `yaml:"sku"`
	Price    float64          `yaml:"price"`
	Stock    int              `yaml:"stock"`
	InStock  *bool            `yaml:"in_stock"`
	Variants []fixtureVariant `yaml:"variants"`
}

type fixtureVariant struct {
	Label     string `yaml:"label"`
	SKUSuffix string `yaml:"sku_suffix"`
	Stock     int    `yaml:"stock"`
}

// Seed loads YAML fixtures into the store. An already-populated store is
// left untouched so repeated runs with -seed stay idempotent.
func (s *Store) Seed(path string) (int, error) {
	count, err := s.Count("")
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read fixtures: %w", err)
	}

	var fixtures fixtureFile
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		return 0, fmt.Errorf("parse fixtures: %w", err)
	}

	inserted := 0
	for _, fp := range fixtures.Products {
		inStock := true
		if fp.InStock != nil {
			inStock = *fp.InStock
		}
		variants := make([]domain.Variant, len(fp.Variants))
		for i, fv := range fp.Variants {
			variants[i] = domain.Variant{
				Position:  i,
				Label:     fv.Label,
				SKUSuffix: fv.SKUSuffix,
				Stock:     fv.Stock,
			}
		}
		if _, err := s.SaveProduct(domain.Product{
			Name:    fp.Name,
			SKU:     fp.SKU,
			Price:   fp.Price,
			Stock:   fp.Stock,
			InStock: inStock,
		}, variants); err != nil {
			return inserted, fmt.Errorf("seed %q: %w", fp.Name, err)
		}
		inserted++
	}
	return inserted, nil
}
