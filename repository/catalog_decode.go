package repository

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"restock/models"
	"restock/utils"
)

// catalogRecord is the wire form of a catalog entry:
// {"name": "Bread", "buy_price": 50, "sell_price": 70}
type catalogRecord struct {
	Name      string      `json:"name" yaml:"name"`
	BuyPrice  json.Number `json:"buy_price" yaml:"buy_price"`
	SellPrice json.Number `json:"sell_price" yaml:"sell_price"`
}

// DecodeCatalog parses catalog records. YAML is used for .yaml/.yml names,
// JSON otherwise. Duplicate names, empty names and bad prices are rejected.
func DecodeCatalog(name string, data []byte) ([]models.CatalogItem, error) {
	var records []catalogRecord

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("failed to parse YAML catalog %s: %w", name, err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&records); err != nil {
			return nil, fmt.Errorf("failed to parse JSON catalog %s: %w", name, err)
		}
	}

	items := make([]models.CatalogItem, 0, len(records))
	seen := make(map[string]bool, len(records))
	for i, rec := range records {
		item, err := rec.toItem()
		if err != nil {
			return nil, fmt.Errorf("catalog %s record %d: %w", name, i, err)
		}
		if seen[item.Name] {
			return nil, fmt.Errorf("catalog %s record %d: duplicate name %q", name, i, item.Name)
		}
		seen[item.Name] = true
		items = append(items, item)
	}
	return items, nil
}

func (rec catalogRecord) toItem() (models.CatalogItem, error) {
	name := strings.TrimSpace(rec.Name)
	if name == "" {
		return models.CatalogItem{}, fmt.Errorf("name is required")
	}

	buy, err := utils.ParseAmount(rec.BuyPrice.String())
	if err != nil {
		return models.CatalogItem{}, fmt.Errorf("buy_price of %q: %w", name, err)
	}

	sell := decimal.Zero
	if rec.SellPrice != "" {
		sell, err = utils.ParseAmount(rec.SellPrice.String())
		if err != nil {
			return models.CatalogItem{}, fmt.Errorf("sell_price of %q: %w", name, err)
		}
	}

	return models.CatalogItem{Name: name, BuyPrice: buy, SellPrice: sell}, nil
}
