package service

import (
	"fmt"
	"strings"

	"restock/models"
)

// CatalogStore holds the working list of purchasable items of one session.
// Items are never removed; Version changes on every append so derived views
// know when to recompute.
type CatalogStore struct {
	items   []models.CatalogItem
	index   map[string]int
	version uint64
}

// NewCatalogStore copies items into a new store. Duplicate or empty names are rejected.
func NewCatalogStore(items []models.CatalogItem) (*CatalogStore, error) {
	s := &CatalogStore{
		items: make([]models.CatalogItem, 0, len(items)),
		index: make(map[string]int, len(items)),
	}
	for i, item := range items {
		if err := s.Add(item); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrInvalidCatalog, i, err)
		}
	}
	s.version = 0
	return s, nil
}

// Add appends item to the end of the catalog
func (s *CatalogStore) Add(item models.CatalogItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("item name is empty")
	}
	if item.BuyPrice.IsNegative() || item.SellPrice.IsNegative() {
		return fmt.Errorf("item %q has a negative price", item.Name)
	}
	if _, exists := s.index[item.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateItem, item.Name)
	}

	s.index[item.Name] = len(s.items)
	s.items = append(s.items, item)
	s.version++
	return nil
}

// Get looks an item up by name
func (s *CatalogStore) Get(name string) (models.CatalogItem, bool) {
	i, ok := s.index[name]
	if !ok {
		return models.CatalogItem{}, false
	}
	return s.items[i], true
}

// Items returns a copy of the catalog in insertion order
func (s *CatalogStore) Items() []models.CatalogItem {
	out := make([]models.CatalogItem, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of items
func (s *CatalogStore) Len() int {
	return len(s.items)
}

// Version returns a counter bumped by every Add after construction
func (s *CatalogStore) Version() uint64 {
	return s.version
}
