package service

import (
	"strings"

	"restock/models"
)

// SearchFilter derives the visible part of a catalog from a free-text term.
// The derived list is memoized on the catalog version and the term.
type SearchFilter struct {
	term string

	cached        []models.CatalogItem
	cachedTerm    string
	cachedVersion uint64
	cachedStore   *CatalogStore
}

// NewSearchFilter creates a filter with an empty term
func NewSearchFilter() *SearchFilter {
	return &SearchFilter{}
}

// SetSearchTerm stores the raw term
func (f *SearchFilter) SetSearchTerm(term string) {
	f.term = term
}

// ClearSearch resets the term, restoring the full catalog view
func (f *SearchFilter) ClearSearch() {
	f.term = ""
}

// Term returns the raw term
func (f *SearchFilter) Term() string {
	return f.term
}

// Filtered returns the catalog items whose name contains the term, case-insensitively.
func (f *SearchFilter) Filtered(store *CatalogStore) []models.CatalogItem {
	if f.cachedStore == store && f.cachedVersion == store.Version() && f.cachedTerm == f.term && f.cached != nil {
		return f.cached
	}

	f.cached = FilterItems(store.Items(), f.term)
	f.cachedTerm = f.term
	f.cachedVersion = store.Version()
	f.cachedStore = store
	return f.cached
}

// FilterItems is the pure derivation behind SearchFilter
func FilterItems(items []models.CatalogItem, term string) []models.CatalogItem {
	needle := strings.ToLower(term)
	out := make([]models.CatalogItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), needle) {
			out = append(out, item)
		}
	}
	return out
}
