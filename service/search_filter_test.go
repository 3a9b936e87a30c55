package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchFilter(t *testing.T) {
	store, err := NewCatalogStore(testCatalog()[:1])
	require.NoError(t, err)
	f := NewSearchFilter()

	assert.Len(t, f.Filtered(store), 1, "empty term yields full catalog")

	f.SetSearchTerm("bre")
	got := f.Filtered(store)
	require.Len(t, got, 1)
	assert.Equal(t, "Bread", got[0].Name)

	f.SetSearchTerm("xyz")
	assert.Empty(t, f.Filtered(store))

	f.ClearSearch()
	assert.Equal(t, "", f.Term())
	assert.Len(t, f.Filtered(store), 1)
}

func TestSearchFilterIsCaseInsensitive(t *testing.T) {
	store := newTestStore(t)
	f := NewSearchFilter()

	f.SetSearchTerm("BR")
	got := f.Filtered(store)
	require.Len(t, got, 2)
	assert.Equal(t, "Bread", got[0].Name)
	assert.Equal(t, "Brown Sugar", got[1].Name)
}

func TestSearchFilterSeesCatalogAdditions(t *testing.T) {
	store := newTestStore(t)
	f := NewSearchFilter()
	f.SetSearchTerm("oil")
	assert.Empty(t, f.Filtered(store))

	require.NoError(t, store.Add(item("Olive Oil", 300, 0)))
	got := f.Filtered(store)
	require.Len(t, got, 1)
	assert.Equal(t, "Olive Oil", got[0].Name)
}
