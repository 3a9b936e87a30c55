package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restock/models"
)

func TestNewCatalogStoreKeepsOrder(t *testing.T) {
	store := newTestStore(t)

	names := []string{}
	for _, it := range store.Items() {
		names = append(names, it.Name)
	}
	assert.Equal(t, []string{"Bread", "Milk", "Brown Sugar"}, names)
	assert.Equal(t, uint64(0), store.Version())
}

func TestNewCatalogStoreRejectsDuplicates(t *testing.T) {
	_, err := NewCatalogStore([]models.CatalogItem{item("Bread", 1, 1), item("Bread", 2, 2)})
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestCatalogStoreAdd(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Add(item("Oil", 120, 0)))
	assert.Equal(t, 4, store.Len())
	assert.Equal(t, uint64(1), store.Version())

	got, ok := store.Get("Oil")
	require.True(t, ok)
	assert.Equal(t, "120", got.BuyPrice.String())

	err := store.Add(item("Oil", 99, 0))
	assert.ErrorIs(t, err, ErrDuplicateItem)
	assert.Equal(t, 4, store.Len())

	assert.Error(t, store.Add(item("  ", 1, 0)))
}

func TestCatalogStoreItemsIsACopy(t *testing.T) {
	store := newTestStore(t)
	items := store.Items()
	items[0].Name = "Changed"

	_, ok := store.Get("Bread")
	assert.True(t, ok)
	assert.Equal(t, "Bread", store.Items()[0].Name)
}
