package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"restock/models"
)

func item(name string, buy, sell int64) models.CatalogItem {
	return models.CatalogItem{
		Name:      name,
		BuyPrice:  decimal.NewFromInt(buy),
		SellPrice: decimal.NewFromInt(sell),
	}
}

func testCatalog() []models.CatalogItem {
	return []models.CatalogItem{
		item("Bread", 50, 70),
		item("Milk", 90, 110),
		item("Brown Sugar", 120, 150),
	}
}

func newTestStore(t *testing.T) *CatalogStore {
	t.Helper()
	store, err := NewCatalogStore(testCatalog())
	require.NoError(t, err)
	return store
}
