package models

import "github.com/shopspring/decimal"

// CatalogItem represents a purchasable item. Name is its identity key.
type CatalogItem struct {
	Name      string          `json:"name"`
	BuyPrice  decimal.Decimal `json:"buy_price"`
	SellPrice decimal.Decimal `json:"sell_price"` // 0 for items added during a session
}

// SelectedLine is a selected catalog item with its chosen quantity
type SelectedLine struct {
	Item     CatalogItem
	Quantity int
}

// SelectionEntry is one line of a selection file used by offline export
// Example: [{"name": "Bread", "quantity": 4}]
type SelectionEntry struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}
