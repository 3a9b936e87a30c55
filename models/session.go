package models

import "github.com/shopspring/decimal"

// SessionItemView is a catalog card as shown in the item grid
type SessionItemView struct {
	Name      string          `json:"name"`
	BuyPrice  decimal.Decimal `json:"buyPrice"`
	SellPrice decimal.Decimal `json:"sellPrice"`
	Selected  bool            `json:"selected"`
	Quantity  int             `json:"quantity,omitempty"` // Only set for selected items
}

// IntakeView represents the state of the add-product form
type IntakeView struct {
	Open     bool   `json:"open"`
	Name     string `json:"name"`
	BuyPrice string `json:"buyPrice"`
	Quantity string `json:"quantity"`
}

// SessionView represents everything a client needs to draw one restocking session
// Example response:
// {
//   "id": "7c9e6679-7425-40de-944b-e07fc1f90ae7",
//   "searchTerm": "bre",
//   "items": [{"name": "Bread", "buyPrice": "50", "sellPrice": "70", "selected": true, "quantity": 4}],
//   "selectedCount": 1,
//   "totalAmount": "200",
//   "total": "200 L",
//   "presets": [3, 5, 10],
//   "intake": {"open": false, "name": "", "buyPrice": "", "quantity": ""}
// }
type SessionView struct {
	ID            string            `json:"id"`
	SearchTerm    string            `json:"searchTerm"`
	Items         []SessionItemView `json:"items"`
	SelectedCount int               `json:"selectedCount"`
	TotalAmount   decimal.Decimal   `json:"totalAmount"`
	Total         string            `json:"total"` // Formatted with the currency suffix
	Presets       []int             `json:"presets"`
	Intake        IntakeView        `json:"intake"`
}

// SearchRequest represents the request body for setting the search term
type SearchRequest struct {
	Term string `json:"term"`
}

// SetQuantityRequest carries raw user input for the quantity box
// Example: {"value": "4"}
type SetQuantityRequest struct {
	Value string `json:"value"`
}

// AdjustQuantityRequest represents a +/- click
// Example: {"delta": -1}
type AdjustQuantityRequest struct {
	Delta int `json:"delta"`
}

// PresetQuantityRequest represents a preset button click
// Example: {"amount": 5}
type PresetQuantityRequest struct {
	Amount int `json:"amount"`
}

// IntakeFieldsRequest represents the add-product form fields as typed
// Example: {"name": "Oil", "buyPrice": "120", "quantity": "2"}
type IntakeFieldsRequest struct {
	Name     string `json:"name"`
	BuyPrice string `json:"buyPrice"`
	Quantity string `json:"quantity"`
}
