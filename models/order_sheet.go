package models

import "github.com/shopspring/decimal"

// OrderSheetRow represents a single row of the exported order table
type OrderSheetRow struct {
	Name      string          `json:"name"`
	UnitPrice string          `json:"unitPrice"` // e.g. "50 L"
	Quantity  int             `json:"quantity"`
	LineTotal string          `json:"lineTotal"` // e.g. "200 L"
	Amount    decimal.Decimal `json:"amount"`    // Unformatted line total
}

// OrderSheetLabels holds the translated fixed texts of the document
type OrderSheetLabels struct {
	GeneratedOn string   `json:"generatedOn"`
	Columns     []string `json:"columns"`
	Total       string   `json:"total"`
}

// OrderSheet represents the priced restocking document
type OrderSheet struct {
	Title       string           `json:"title"`
	Date        string           `json:"date"` // Local calendar date in the configured locale
	Labels      OrderSheetLabels `json:"labels"`
	Rows        []OrderSheetRow  `json:"rows"`
	TotalAmount decimal.Decimal  `json:"totalAmount"`
	Total       string           `json:"total"`
	FileName    string           `json:"fileName"`
}
