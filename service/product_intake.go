package service

import (
	"strings"

	"github.com/shopspring/decimal"

	"restock/models"
	"restock/utils"
)

// ProductIntake is the short-lived add-product form
type ProductIntake struct {
	open     bool
	name     string
	buyPrice string
	quantity string
}

// NewProductIntake creates a closed, empty form
func NewProductIntake() *ProductIntake {
	return &ProductIntake{}
}

// Open shows the form
func (p *ProductIntake) Open() {
	p.open = true
}

// IsOpen reports whether the form is shown
func (p *ProductIntake) IsOpen() bool {
	return p.open
}

// SetFields stores the raw field values as typed
func (p *ProductIntake) SetFields(name, buyPrice, quantity string) {
	p.name = name
	p.buyPrice = buyPrice
	p.quantity = quantity
}

// Cancel discards in-progress values and closes the form
func (p *ProductIntake) Cancel() {
	p.reset()
}

// Submit validates the fields and, on success, appends the new item to
// catalog and selects it with the typed quantity. Invalid input, including a
// name already in the catalog, is rejected silently: nothing changes and the
// form stays open.
func (p *ProductIntake) Submit(catalog *CatalogStore, selection *Selection) bool {
	item, quantity, ok := p.parse()
	if !ok {
		return false
	}

	if err := catalog.Add(item); err != nil {
		return false
	}
	selection.Select(item.Name, quantity)
	p.reset()
	return true
}

// View returns the form state for clients
func (p *ProductIntake) View() models.IntakeView {
	return models.IntakeView{
		Open:     p.open,
		Name:     p.name,
		BuyPrice: p.buyPrice,
		Quantity: p.quantity,
	}
}

func (p *ProductIntake) parse() (models.CatalogItem, int, bool) {
	name := strings.TrimSpace(p.name)
	if name == "" {
		return models.CatalogItem{}, 0, false
	}

	price, err := utils.ParseAmount(p.buyPrice)
	if err != nil {
		return models.CatalogItem{}, 0, false
	}

	quantity, ok := utils.ParsePositiveInt(p.quantity)
	if !ok {
		return models.CatalogItem{}, 0, false
	}

	return models.CatalogItem{
		Name:      name,
		BuyPrice:  price,
		SellPrice: decimal.Zero,
	}, quantity, true
}

func (p *ProductIntake) reset() {
	p.open = false
	p.name = ""
	p.buyPrice = ""
	p.quantity = ""
}
