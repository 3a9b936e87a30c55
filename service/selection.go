package service

import (
	"github.com/shopspring/decimal"

	"restock/models"
	"restock/utils"
)

// QuantityPresets are the fixed amounts offered next to each selected item
var QuantityPresets = []int{3, 5, 10}

// Selection tracks the chosen item names in insertion order and the
// quantity of each. quantities has exactly one entry per selected name.
type Selection struct {
	order      []string
	quantities map[string]int
}

// NewSelection creates an empty selection
func NewSelection() *Selection {
	return &Selection{quantities: make(map[string]int)}
}

// Toggle deselects name if selected, dropping its quantity, otherwise selects
// it with quantity 1. Reselecting never restores an earlier custom quantity.
func (s *Selection) Toggle(name string) {
	if s.IsSelected(name) {
		s.remove(name)
		return
	}
	s.add(name, 1)
}

// Select adds name with the given quantity, or overwrites its quantity if already selected
func (s *Selection) Select(name string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	if s.IsSelected(name) {
		s.quantities[name] = quantity
		return
	}
	s.add(name, quantity)
}

// SetQuantity applies raw user input. Only positive integers are accepted;
// anything else leaves the quantity untouched and returns false.
func (s *Selection) SetQuantity(name, raw string) bool {
	n, ok := utils.ParsePositiveInt(raw)
	if !ok {
		return false
	}
	return s.SetFixedQuantity(name, n)
}

// AdjustQuantity moves the quantity by delta, never below 1
func (s *Selection) AdjustQuantity(name string, delta int) bool {
	if !s.IsSelected(name) {
		return false
	}
	s.quantities[name] = max(s.Quantity(name)+delta, 1)
	return true
}

// SetFixedQuantity overwrites the quantity with amount
func (s *Selection) SetFixedQuantity(name string, amount int) bool {
	if !s.IsSelected(name) || amount < 1 {
		return false
	}
	s.quantities[name] = amount
	return true
}

// ClearAll empties the selection
func (s *Selection) ClearAll() {
	s.order = nil
	s.quantities = make(map[string]int)
}

// IsSelected reports membership by name
func (s *Selection) IsSelected(name string) bool {
	_, ok := s.quantities[name]
	return ok
}

// Quantity returns the chosen quantity, defaulting to 1
func (s *Selection) Quantity(name string) int {
	if q, ok := s.quantities[name]; ok && q > 0 {
		return q
	}
	return 1
}

// Names returns selected names in selection order
func (s *Selection) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of selected items
func (s *Selection) Len() int {
	return len(s.order)
}

// Lines resolves the selection against catalog, in selection order
func (s *Selection) Lines(catalog *CatalogStore) []models.SelectedLine {
	lines := make([]models.SelectedLine, 0, len(s.order))
	for _, name := range s.order {
		item, ok := catalog.Get(name)
		if !ok {
			continue
		}
		lines = append(lines, models.SelectedLine{Item: item, Quantity: s.Quantity(name)})
	}
	return lines
}

// Total sums buy price times quantity over the selection
func (s *Selection) Total(catalog *CatalogStore) decimal.Decimal {
	return LinesTotal(s.Lines(catalog))
}

// LinesTotal sums buy price times quantity, counting a missing quantity as 1
func LinesTotal(lines []models.SelectedLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(lineAmount(line))
	}
	return total
}

func lineAmount(line models.SelectedLine) decimal.Decimal {
	qty := line.Quantity
	if qty < 1 {
		qty = 1
	}
	return line.Item.BuyPrice.Mul(decimal.NewFromInt(int64(qty)))
}

func (s *Selection) add(name string, quantity int) {
	s.order = append(s.order, name)
	s.quantities[name] = quantity
}

func (s *Selection) remove(name string) {
	delete(s.quantities, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}
