package service

import (
	"fmt"
	"sync"
	"time"

	"restock/models"
)

// Session is one restocking list in progress. Every operation runs to
// completion under the session lock.
type Session struct {
	ID string

	mu        sync.Mutex
	catalog   *CatalogStore
	selection *Selection
	search    *SearchFilter
	intake    *ProductIntake
	lastSeen  time.Time
	now       func() time.Time
}

func newSession(id string, catalog *CatalogStore, now func() time.Time) *Session {
	return &Session{
		ID:        id,
		catalog:   catalog,
		selection: NewSelection(),
		search:    NewSearchFilter(),
		intake:    NewProductIntake(),
		lastSeen:  now(),
		now:       now,
	}
}

// with runs fn under the lock and marks the session as used
func (s *Session) with(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = s.now()
	fn()
}

// LastSeen returns the time of the last operation
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// View returns the filtered grid, totals and form state
func (s *Session) View() models.SessionView {
	var view models.SessionView
	s.with(func() { view = s.view() })
	return view
}

func (s *Session) view() models.SessionView {
	filtered := s.search.Filtered(s.catalog)
	items := make([]models.SessionItemView, 0, len(filtered))
	for _, item := range filtered {
		v := models.SessionItemView{
			Name:      item.Name,
			BuyPrice:  item.BuyPrice,
			SellPrice: item.SellPrice,
			Selected:  s.selection.IsSelected(item.Name),
		}
		if v.Selected {
			v.Quantity = s.selection.Quantity(item.Name)
		}
		items = append(items, v)
	}

	return models.SessionView{
		ID:            s.ID,
		SearchTerm:    s.search.Term(),
		Items:         items,
		SelectedCount: s.selection.Len(),
		TotalAmount:   s.selection.Total(s.catalog),
		Presets:       append([]int(nil), QuantityPresets...),
		Intake:        s.intake.View(),
	}
}

// SetSearchTerm stores the search term
func (s *Session) SetSearchTerm(term string) {
	s.with(func() { s.search.SetSearchTerm(term) })
}

// ClearSearch restores the full catalog view
func (s *Session) ClearSearch() {
	s.with(s.search.ClearSearch)
}

// Toggle selects or deselects the named item
func (s *Session) Toggle(name string) error {
	var err error
	s.with(func() {
		if err = s.requireItem(name); err != nil {
			return
		}
		s.selection.Toggle(name)
	})
	return err
}

// SetQuantity applies raw quantity input; invalid input is ignored
func (s *Session) SetQuantity(name, raw string) (bool, error) {
	var applied bool
	var err error
	s.with(func() {
		if err = s.requireItem(name); err != nil {
			return
		}
		applied = s.selection.SetQuantity(name, raw)
	})
	return applied, err
}

// AdjustQuantity moves the quantity by delta, never below 1
func (s *Session) AdjustQuantity(name string, delta int) (bool, error) {
	var applied bool
	var err error
	s.with(func() {
		if err = s.requireItem(name); err != nil {
			return
		}
		applied = s.selection.AdjustQuantity(name, delta)
	})
	return applied, err
}

// SetFixedQuantity overwrites the quantity with a preset amount
func (s *Session) SetFixedQuantity(name string, amount int) (bool, error) {
	var applied bool
	var err error
	s.with(func() {
		if err = s.requireItem(name); err != nil {
			return
		}
		applied = s.selection.SetFixedQuantity(name, amount)
	})
	return applied, err
}

// ClearAll empties the selection
func (s *Session) ClearAll() {
	s.with(s.selection.ClearAll)
}

// OpenIntake shows the add-product form
func (s *Session) OpenIntake() {
	s.with(s.intake.Open)
}

// UpdateIntake stores the typed form fields
func (s *Session) UpdateIntake(fields models.IntakeFieldsRequest) {
	s.with(func() { s.intake.SetFields(fields.Name, fields.BuyPrice, fields.Quantity) })
}

// CancelIntake discards the form without touching catalog or selection
func (s *Session) CancelIntake() {
	s.with(s.intake.Cancel)
}

// SubmitIntake adds the typed product and selects it. It reports whether the
// submission was accepted.
func (s *Session) SubmitIntake() bool {
	var accepted bool
	s.with(func() { accepted = s.intake.Submit(s.catalog, s.selection) })
	return accepted
}

// SelectedLines returns the selection resolved against the catalog
func (s *Session) SelectedLines() []models.SelectedLine {
	var lines []models.SelectedLine
	s.with(func() { lines = s.selection.Lines(s.catalog) })
	return lines
}

func (s *Session) requireItem(name string) error {
	if _, ok := s.catalog.Get(name); !ok {
		return fmt.Errorf("%w: %q", ErrItemNotFound, name)
	}
	return nil
}
