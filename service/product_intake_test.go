package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitAddsAndSelectsProduct(t *testing.T) {
	store := newTestStore(t)
	sel := NewSelection()
	search := NewSearchFilter()
	intake := NewProductIntake()

	intake.Open()
	intake.SetFields("Oil", "120", "2")
	require.True(t, intake.Submit(store, sel))

	added, ok := store.Get("Oil")
	require.True(t, ok)
	assert.True(t, added.SellPrice.IsZero())
	assert.True(t, sel.IsSelected("Oil"))
	assert.Equal(t, 2, sel.Quantity("Oil"))
	assert.Equal(t, "240", sel.Total(store).String())

	search.ClearSearch()
	filtered := search.Filtered(store)
	assert.Equal(t, "Oil", filtered[len(filtered)-1].Name)

	view := intake.View()
	assert.False(t, view.Open)
	assert.Empty(t, view.Name)
	assert.Empty(t, view.BuyPrice)
	assert.Empty(t, view.Quantity)
}

func TestSubmitRejectsIncompleteForm(t *testing.T) {
	cases := []struct {
		name, price, qty string
	}{
		{"", "120", "2"},
		{"Oil", "", "2"},
		{"Oil", "abc", "2"},
		{"Oil", "-5", "2"},
		{"Oil", "120", ""},
		{"Oil", "120", "0"},
		{"Bread", "10", "1"}, // name already in the catalog
	}

	for _, tc := range cases {
		store := newTestStore(t)
		sel := NewSelection()
		intake := NewProductIntake()
		intake.Open()
		intake.SetFields(tc.name, tc.price, tc.qty)

		assert.False(t, intake.Submit(store, sel), "fields %+v", tc)
		assert.Equal(t, 3, store.Len())
		assert.Equal(t, 0, sel.Len())

		view := intake.View()
		assert.True(t, view.Open, "form stays open")
		assert.Equal(t, tc.name, view.Name, "fields are kept")
	}
}

func TestCancelDiscardsFields(t *testing.T) {
	store := newTestStore(t)
	sel := NewSelection()
	intake := NewProductIntake()
	intake.Open()
	intake.SetFields("Oil", "120", "2")

	intake.Cancel()
	assert.False(t, intake.IsOpen())
	assert.Empty(t, intake.View().Name)
	assert.Equal(t, 3, store.Len())
	assert.Equal(t, 0, sel.Len())
}
