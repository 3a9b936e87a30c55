package controller

import (
	"fmt"
	"net/http"
	"slices"

	"restock/logger"
	"restock/models"
	"restock/service"
)

// SelectionController handles item selection and quantity requests.
// Rejected quantity input is not an error: the unchanged view is returned.
type SelectionController struct {
	baseController
}

// NewSelectionController creates a new SelectionController
func NewSelectionController(registry *service.SessionRegistry, currencySuffix string) *SelectionController {
	return &SelectionController{baseController{registry: registry, currencySuffix: currencySuffix}}
}

// Toggle handles POST /sessions/{id}/items/{name}/toggle
func (c *SelectionController) Toggle(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, "Toggle", http.MethodPost) {
		return
	}
	session, ok := c.session(w, r, "Toggle")
	if !ok {
		return
	}

	if err := session.Toggle(r.PathValue("name")); err != nil {
		respondError(w, "Toggle", err)
		return
	}
	c.writeView(w, "Toggle", session, http.StatusOK)
}

// SetQuantity handles PUT /sessions/{id}/items/{name}/quantity
// Example request: {"value": "4"}
func (c *SelectionController) SetQuantity(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, "SetQuantity", http.MethodPut) {
		return
	}
	session, ok := c.session(w, r, "SetQuantity")
	if !ok {
		return
	}

	var req models.SetQuantityRequest
	if !decodeBody(w, r, "SetQuantity", &req) {
		return
	}

	name := r.PathValue("name")
	applied, err := session.SetQuantity(name, req.Value)
	if err != nil {
		respondError(w, "SetQuantity", err)
		return
	}
	if !applied {
		logger.L().Debugf("SetQuantity: ignored value %q for %q", req.Value, name)
	}
	c.writeView(w, "SetQuantity", session, http.StatusOK)
}

// Adjust handles POST /sessions/{id}/items/{name}/adjust
// Example request: {"delta": -1}
func (c *SelectionController) Adjust(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, "AdjustQuantity", http.MethodPost) {
		return
	}
	session, ok := c.session(w, r, "AdjustQuantity")
	if !ok {
		return
	}

	var req models.AdjustQuantityRequest
	if !decodeBody(w, r, "AdjustQuantity", &req) {
		return
	}

	if _, err := session.AdjustQuantity(r.PathValue("name"), req.Delta); err != nil {
		respondError(w, "AdjustQuantity", err)
		return
	}
	c.writeView(w, "AdjustQuantity", session, http.StatusOK)
}

// Preset handles POST /sessions/{id}/items/{name}/preset
// Example request: {"amount": 5}
func (c *SelectionController) Preset(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, "PresetQuantity", http.MethodPost) {
		return
	}
	session, ok := c.session(w, r, "PresetQuantity")
	if !ok {
		return
	}

	var req models.PresetQuantityRequest
	if !decodeBody(w, r, "PresetQuantity", &req) {
		return
	}

	if !slices.Contains(service.QuantityPresets, req.Amount) {
		logger.L().Warnf("PresetQuantity: invalid amount %d", req.Amount)
		http.Error(w, fmt.Sprintf("Invalid amount. Valid presets: %v", service.QuantityPresets), http.StatusBadRequest)
		return
	}

	if _, err := session.SetFixedQuantity(r.PathValue("name"), req.Amount); err != nil {
		respondError(w, "PresetQuantity", err)
		return
	}
	c.writeView(w, "PresetQuantity", session, http.StatusOK)
}

// ClearAll handles DELETE /sessions/{id}/selection
func (c *SelectionController) ClearAll(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, "ClearAll", http.MethodDelete) {
		return
	}
	session, ok := c.session(w, r, "ClearAll")
	if !ok {
		return
	}

	session.ClearAll()
	c.writeView(w, "ClearAll", session, http.StatusOK)
}
