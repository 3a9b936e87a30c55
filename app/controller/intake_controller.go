package controller

import (
	"net/http"

	"restock/logger"
	"restock/models"
	"restock/service"
)

// IntakeController handles the add-product form
type IntakeController struct {
	baseController
}

// NewIntakeController creates a new IntakeController
func NewIntakeController(registry *service.SessionRegistry, currencySuffix string) *IntakeController {
	return &IntakeController{baseController{registry: registry, currencySuffix: currencySuffix}}
}

// Open handles POST /sessions/{id}/intake
func (c *IntakeController) Open(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r, "OpenIntake")
	if !ok {
		return
	}
	session.OpenIntake()
	c.writeView(w, "OpenIntake", session, http.StatusOK)
}

// Update handles PUT /sessions/{id}/intake
// Example request: {"name": "Oil", "buyPrice": "120", "quantity": "2"}
func (c *IntakeController) Update(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r, "UpdateIntake")
	if !ok {
		return
	}

	var req models.IntakeFieldsRequest
	if !decodeBody(w, r, "UpdateIntake", &req) {
		return
	}

	session.UpdateIntake(req)
	c.writeView(w, "UpdateIntake", session, http.StatusOK)
}

// Submit handles POST /sessions/{id}/intake/submit
// An incomplete form is left open and unchanged.
func (c *IntakeController) Submit(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, "SubmitIntake", http.MethodPost) {
		return
	}
	session, ok := c.session(w, r, "SubmitIntake")
	if !ok {
		return
	}

	if session.SubmitIntake() {
		logger.L().Infof("SubmitIntake: product added to session %s", session.ID)
	}
	c.writeView(w, "SubmitIntake", session, http.StatusOK)
}

// Cancel handles DELETE /sessions/{id}/intake
func (c *IntakeController) Cancel(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r, "CancelIntake")
	if !ok {
		return
	}
	session.CancelIntake()
	c.writeView(w, "CancelIntake", session, http.StatusOK)
}
