package controller

import (
	"net/http"

	"restock/models"
	"restock/service"
)

// SessionController handles session lifecycle and search requests
type SessionController struct {
	baseController
}

// NewSessionController creates a new SessionController
func NewSessionController(registry *service.SessionRegistry, currencySuffix string) *SessionController {
	return &SessionController{baseController{registry: registry, currencySuffix: currencySuffix}}
}

// Create handles POST /sessions
// Starts a new restocking list from the shipped catalog
func (c *SessionController) Create(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, "CreateSession", http.MethodPost) {
		return
	}

	session, err := c.registry.Create()
	if err != nil {
		respondError(w, "CreateSession", err)
		return
	}
	c.writeView(w, "CreateSession", session, http.StatusCreated)
}

// Get handles GET /sessions/{id}
func (c *SessionController) Get(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r, "GetSession")
	if !ok {
		return
	}
	c.writeView(w, "GetSession", session, http.StatusOK)
}

// Delete handles DELETE /sessions/{id}
func (c *SessionController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.registry.Delete(r.PathValue("id")); err != nil {
		respondError(w, "DeleteSession", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetSearch handles PUT /sessions/{id}/search
// Example request: {"term": "bre"}
func (c *SessionController) SetSearch(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r, "SetSearch")
	if !ok {
		return
	}

	var req models.SearchRequest
	if !decodeBody(w, r, "SetSearch", &req) {
		return
	}

	session.SetSearchTerm(req.Term)
	c.writeView(w, "SetSearch", session, http.StatusOK)
}

// ClearSearch handles DELETE /sessions/{id}/search
func (c *SessionController) ClearSearch(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r, "ClearSearch")
	if !ok {
		return
	}

	session.ClearSearch()
	c.writeView(w, "ClearSearch", session, http.StatusOK)
}
