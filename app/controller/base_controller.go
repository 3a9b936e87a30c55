package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"restock/logger"
	"restock/service"
	"restock/utils"
)

// baseController carries what every session-scoped controller needs
type baseController struct {
	registry       *service.SessionRegistry
	currencySuffix string
}

// session resolves the {id} path value. On failure it writes the error response.
func (c *baseController) session(w http.ResponseWriter, r *http.Request, op string) (*service.Session, bool) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		logger.L().Warnf("%s: session id is required", op)
		http.Error(w, "session id is required", http.StatusBadRequest)
		return nil, false
	}

	session, err := c.registry.Get(id)
	if err != nil {
		respondError(w, op, err)
		return nil, false
	}
	return session, true
}

// writeView responds with the current session view
func (c *baseController) writeView(w http.ResponseWriter, op string, session *service.Session, status int) {
	view := session.View()
	view.Total = utils.FormatAmount(view.TotalAmount, c.currencySuffix)
	writeJSON(w, op, status, view)
}

func requireMethod(w http.ResponseWriter, r *http.Request, op string, method string) bool {
	if r.Method != method {
		logger.L().Warnf("%s: method not allowed: %s", op, r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func decodeBody(w http.ResponseWriter, r *http.Request, op string, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.L().Warnf("%s: failed to decode request body: %v", op, err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, op string, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.L().Errorf("%s: error encoding response: %v", op, err)
	}
}

// respondError maps service errors to HTTP status codes
func respondError(w http.ResponseWriter, op string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, service.ErrItemNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrDuplicateItem):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		logger.L().Errorf("%s: %v", op, err)
	} else {
		logger.L().Warnf("%s: %v", op, err)
	}
	http.Error(w, err.Error(), status)
}
