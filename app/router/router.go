package router

import (
	"net/http"

	"restock/app/controller"
)

type Controllers struct {
	Session   *controller.SessionController
	Selection *controller.SelectionController
	Intake    *controller.IntakeController
	Export    *controller.ExportController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func methodNotAllowed(w http.ResponseWriter) {
	http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
}

func SetupRoutes(mux *http.ServeMux, controllers *Controllers) {
	// Ping endpoint
	mux.HandleFunc("/ping", pingHandler)

	// Create session
	mux.HandleFunc("/sessions", controllers.Session.Create)

	// Session view - handles both GET (view) and DELETE (discard)
	mux.HandleFunc("/sessions/{id}", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			controllers.Session.Get(w, r)
		case http.MethodDelete:
			controllers.Session.Delete(w, r)
		default:
			methodNotAllowed(w)
		}
	})

	// Search term - PUT sets it, DELETE clears it
	mux.HandleFunc("/sessions/{id}/search", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			controllers.Session.SetSearch(w, r)
		case http.MethodDelete:
			controllers.Session.ClearSearch(w, r)
		default:
			methodNotAllowed(w)
		}
	})

	// Selection and quantities
	mux.HandleFunc("/sessions/{id}/items/{name}/toggle", controllers.Selection.Toggle)
	mux.HandleFunc("/sessions/{id}/items/{name}/quantity", controllers.Selection.SetQuantity)
	mux.HandleFunc("/sessions/{id}/items/{name}/adjust", controllers.Selection.Adjust)
	mux.HandleFunc("/sessions/{id}/items/{name}/preset", controllers.Selection.Preset)
	mux.HandleFunc("/sessions/{id}/selection", controllers.Selection.ClearAll)

	// Add-product form
	mux.HandleFunc("/sessions/{id}/intake", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			controllers.Intake.Open(w, r)
		case http.MethodPut:
			controllers.Intake.Update(w, r)
		case http.MethodDelete:
			controllers.Intake.Cancel(w, r)
		default:
			methodNotAllowed(w)
		}
	})
	mux.HandleFunc("/sessions/{id}/intake/submit", controllers.Intake.Submit)

	// Order export
	mux.HandleFunc("/sessions/{id}/export", controllers.Export.Export)
}
