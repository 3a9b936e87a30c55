package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"restock/logger"
	"restock/service"
)

// ExportController handles order sheet downloads
type ExportController struct {
	baseController
	exporter *service.OrderExporter
}

// NewExportController creates a new ExportController
func NewExportController(registry *service.SessionRegistry, exporter *service.OrderExporter) *ExportController {
	return &ExportController{
		baseController: baseController{registry: registry, currencySuffix: exporter.CurrencySuffix()},
		exporter:       exporter,
	}
}

// Export handles GET /sessions/{id}/export?format=pdf|html|json|preview
// format defaults to pdf
func (c *ExportController) Export(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, "Export", http.MethodGet) {
		return
	}
	session, ok := c.session(w, r, "Export")
	if !ok {
		return
	}

	format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	if format == "" {
		format = service.FormatPDF
	}
	if !service.ValidFormats[format] {
		logger.L().Warnf("Export: invalid format: %s", format)
		http.Error(w, "Invalid format. Valid formats: pdf, html, json, preview", http.StatusBadRequest)
		return
	}

	result, err := c.exporter.Export(r.Context(), session.SelectedLines(), format)
	if err != nil {
		logger.L().Errorf("Export: error generating %s: %v", format, err)
		http.Error(w, fmt.Sprintf("Failed to export order sheet: %v", err), http.StatusInternalServerError)
		return
	}

	disposition := "attachment"
	if format == service.FormatHTML {
		disposition = "inline"
	}
	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("%s; filename=\"%s\"", disposition, result.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Data)))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Data); err != nil {
		logger.L().Errorf("Export: error writing response: %v", err)
	}
}
