package service

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
	"time"

	"restock/logger"
	"restock/models"
	"restock/utils"
)

//go:embed templates/order_sheet.html
var templateFS embed.FS

var orderSheetTemplate = template.Must(template.ParseFS(templateFS, "templates/order_sheet.html"))

// Export formats
const (
	FormatPDF     = "pdf"
	FormatHTML    = "html"
	FormatJSON    = "json"
	FormatPreview = "preview"
)

// ValidFormats lists the formats Export understands
var ValidFormats = map[string]bool{
	FormatPDF:     true,
	FormatHTML:    true,
	FormatJSON:    true,
	FormatPreview: true,
}

type sheetLabels struct {
	title       string
	generatedOn string
	columns     []string
	total       string
}

var labelsByLang = map[string]sheetLabels{
	"en": {
		title:       "Restocking List",
		generatedOn: "Generated on",
		columns:     []string{"Item", "Unit Price", "Quantity", "Total"},
		total:       "Total",
	},
	"sq": {
		title:       "Lista e Furnizimit",
		generatedOn: "Gjeneruar më",
		columns:     []string{"Produkt", "Çmimi Blerjes", "Sasia", "Totali"},
		total:       "Totali",
	},
}

// ExportConfig controls the texts and naming of exported documents
type ExportConfig struct {
	Title          string // Overrides the language default when set
	FilePrefix     string
	Lang           string // "en" or "sq"
	Locale         string // Date locale, e.g. "en-US"
	CurrencySuffix string
}

// DefaultExportConfig returns the settings the shop has always used
func DefaultExportConfig() ExportConfig {
	return ExportConfig{
		FilePrefix:     "Restocking_List",
		Lang:           "en",
		Locale:         utils.DefaultLocale,
		CurrencySuffix: utils.DefaultCurrencySuffix,
	}
}

// ExportResult is a rendered document ready for download
type ExportResult struct {
	Data        []byte
	ContentType string
	FileName    string
}

// OrderExporter builds and renders order sheets
type OrderExporter struct {
	cfg      ExportConfig
	renderer DocumentRendererInterface
	now      func() time.Time
}

// NewOrderExporter creates a new OrderExporter. renderer may be nil when only
// html and json output are needed.
func NewOrderExporter(cfg ExportConfig, renderer DocumentRendererInterface) *OrderExporter {
	if cfg.FilePrefix == "" {
		cfg.FilePrefix = "Restocking_List"
	}
	if _, ok := labelsByLang[cfg.Lang]; !ok {
		cfg.Lang = "en"
	}
	if cfg.Locale == "" {
		cfg.Locale = utils.DefaultLocale
	}
	return &OrderExporter{
		cfg:      cfg,
		renderer: renderer,
		now:      time.Now,
	}
}

// CurrencySuffix returns the suffix printed after amounts
func (e *OrderExporter) CurrencySuffix() string {
	return e.cfg.CurrencySuffix
}

// BuildOrderSheet turns selected lines into the priced document model.
// An empty selection yields zero rows and a total of 0.
func (e *OrderExporter) BuildOrderSheet(lines []models.SelectedLine) models.OrderSheet {
	labels := labelsByLang[e.cfg.Lang]
	title := labels.title
	if e.cfg.Title != "" {
		title = e.cfg.Title
	}

	date := utils.FormatLocaleDate(e.now(), e.cfg.Locale)
	rows := make([]models.OrderSheetRow, 0, len(lines))
	for _, line := range lines {
		qty := line.Quantity
		if qty < 1 {
			qty = 1
		}
		amount := lineAmount(line)
		rows = append(rows, models.OrderSheetRow{
			Name:      line.Item.Name,
			UnitPrice: utils.FormatAmount(line.Item.BuyPrice, e.cfg.CurrencySuffix),
			Quantity:  qty,
			LineTotal: utils.FormatAmount(amount, e.cfg.CurrencySuffix),
			Amount:    amount,
		})
	}

	total := LinesTotal(lines)
	return models.OrderSheet{
		Title: title,
		Date:  date,
		Labels: models.OrderSheetLabels{
			GeneratedOn: labels.generatedOn,
			Columns:     append([]string(nil), labels.columns...),
			Total:       labels.total,
		},
		Rows:        rows,
		TotalAmount: total,
		Total:       utils.FormatAmount(total, e.cfg.CurrencySuffix),
		FileName:    utils.ExportFileName(e.cfg.FilePrefix, date, FormatPDF),
	}
}

// RenderHTML renders the order sheet document
func (e *OrderExporter) RenderHTML(sheet models.OrderSheet) ([]byte, error) {
	var buf bytes.Buffer
	if err := orderSheetTemplate.Execute(&buf, sheet); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// Export builds the order sheet for lines and renders it in format
func (e *OrderExporter) Export(ctx context.Context, lines []models.SelectedLine, format string) (*ExportResult, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if !ValidFormats[format] {
		return nil, fmt.Errorf("unsupported export format %q", format)
	}

	sheet := e.BuildOrderSheet(lines)
	logger.L().Infof("Export: format=%s rows=%d total=%s", format, len(sheet.Rows), sheet.Total)

	if format == FormatJSON {
		data, err := json.Marshal(sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to encode order sheet: %w", err)
		}
		return &ExportResult{Data: data, ContentType: "application/json", FileName: withExt(sheet.FileName, "json")}, nil
	}

	html, err := e.RenderHTML(sheet)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatHTML:
		return &ExportResult{Data: html, ContentType: "text/html; charset=utf-8", FileName: withExt(sheet.FileName, "html")}, nil
	case FormatPDF:
		if e.renderer == nil {
			return nil, fmt.Errorf("pdf export requires a document renderer")
		}
		pdf, err := e.renderer.RenderPDF(ctx, string(html))
		if err != nil {
			return nil, fmt.Errorf("failed to render PDF: %w", err)
		}
		return &ExportResult{Data: pdf, ContentType: "application/pdf", FileName: sheet.FileName}, nil
	default:
		if e.renderer == nil {
			return nil, fmt.Errorf("preview export requires a document renderer")
		}
		shot, err := e.renderer.RenderPNG(ctx, string(html))
		if err != nil {
			return nil, fmt.Errorf("failed to render preview: %w", err)
		}
		preview, err := OptimizeImage(shot, "medium")
		if err != nil {
			return nil, err
		}
		return &ExportResult{Data: preview, ContentType: "image/jpeg", FileName: withExt(sheet.FileName, "jpg")}, nil
	}
}

func withExt(fileName, ext string) string {
	return strings.TrimSuffix(fileName, "."+FormatPDF) + "." + ext
}
