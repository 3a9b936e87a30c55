package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restock/models"
)

type stubRenderer struct {
	pdf []byte
	png []byte
	err error

	lastHTML string
}

func (s *stubRenderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	s.lastHTML = html
	return s.pdf, s.err
}

func (s *stubRenderer) RenderPNG(ctx context.Context, html string) ([]byte, error) {
	s.lastHTML = html
	return s.png, s.err
}

func fixedExporter(cfg ExportConfig, r DocumentRendererInterface) *OrderExporter {
	e := NewOrderExporter(cfg, r)
	e.now = func() time.Time { return time.Date(2026, time.October, 16, 9, 0, 0, 0, time.Local) }
	return e
}

func TestBuildOrderSheet(t *testing.T) {
	e := fixedExporter(DefaultExportConfig(), nil)
	lines := []models.SelectedLine{
		{Item: item("Bread", 50, 70), Quantity: 4},
		{Item: item("Milk", 90, 110), Quantity: 0},
	}

	sheet := e.BuildOrderSheet(lines)
	assert.Equal(t, "Restocking List", sheet.Title)
	assert.Equal(t, "10/16/2026", sheet.Date)
	assert.Equal(t, []string{"Item", "Unit Price", "Quantity", "Total"}, sheet.Labels.Columns)
	require.Len(t, sheet.Rows, 2)

	assert.Equal(t, models.OrderSheetRow{Name: "Bread", UnitPrice: "50 L", Quantity: 4, LineTotal: "200 L", Amount: sheet.Rows[0].Amount}, sheet.Rows[0])
	assert.Equal(t, "200", sheet.Rows[0].Amount.String())
	assert.Equal(t, 1, sheet.Rows[1].Quantity, "missing quantity counts as 1")
	assert.Equal(t, "90 L", sheet.Rows[1].LineTotal)

	assert.Equal(t, "290 L", sheet.Total)
	assert.Equal(t, "Restocking_List_10-16-2026.pdf", sheet.FileName)
}

func TestBuildOrderSheetEmpty(t *testing.T) {
	sheet := fixedExporter(DefaultExportConfig(), nil).BuildOrderSheet(nil)
	assert.Empty(t, sheet.Rows)
	assert.True(t, sheet.TotalAmount.IsZero())
	assert.Equal(t, "0 L", sheet.Total)
}

func TestBuildOrderSheetAlbanian(t *testing.T) {
	cfg := DefaultExportConfig()
	cfg.Lang = "sq"
	cfg.Locale = "sq-AL"
	cfg.FilePrefix = "Lista"

	sheet := fixedExporter(cfg, nil).BuildOrderSheet([]models.SelectedLine{{Item: item("Bukë", 50, 70), Quantity: 4}})
	assert.Equal(t, "Lista e Furnizimit", sheet.Title)
	assert.Equal(t, []string{"Produkt", "Çmimi Blerjes", "Sasia", "Totali"}, sheet.Labels.Columns)
	assert.Equal(t, "16.10.2026", sheet.Date)
	assert.Equal(t, "Lista_16.10.2026.pdf", sheet.FileName)
}

func TestExportHTMLAndJSON(t *testing.T) {
	e := fixedExporter(DefaultExportConfig(), nil)
	lines := []models.SelectedLine{{Item: item("Bread", 50, 70), Quantity: 4}}

	res, err := e.Export(context.Background(), lines, "html")
	require.NoError(t, err)
	assert.Equal(t, "text/html; charset=utf-8", res.ContentType)
	assert.Equal(t, "Restocking_List_10-16-2026.html", res.FileName)
	html := string(res.Data)
	assert.Contains(t, html, "Generated on: 10/16/2026")
	assert.Contains(t, html, "<td>Bread</td><td>50 L</td><td>4</td><td>200 L</td>")
	assert.Contains(t, html, "Total: 200 L")

	res, err = e.Export(context.Background(), lines, "JSON")
	require.NoError(t, err)
	var sheet models.OrderSheet
	require.NoError(t, json.Unmarshal(res.Data, &sheet))
	assert.Equal(t, "200 L", sheet.Total)
}

func TestExportPDFUsesRenderer(t *testing.T) {
	r := &stubRenderer{pdf: []byte("%PDF-1.4")}
	e := fixedExporter(DefaultExportConfig(), r)

	res, err := e.Export(context.Background(), nil, "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", res.ContentType)
	assert.Equal(t, []byte("%PDF-1.4"), res.Data)
	assert.Equal(t, "Restocking_List_10-16-2026.pdf", res.FileName)
	assert.True(t, strings.Contains(r.lastHTML, "Total: 0 L"))
}

func TestExportPreviewOptimizesScreenshot(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1600, 400))))
	e := fixedExporter(DefaultExportConfig(), &stubRenderer{png: buf.Bytes()})

	res, err := e.Export(context.Background(), nil, "preview")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", res.ContentType)
	assert.Equal(t, "Restocking_List_10-16-2026.jpg", res.FileName)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(res.Data))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 200, cfg.Height)
}

func TestExportErrors(t *testing.T) {
	e := fixedExporter(DefaultExportConfig(), nil)
	_, err := e.Export(context.Background(), nil, "docx")
	assert.Error(t, err)

	_, err = e.Export(context.Background(), nil, "pdf")
	assert.Error(t, err, "no renderer configured")

	failing := fixedExporter(DefaultExportConfig(), &stubRenderer{err: errors.New("chrome missing")})
	_, err = failing.Export(context.Background(), nil, "pdf")
	assert.ErrorContains(t, err, "chrome missing")
}
