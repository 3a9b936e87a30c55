package app

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restock/models"
	"restock/service"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunExportJSON(t *testing.T) {
	dir := t.TempDir()
	opts := exportOptions{
		catalogPath:   writeFile(t, dir, "catalog.json", `[{"name": "Bread", "buy_price": 50, "sell_price": 70}, {"name": "Oil", "buy_price": 120}]`),
		selectionPath: writeFile(t, dir, "selection.json", `[{"name": "Bread", "quantity": 4}, {"name": "Oil", "quantity": 2}]`),
		outDir:        filepath.Join(dir, "out"),
		format:        "json",
		export:        service.DefaultExportConfig(),
	}

	path, err := runExport(context.Background(), opts)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "Restocking_List_"))
	assert.Equal(t, ".json", filepath.Ext(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var sheet models.OrderSheet
	require.NoError(t, json.Unmarshal(data, &sheet))
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, "Bread", sheet.Rows[0].Name)
	assert.Equal(t, "440 L", sheet.Total)
}

func TestRunExportUnknownItem(t *testing.T) {
	dir := t.TempDir()
	opts := exportOptions{
		catalogPath:   writeFile(t, dir, "catalog.json", `[{"name": "Bread", "buy_price": 50}]`),
		selectionPath: writeFile(t, dir, "selection.json", `[{"name": "Caviar", "quantity": 1}]`),
		outDir:        dir,
		format:        "html",
		export:        service.DefaultExportConfig(),
	}

	_, err := runExport(context.Background(), opts)
	assert.ErrorIs(t, err, service.ErrItemNotFound)
}
