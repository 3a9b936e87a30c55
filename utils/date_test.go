package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatLocaleDate(t *testing.T) {
	day := time.Date(2026, time.October, 6, 18, 30, 0, 0, time.Local)

	assert.Equal(t, "10/6/2026", FormatLocaleDate(day, "en-US"))
	assert.Equal(t, "06/10/2026", FormatLocaleDate(day, "en-GB"))
	assert.Equal(t, "6.10.2026", FormatLocaleDate(day, "sq-AL"))
	assert.Equal(t, "2026-10-06", FormatLocaleDate(day, "sv-SE"))
	assert.Equal(t, "10/6/2026", FormatLocaleDate(day, "xx-YY"))
}

func TestExportFileName(t *testing.T) {
	assert.Equal(t, "Restocking_List_10-6-2026.pdf", ExportFileName("Restocking_List", "10/6/2026", "pdf"))
	assert.Equal(t, "Restocking_List_6.10.2026.html", ExportFileName("Restocking_List", "6.10.2026", ".html"))
	assert.Equal(t, "List_a-b-c.pdf", ExportFileName("List", `a\b:c`, "pdf"))
}
