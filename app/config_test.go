package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"ENV", "PORT", "CATALOG_SOURCE", "CATALOG_PATH", "EXPORT_LANG", "CURRENCY_SUFFIX", "SESSION_TTL", "RENDER_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, CatalogSourceFile, cfg.CatalogSource)
	assert.Equal(t, "data/market_items.json", cfg.CatalogPath)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, "en", cfg.Export.Lang)
	assert.Equal(t, "L", cfg.Export.CurrencySuffix)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 30*time.Second, cfg.RenderTimeout)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", ":9090")
	t.Setenv("EXPORT_LANG", "SQ")
	t.Setenv("SESSION_TTL", "45m")
	t.Setenv("CATALOG_SOURCE", "file")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", cfg.Addr())
	assert.Equal(t, "sq", cfg.Export.Lang)
	assert.Equal(t, 45*time.Minute, cfg.SessionTTL)
}

func TestLoadConfigValidation(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "ftp")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("CATALOG_SOURCE", "drive")
	t.Setenv("DRIVE_CATALOG_FILE_ID", "")
	_, err = LoadConfig()
	assert.Error(t, err)

	t.Setenv("CATALOG_SOURCE", "postgres")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "")
	_, err = LoadConfig()
	assert.Error(t, err)

	t.Setenv("CATALOG_SOURCE", "file")
	t.Setenv("SESSION_TTL", "soon")
	_, err = LoadConfig()
	assert.Error(t, err)
}
