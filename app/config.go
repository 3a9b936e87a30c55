package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"restock/db"
	"restock/service"
	"restock/utils"
)

// Catalog source kinds
const (
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"
	CatalogSourceDrive    = "drive"
)

// Config holds the service settings read from the environment
type Config struct {
	Env      string
	Port     string
	LogLevel string

	CatalogSource      string
	CatalogPath        string
	CatalogTable       string
	DB                 db.Config
	DriveCatalogFileID string
	GoogleCredentials  string

	ChromePath    string
	RenderTimeout time.Duration
	Export        service.ExportConfig

	SessionTTL time.Duration
}

// IsProduction reports whether ENV=production
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Addr returns the listen address. PORT may come with or without a leading colon.
func (c Config) Addr() string {
	return "0.0.0.0:" + strings.TrimPrefix(c.Port, ":")
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}

// LoadConfig reads the configuration from environment variables
func LoadConfig() (Config, error) {
	cfg := Config{
		Env:      getenv("ENV", "development"),
		Port:     getenv("PORT", "8080"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		CatalogSource:      strings.ToLower(getenv("CATALOG_SOURCE", CatalogSourceFile)),
		CatalogPath:        getenv("CATALOG_PATH", "data/market_items.json"),
		CatalogTable:       getenv("CATALOG_TABLE", "market_items"),
		DriveCatalogFileID: getenv("DRIVE_CATALOG_FILE_ID", ""),
		GoogleCredentials:  getenv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		DB: db.Config{
			URL:      getenv("DATABASE_URL", ""),
			Host:     getenv("DB_HOST", ""),
			Port:     getenv("DB_PORT", ""),
			User:     getenv("DB_USER", ""),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getenv("DB_NAME", ""),
			SSLMode:  getenv("DB_SSLMODE", ""),
		},

		ChromePath: getenv("CHROME_PATH", ""),
		Export: service.ExportConfig{
			Title:          getenv("EXPORT_TITLE", ""),
			FilePrefix:     getenv("EXPORT_PREFIX", "Restocking_List"),
			Lang:           strings.ToLower(getenv("EXPORT_LANG", "en")),
			Locale:         getenv("EXPORT_LOCALE", utils.DefaultLocale),
			CurrencySuffix: getenv("CURRENCY_SUFFIX", utils.DefaultCurrencySuffix),
		},
	}

	var err error
	if cfg.RenderTimeout, err = getDuration("RENDER_TIMEOUT", 30*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.SessionTTL, err = getDuration("SESSION_TTL", 12*time.Hour); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the selected catalog source has what it needs
func (c Config) Validate() error {
	switch c.CatalogSource {
	case CatalogSourceFile:
		if c.CatalogPath == "" {
			return fmt.Errorf("CATALOG_PATH is required for the file catalog source")
		}
	case CatalogSourcePostgres:
		if _, err := c.DB.ConnString(); err != nil {
			return err
		}
	case CatalogSourceDrive:
		if c.DriveCatalogFileID == "" {
			return fmt.Errorf("DRIVE_CATALOG_FILE_ID is required for the drive catalog source")
		}
		if c.GoogleCredentials == "" {
			return fmt.Errorf("GOOGLE_APPLICATION_CREDENTIALS environment variable is not set")
		}
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q (valid: file, postgres, drive)", c.CatalogSource)
	}
	return nil
}
