package repository

import (
	"context"
	"fmt"
	"os"

	"restock/logger"
	"restock/models"
)

// FileCatalogSource loads the catalog from a JSON or YAML file on disk
type FileCatalogSource struct {
	path string
}

// NewFileCatalogSource creates a new FileCatalogSource
func NewFileCatalogSource(path string) *FileCatalogSource {
	return &FileCatalogSource{path: path}
}

// Ensure FileCatalogSource implements CatalogSourceInterface
var _ CatalogSourceInterface = (*FileCatalogSource)(nil)

// LoadCatalog reads and decodes the catalog file
func (s *FileCatalogSource) LoadCatalog(ctx context.Context) ([]models.CatalogItem, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	items, err := DecodeCatalog(s.path, data)
	if err != nil {
		return nil, err
	}

	logger.L().Infof("LoadCatalog: loaded %d items from %s", len(items), s.path)
	return items, nil
}
