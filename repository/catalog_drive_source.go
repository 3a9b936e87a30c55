package repository

import (
	"context"
	"fmt"

	"restock/logger"
	"restock/models"
)

// DriveCatalogSource loads the catalog from a JSON or YAML file kept in Google Drive
type DriveCatalogSource struct {
	downloader FileDownloaderInterface
	fileID     string
}

// NewDriveCatalogSource creates a new DriveCatalogSource
func NewDriveCatalogSource(downloader FileDownloaderInterface, fileID string) *DriveCatalogSource {
	return &DriveCatalogSource{downloader: downloader, fileID: fileID}
}

// Ensure DriveCatalogSource implements CatalogSourceInterface
var _ CatalogSourceInterface = (*DriveCatalogSource)(nil)

// LoadCatalog downloads and decodes the catalog file
func (s *DriveCatalogSource) LoadCatalog(ctx context.Context) ([]models.CatalogItem, error) {
	name, data, err := s.downloader.DownloadFile(ctx, s.fileID)
	if err != nil {
		return nil, fmt.Errorf("failed to download catalog %s: %w", s.fileID, err)
	}

	items, err := DecodeCatalog(name, data)
	if err != nil {
		return nil, err
	}

	logger.L().Infof("LoadCatalog: loaded %d items from drive file %s (%s)", len(items), s.fileID, name)
	return items, nil
}
