package repository

import (
	"context"

	"restock/models"
)

// CatalogSourceInterface defines the contract for loading the shipped catalog
type CatalogSourceInterface interface {
	// LoadCatalog returns the catalog records in their source order
	LoadCatalog(ctx context.Context) ([]models.CatalogItem, error)
}

// FileDownloaderInterface fetches a named file from remote storage
type FileDownloaderInterface interface {
	DownloadFile(ctx context.Context, fileID string) (name string, data []byte, err error)
}
