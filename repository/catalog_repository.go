package repository

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"restock/logger"
	"restock/models"
	"restock/utils"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// CatalogRepository loads the catalog from a PostgreSQL table with columns
// id, name, buy_price and sell_price. Rows are returned in id order.
type CatalogRepository struct {
	db    *sql.DB
	table string
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *sql.DB, table string) (*CatalogRepository, error) {
	if table == "" {
		table = "market_items"
	}
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("invalid catalog table name %q", table)
	}
	return &CatalogRepository{db: db, table: table}, nil
}

// Ensure CatalogRepository implements CatalogSourceInterface
var _ CatalogSourceInterface = (*CatalogRepository)(nil)

// LoadCatalog retrieves all catalog rows
func (r *CatalogRepository) LoadCatalog(ctx context.Context) ([]models.CatalogItem, error) {
	query := fmt.Sprintf(`
		SELECT name, buy_price::text, COALESCE(sell_price, 0)::text
		FROM %s
		ORDER BY id ASC
	`, r.table)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.L().Errorf("LoadCatalog: error querying %s: %v", r.table, err)
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}
	defer rows.Close()

	var items []models.CatalogItem
	seen := make(map[string]bool)
	for rows.Next() {
		var name, buy, sell string
		if err := rows.Scan(&name, &buy, &sell); err != nil {
			return nil, fmt.Errorf("failed to scan catalog row: %w", err)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate catalog name %q in %s", name, r.table)
		}
		seen[name] = true

		item := models.CatalogItem{Name: name}
		if item.BuyPrice, err = utils.ParseAmount(buy); err != nil {
			return nil, fmt.Errorf("buy_price of %q: %w", name, err)
		}
		if item.SellPrice, err = utils.ParseAmount(sell); err != nil {
			return nil, fmt.Errorf("sell_price of %q: %w", name, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate catalog: %w", err)
	}

	logger.L().Infof("LoadCatalog: loaded %d items from table %s", len(items), r.table)
	return items, nil
}
