package service

import (
	"context"

	"github.com/greenschool/canteen-server/internal/storage"
)

// CatalogService answers read queries over the price catalog and UI theme.
// The catalog is read-only from the dashboard's perspective.
type CatalogService struct {
	storage *storage.Storage
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(store *storage.Storage) *CatalogService {
	return &CatalogService{storage: store}
}

// Prices returns the canteen price catalog.
func (s *CatalogService) Prices(ctx context.Context) ([]PriceEntry, error) {
	rows, err := s.storage.Ledger.Prices(ctx)
	if err != nil {
		return nil, err
	}

	prices := make([]PriceEntry, len(rows))
	for i, row := range rows {
		prices[i] = PriceEntry{Item: row.Item, Price: row.Price}
	}
	return prices, nil
}

// Theme returns the stored UI theme.
func (s *CatalogService) Theme(ctx context.Context) (string, error) {
	return s.storage.Ledger.Theme(ctx)
}
