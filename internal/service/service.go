package service

import (
	"github.com/greenschool/canteen-server/internal/storage"
)

// Service holds all read-side business logic services. Mutations go through
// the operator instead.
type Service struct {
	Ledger  *LedgerService
	Waste   *WasteService
	Catalog *CatalogService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		Ledger:  NewLedgerService(store),
		Waste:   NewWasteService(store),
		Catalog: NewCatalogService(store),
	}
}
