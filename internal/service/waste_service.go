package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/greenschool/canteen-server/internal/storage"
)

// WasteService answers read queries over the waste totals singleton.
type WasteService struct {
	storage *storage.Storage
}

// NewWasteService creates a new WasteService.
func NewWasteService(store *storage.Storage) *WasteService {
	return &WasteService{storage: store}
}

// Totals returns the current waste totals in kilograms.
func (s *WasteService) Totals(ctx context.Context) (WasteTotals, error) {
	totals, err := s.storage.Ledger.WasteTotals(ctx)
	if err != nil {
		return WasteTotals{}, err
	}
	return WasteTotals{Organic: totals.Organic, Anorganic: totals.Anorganic}, nil
}

// CoerceKilograms turns raw user input into a kilogram value. Waste updates
// are deliberately permissive: anything that does not parse as a number, and
// any negative number, becomes zero rather than an error.
func CoerceKilograms(raw string) decimal.Decimal {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || value.IsNegative() {
		return decimal.Zero
	}
	return value
}
