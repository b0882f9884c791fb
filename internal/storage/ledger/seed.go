package ledger

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// defaultWasteTotals and friends are the seed data for a fresh install.
func defaultWasteTotals() WasteTotals {
	return WasteTotals{
		Organic:   decimal.RequireFromString("125.5"),
		Anorganic: decimal.RequireFromString("78.3"),
	}
}

func defaultPrices() []PriceEntry {
	return []PriceEntry{
		{Item: "Nasi Goreng", Price: 15000},
		{Item: "Mie Ayam", Price: 12000},
		{Item: "Teh Botol", Price: 5000},
		{Item: "Air Mineral", Price: 4000},
	}
}

func defaultStudents() Registry {
	return Registry{
		"12345": {
			Name:    "Alya Putri",
			Balance: 85000,
			TotalWaste: WasteTotals{
				Organic:   decimal.RequireFromString("2.5"),
				Anorganic: decimal.RequireFromString("0.2"),
			},
			Transactions: []Transaction{},
		},
		"67890": {
			Name:    "Bima Pratama",
			Balance: 45000,
			TotalWaste: WasteTotals{
				Organic:   decimal.RequireFromString("1.0"),
				Anorganic: decimal.RequireFromString("0.1"),
			},
			Transactions: []Transaction{},
		},
	}
}

// SeedDefaults writes the default value for every top-level key that is
// currently absent. Existing data is never overwritten, so calling it again
// is a no-op.
func (s *Store) SeedDefaults(ctx context.Context) error {
	seeds := []struct {
		key   string
		value interface{}
	}{
		{KeyWasteTotals, defaultWasteTotals()},
		{KeyCanteenPrices, defaultPrices()},
		{KeyStudents, defaultStudents()},
		{KeyPurchases, []json.RawMessage{}},
		{KeyTheme, "light"},
	}

	for _, seed := range seeds {
		raw, err := json.Marshal(seed.value)
		if err != nil {
			return fmt.Errorf("encoding seed %s: %w", seed.key, err)
		}
		if _, err := s.kv.SetIfAbsent(ctx, seed.key, raw); err != nil {
			return fmt.Errorf("seeding %s: %w", seed.key, err)
		}
	}

	return nil
}
