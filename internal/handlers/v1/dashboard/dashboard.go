// Package dashboard holds the read-only endpoints behind the index page:
// waste totals with progress bars, and the canteen price catalog.
package dashboard

import (
	"context"

	"github.com/greenschool/canteen-server/internal/service"
)

// wasteReader is the interface for reading the waste totals singleton.
type wasteReader interface {
	Totals(ctx context.Context) (service.WasteTotals, error)
}

// priceReader is the interface for reading the price catalog.
type priceReader interface {
	Prices(ctx context.Context) ([]service.PriceEntry, error)
}
