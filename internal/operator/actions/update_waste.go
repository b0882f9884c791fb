package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/greenschool/canteen-server/internal/events"
	"github.com/greenschool/canteen-server/internal/storage/ledger"
)

// UpdateWaste overwrites the waste totals singleton. Values arrive already
// coerced to non-negative numbers (service.CoerceKilograms), so this action
// never rejects.
type UpdateWaste struct {
	Organic   decimal.Decimal
	Anorganic decimal.Decimal

	emitted []events.Event
}

func (a *UpdateWaste) Perform(ctx context.Context, store *ledger.Store) error {
	totals := ledger.WasteTotals{Organic: a.Organic, Anorganic: a.Anorganic}
	if err := store.SaveWasteTotals(ctx, totals); err != nil {
		return err
	}

	a.emitted = append(a.emitted, events.New(events.KindWasteUpdated))
	return nil
}

func (a *UpdateWaste) Events() []events.Event {
	return a.emitted
}
