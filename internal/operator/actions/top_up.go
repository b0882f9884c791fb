package actions

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/greenschool/canteen-server/internal/events"
	"github.com/greenschool/canteen-server/internal/service"
	"github.com/greenschool/canteen-server/internal/storage/ledger"
)

// topUpDetail is the fixed detail text for admin top-ups.
const topUpDetail = "Balance added by admin"

// TopUp credits a student's balance and appends a Top Up transaction. There
// is no upper bound on the resulting balance.
type TopUp struct {
	NIS    string
	Amount int64

	// NewBalance is set after a successful Perform.
	NewBalance int64

	emitted []events.Event
}

func (a *TopUp) Perform(ctx context.Context, store *ledger.Store) error {
	if a.Amount <= 0 {
		return fmt.Errorf("amount %d: %w", a.Amount, service.ErrInvalidInput)
	}

	registry, err := store.Students(ctx)
	if err != nil {
		return err
	}

	student, ok := registry[a.NIS]
	if !ok {
		log.WithField("nis", a.NIS).Error("TopUp.unknown student reached the ledger")
		return fmt.Errorf("nis %q: %w", a.NIS, service.ErrStudentNotFound)
	}

	student.Balance += a.Amount
	student.Transactions = append(student.Transactions,
		newTransaction(ledger.TransactionTopUp, topUpDetail, a.Amount))

	if err := store.SaveStudents(ctx, registry); err != nil {
		return err
	}

	a.NewBalance = student.Balance
	a.emitted = append(a.emitted, events.NewForStudent(events.KindLedgerUpdated, a.NIS))
	return nil
}

func (a *TopUp) Events() []events.Event {
	return a.emitted
}
