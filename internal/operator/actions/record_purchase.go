package actions

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/greenschool/canteen-server/internal/events"
	"github.com/greenschool/canteen-server/internal/service"
	"github.com/greenschool/canteen-server/internal/storage/ledger"
)

// RecordPurchase debits a student's balance and appends a Purchase
// transaction. The whole registry is persisted in one write.
type RecordPurchase struct {
	NIS      string
	ItemName string
	Price    int64

	// NewBalance is set after a successful Perform.
	NewBalance int64

	emitted []events.Event
}

func (a *RecordPurchase) Perform(ctx context.Context, store *ledger.Store) error {
	if strings.TrimSpace(a.ItemName) == "" || a.Price <= 0 {
		return fmt.Errorf("item %q price %d: %w", a.ItemName, a.Price, service.ErrInvalidInput)
	}

	registry, err := store.Students(ctx)
	if err != nil {
		return err
	}

	student, ok := registry[a.NIS]
	if !ok {
		// The view layer should have validated the NIS before dispatching.
		log.WithField("nis", a.NIS).Error("RecordPurchase.unknown student reached the ledger")
		return fmt.Errorf("nis %q: %w", a.NIS, service.ErrStudentNotFound)
	}

	if student.Balance < a.Price {
		return fmt.Errorf("balance %d price %d: %w", student.Balance, a.Price, service.ErrInsufficientBalance)
	}

	student.Balance -= a.Price
	student.Transactions = append(student.Transactions,
		newTransaction(ledger.TransactionPurchase, a.ItemName, -a.Price))

	if err := store.SaveStudents(ctx, registry); err != nil {
		return err
	}

	a.NewBalance = student.Balance
	a.emitted = append(a.emitted, events.NewForStudent(events.KindLedgerUpdated, a.NIS))
	return nil
}

func (a *RecordPurchase) Events() []events.Event {
	return a.emitted
}
