package actions

import (
	"time"

	"github.com/greenschool/canteen-server/internal/storage/ledger"
)

// displayTimeFormat matches the locale-style strings already in stored data,
// e.g. "3/1/2025, 9:00:05 AM".
const displayTimeFormat = "1/2/2006, 3:04:05 PM"

// newTransaction stamps a transaction with both the display string and the
// machine timestamp used for ordering.
func newTransaction(trxType ledger.TransactionType, detail string, amount int64) ledger.Transaction {
	now := time.Now()
	return ledger.Transaction{
		Date:       now.Format(displayTimeFormat),
		RecordedAt: now,
		Type:       trxType,
		Detail:     detail,
		Amount:     amount,
	}
}
