package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/greenschool/canteen-server/internal/storage/ledger"
)

// Student is the service-layer view of one registry entry.
type Student struct {
	NIS          string
	Name         string
	Balance      int64
	TotalWaste   WasteTotals
	Transactions []Transaction
}

// Transaction mirrors one recorded ledger transaction.
type Transaction struct {
	Date       string
	RecordedAt time.Time
	Type       ledger.TransactionType
	Detail     string
	Amount     int64
}

// AggregateTransaction is a transaction copied by value into the
// cross-student admin feed, annotated with its owner.
type AggregateTransaction struct {
	NIS  string
	Name string
	Transaction
}

// WasteTotals holds collected waste in kilograms.
type WasteTotals struct {
	Organic   decimal.Decimal
	Anorganic decimal.Decimal
}

// PriceEntry is one row of the canteen price catalog.
type PriceEntry struct {
	Item  string
	Price int64
}

func studentFromStorage(nis string, row *ledger.Student) *Student {
	transactions := make([]Transaction, len(row.Transactions))
	for i, trx := range row.Transactions {
		transactions[i] = transactionFromStorage(trx)
	}
	return &Student{
		NIS:     nis,
		Name:    row.Name,
		Balance: row.Balance,
		TotalWaste: WasteTotals{
			Organic:   row.TotalWaste.Organic,
			Anorganic: row.TotalWaste.Anorganic,
		},
		Transactions: transactions,
	}
}

func transactionFromStorage(row ledger.Transaction) Transaction {
	return Transaction{
		Date:       row.Date,
		RecordedAt: row.RecordedAt,
		Type:       row.Type,
		Detail:     row.Detail,
		Amount:     row.Amount,
	}
}
