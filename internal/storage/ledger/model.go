package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Storage keys. Each is an independent top-level JSON blob; there is no
// referential integrity across them beyond convention.
const (
	KeyStudents      = "students"
	KeyWasteTotals   = "totalWaste"
	KeyCanteenPrices = "canteenPrices"
	KeyPurchases     = "purchases"
	KeyTheme         = "theme"
)

func init() {
	// Stored blobs keep plain JSON numbers for the kilogram fields.
	decimal.MarshalJSONWithoutQuotes = true
}

// TransactionType enumerates the two kinds of ledger transactions.
type TransactionType string

const (
	TransactionPurchase TransactionType = "Purchase"
	TransactionTopUp    TransactionType = "Top Up"
)

// Transaction is immutable once created. Date is the display string the
// dashboard renders; RecordedAt is the machine timestamp used for ordering so
// the display string never has to be parsed back.
type Transaction struct {
	Date       string          `json:"date"`
	RecordedAt time.Time       `json:"recordedAt,omitempty"`
	Type       TransactionType `json:"type"`
	Detail     string          `json:"detail"`
	Amount     int64           `json:"amount"`
}

// WasteTotals is a singleton record of collected waste in kilograms.
// The stored field name for inorganic waste is "anorganic", kept for
// compatibility with existing data.
type WasteTotals struct {
	Organic   decimal.Decimal `json:"organic"`
	Anorganic decimal.Decimal `json:"anorganic"`
}

// Student is a registry entry keyed by NIS. Transactions are kept in
// insertion order, which is their chronological order of recording.
type Student struct {
	Name         string        `json:"name"`
	Balance      int64         `json:"balance"`
	TotalWaste   WasteTotals   `json:"totalWaste"`
	Transactions []Transaction `json:"transactions"`
}

// Registry maps NIS to Student.
type Registry = map[string]*Student

// PriceEntry is one row of the canteen price catalog.
type PriceEntry struct {
	Item  string `json:"item"`
	Price int64  `json:"price"`
}
