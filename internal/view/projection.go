// Package view holds the read-only projections from ledger state to
// display-ready values. Nothing here mutates state, so callers may invoke
// these at arbitrary rates.
package view

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/greenschool/canteen-server/internal/service"
)

// FormatCurrency renders an integer amount with comma thousands-grouping,
// e.g. 85000 -> "85,000" and -15000 -> "-15,000".
func FormatCurrency(amount int64) string {
	digits := strconv.FormatInt(amount, 10)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign = "-"
		digits = digits[1:]
	}

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return sign + strings.Join(groups, ",")
}

// FormatRupiah prefixes a catalog price with the currency marker used on the
// dashboard, e.g. "Rp 15,000".
func FormatRupiah(price int64) string {
	return "Rp " + FormatCurrency(price)
}

// FormatKilograms renders a kilogram value with two decimal places and unit,
// e.g. "125.50 kg".
func FormatKilograms(kg decimal.Decimal) string {
	return kg.StringFixed(2) + " kg"
}

// ProgressPercent maps a kilogram value onto a 0-100 progress bar as a share
// of the configured capacity, clamped at both ends. Each waste category is
// computed independently.
func ProgressPercent(kg decimal.Decimal, capacityKg int) float64 {
	if capacityKg <= 0 || kg.IsNegative() {
		return 0
	}

	percent := kg.Div(decimal.NewFromInt(int64(capacityKg))).Mul(decimal.NewFromInt(100))
	if percent.GreaterThan(decimal.NewFromInt(100)) {
		return 100
	}
	return percent.InexactFloat64()
}

// TransactionRow is one display row of a transaction table.
type TransactionRow struct {
	Date   string `json:"date" doc:"Display timestamp of the transaction"`
	Type   string `json:"type" doc:"Purchase or Top Up"`
	Detail string `json:"detail" doc:"Free-text detail"`
	Amount string `json:"amount" doc:"Signed amount with thousands-grouping"`
}

// AggregateTransactionRow is one display row of the admin cross-student feed.
type AggregateTransactionRow struct {
	NIS  string `json:"nis" doc:"Student NIS"`
	Name string `json:"name" doc:"Student display name"`
	TransactionRow
}

// TransactionRows builds student-feed rows from ledger transactions.
func TransactionRows(transactions []service.Transaction) []TransactionRow {
	rows := make([]TransactionRow, len(transactions))
	for i, trx := range transactions {
		rows[i] = TransactionRow{
			Date:   trx.Date,
			Type:   string(trx.Type),
			Detail: trx.Detail,
			Amount: FormatCurrency(trx.Amount),
		}
	}
	return rows
}

// AggregateTransactionRows builds admin-feed rows, preserving the order of
// the input feed.
func AggregateTransactionRows(feed []service.AggregateTransaction) []AggregateTransactionRow {
	rows := make([]AggregateTransactionRow, len(feed))
	for i, trx := range feed {
		rows[i] = AggregateTransactionRow{
			NIS:  trx.NIS,
			Name: trx.Name,
			TransactionRow: TransactionRow{
				Date:   trx.Date,
				Type:   string(trx.Type),
				Detail: trx.Detail,
				Amount: FormatCurrency(trx.Amount),
			},
		}
	}
	return rows
}
