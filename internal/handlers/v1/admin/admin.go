// Package admin holds the admin dashboard endpoints: the student table with
// top-ups, the cross-student transaction feed, and the waste totals update.
package admin

import (
	"context"

	"github.com/greenschool/canteen-server/internal/operator/actions"
	"github.com/greenschool/canteen-server/internal/service"
)

// StudentRow is one row of the admin student table.
type StudentRow struct {
	NIS            string `json:"nis" doc:"Student NIS"`
	Name           string `json:"name" doc:"Display name"`
	Balance        int64  `json:"balance" doc:"Balance in whole currency units"`
	BalanceDisplay string `json:"balanceDisplay" doc:"Balance with thousands-grouping"`
}

// studentLister is the interface for reading the full registry.
type studentLister interface {
	ListStudents(ctx context.Context) ([]service.Student, error)
}

// transactionAggregator is the interface for the cross-student feed.
type transactionAggregator interface {
	AllTransactions(ctx context.Context) ([]service.AggregateTransaction, error)
}

// actionDispatcher is the interface for dispatching mutations to the
// operator queue.
type actionDispatcher interface {
	Process(ctx context.Context, action actions.IAction) error
}
