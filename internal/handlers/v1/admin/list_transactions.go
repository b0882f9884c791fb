package admin

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/greenschool/canteen-server/internal/logging"
	"github.com/greenschool/canteen-server/internal/view"
)

// ListTransactionsResponseBody is the response body for the admin feed.
type ListTransactionsResponseBody struct {
	Transactions []view.AggregateTransactionRow `json:"transactions" doc:"All transactions across students, newest first"`
}

// ListTransactionsOutput is the Huma output for the admin feed.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// ListTransactionsHandler handles GET /v1/transactions.
type ListTransactionsHandler struct {
	Ledger transactionAggregator
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(ledger transactionAggregator) *ListTransactionsHandler {
	return &ListTransactionsHandler{Ledger: ledger}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List transactions",
		Description: "Returns every transaction across all students, sorted newest first.",
		Tags:        []string{"Admin"},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, _ *struct{}) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("aggregateTransactionsMs")
	}
	feed, err := h.Ledger.AllTransactions(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list transactions", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(feed))
	}

	return &ListTransactionsOutput{Body: ListTransactionsResponseBody{
		Transactions: view.AggregateTransactionRows(feed),
	}}, nil
}
