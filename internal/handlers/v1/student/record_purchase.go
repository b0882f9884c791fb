package student

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"

	"github.com/greenschool/canteen-server/internal/operator/actions"
	"github.com/greenschool/canteen-server/internal/service"
	"github.com/greenschool/canteen-server/internal/view"
)

// RecordPurchaseBody is the request body for recording a purchase. Item and
// price arrive as raw user input and are validated here, not trusted.
type RecordPurchaseBody struct {
	Item  string `json:"item" required:"true" doc:"Purchased item name"`
	Price string `json:"price" required:"true" doc:"Price as entered by the user, positive integer"`
}

// RecordPurchaseInput is the Huma input for recording a purchase.
type RecordPurchaseInput struct {
	NIS  string `path:"nis" doc:"Student NIS"`
	Body RecordPurchaseBody
}

// RecordPurchaseResponseBody is the response body after a recorded purchase.
type RecordPurchaseResponseBody struct {
	Message        string `json:"message" doc:"Confirmation message"`
	Balance        int64  `json:"balance" doc:"Balance after the purchase"`
	BalanceDisplay string `json:"balanceDisplay" doc:"Balance with thousands-grouping"`
}

// RecordPurchaseOutput is the Huma output for recording a purchase.
type RecordPurchaseOutput struct {
	Body RecordPurchaseResponseBody
}

// RecordPurchaseHandler handles POST /v1/students/{nis}/purchases.
type RecordPurchaseHandler struct {
	Dispatcher actionDispatcher
}

// NewRecordPurchaseHandler creates a new RecordPurchaseHandler.
func NewRecordPurchaseHandler(dispatcher actionDispatcher) *RecordPurchaseHandler {
	return &RecordPurchaseHandler{Dispatcher: dispatcher}
}

// Register registers the record purchase endpoint with the Huma API.
func (h *RecordPurchaseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "record-purchase",
		Method:        http.MethodPost,
		Path:          "/v1/students/{nis}/purchases",
		Summary:       "Record purchase",
		Description:   "Debits the student's balance and appends a Purchase transaction. Fails without mutating anything when the input is invalid or the balance is too low.",
		Tags:          []string{"Students"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseRecordPurchaseInput validates the raw user input.
func parseRecordPurchaseInput(input *RecordPurchaseInput) (item string, price int64, err error) {
	price, parseErr := strconv.ParseInt(input.Body.Price, 10, 64)
	if parseErr != nil {
		return "", 0, huma.NewError(http.StatusBadRequest, "please enter a valid item and price", parseErr)
	}
	if input.Body.Item == "" || price <= 0 {
		return "", 0, huma.NewError(http.StatusBadRequest, "please enter a valid item and price")
	}
	return input.Body.Item, price, nil
}

func (h *RecordPurchaseHandler) handle(ctx context.Context, input *RecordPurchaseInput) (*RecordPurchaseOutput, error) {
	item, price, err := parseRecordPurchaseInput(input)
	if err != nil {
		return nil, err
	}

	action := &actions.RecordPurchase{NIS: input.NIS, ItemName: item, Price: price}
	if err := h.Dispatcher.Process(ctx, action); err != nil {
		switch {
		case errors.Is(err, service.ErrInsufficientBalance):
			return nil, huma.NewError(http.StatusUnprocessableEntity, "not enough balance")
		case errors.Is(err, service.ErrStudentNotFound):
			return nil, huma.NewError(http.StatusNotFound, "unknown NIS")
		case errors.Is(err, service.ErrInvalidInput):
			return nil, huma.NewError(http.StatusBadRequest, "please enter a valid item and price")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to record purchase", err)
	}

	return &RecordPurchaseOutput{Body: RecordPurchaseResponseBody{
		Message:        "Purchase recorded!",
		Balance:        action.NewBalance,
		BalanceDisplay: view.FormatCurrency(action.NewBalance),
	}}, nil
}
