package admin

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

// TopUpBody is the request body for topping up a student balance. The amount
// arrives as raw user input and is validated here, not trusted.
type TopUpBody struct {
	Amount string `json:"amount" required:"true" doc:"Amount as entered by the admin, positive integer"`
}

// TopUpInput is the Huma input for topping up.
type TopUpInput struct {
	NIS  string `path:"nis" doc:"Student NIS"`
	Body TopUpBody
}

// TopUpResponseBody is the response body after a top-up.
type TopUpResponseBody struct {
	Balance        int64  `json:"balance" doc:"Balance after the top-up"`
	BalanceDisplay string `json:"balanceDisplay" doc:"Balance with thousands-grouping"`
}

// TopUpOutput is the Huma output for topping up.
type TopUpOutput struct {
	Body TopUpResponseBody
}

// TopUpHandler handles POST /v1/students/{nis}/topups.
type TopUpHandler struct {
	Dispatcher actionDispatcher
}

// NewTopUpHandler creates a new TopUpHandler.
func NewTopUpHandler(dispatcher actionDispatcher) *TopUpHandler {
	return &TopUpHandler{Dispatcher: dispatcher}
}

// Register registers the top-up endpoint with the Huma API.
func (h *TopUpHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "top-up-student",
		Method:        http.MethodPost,
		Path:          "/v1/students/{nis}/topups",
		Summary:       "Top up student",
		Description:   "Credits the student's balance and appends a Top Up transaction.",
		Tags:          []string{"Admin"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseTopUpInput validates the raw user input.
func parseTopUpInput(input *TopUpInput) (int64, error) {
	amount, parseErr := strconv.ParseInt(input.Body.Amount, 10, 64)
	if parseErr != nil {
		return 0, huma.NewError(http.StatusBadRequest, "enter a valid amount", parseErr)
	}
	if amount <= 0 {
		return 0, huma.NewError(http.StatusBadRequest, "enter a valid amount")
	}
	return amount, nil
}

func (h *TopUpHandler) handle(ctx context.Context, input *TopUpInput) (*TopUpOutput, error) {
	amount, err := parseTopUpInput(input)
	if err != nil {
		return nil, err
	}

	action := &actions.TopUp{NIS: input.NIS, Amount: amount}
	if err := h.Dispatcher.Process(ctx, action); err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			return nil, huma.NewError(http.StatusNotFound, "unknown NIS")
		case errors.Is(err, service.ErrInvalidInput):
			return nil, huma.NewError(http.StatusBadRequest, "enter a valid amount")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to top up", err)
	}

	return &TopUpOutput{Body: TopUpResponseBody{
		Balance:        action.NewBalance,
		BalanceDisplay: view.FormatCurrency(action.NewBalance),
	}}, nil
}
