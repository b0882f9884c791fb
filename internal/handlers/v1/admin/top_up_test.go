package admin

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/greenschool/canteen-server/internal/operator/actions"
	"github.com/greenschool/canteen-server/internal/service"
)

// -- parseTopUpInput unit tests --

func TestParseTopUpInput_Valid(t *testing.T) {
	amount, err := parseTopUpInput(&TopUpInput{NIS: "12345", Body: TopUpBody{Amount: "20000"}})
	assert.NoError(t, err)
	assert.Equal(t, int64(20000), amount)
}

func TestParseTopUpInput_Malformed(t *testing.T) {
	for _, raw := range []string{"", "abc", "20.5", "0", "-500"} {
		_, err := parseTopUpInput(&TopUpInput{NIS: "12345", Body: TopUpBody{Amount: raw}})
		assert.Error(t, err, "amount %q", raw)
	}
}

// -- HTTP integration tests --

func TestHTTP_TopUp_Success(t *testing.T) {
	mockD := new(mockDispatcher)
	mockD.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		topUp, ok := a.(*actions.TopUp)
		return ok && topUp.NIS == "12345" && topUp.Amount == 20000
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.TopUp).NewBalance = 105000
	}).Return(nil)

	api := newTestAPI(t)
	NewTopUpHandler(mockD).Register(api)
	resp := api.Post("/v1/students/12345/topups", TopUpBody{Amount: "20000"})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body TopUpResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(105000), body.Balance)
	assert.Equal(t, "105,000", body.BalanceDisplay)
	mockD.AssertExpectations(t)
}

func TestHTTP_TopUp_UnknownNIS(t *testing.T) {
	mockD := new(mockDispatcher)
	mockD.On("Process", mock.Anything, mock.Anything).Return(service.ErrStudentNotFound)

	api := newTestAPI(t)
	NewTopUpHandler(mockD).Register(api)
	resp := api.Post("/v1/students/00000/topups", TopUpBody{Amount: "20000"})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_TopUp_MalformedAmountNeverDispatches(t *testing.T) {
	mockD := new(mockDispatcher)

	api := newTestAPI(t)
	NewTopUpHandler(mockD).Register(api)
	resp := api.Post("/v1/students/12345/topups", TopUpBody{Amount: "lots"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockD.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}
