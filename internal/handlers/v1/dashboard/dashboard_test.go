package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/greenschool/canteen-server/internal/service"
)

// mockReader is a mock for wasteReader and priceReader.
type mockReader struct {
	mock.Mock
}

func (m *mockReader) Totals(ctx context.Context) (service.WasteTotals, error) {
	args := m.Called(ctx)
	return args.Get(0).(service.WasteTotals), args.Error(1)
}

func (m *mockReader) Prices(ctx context.Context) ([]service.PriceEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.PriceEntry), args.Error(1)
}

func TestHTTP_GetWaste_Success(t *testing.T) {
	mockSvc := new(mockReader)
	mockSvc.On("Totals", mock.Anything).Return(service.WasteTotals{
		Organic:   decimal.RequireFromString("125.5"),
		Anorganic: decimal.RequireFromString("78.3"),
	}, nil)

	_, api := humatest.New(t)
	NewGetWasteHandler(mockSvc, 200).Register(api)
	resp := api.Get("/v1/waste")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body WasteSummaryBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "125.50 kg", body.Organic)
	assert.Equal(t, "78.30 kg", body.Anorganic)
	assert.Equal(t, "203.80 kg", body.Combined)
	assert.InDelta(t, 62.75, body.OrganicPercent, 0.001)
	assert.InDelta(t, 39.15, body.AnorganicPercent, 0.001)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetWaste_OverCapacityClampsAt100(t *testing.T) {
	mockSvc := new(mockReader)
	mockSvc.On("Totals", mock.Anything).Return(service.WasteTotals{
		Organic:   decimal.RequireFromString("450"),
		Anorganic: decimal.Zero,
	}, nil)

	_, api := humatest.New(t)
	NewGetWasteHandler(mockSvc, 100).Register(api)
	resp := api.Get("/v1/waste")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body WasteSummaryBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(100), body.OrganicPercent)
	assert.Equal(t, float64(0), body.AnorganicPercent)
}

func TestHTTP_ListPrices_Success(t *testing.T) {
	mockSvc := new(mockReader)
	mockSvc.On("Prices", mock.Anything).Return([]service.PriceEntry{
		{Item: "Nasi Goreng", Price: 15000},
		{Item: "Air Mineral", Price: 4000},
	}, nil)

	_, api := humatest.New(t)
	NewListPricesHandler(mockSvc).Register(api)
	resp := api.Get("/v1/prices")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListPricesResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Prices, 2)
	assert.Equal(t, "Rp 15,000", body.Prices[0].PriceDisplay)
	assert.Equal(t, "Air Mineral", body.Prices[1].Item)
	mockSvc.AssertExpectations(t)
}
