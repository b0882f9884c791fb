package dashboard

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/greenschool/canteen-server/internal/view"
)

// PriceRow is one row of the canteen price list.
type PriceRow struct {
	Item         string `json:"item" doc:"Item name"`
	Price        int64  `json:"price" doc:"Price in whole currency units"`
	PriceDisplay string `json:"priceDisplay" doc:"Formatted price, e.g. \"Rp 15,000\""`
}

// ListPricesResponseBody is the response body for the price list.
type ListPricesResponseBody struct {
	Prices []PriceRow `json:"prices" doc:"Catalog in stored order"`
}

// ListPricesOutput is the Huma output for the price list.
type ListPricesOutput struct {
	Body ListPricesResponseBody
}

// ListPricesHandler handles GET /v1/prices.
type ListPricesHandler struct {
	Catalog priceReader
}

// NewListPricesHandler creates a new ListPricesHandler.
func NewListPricesHandler(catalog priceReader) *ListPricesHandler {
	return &ListPricesHandler{Catalog: catalog}
}

// Register registers the price list endpoint with the Huma API.
func (h *ListPricesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-prices",
		Method:      http.MethodGet,
		Path:        "/v1/prices",
		Summary:     "List canteen prices",
		Description: "Returns the canteen price catalog. The catalog is read-only.",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

func (h *ListPricesHandler) handle(ctx context.Context, _ *struct{}) (*ListPricesOutput, error) {
	prices, err := h.Catalog.Prices(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to read prices", err)
	}

	rows := make([]PriceRow, len(prices))
	for i, entry := range prices {
		rows[i] = PriceRow{
			Item:         entry.Item,
			Price:        entry.Price,
			PriceDisplay: view.FormatRupiah(entry.Price),
		}
	}

	return &ListPricesOutput{Body: ListPricesResponseBody{Prices: rows}}, nil
}
