package dashboard

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/greenschool/canteen-server/internal/view"
)

// WasteSummaryBody is the response body for the waste dashboard card.
type WasteSummaryBody struct {
	Organic          string  `json:"organic" doc:"Organic waste, e.g. \"125.50 kg\""`
	Anorganic        string  `json:"anorganic" doc:"Inorganic waste"`
	Combined         string  `json:"combined" doc:"Sum of both categories"`
	OrganicPercent   float64 `json:"organicPercent" doc:"Progress bar share of capacity, 0-100"`
	AnorganicPercent float64 `json:"anorganicPercent" doc:"Progress bar share of capacity, 0-100"`
}

// GetWasteOutput is the Huma output for the waste summary.
type GetWasteOutput struct {
	Body WasteSummaryBody
}

// GetWasteHandler handles GET /v1/waste.
type GetWasteHandler struct {
	Waste wasteReader
	// CapacityKg is the amount of waste that fills a progress bar.
	CapacityKg int
}

// NewGetWasteHandler creates a new GetWasteHandler.
func NewGetWasteHandler(waste wasteReader, capacityKg int) *GetWasteHandler {
	return &GetWasteHandler{Waste: waste, CapacityKg: capacityKg}
}

// Register registers the waste summary endpoint with the Huma API.
func (h *GetWasteHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-waste",
		Method:      http.MethodGet,
		Path:        "/v1/waste",
		Summary:     "Get waste totals",
		Description: "Returns the school-wide waste totals with progress bar percentages.",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

func (h *GetWasteHandler) handle(ctx context.Context, _ *struct{}) (*GetWasteOutput, error) {
	totals, err := h.Waste.Totals(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to read waste totals", err)
	}

	return &GetWasteOutput{Body: WasteSummaryBody{
		Organic:          view.FormatKilograms(totals.Organic),
		Anorganic:        view.FormatKilograms(totals.Anorganic),
		Combined:         view.FormatKilograms(totals.Organic.Add(totals.Anorganic)),
		OrganicPercent:   view.ProgressPercent(totals.Organic, h.CapacityKg),
		AnorganicPercent: view.ProgressPercent(totals.Anorganic, h.CapacityKg),
	}}, nil
}
