package admin

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/greenschool/canteen-server/internal/operator/actions"
	"github.com/greenschool/canteen-server/internal/service"
)

// UpdateWasteBody is the request body for overwriting the waste totals.
// Values arrive as raw user input; anything non-numeric or negative is
// coerced to zero rather than rejected.
type UpdateWasteBody struct {
	Organic   string `json:"organic" doc:"Organic waste in kilograms"`
	Anorganic string `json:"anorganic" doc:"Inorganic waste in kilograms"`
}

// UpdateWasteInput is the Huma input for updating waste totals.
type UpdateWasteInput struct {
	Body UpdateWasteBody
}

// UpdateWasteResponseBody is the response body after a waste update.
type UpdateWasteResponseBody struct {
	Message   string `json:"message" doc:"Confirmation message"`
	Organic   string `json:"organic" doc:"Stored organic kilograms"`
	Anorganic string `json:"anorganic" doc:"Stored inorganic kilograms"`
}

// UpdateWasteOutput is the Huma output for updating waste totals.
type UpdateWasteOutput struct {
	Body UpdateWasteResponseBody
}

// UpdateWasteHandler handles PUT /v1/waste.
type UpdateWasteHandler struct {
	Dispatcher actionDispatcher
}

// NewUpdateWasteHandler creates a new UpdateWasteHandler.
func NewUpdateWasteHandler(dispatcher actionDispatcher) *UpdateWasteHandler {
	return &UpdateWasteHandler{Dispatcher: dispatcher}
}

// Register registers the update waste endpoint with the Huma API.
func (h *UpdateWasteHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-waste",
		Method:      http.MethodPut,
		Path:        "/v1/waste",
		Summary:     "Update waste totals",
		Description: "Overwrites the school-wide waste totals and notifies every open view.",
		Tags:        []string{"Admin"},
	}, h.handle)
}

func (h *UpdateWasteHandler) handle(ctx context.Context, input *UpdateWasteInput) (*UpdateWasteOutput, error) {
	action := &actions.UpdateWaste{
		Organic:   service.CoerceKilograms(input.Body.Organic),
		Anorganic: service.CoerceKilograms(input.Body.Anorganic),
	}
	if err := h.Dispatcher.Process(ctx, action); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update waste totals", err)
	}

	return &UpdateWasteOutput{Body: UpdateWasteResponseBody{
		Message:   "Waste data updated!",
		Organic:   action.Organic.String(),
		Anorganic: action.Anorganic.String(),
	}}, nil
}
