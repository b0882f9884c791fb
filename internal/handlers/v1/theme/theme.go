// Package theme persists the UI theme so every open view renders the same
// one. UI-only state, outside the ledger proper.
package theme

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/greenschool/canteen-server/internal/operator/actions"
	"github.com/greenschool/canteen-server/internal/service"
)

// ThemeBody is the request and response body for the theme setting.
type ThemeBody struct {
	Theme string `json:"theme" enum:"dark,light" doc:"UI theme"`
}

// GetThemeOutput is the Huma output for reading the theme.
type GetThemeOutput struct {
	Body ThemeBody
}

// SetThemeInput is the Huma input for setting the theme.
type SetThemeInput struct {
	Body ThemeBody
}

// SetThemeOutput is the Huma output for setting the theme.
type SetThemeOutput struct {
	Body ThemeBody
}

// themeReader is the interface for reading the stored theme.
type themeReader interface {
	Theme(ctx context.Context) (string, error)
}

// actionDispatcher is the interface for dispatching mutations to the
// operator queue.
type actionDispatcher interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Handler handles GET and PUT /v1/theme.
type Handler struct {
	Catalog    themeReader
	Dispatcher actionDispatcher
}

// NewHandler creates a new theme Handler.
func NewHandler(catalog themeReader, dispatcher actionDispatcher) *Handler {
	return &Handler{Catalog: catalog, Dispatcher: dispatcher}
}

// Register registers both theme endpoints with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-theme",
		Method:      http.MethodGet,
		Path:        "/v1/theme",
		Summary:     "Get theme",
		Tags:        []string{"Dashboard"},
	}, h.handleGet)

	huma.Register(api, huma.Operation{
		OperationID: "set-theme",
		Method:      http.MethodPut,
		Path:        "/v1/theme",
		Summary:     "Set theme",
		Tags:        []string{"Dashboard"},
	}, h.handleSet)
}

func (h *Handler) handleGet(ctx context.Context, _ *struct{}) (*GetThemeOutput, error) {
	stored, err := h.Catalog.Theme(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to read theme", err)
	}
	return &GetThemeOutput{Body: ThemeBody{Theme: stored}}, nil
}

func (h *Handler) handleSet(ctx context.Context, input *SetThemeInput) (*SetThemeOutput, error) {
	action := &actions.SetTheme{Theme: input.Body.Theme}
	if err := h.Dispatcher.Process(ctx, action); err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			return nil, huma.NewError(http.StatusBadRequest, "theme must be dark or light")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to set theme", err)
	}
	return &SetThemeOutput{Body: ThemeBody{Theme: input.Body.Theme}}, nil
}
