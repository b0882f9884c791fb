// Package eventstream exposes the cross-view sync signal over server-sent
// events. A view keeps one stream open and re-reads whatever a received
// event says has changed.
package eventstream

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/sse"

	"github.com/greenschool/canteen-server/internal/events"
)

// Handler handles GET /v1/events.
type Handler struct {
	Bus *events.Bus
}

// NewHandler creates a new eventstream Handler.
func NewHandler(bus *events.Bus) *Handler {
	return &Handler{Bus: bus}
}

// Register registers the SSE endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	sse.Register(api, huma.Operation{
		OperationID: "stream-events",
		Method:      http.MethodGet,
		Path:        "/v1/events",
		Summary:     "Stream change events",
		Description: "Streams a sync event whenever shared state changes so open views can refresh.",
		Tags:        []string{"Dashboard"},
	}, map[string]any{
		"sync": events.Event{},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, _ *struct{}, send sse.Sender) {
	sub := h.Bus.Subscribe()
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-sub.C:
			if !ok {
				return
			}
			if err := send.Data(event); err != nil {
				// Client went away; the subscription closes on return.
				return
			}
		}
	}
}
