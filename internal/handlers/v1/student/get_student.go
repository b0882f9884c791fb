package student

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/greenschool/canteen-server/internal/logging"
	"github.com/greenschool/canteen-server/internal/service"
)

// GetStudentInput is the Huma input for fetching a student dashboard.
type GetStudentInput struct {
	NIS string `path:"nis" doc:"Student NIS"`
}

// GetStudentOutput is the Huma output for fetching a student dashboard.
type GetStudentOutput struct {
	Body Student
}

// GetStudentHandler handles GET /v1/students/{nis}.
type GetStudentHandler struct {
	Ledger studentLooker
}

// NewGetStudentHandler creates a new GetStudentHandler.
func NewGetStudentHandler(ledger studentLooker) *GetStudentHandler {
	return &GetStudentHandler{Ledger: ledger}
}

// Register registers the get student endpoint with the Huma API.
func (h *GetStudentHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-student",
		Method:      http.MethodGet,
		Path:        "/v1/students/{nis}",
		Summary:     "Get student",
		Description: "Returns one student's balance, waste totals, and transaction history.",
		Tags:        []string{"Students"},
	}, h.handle)
}

func (h *GetStudentHandler) handle(ctx context.Context, input *GetStudentInput) (*GetStudentOutput, error) {
	logData := logging.GetLogData(ctx)

	student, err := h.Ledger.LookupStudent(ctx, input.NIS)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "unknown NIS")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to look up student", err)
	}

	if logData != nil {
		logData.AddData("nis", student.NIS)
		logData.AddData("transactionCount", len(student.Transactions))
	}

	return &GetStudentOutput{Body: toAPIStudent(student)}, nil
}
