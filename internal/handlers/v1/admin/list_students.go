package admin

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/greenschool/canteen-server/internal/logging"
	"github.com/greenschool/canteen-server/internal/view"
)

// ListStudentsResponseBody is the response body for the admin student table.
type ListStudentsResponseBody struct {
	Students []StudentRow `json:"students" doc:"All students, sorted by NIS"`
}

// ListStudentsOutput is the Huma output for listing students.
type ListStudentsOutput struct {
	Body ListStudentsResponseBody
}

// ListStudentsHandler handles GET /v1/students.
type ListStudentsHandler struct {
	Ledger studentLister
}

// NewListStudentsHandler creates a new ListStudentsHandler.
func NewListStudentsHandler(ledger studentLister) *ListStudentsHandler {
	return &ListStudentsHandler{Ledger: ledger}
}

// Register registers the list students endpoint with the Huma API.
func (h *ListStudentsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-students",
		Method:      http.MethodGet,
		Path:        "/v1/students",
		Summary:     "List students",
		Description: "Returns every student in the registry for the admin table.",
		Tags:        []string{"Admin"},
	}, h.handle)
}

func (h *ListStudentsHandler) handle(ctx context.Context, _ *struct{}) (*ListStudentsOutput, error) {
	logData := logging.GetLogData(ctx)

	students, err := h.Ledger.ListStudents(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list students", err)
	}

	if logData != nil {
		logData.AddData("studentCount", len(students))
	}

	rows := make([]StudentRow, len(students))
	for i, student := range students {
		rows[i] = StudentRow{
			NIS:            student.NIS,
			Name:           student.Name,
			Balance:        student.Balance,
			BalanceDisplay: view.FormatCurrency(student.Balance),
		}
	}

	return &ListStudentsOutput{Body: ListStudentsResponseBody{Students: rows}}, nil
}
