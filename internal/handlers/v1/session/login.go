package session

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/greenschool/canteen-server/internal/service"
)

// LoginBody is the request body for the login box: a single credential that
// is either the admin password or a student NIS.
type LoginBody struct {
	Credential string `json:"credential" required:"true" doc:"Admin password or student NIS"`
}

// LoginInput is the Huma input for logging in.
type LoginInput struct {
	Body LoginBody
}

// LoginResponseBody is the response body for a successful login.
type LoginResponseBody struct {
	Role string `json:"role" enum:"admin,student" doc:"Resolved role for the credential"`
	NIS  string `json:"nis,omitempty" doc:"Student NIS, present for the student role"`
	Name string `json:"name,omitempty" doc:"Student display name, present for the student role"`
}

// LoginOutput is the Huma output for logging in.
type LoginOutput struct {
	Body LoginResponseBody
}

// studentLookup is the interface for resolving a NIS.
type studentLookup interface {
	LookupStudent(ctx context.Context, nis string) (*service.Student, error)
}

// LoginHandler handles POST /v1/login.
type LoginHandler struct {
	AdminPassword string
	Ledger        studentLookup
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(adminPassword string, ledger studentLookup) *LoginHandler {
	return &LoginHandler{AdminPassword: adminPassword, Ledger: ledger}
}

// Register registers the login endpoint with the Huma API.
func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/v1/login",
		Summary:     "Log in",
		Description: "Resolves a credential to the admin or a student. The admin password is a plaintext shared secret; there is no session model.",
		Tags:        []string{"Session"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	credential := input.Body.Credential
	if credential == "" {
		return nil, huma.NewError(http.StatusBadRequest, "enter NIS or admin password")
	}

	if subtle.ConstantTimeCompare([]byte(credential), []byte(h.AdminPassword)) == 1 {
		return &LoginOutput{Body: LoginResponseBody{Role: "admin"}}, nil
	}

	student, err := h.Ledger.LookupStudent(ctx, credential)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "NIS not found; if you're admin, enter the admin password")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to look up student", err)
	}

	return &LoginOutput{Body: LoginResponseBody{
		Role: "student",
		NIS:  student.NIS,
		Name: student.Name,
	}}, nil
}
