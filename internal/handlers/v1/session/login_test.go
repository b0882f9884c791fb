package session

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/greenschool/canteen-server/internal/service"
)

// mockLedgerReader is a mock for studentLookup.
type mockLedgerReader struct {
	mock.Mock
}

func (m *mockLedgerReader) LookupStudent(ctx context.Context, nis string) (*service.Student, error) {
	args := m.Called(ctx, nis)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Student), args.Error(1)
}

func newLoginAPI(t *testing.T, svc studentLookup) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewLoginHandler("adminpass", svc).Register(api)
	return api
}

func TestHTTP_Login_AdminPassword(t *testing.T) {
	mockSvc := new(mockLedgerReader)

	resp := newLoginAPI(t, mockSvc).Post("/v1/login", LoginBody{Credential: "adminpass"})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body LoginResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "admin", body.Role)
	assert.Empty(t, body.NIS)
	// The admin password must never be treated as a NIS.
	mockSvc.AssertNotCalled(t, "LookupStudent", mock.Anything, mock.Anything)
}

func TestHTTP_Login_StudentNIS(t *testing.T) {
	mockSvc := new(mockLedgerReader)
	mockSvc.On("LookupStudent", mock.Anything, "12345").Return(&service.Student{
		NIS:  "12345",
		Name: "Alya Putri",
	}, nil)

	resp := newLoginAPI(t, mockSvc).Post("/v1/login", LoginBody{Credential: "12345"})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body LoginResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "student", body.Role)
	assert.Equal(t, "12345", body.NIS)
	assert.Equal(t, "Alya Putri", body.Name)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Login_UnknownCredential(t *testing.T) {
	mockSvc := new(mockLedgerReader)
	mockSvc.On("LookupStudent", mock.Anything, "wrong").Return(nil, service.ErrStudentNotFound)

	resp := newLoginAPI(t, mockSvc).Post("/v1/login", LoginBody{Credential: "wrong"})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
