package admin

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/mock"

	"github.com/greenschool/canteen-server/internal/operator/actions"
	"github.com/greenschool/canteen-server/internal/service"
)

// mockLedgerReader is a mock for studentLister and transactionAggregator.
type mockLedgerReader struct {
	mock.Mock
}

func (m *mockLedgerReader) ListStudents(ctx context.Context) ([]service.Student, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Student), args.Error(1)
}

func (m *mockLedgerReader) AllTransactions(ctx context.Context) ([]service.AggregateTransaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.AggregateTransaction), args.Error(1)
}

// mockDispatcher is a mock for actionDispatcher.
type mockDispatcher struct {
	mock.Mock
}

func (m *mockDispatcher) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func newTestAPI(t *testing.T) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	return api
}
