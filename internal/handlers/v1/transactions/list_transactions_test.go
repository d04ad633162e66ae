package transactions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/card-dashboard/internal/service"
)

// mockTransactionService is a mock for transactionPager.
type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) GetPaginatedTransactions(ctx context.Context, companyID string, limit, offset int) (*service.PaginatedTransactions, error) {
	args := m.Called(ctx, companyID, limit, offset)
	result, _ := args.Get(0).(*service.PaginatedTransactions)
	return result, args.Error(1)
}

// newTestAPI registers the handler against a humatest API and returns it.
func newTestAPI(t *testing.T, svc transactionPager) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListTransactionsHandler(svc).Register(api)
	return api
}

func samplePage(n, total int, hasMore bool) *service.PaginatedTransactions {
	newest := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	rows := make([]service.Transaction, n)
	for i := range rows {
		rows[i] = service.Transaction{
			ID:          fmt.Sprintf("tx-%d", i+1),
			Description: fmt.Sprintf("Business expense %d", i+1),
			DataPoints:  "Location: Stockholm",
			Date:        newest.AddDate(0, 0, -i),
		}
	}
	return &service.PaginatedTransactions{Transactions: rows, Total: total, HasMore: hasMore}
}

func TestHTTP_ListTransactions_Success(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("GetPaginatedTransactions", mock.Anything, "company-1", 20, 40).
		Return(samplePage(17, 57, false), nil)

	resp := newTestAPI(t, mockSvc).Get("/api/transactions?companyId=company-1&limit=20&offset=40")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body PaginatedTransactions
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Transactions, 17)
	assert.Equal(t, 57, body.Total)
	assert.False(t, body.HasMore)
	assert.Equal(t, "tx-1", body.Transactions[0].ID)
	assert.Equal(t, "2024-01-15", body.Transactions[0].Date)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_DefaultPagination(t *testing.T) {
	mockSvc := new(mockTransactionService)

	// Omitted limit and offset fall back to 20 and 0.
	mockSvc.On("GetPaginatedTransactions", mock.Anything, "company-1", 20, 0).
		Return(samplePage(20, 57, true), nil)

	resp := newTestAPI(t, mockSvc).Get("/api/transactions?companyId=company-1")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body PaginatedTransactions
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.HasMore)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_ExplicitZeroLimit(t *testing.T) {
	mockSvc := new(mockTransactionService)

	// limit=0 is a real value, not an omission, so the default must not apply.
	mockSvc.On("GetPaginatedTransactions", mock.Anything, "company-1", 0, 0).
		Return(samplePage(0, 57, true), nil)

	resp := newTestAPI(t, mockSvc).Get("/api/transactions?companyId=company-1&limit=0")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body PaginatedTransactions
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Transactions)
	assert.Equal(t, 57, body.Total)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_MissingCompanyID(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newTestAPI(t, mockSvc).Get("/api/transactions")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	var body map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, map[string]string{"error": "Company ID is required"}, body)
	mockSvc.AssertNotCalled(t, "GetPaginatedTransactions")
}

func TestHTTP_ListTransactions_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("GetPaginatedTransactions", mock.Anything, "company-1", 20, 0).
		Return(nil, errors.New("database unavailable"))

	resp := newTestAPI(t, mockSvc).Get("/api/transactions?companyId=company-1")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	var body map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Failed to fetch transactions", body["error"])
	mockSvc.AssertExpectations(t)
}
