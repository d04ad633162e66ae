package transactions

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/samber/lo"

	"github.com/carson-networks/card-dashboard/internal/handlers/v1/apierrors"
	"github.com/carson-networks/card-dashboard/internal/logging"
	"github.com/carson-networks/card-dashboard/internal/service"
)

const dateFormat = "2006-01-02"

// Transaction is the API response model for a transaction.
type Transaction struct {
	ID          string `json:"id" doc:"Transaction identifier"`
	Description string `json:"description" doc:"What the money was spent on"`
	DataPoints  string `json:"dataPoints" doc:"Free-form context, e.g. merchant or location"`
	Date        string `json:"date" doc:"Transaction date, YYYY-MM-DD"`
}

// PaginatedTransactions is one window of a company's transaction history.
type PaginatedTransactions struct {
	Transactions []Transaction `json:"transactions" doc:"Page of transactions, newest first"`
	Total        int           `json:"total" doc:"Total transactions for the company"`
	HasMore      bool          `json:"hasMore" doc:"Whether pages beyond this window exist"`
}

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	CompanyID string `query:"companyId" doc:"Company whose transactions to list"`
	Limit     int    `query:"limit" minimum:"0" default:"20" doc:"Page size"`
	Offset    int    `query:"offset" minimum:"0" doc:"Window start"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body PaginatedTransactions
}

// transactionPager is the interface for paginated transaction reads.
type transactionPager interface {
	GetPaginatedTransactions(ctx context.Context, companyID string, limit, offset int) (*service.PaginatedTransactions, error)
}

// ListTransactionsHandler handles GET /api/transactions.
type ListTransactionsHandler struct {
	DashboardService transactionPager
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionPager) *ListTransactionsHandler {
	return &ListTransactionsHandler{DashboardService: svc}
}

// Register registers the transaction listing endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/api/transactions",
		Summary:     "List transactions",
		Description: "Returns an offset-paginated window of a company's transactions by descending date.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	if input.CompanyID == "" {
		return nil, apierrors.New(http.StatusBadRequest, "Company ID is required")
	}

	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	result, err := h.DashboardService.GetPaginatedTransactions(ctx, input.CompanyID, input.Limit, input.Offset)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if logData != nil {
			logData.Log().WithError(err).Error("Handler.list-transactions.Error")
		}
		return nil, apierrors.New(http.StatusInternalServerError, "Failed to fetch transactions")
	}

	if logData != nil {
		logData.AddData("transactionCount", len(result.Transactions))
	}

	return &ListTransactionsOutput{
		Body: PaginatedTransactions{
			Transactions: lo.Map(result.Transactions, transactionFromService),
			Total:        result.Total,
			HasMore:      result.HasMore,
		},
	}, nil
}

func transactionFromService(tx service.Transaction, _ int) Transaction {
	return Transaction{
		ID:          tx.ID,
		Description: tx.Description,
		DataPoints:  tx.DataPoints,
		Date:        tx.Date.Format(dateFormat),
	}
}
