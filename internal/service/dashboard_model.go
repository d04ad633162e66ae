package service

import (
	"time"

	"github.com/shopspring/decimal"
)

// Company represents a company in the service layer.
type Company struct {
	ID   string
	Name string
}

// Card represents the company's spending card. A company without a card is
// surfaced as the zero value: empty id, inactive, no image.
type Card struct {
	ID       string
	IsActive bool
	ImageURL string
}

// SpendingInfo is the current-vs-maximum spend snapshot.
type SpendingInfo struct {
	Current  decimal.Decimal
	Limit    decimal.Decimal
	Currency string
}

// Transaction represents a card transaction in the service layer. Date
// carries no meaningful time component.
type Transaction struct {
	ID          string
	Description string
	DataPoints  string
	Date        time.Time
}

// TransactionSummary carries the full per-company count next to how many
// transactions the recent slice left out.
type TransactionSummary struct {
	TotalTransactions int
	RemainingCount    int
}

// DashboardData is the composite snapshot of one company's state. It is
// assembled fresh on every request and never persisted.
type DashboardData struct {
	Companies          []Company
	SelectedCompany    Company
	Card               Card
	InvoiceDue         bool
	Spending           SpendingInfo
	RecentTransactions []Transaction
	TransactionSummary TransactionSummary
}

// PaginatedTransactions is one window of a company's transaction history.
type PaginatedTransactions struct {
	Transactions []Transaction
	Total        int
	HasMore      bool
}
