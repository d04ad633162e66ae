package service

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/card-dashboard/internal/storage"
	"github.com/carson-networks/card-dashboard/internal/storage/card"
	"github.com/carson-networks/card-dashboard/internal/storage/company"
	"github.com/carson-networks/card-dashboard/internal/storage/spendinglimit"
	"github.com/carson-networks/card-dashboard/internal/storage/transaction"
)

// recentTransactionLimit bounds the dashboard's recent-transactions slice.
const recentTransactionLimit = 3

// defaultCurrency is used when a company has no spending limit configured.
const defaultCurrency = "kr"

// DashboardService assembles per-company dashboard snapshots. It holds no
// state beyond the injected storage handle, so it is safe for concurrent use.
type DashboardService struct {
	storage *storage.Storage
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(store *storage.Storage) *DashboardService {
	return &DashboardService{storage: store}
}

// GetDashboardData resolves the target company and composes its dashboard
// snapshot. An empty companyID selects the first company in creation order.
// Returns ErrCompanyNotFound when no companies exist or the id is unknown.
func (s *DashboardService) GetDashboardData(ctx context.Context, companyID string) (*DashboardData, error) {
	companies, err := s.storage.Companies.List(ctx)
	if err != nil {
		return nil, err
	}

	if companyID == "" {
		if len(companies) == 0 {
			return nil, ErrCompanyNotFound
		}
		companyID = companies[0].ID
	}

	selected, err := s.storage.Companies.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if selected == nil {
		return nil, fmt.Errorf("company %q: %w", companyID, ErrCompanyNotFound)
	}

	cardRow, err := s.storage.Cards.FindFirstByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	limitRow, err := s.storage.SpendingLimits.FindByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	invoiceRow, err := s.storage.Invoices.FindFirstByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	recentRows, err := s.storage.Transactions.ListByCompany(ctx, companyID, recentTransactionLimit, 0)
	if err != nil {
		return nil, err
	}

	total, err := s.storage.Transactions.CountByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	remaining := total - len(recentRows)
	if remaining < 0 {
		remaining = 0
	}

	return &DashboardData{
		Companies:          lo.Map(companies, companyFromRow),
		SelectedCompany:    Company{ID: selected.ID, Name: selected.Name},
		Card:               cardFromRow(cardRow),
		InvoiceDue:         invoiceRow != nil && invoiceRow.IsDue,
		Spending:           spendingFromRow(limitRow),
		RecentTransactions: lo.Map(recentRows, transactionFromRow),
		TransactionSummary: TransactionSummary{
			TotalTransactions: total,
			RemainingCount:    remaining,
		},
	}, nil
}

// GetPaginatedTransactions returns the [offset, offset+limit) window of the
// company's transactions by descending date, plus the total count. HasMore is
// false exactly when offset+limit >= total, including an offset past the end.
func (s *DashboardService) GetPaginatedTransactions(ctx context.Context, companyID string, limit, offset int) (*PaginatedTransactions, error) {
	rows, err := s.storage.Transactions.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}

	total, err := s.storage.Transactions.CountByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	return &PaginatedTransactions{
		Transactions: lo.Map(rows, transactionFromRow),
		Total:        total,
		HasMore:      offset+limit < total,
	}, nil
}

// UpdateCardStatus sets is_active on all of the company's cards and returns
// the number of cards touched. A company with zero cards yields (0, nil), so
// callers can tell "nothing to update" from a failed write.
func (s *DashboardService) UpdateCardStatus(ctx context.Context, companyID string, active bool) (int64, error) {
	return s.storage.Cards.SetActiveByCompany(ctx, companyID, active)
}

func companyFromRow(row company.Company, _ int) Company {
	return Company{ID: row.ID, Name: row.Name}
}

func cardFromRow(row *card.Card) Card {
	if row == nil {
		return Card{}
	}
	return Card{
		ID:       row.ID,
		IsActive: row.IsActive,
		ImageURL: row.ImageURL.String,
	}
}

func spendingFromRow(row *spendinglimit.SpendingLimit) SpendingInfo {
	if row == nil {
		return SpendingInfo{
			Current:  decimal.Zero,
			Limit:    decimal.Zero,
			Currency: defaultCurrency,
		}
	}
	return SpendingInfo{
		Current:  row.Current,
		Limit:    row.Limit,
		Currency: row.Currency,
	}
}

func transactionFromRow(row transaction.Transaction, _ int) Transaction {
	return Transaction{
		ID:          row.ID,
		Description: row.Description,
		DataPoints:  row.DataPoints,
		Date:        row.Date,
	}
}
