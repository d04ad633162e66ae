package dashboard

import (
	"github.com/samber/lo"

	"github.com/carson-networks/card-dashboard/internal/service"
)

// dateFormat is the wire format for transaction dates, which carry no time
// component.
const dateFormat = "2006-01-02"

// Company is the API response model for a company.
type Company struct {
	ID   string `json:"id" doc:"Company identifier"`
	Name string `json:"name" doc:"Company name"`
}

// SpendingInfo is the current-vs-maximum spend snapshot.
type SpendingInfo struct {
	Current  float64 `json:"current" doc:"Spend to date"`
	Limit    float64 `json:"limit" doc:"Spending ceiling"`
	Currency string  `json:"currency" doc:"Currency code, e.g. kr"`
}

// Transaction is the API response model for a transaction.
type Transaction struct {
	ID          string `json:"id" doc:"Transaction identifier"`
	Description string `json:"description" doc:"What the money was spent on"`
	DataPoints  string `json:"dataPoints" doc:"Free-form context, e.g. merchant or location"`
	Date        string `json:"date" doc:"Transaction date, YYYY-MM-DD"`
}

// Card is the API response model for the company's card. ImageURL is the only
// optional field; it is omitted when the card has no artwork or the company
// has no card at all.
type Card struct {
	ID       string `json:"id" doc:"Card identifier, empty when the company has no card"`
	IsActive bool   `json:"isActive" doc:"Whether the card is active"`
	ImageURL string `json:"imageUrl,omitempty" doc:"Card artwork URL"`
}

// TransactionSummary carries the full transaction count next to how many the
// recent slice left out.
type TransactionSummary struct {
	TotalTransactions int `json:"totalTransactions" doc:"Full transaction count for the company"`
	RemainingCount    int `json:"remainingCount" doc:"Transactions not shown in the recent slice"`
}

// DashboardData is the composite dashboard payload.
type DashboardData struct {
	Companies          []Company          `json:"companies" doc:"All companies, in creation order"`
	SelectedCompany    Company            `json:"selectedCompany" doc:"The resolved company"`
	Card               Card               `json:"card" doc:"The company's card"`
	InvoiceDue         bool               `json:"invoiceDue" doc:"Whether an outstanding invoice exists"`
	Spending           SpendingInfo       `json:"spending" doc:"Spending snapshot"`
	RecentTransactions []Transaction      `json:"recentTransactions" doc:"Most recent transactions, newest first"`
	TransactionSummary TransactionSummary `json:"transactionSummary" doc:"Counts over the full history"`
}

func companyFromService(c service.Company, _ int) Company {
	return Company{ID: c.ID, Name: c.Name}
}

func transactionFromService(tx service.Transaction, _ int) Transaction {
	return Transaction{
		ID:          tx.ID,
		Description: tx.Description,
		DataPoints:  tx.DataPoints,
		Date:        tx.Date.Format(dateFormat),
	}
}

func dashboardDataFromService(data *service.DashboardData) DashboardData {
	return DashboardData{
		Companies:       lo.Map(data.Companies, companyFromService),
		SelectedCompany: Company{ID: data.SelectedCompany.ID, Name: data.SelectedCompany.Name},
		Card: Card{
			ID:       data.Card.ID,
			IsActive: data.Card.IsActive,
			ImageURL: data.Card.ImageURL,
		},
		InvoiceDue: data.InvoiceDue,
		Spending: SpendingInfo{
			Current:  data.Spending.Current.InexactFloat64(),
			Limit:    data.Spending.Limit.InexactFloat64(),
			Currency: data.Spending.Currency,
		},
		RecentTransactions: lo.Map(data.RecentTransactions, transactionFromService),
		TransactionSummary: TransactionSummary{
			TotalTransactions: data.TransactionSummary.TotalTransactions,
			RemainingCount:    data.TransactionSummary.RemainingCount,
		},
	}
}
