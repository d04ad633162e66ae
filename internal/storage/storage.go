package storage

import (
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/card-dashboard/internal/config"
	"github.com/carson-networks/card-dashboard/internal/storage/card"
	"github.com/carson-networks/card-dashboard/internal/storage/company"
	"github.com/carson-networks/card-dashboard/internal/storage/invoice"
	"github.com/carson-networks/card-dashboard/internal/storage/spendinglimit"
	"github.com/carson-networks/card-dashboard/internal/storage/transaction"
)

// Storage bundles one table handle per entity. It is constructed once in main
// and injected; Close releases the underlying pool.
type Storage struct {
	DB             *sql.DB
	Companies      company.ICompanyTable
	Cards          card.ICardTable
	SpendingLimits spendinglimit.ISpendingLimitTable
	Invoices       invoice.IInvoiceTable
	Transactions   transaction.ITransactionTable
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.ConnectionString())
	if err != nil {
		return nil, err
	}

	exec := bob.NewDB(db)

	return &Storage{
		DB:             db,
		Companies:      company.NewCompaniesTable(exec),
		Cards:          card.NewCardsTable(exec),
		SpendingLimits: spendinglimit.NewSpendingLimitsTable(exec),
		Invoices:       invoice.NewInvoicesTable(exec),
		Transactions:   transaction.NewTransactionsTable(exec),
	}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
