package transaction

import (
	"context"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

// Transaction represents a card transaction record. Transactions are created
// out-of-band and never updated or deleted here.
type Transaction struct {
	ID          string    `db:"id"`
	CompanyID   string    `db:"company_id"`
	Description string    `db:"description"`
	DataPoints  string    `db:"data_points"`
	Date        time.Time `db:"date"`
}

// ITransactionTable defines the interface for transaction storage operations.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]Transaction, error)
	CountByCompany(ctx context.Context, companyID string) (int, error)
}

var _ ITransactionTable = (*TransactionsTable)(nil)

type TransactionsTable struct {
	exec bob.Executor
}

func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// ListByCompany returns the window [offset, offset+limit) of the company's
// transactions ordered by date descending, with the id as a deterministic
// tiebreak for same-day entries.
func (t *TransactionsTable) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]Transaction, error) {
	if limit <= 0 {
		return nil, nil
	}

	q := psql.Select(
		sm.Columns("id", "company_id", "description", "data_points", "date"),
		sm.From("transactions"),
		sm.Where(psql.Quote("company_id").EQ(psql.Arg(companyID))),
		sm.OrderBy("date").Desc(),
		sm.OrderBy("id").Desc(),
		sm.Limit(limit),
		sm.Offset(offset),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[Transaction]())
}

// CountByCompany returns the company's full transaction count, independent of
// any window.
func (t *TransactionsTable) CountByCompany(ctx context.Context, companyID string) (int, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("count(*)")),
		sm.From("transactions"),
		sm.Where(psql.Quote("company_id").EQ(psql.Arg(companyID))),
	)
	count, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
