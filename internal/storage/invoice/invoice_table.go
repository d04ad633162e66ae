package invoice

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

// Invoice represents an invoice record. Only the due flag matters to the
// dashboard.
type Invoice struct {
	ID        string    `db:"id"`
	CompanyID string    `db:"company_id"`
	IsDue     bool      `db:"is_due"`
	CreatedAt time.Time `db:"created_at"`
}

// IInvoiceTable defines the interface for invoice storage operations.
//
//go:generate mockery --name IInvoiceTable --output mock_IInvoiceTable.go
type IInvoiceTable interface {
	FindFirstByCompany(ctx context.Context, companyID string) (*Invoice, error)
}

var _ IInvoiceTable = (*InvoicesTable)(nil)

type InvoicesTable struct {
	exec bob.Executor
}

func NewInvoicesTable(exec bob.Executor) *InvoicesTable {
	return &InvoicesTable{exec: exec}
}

// FindFirstByCompany returns the company's oldest invoice, or nil without
// error when the company has none.
func (t *InvoicesTable) FindFirstByCompany(ctx context.Context, companyID string) (*Invoice, error) {
	q := psql.Select(
		sm.Columns("id", "company_id", "is_due", "created_at"),
		sm.From("invoices"),
		sm.Where(psql.Quote("company_id").EQ(psql.Arg(companyID))),
		sm.OrderBy("created_at").Asc(),
		sm.OrderBy("id").Asc(),
		sm.Limit(1),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Invoice]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
