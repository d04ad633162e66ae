package spendinglimit

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

// SpendingLimit represents a company's spend-to-date against its ceiling.
// The column is named limit_amount because "limit" is reserved in SQL.
type SpendingLimit struct {
	CompanyID string          `db:"company_id"`
	Current   decimal.Decimal `db:"current"`
	Limit     decimal.Decimal `db:"limit_amount"`
	Currency  string          `db:"currency"`
}

// ISpendingLimitTable defines the interface for spending limit storage
// operations.
//
//go:generate mockery --name ISpendingLimitTable --output mock_ISpendingLimitTable.go
type ISpendingLimitTable interface {
	FindByCompany(ctx context.Context, companyID string) (*SpendingLimit, error)
}

var _ ISpendingLimitTable = (*SpendingLimitsTable)(nil)

type SpendingLimitsTable struct {
	exec bob.Executor
}

func NewSpendingLimitsTable(exec bob.Executor) *SpendingLimitsTable {
	return &SpendingLimitsTable{exec: exec}
}

// FindByCompany returns the company's spending limit, or nil without error
// when none is configured. company_id is unique, so at most one row matches.
func (t *SpendingLimitsTable) FindByCompany(ctx context.Context, companyID string) (*SpendingLimit, error) {
	q := psql.Select(
		sm.Columns("company_id", "current", "limit_amount", "currency"),
		sm.From("spending_limits"),
		sm.Where(psql.Quote("company_id").EQ(psql.Arg(companyID))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[SpendingLimit]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
