package card

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

// Card represents a spending card record.
type Card struct {
	ID        string         `db:"id"`
	CompanyID string         `db:"company_id"`
	IsActive  bool           `db:"is_active"`
	ImageURL  sql.NullString `db:"image_url"`
	CreatedAt time.Time      `db:"created_at"`
}

// ICardTable defines the interface for card storage operations.
//
//go:generate mockery --name ICardTable --output mock_ICardTable.go
type ICardTable interface {
	FindFirstByCompany(ctx context.Context, companyID string) (*Card, error)
	SetActiveByCompany(ctx context.Context, companyID string, active bool) (int64, error)
}

var _ ICardTable = (*CardsTable)(nil)

type CardsTable struct {
	exec bob.Executor
}

func NewCardsTable(exec bob.Executor) *CardsTable {
	return &CardsTable{exec: exec}
}

// FindFirstByCompany returns the company's oldest card, or nil without error
// when the company has no card. Only the first card is surfaced even if a
// company somehow owns several.
func (t *CardsTable) FindFirstByCompany(ctx context.Context, companyID string) (*Card, error) {
	q := psql.Select(
		sm.Columns("id", "company_id", "is_active", "image_url", "created_at"),
		sm.From("cards"),
		sm.Where(psql.Quote("company_id").EQ(psql.Arg(companyID))),
		sm.OrderBy("created_at").Asc(),
		sm.OrderBy("id").Asc(),
		sm.Limit(1),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Card]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// SetActiveByCompany flips is_active on every card the company owns and
// returns the number of rows touched. Zero rows is not an error.
func (t *CardsTable) SetActiveByCompany(ctx context.Context, companyID string, active bool) (int64, error) {
	q := psql.Update(
		um.Table("cards"),
		um.SetCol("is_active").ToArg(active),
		um.Where(psql.Quote("company_id").EQ(psql.Arg(companyID))),
	)
	result, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
