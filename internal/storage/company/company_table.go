package company

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

// Company represents a company record.
type Company struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// ICompanyTable defines the interface for company storage operations.
// This abstraction allows swapping the implementation without changing callers.
//
//go:generate mockery --name ICompanyTable --output mock_ICompanyTable.go
type ICompanyTable interface {
	List(ctx context.Context) ([]Company, error)
	FindByID(ctx context.Context, id string) (*Company, error)
}

var _ ICompanyTable = (*CompaniesTable)(nil)

type CompaniesTable struct {
	exec bob.Executor
}

func NewCompaniesTable(exec bob.Executor) *CompaniesTable {
	return &CompaniesTable{exec: exec}
}

// List returns all companies in creation order, with the id as a tiebreak.
// Creation order defines which company is the default when a request names
// none.
func (t *CompaniesTable) List(ctx context.Context) ([]Company, error) {
	q := psql.Select(
		sm.Columns("id", "name", "created_at"),
		sm.From("companies"),
		sm.OrderBy("created_at").Asc(),
		sm.OrderBy("id").Asc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[Company]())
}

// FindByID retrieves a company by primary key. Returns nil without error
// when no company matches.
func (t *CompaniesTable) FindByID(ctx context.Context, id string) (*Company, error) {
	q := psql.Select(
		sm.Columns("id", "name", "created_at"),
		sm.From("companies"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Company]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
